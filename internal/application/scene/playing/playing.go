// Package playing provides the sandbox scene: one player-controlled actor
// on a stage, drawn as debug boxes.
package playing

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/wallhop/internal/application/replay"
	"github.com/younwookim/wallhop/internal/application/scene"
	"github.com/younwookim/wallhop/internal/application/state"
	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/domain/entity"
	"github.com/younwookim/wallhop/internal/domain/geom"
	"github.com/younwookim/wallhop/internal/ecs"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorGround   = color.RGBA{80, 80, 100, 255}
	colorWall     = color.RGBA{110, 80, 140, 255}
	colorMoving   = color.RGBA{90, 140, 160, 255}
	colorActor    = color.RGBA{100, 200, 100, 255}
	colorWallHang = color.RGBA{220, 200, 90, 255}
	colorProbe    = color.RGBA{255, 90, 90, 160}
	colorQuery    = color.RGBA{255, 255, 255, 40}
	colorOverlay  = color.RGBA{0, 0, 0, 128}
)

// cameraRate is how fast the camera catches up, per second.
const cameraRate = 8

// Options configures a Playing scene.
type Options struct {
	// RecordPath enables input recording. The file is written on F5 and
	// when the scene exits.
	RecordPath string
	Logger     *log.Logger
}

// Playing is the sandbox scene.
type Playing struct {
	config *config.PhysicsConfig
	stage  *system.Stage
	world  *ecs.World
	actor  entity.EntityID
	source InputSource

	machine state.Machine
	squash  *Squash
	camera  Camera
	status  string

	paused   bool
	debug    bool
	finished bool

	recorder   *replay.Recorder
	recordPath string
	logger     *log.Logger
}

var _ scene.Reloadable = (*Playing)(nil)

// New creates the scene and loads stage into a fresh world.
func New(cfg *config.PhysicsConfig, stage *system.Stage, source InputSource, opts Options) (*Playing, error) {
	p := &Playing{
		config:     cfg,
		stage:      stage,
		source:     source,
		squash:     NewSquash(cfg.Feedback.SquashStretch),
		recordPath: opts.RecordPath,
		logger:     opts.Logger,
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard, "", 0)
	}
	if err := p.reset(); err != nil {
		return nil, err
	}
	if p.recordPath != "" {
		p.recorder = replay.NewRecorder(stage.ID, p.frameStep())
		p.logger.Printf("Recording enabled: %s", p.recordPath)
	}
	return p, nil
}

func (p *Playing) frameStep() float64 {
	return 1.0 / float64(p.config.Display.Framerate)
}

func (p *Playing) reset() error {
	w, err := ecs.NewWorld(p.config, ecs.WithLogger(p.logger))
	if err != nil {
		return err
	}
	if err := w.LoadStage(p.stage); err != nil {
		return err
	}
	p.world = w
	p.actor = w.SpawnActor(p.stage.Spawn)
	p.machine = state.Machine{}
	p.squash = NewSquash(p.config.Feedback.SquashStretch)
	p.camera = Camera{
		Center:  p.stage.Spawn,
		ScreenW: p.config.Display.ScreenWidth,
		ScreenH: p.config.Display.ScreenHeight,
	}
	p.status = ""
	p.logger.Printf("Stage %s loaded: %d obstacles", p.stage.ID, len(p.stage.Obstacles))
	return nil
}

// World returns the running world.
func (p *Playing) World() *ecs.World {
	return p.world
}

// Actor returns the player actor ID.
func (p *Playing) Actor() entity.EntityID {
	return p.actor
}

// SetConfig applies a new physics config between ticks.
func (p *Playing) SetConfig(cfg *config.PhysicsConfig) error {
	if err := p.world.SetConfig(cfg); err != nil {
		return err
	}
	p.config = cfg
	p.squash = NewSquash(cfg.Feedback.SquashStretch)
	p.camera.ScreenW = cfg.Display.ScreenWidth
	p.camera.ScreenH = cfg.Display.ScreenHeight
	p.logger.Printf("Physics config reloaded")
	return nil
}

// SetStage swaps the stage and restarts on it.
func (p *Playing) SetStage(stage *system.Stage) error {
	prev := p.stage
	p.stage = stage
	if err := p.reset(); err != nil {
		p.stage = prev
		return err
	}
	return nil
}

// Update reads the hotkeys and the actor input, then advances the world.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		p.debug = !p.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := p.reset(); err != nil {
			return nil, err
		}
	}

	if p.paused || p.finished {
		return nil, nil
	}
	if rs, ok := p.source.(*ReplaySource); ok && rs.Step() > 0 {
		dt = rs.Step()
	}

	in, ok := p.source.Read()
	if !ok {
		p.finished = true
		p.logger.Printf("Input source exhausted after %d ticks", p.world.Tick())
		return nil, nil
	}
	return nil, p.tick(in, dt)
}

// tick advances the world by one frame of input.
func (p *Playing) tick(in system.InputState, dt float64) error {
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	if err := p.world.SetInput(p.actor, in); err != nil {
		return err
	}

	for _, ev := range p.world.Advance(dt) {
		if ev.ActorID() != p.actor {
			continue
		}
		switch e := ev.(type) {
		case system.Landed:
			p.squash.Trigger()
			p.status = fmt.Sprintf("landed at (%.1f, %.1f)", e.Position.X, e.Position.Y)
		case system.Jumped:
			p.status = fmt.Sprintf("%s jump", e.Kind)
		case system.WallJumped:
			p.status = fmt.Sprintf("wall jump %s", facingName(e.Direction))
		}
	}

	a, err := p.world.Actor(p.actor)
	if err != nil {
		return err
	}
	if prev, changed := p.machine.Update(&a); changed {
		p.logger.Printf("Actor %d: %s -> %s", p.actor, prev, p.machine.Current())
	}
	p.squash.Update(dt)
	p.camera.Follow(a.Body.Position, cameraRate, dt)
	return nil
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}
	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	p.logger.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
}

// Draw renders obstacles and the actor as boxes plus a text overlay.
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	for _, o := range p.world.Obstacles() {
		b := o.Bounds()
		if !p.camera.Visible(b) {
			continue
		}
		x, y, w, h := p.camera.Rect(b)
		ebitenutil.DrawRect(screen, x, y, w, h, obstacleColor(o))
	}

	a, err := p.world.Actor(p.actor)
	if err != nil {
		return
	}
	if p.debug {
		query := system.NewCollisionSystem(p.config).QueryArea(&a)
		x, y, w, h := p.camera.Rect(query)
		ebitenutil.DrawRect(screen, x, y, w, h, colorQuery)
		x, y, w, h = p.camera.Rect(a.Probe.Box())
		ebitenutil.DrawRect(screen, x, y, w, h, colorProbe)
	}

	x, y, w, h := p.camera.Rect(p.actorBox(&a))
	c := colorActor
	if a.Contact.TouchingWall {
		c = colorWallHang
	}
	ebitenutil.DrawRect(screen, x, y, w, h, c)

	ebitenutil.DebugPrint(screen, p.hud(&a))
	if p.paused {
		ebitenutil.DrawRect(screen, 0, 0, float64(p.camera.ScreenW), float64(p.camera.ScreenH), colorOverlay)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.camera.ScreenW/2-50, p.camera.ScreenH/2-20)
	}
}

// actorBox is the drawn actor box: the collider scaled by the squash,
// anchored at the feet.
func (p *Playing) actorBox(a *entity.Actor) geom.AABB {
	sx, sy := p.squash.Scale()
	w, h := a.Box.Width*sx, a.Box.Height*sy
	feet := a.Feet()
	return geom.NewAABB(geom.V(feet.X, feet.Y+h/2), w, h)
}

func (p *Playing) hud(a *entity.Actor) string {
	text := fmt.Sprintf("A/D: Move | W/Space: Jump | R: Restart | Tab: Debug | ESC: Pause\n"+
		"stage %s  tick %d\n"+
		"pos (%.1f, %.1f)  vel (%.1f, %.1f)\n"+
		"state %s  anim %s  jumps %d/%d\n",
		p.stage.ID, p.world.Tick(),
		a.Body.Position.X, a.Body.Position.Y, a.Body.Velocity.X, a.Body.Velocity.Y,
		p.machine.Current(), state.AnimationOf(a), a.Jumps.Remaining, a.Jumps.Max)
	if p.status != "" {
		text += p.status + "\n"
	}
	if p.recorder != nil {
		text += fmt.Sprintf("REC %d frames (F5 to save)\n", p.recorder.FrameCount())
	}
	if p.finished {
		text += "replay finished\n"
	}
	return text
}

func obstacleColor(o entity.Obstacle) color.Color {
	switch {
	case o.Body.Velocity != (geom.Vec2{}):
		return colorMoving
	case o.Kind.Has(entity.KindWall):
		return colorWall
	default:
		return colorGround
	}
}

func facingName(f entity.Facing) string {
	if f == entity.FacingLeft {
		return "left"
	}
	return "right"
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit saves the recording, if any.
func (p *Playing) OnExit() {
	p.saveRecording()
}
