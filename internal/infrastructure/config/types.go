package config

// PhysicsConfig is the root config for physics.json (or physics.yaml).
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display" yaml:"display"`
	Physics   PhysicsSettings `json:"physics" yaml:"physics"`
	Movement  MovementConfig  `json:"movement" yaml:"movement"`
	Jump      JumpConfig      `json:"jump" yaml:"jump"`
	WallJump  WallJumpConfig  `json:"wallJump" yaml:"wallJump"`
	Collision CollisionConfig `json:"collision" yaml:"collision"`
	Probe     ProbeConfig     `json:"probe" yaml:"probe"`
	Actor     ActorConfig     `json:"actor" yaml:"actor"`
	World     WorldConfig     `json:"world" yaml:"world"`
	Feedback  FeedbackConfig  `json:"feedback" yaml:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

// Drag axis modes.
const (
	DragHorizontal = "horizontal"
	DragBoth       = "both"
)

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity" yaml:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"` // 0 disables the clamp
	Drag         float64 `json:"drag" yaml:"drag"`
	DragAxes     string  `json:"dragAxes" yaml:"dragAxes" jsonschema:"enum=horizontal,enum=both"`
	FixedStep    float64 `json:"fixedStep" yaml:"fixedStep"`
	MaxSubsteps  int     `json:"maxSubsteps" yaml:"maxSubsteps"`
}

type MovementConfig struct {
	GroundSpeed float64 `json:"groundSpeed" yaml:"groundSpeed"`
	AirSpeed    float64 `json:"airSpeed" yaml:"airSpeed"`
}

type JumpConfig struct {
	Force              float64 `json:"force" yaml:"force"`
	Scale              float64 `json:"scale" yaml:"scale"`
	DoubleJumpAdjuster float64 `json:"doubleJumpAdjuster" yaml:"doubleJumpAdjuster"`
	MaxJumps           uint    `json:"maxJumps" yaml:"maxJumps"`
	LiftoffNudge       float64 `json:"liftoffNudge" yaml:"liftoffNudge"`
	FallMultiplier     float64 `json:"fallMultiplier" yaml:"fallMultiplier"`
	LowJumpMultiplier  float64 `json:"lowJumpMultiplier" yaml:"lowJumpMultiplier"`
}

type WallJumpConfig struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Scale   float64 `json:"scale" yaml:"scale"`
	Lift    float64 `json:"lift" yaml:"lift"`
	Nudge   float64 `json:"nudge" yaml:"nudge"`
}

// Wall detection strategies.
const (
	WallDetectionProbe = "probe"
	WallDetectionAABB  = "aabb"
)

type CollisionConfig struct {
	GroundProbeOffset       float64 `json:"groundProbeOffset" yaml:"groundProbeOffset"`
	SnapEpsilon             float64 `json:"snapEpsilon" yaml:"snapEpsilon"`
	LedgeTolerance          float64 `json:"ledgeTolerance" yaml:"ledgeTolerance"`
	InheritPlatformVelocity bool    `json:"inheritPlatformVelocity" yaml:"inheritPlatformVelocity"`
	InheritWallVelocity     bool    `json:"inheritWallVelocity" yaml:"inheritWallVelocity"`
	WallDetection           string  `json:"wallDetection" yaml:"wallDetection" jsonschema:"enum=probe,enum=aabb"`
}

type ProbeConfig struct {
	Length    float64 `json:"length" yaml:"length"`
	Thickness float64 `json:"thickness" yaml:"thickness"`
	WallStick bool    `json:"wallStick" yaml:"wallStick"`
}

type ActorConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// WorldConfig sizes the broadphase grid. Obstacles must lie inside it.
type WorldConfig struct {
	MinX     float64 `json:"minX" yaml:"minX"`
	MinY     float64 `json:"minY" yaml:"minY"`
	Width    int     `json:"width" yaml:"width"`
	Height   int     `json:"height" yaml:"height"`
	CellSize int     `json:"cellSize" yaml:"cellSize"`
}

type FeedbackConfig struct {
	SquashStretch SquashStretchConfig `json:"squashStretch" yaml:"squashStretch"`
}

type SquashStretchConfig struct {
	Enabled    bool    `json:"enabled" yaml:"enabled"`
	LandSquash ScaleXY `json:"landSquash" yaml:"landSquash"`
	Duration   float64 `json:"duration" yaml:"duration"`
}

type ScaleXY struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Default returns the tuned constants of the final movement iteration.
func Default() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:      9.82 * 40,
			MaxFallSpeed: 900,
			Drag:         1.85,
			DragAxes:     DragHorizontal,
			FixedStep:    1.0 / 60.0,
			MaxSubsteps:  5,
		},
		Movement: MovementConfig{
			GroundSpeed: 200,
			AirSpeed:    180,
		},
		Jump: JumpConfig{
			Force:              10,
			Scale:              20,
			DoubleJumpAdjuster: 0.7,
			MaxJumps:           2,
			LiftoffNudge:       0.2,
			FallMultiplier:     2.5,
			LowJumpMultiplier:  2.0,
		},
		WallJump: WallJumpConfig{
			Enabled: true,
			Scale:   10,
			Lift:    3,
			Nudge:   4,
		},
		Collision: CollisionConfig{
			GroundProbeOffset:       0.2,
			SnapEpsilon:             0.1,
			LedgeTolerance:          2,
			InheritPlatformVelocity: true,
			WallDetection:           WallDetectionProbe,
		},
		Probe: ProbeConfig{
			Length:    12,
			Thickness: 1,
			WallStick: true,
		},
		Actor: ActorConfig{
			Width:  16,
			Height: 32,
		},
		World: WorldConfig{
			MinX:     -2048,
			MinY:     -2048,
			Width:    4096,
			Height:   4096,
			CellSize: 32,
		},
		Feedback: FeedbackConfig{
			SquashStretch: SquashStretchConfig{
				Enabled:    true,
				LandSquash: ScaleXY{X: 1.3, Y: 0.7},
				Duration:   0.15,
			},
		},
	}
}
