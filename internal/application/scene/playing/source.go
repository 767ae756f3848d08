package playing

import (
	"github.com/younwookim/wallhop/internal/application/replay"
	"github.com/younwookim/wallhop/internal/application/system"
)

// InputSource yields the actor input for one frame. ok is false once the
// source is exhausted.
type InputSource interface {
	Read() (in system.InputState, ok bool)
}

// Reader is any live device that never runs out.
type Reader interface {
	Read() system.InputState
}

type liveSource struct{ r Reader }

// Live wraps a device such as input.Keyboard.
func Live(r Reader) InputSource {
	return liveSource{r: r}
}

func (s liveSource) Read() (system.InputState, bool) {
	return s.r.Read(), true
}

// ReplaySource plays back a recording.
type ReplaySource struct {
	*replay.Replayer
}

// NewReplaySource wraps a recording.
func NewReplaySource(data replay.ReplayData) *ReplaySource {
	return &ReplaySource{Replayer: replay.NewReplayer(data)}
}

func (s *ReplaySource) Read() (system.InputState, bool) {
	return s.GetInput()
}
