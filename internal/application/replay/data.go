package replay

// Version is written into every recording.
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump held
	JP bool `json:"jp,omitempty"` // JumpPressed
}

// ReplayData contains all data needed to replay a session. Step is the
// fixed tick the inputs were recorded at.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	Step      float64      `json:"step"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
