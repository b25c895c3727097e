package game

// KeyState is the keyboard snapshot sampled once per tick
type KeyState struct {
	// Held keys
	Left, Right bool
	Jump        bool
	Fire        bool

	// Keys pressed this tick
	Restart bool
	Quit    bool // also set when the window is closed
	AnyKey  bool
}

// InputSource defines the interface for per-tick input
type InputSource interface {
	// Poll samples the keyboard for the coming tick
	Poll() KeyState
}
