package messages

// PlayerIntent is one player's resolved input for a single tick. It is
// independent of which keys or buttons produced it.
type PlayerIntent struct {
	Left    bool `json:"left,omitempty"`
	Right   bool `json:"right,omitempty"`
	Jump    bool `json:"jump,omitempty"`
	Attack  bool `json:"attack,omitempty"`
	Block   bool `json:"block,omitempty"`
	Special bool `json:"special,omitempty"`
	Dash    bool `json:"dash,omitempty"`
}

// Any reports whether any intent is held.
func (i PlayerIntent) Any() bool {
	return i.Left || i.Right || i.Jump || i.Attack || i.Block || i.Special || i.Dash
}
