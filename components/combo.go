package components

import (
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/yohamta/donburi"
)

type ComboData struct {
	Counter  int
	Sequence []cfg.MoveToken // oldest first
}

var Combo = donburi.NewComponentType[ComboData]()

// Push appends a directional token, evicting the oldest beyond limit.
func (c *ComboData) Push(token cfg.MoveToken, limit int) {
	c.Sequence = append(c.Sequence, token)
	if over := len(c.Sequence) - limit; over > 0 {
		c.Sequence = append(c.Sequence[:0], c.Sequence[over:]...)
	}
}

// Key joins the sequence into a string such as "121".
func (c *ComboData) Key() string {
	b := make([]byte, len(c.Sequence))
	for i, t := range c.Sequence {
		b[i] = byte('0' + t)
	}
	return string(b)
}
