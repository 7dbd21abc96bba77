package components

import (
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/yohamta/donburi"
)

type CombatantData struct {
	Side        cfg.Side
	FacingRight bool
	Invincible  bool // never set by the core; hits skip invincible defenders
}

var Combatant = donburi.NewComponentType[CombatantData]()
