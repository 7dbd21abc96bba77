package systems

import (
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateResources regenerates stamina and special meter, counts down the
// attack and dash cooldowns and clamps every resource.
func UpdateResources(w donburi.World) {
	for _, e := range Combatants(w) {
		state := components.State.Get(e)
		timers := components.Timers.Get(e)

		Regenerate(components.Resources.Get(e), state.Is(cfg.Attacking) || state.Is(cfg.Dashing))

		timers.AttackCooldown = gamemath.DecrementTimer(timers.AttackCooldown)
		timers.DashCooldown = gamemath.DecrementTimer(timers.DashCooldown)
	}
}

// Regenerate applies one tick of regeneration. Stamina only regenerates
// while not attacking or dashing; the special meter always does.
func Regenerate(r *components.ResourcesData, busy bool) {
	if !busy {
		r.Stamina += cfg.Resources.StaminaRegen
	}
	r.Special += cfg.Resources.SpecialRegen
	ClampResources(r)
}

// ClampResources keeps every resource within [0, max].
func ClampResources(r *components.ResourcesData) {
	r.Health = gamemath.ClampFloat(r.Health, 0, cfg.Resources.MaxHealth)
	r.Stamina = gamemath.ClampFloat(r.Stamina, 0, cfg.Resources.MaxStamina)
	r.Special = gamemath.ClampFloat(r.Special, 0, cfg.Resources.MaxSpecial)
}
