package factory

import (
	"github.com/sjmiguel8/box-brawl/archetypes"
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Probe size in space pixels. The probe marks a combatant's feet.
const probeSize = 2

// CreateCombatant spawns a combatant for side with its initial state and a
// feet probe in the arena's space.
func CreateCombatant(w donburi.World, side cfg.Side) *donburi.Entry {
	combatant := archetypes.Combatant.Spawn(w)

	obj := resolv.NewObject(0, 0, probeSize, probeSize, tags.ResolvCombatant)
	obj.Data = combatant
	components.Object.SetValue(combatant, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	ResetCombatant(w, combatant, side)
	return combatant
}

// ResetCombatant restores a combatant to its round-start state.
func ResetCombatant(w donburi.World, combatant *donburi.Entry, side cfg.Side) {
	ground := cfg.Arena.GroundLevel
	if arenaEntry, ok := components.Arena.First(w); ok {
		ground = components.Arena.Get(arenaEntry).Geometry.GroundLevel
	}

	components.Combatant.SetValue(combatant, components.CombatantData{
		Side:        side,
		FacingRight: side == cfg.Side1,
	})
	components.Physics.SetValue(combatant, components.PhysicsData{
		Position: gamemath.Vec3{X: cfg.Arena.SpawnX[side.Index()], Y: ground},
		Grounded: true,
		Platform: -1,
	})
	components.State.SetValue(combatant, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.Idle,
	})
	components.Resources.SetValue(combatant, components.ResourcesData{
		Health:  cfg.Resources.StartHealth,
		Stamina: cfg.Resources.StartStamina,
		Special: cfg.Resources.StartSpecial,
	})
	components.Timers.SetValue(combatant, components.TimersData{})
	components.Combo.SetValue(combatant, components.ComboData{
		Sequence: make([]cfg.MoveToken, 0, cfg.Combo.SequenceLimit+1),
	})
	components.Intent.SetValue(combatant, components.IntentData{})
	components.Pending.SetValue(combatant, components.PendingData{})

	SyncProbe(w, combatant)
}

// SyncProbe moves the combatant's feet probe to its current position.
func SyncProbe(w donburi.World, combatant *donburi.Entry) {
	arenaEntry, ok := components.Arena.First(w)
	if !ok {
		return
	}
	obj := components.Object.Get(combatant)
	if obj.Object == nil {
		return
	}
	x, y := components.Arena.Get(arenaEntry).ToSpace(components.Physics.Get(combatant).Position.Sanitized())
	obj.X = x - probeSize/2
	obj.Y = y - probeSize/2
	if obj.Space != nil {
		obj.Update()
	}
}
