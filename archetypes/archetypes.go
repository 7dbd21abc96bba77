package archetypes

import (
	"github.com/sjmiguel8/box-brawl/components"
	"github.com/sjmiguel8/box-brawl/tags"
	"github.com/yohamta/donburi"
)

var (
	Combatant = newArchetype(
		tags.Combatant,
		components.Combatant,
		components.Object,
		components.Physics,
		components.State,
		components.Resources,
		components.Timers,
		components.Combo,
		components.Intent,
		components.Pending,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Clock = newArchetype(
		components.Clock,
	)
	EffectBus = newArchetype(
		components.EffectBus,
	)
	Camera = newArchetype(
		components.ScreenShake,
	)
	HitQueue = newArchetype(
		components.HitQueue,
	)
	Match = newArchetype(
		components.Match,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
