package factory

import (
	"github.com/sjmiguel8/box-brawl/archetypes"
	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/yohamta/donburi"
)

func CreateClock(w donburi.World) *donburi.Entry {
	return archetypes.Clock.Spawn(w)
}

func CreateEffectBus(w donburi.World) *donburi.Entry {
	return archetypes.EffectBus.Spawn(w)
}

func CreateCamera(w donburi.World) *donburi.Entry {
	return archetypes.Camera.Spawn(w)
}

func CreateHitQueue(w donburi.World) *donburi.Entry {
	return archetypes.HitQueue.Spawn(w)
}

// CreateMatch spawns the match singleton in the waiting state.
func CreateMatch(w donburi.World) *donburi.Entry {
	match := archetypes.Match.Spawn(w)
	components.Match.SetValue(match, components.MatchData{
		State:          cfg.MatchStateWaiting,
		CountdownValue: -1,
		Winner:         cfg.SideNone,
	})
	return match
}
