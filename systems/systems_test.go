package systems

import (
	"testing"

	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/shared/leveldata"
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/sjmiguel8/box-brawl/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestLandsOn(t *testing.T) {
	platform := leveldata.Platform{
		Position: gamemath.Vec3{X: 0, Y: 2, Z: -1},
		Size:     gamemath.Vec3{X: 6, Y: 0.5, Z: 3},
	}
	falling := gamemath.Vec3{Y: -0.1}

	tests := []struct {
		name string
		pos  gamemath.Vec3
		vel  gamemath.Vec3
		want bool
	}{
		{"on top", gamemath.Vec3{X: 0, Y: 2.3}, falling, true},
		{"at center height", gamemath.Vec3{X: 0, Y: 2}, falling, true},
		{"within slack", gamemath.Vec3{X: 0, Y: 2.45}, falling, true},
		{"above slack", gamemath.Vec3{X: 0, Y: 2.5}, falling, false},
		{"below center", gamemath.Vec3{X: 0, Y: 1.9}, falling, false},
		{"rising", gamemath.Vec3{X: 0, Y: 2.3}, gamemath.Vec3{Y: 0.1}, false},
		{"resting", gamemath.Vec3{X: 0, Y: 2.3}, gamemath.Vec3{}, true},
		{"edge is outside", gamemath.Vec3{X: 3, Y: 2.3}, falling, false},
		{"near edge", gamemath.Vec3{X: -2.99, Y: 2.3}, falling, true},
		{"too deep", gamemath.Vec3{X: 0, Y: 2.3, Z: 0.5}, falling, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LandsOn(tt.pos, tt.vel, platform))
		})
	}
}

func TestLandsOnNarrowPlatformIsOutOfDepth(t *testing.T) {
	// Combatants move at z = 0; a platform of depth 2 centered at z = -1
	// reaches exactly to z = 0 and does not contain it.
	platform := leveldata.Platform{
		Position: gamemath.Vec3{X: 0, Y: 3, Z: -1},
		Size:     gamemath.Vec3{X: 3, Y: 0.5, Z: 2},
	}
	assert.False(t, LandsOn(gamemath.Vec3{Y: 3.3}, gamemath.Vec3{Y: -0.1}, platform))
}

func TestSelectSpecialVariant(t *testing.T) {
	tests := []struct {
		tokens []cfg.MoveToken
		want   cfg.SpecialVariant
	}{
		{[]cfg.MoveToken{cfg.MoveLeft, cfg.MoveRight, cfg.MoveLeft}, cfg.Tornado},
		{[]cfg.MoveToken{cfg.MoveRight, cfg.MoveLeft, cfg.MoveRight}, cfg.Firewave},
		{[]cfg.MoveToken{cfg.MoveLeft, cfg.MoveLeft, cfg.MoveRight}, cfg.Iceblast},
		{[]cfg.MoveToken{cfg.MoveLeft, cfg.MoveRight}, cfg.EnergyBlast},
		{[]cfg.MoveToken{cfg.MoveLeft, cfg.MoveLeft, cfg.MoveLeft}, cfg.EnergyBlast},
		{nil, cfg.EnergyBlast},
	}
	for _, tt := range tests {
		combo := &components.ComboData{Sequence: tt.tokens}
		assert.Equal(t, tt.want, SelectSpecialVariant(combo), "sequence %q", combo.Key())
	}
}

func TestRegenerate(t *testing.T) {
	r := &components.ResourcesData{Health: 100, Stamina: 50, Special: 10}

	Regenerate(r, false)
	Regenerate(r, false)
	assert.InDelta(t, 51, r.Stamina, 1e-12)
	assert.InDelta(t, 10.4, r.Special, 1e-12)

	Regenerate(r, true)
	assert.InDelta(t, 51, r.Stamina, 1e-12, "no stamina while busy")
	assert.InDelta(t, 10.6, r.Special, 1e-12)

	r.Stamina = 99.9
	r.Special = 99.9
	Regenerate(r, false)
	assert.Equal(t, 100.0, r.Stamina)
	assert.Equal(t, 100.0, r.Special)
}

func TestClampResources(t *testing.T) {
	r := &components.ResourcesData{Health: -3, Stamina: 140, Special: -0.1}
	ClampResources(r)
	assert.Equal(t, components.ResourcesData{Health: 0, Stamina: 100, Special: 0}, *r)
}

func newEffectsWorld() donburi.World {
	w := donburi.NewWorld()
	factory.CreateEffectBus(w)
	factory.CreateCamera(w)
	return w
}

func TestScreenShakeKeepsStrongerShake(t *testing.T) {
	w := newEffectsWorld()

	TriggerScreenShake(w, cfg.ShakeRequest{Intensity: 0.1, Duration: 15})
	TriggerScreenShake(w, cfg.ShakeRequest{Intensity: 0.03, Duration: 5})
	assert.InDelta(t, 0.1, CurrentShake(w), 1e-9)

	effects := DrainEffects(w)
	require.Len(t, effects, 2, "every request is still emitted")
	assert.Equal(t, messages.CameraShakeEvent{Intensity: 0.03, Duration: 5}, effects[1])

	TriggerScreenShake(w, cfg.ShakeRequest{Intensity: 0.2, Duration: 4})
	assert.InDelta(t, 0.2, CurrentShake(w), 1e-9)
}

func TestScreenShakeDecays(t *testing.T) {
	w := newEffectsWorld()
	TriggerScreenShake(w, cfg.ShakeRequest{Intensity: 0.1, Duration: 10})

	last := CurrentShake(w)
	for i := 0; i < 9; i++ {
		UpdateScreenShake(w)
		current := CurrentShake(w)
		assert.Less(t, current, last, "tick %d", i)
		assert.Greater(t, current, 0.0, "tick %d", i)
		last = current
	}
	UpdateScreenShake(w)
	assert.Zero(t, CurrentShake(w))

	// A weak shake can start once the strong one has ended.
	TriggerScreenShake(w, cfg.ShakeRequest{Intensity: 0.01, Duration: 3})
	assert.InDelta(t, 0.01, CurrentShake(w), 1e-9)
}

func TestDrainEffectsEmptiesBus(t *testing.T) {
	w := newEffectsWorld()
	EmitEffect(w, messages.HitEvent{AttackerSide: cfg.Side1, ComboCount: 1})
	EmitEffect(w, messages.BlockEvent{DefenderSide: cfg.Side2})

	effects := DrainEffects(w)
	require.Len(t, effects, 2)
	assert.Equal(t, messages.KindHit, effects[0].Kind())
	assert.Equal(t, messages.KindBlock, effects[1].Kind())
	assert.Empty(t, DrainEffects(w))
}

func newMatchWorld() donburi.World {
	w := donburi.NewWorld()
	factory.CreateArena(w, leveldata.FlatArena())
	factory.CreateCombatant(w, cfg.Side1)
	factory.CreateCombatant(w, cfg.Side2)
	factory.CreateMatch(w)
	return w
}

func matchOf(w donburi.World) *components.MatchData {
	e, _ := components.Match.First(w)
	return components.Match.Get(e)
}

func TestMatchCountdown(t *testing.T) {
	w := newMatchWorld()
	assert.False(t, IsMatchPlaying(w))

	StartMatch(w)
	match := matchOf(w)
	require.Equal(t, cfg.MatchStateCountdown, match.State)
	assert.Equal(t, 3, match.CountdownValue)

	seen := map[int]bool{}
	for i := 0; i < cfg.Match.CountdownTicks-1; i++ {
		UpdateMatch(w)
		seen[match.CountdownValue] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, seen)
	assert.Equal(t, cfg.MatchStateCountdown, match.State)

	UpdateMatch(w)
	assert.True(t, IsMatchPlaying(w))
	assert.Equal(t, -1, match.CountdownValue)

	UpdateMatch(w)
	assert.Equal(t, 1, match.Ticks)
}

func TestCheckKnockout(t *testing.T) {
	tests := []struct {
		name   string
		health [2]float64
		ko     bool
		winner cfg.Side
	}{
		{"both standing", [2]float64{10, 10}, false, cfg.SideNone},
		{"side 2 down", [2]float64{10, 0}, true, cfg.Side1},
		{"side 1 down", [2]float64{0, 5}, true, cfg.Side2},
		{"double knockout", [2]float64{0, 0}, true, cfg.SideNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newMatchWorld()
			matchOf(w).State = cfg.MatchStatePlaying
			for i, e := range Combatants(w) {
				components.Resources.Get(e).Health = tt.health[i]
			}

			assert.Equal(t, tt.ko, CheckKnockout(w))
			assert.Equal(t, tt.winner, matchOf(w).Winner)
			assert.Equal(t, tt.ko, IsMatchFinished(w))
		})
	}
}

func TestRecordDamageCreditsOpponent(t *testing.T) {
	w := newMatchWorld()

	RecordDamage(w, cfg.Side2, 8, false)
	RecordDamage(w, cfg.Side2, 25, true)
	RecordDamage(w, cfg.Side1, 5.6, false)

	match := matchOf(w)
	assert.Equal(t, components.SideScore{Hits: 2, SpecialHits: 1, DamageDealt: 33}, *match.Score(cfg.Side1))
	assert.Equal(t, 1, match.Score(cfg.Side2).Hits)
	assert.Equal(t, cfg.Side1, match.GetLeader())

	ResetMatch(w)
	assert.Equal(t, cfg.SideNone, matchOf(w).GetLeader())
	assert.Equal(t, cfg.MatchStateWaiting, matchOf(w).State)
}
