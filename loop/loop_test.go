package loop

import (
	"testing"
	"time"

	"github.com/sjmiguel8/box-brawl/components"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/match"
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/sjmiguel8/box-brawl/sim"
	"github.com/sjmiguel8/box-brawl/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedSource(n uint64, p1 messages.PlayerIntent) IntentSource {
	return IntentSourceFunc(func(iteration uint64) (messages.PlayerIntent, messages.PlayerIntent, bool) {
		if iteration > n {
			return messages.PlayerIntent{}, messages.PlayerIntent{}, false
		}
		return p1, messages.PlayerIntent{}, true
	})
}

func TestRunTicksStopsWhenSourceIsExhausted(t *testing.T) {
	m := match.New(sim.New(nil))
	m.Start()

	var results []sim.StepResult
	loop := NewGameLoop(m, limitedSource(200, messages.PlayerIntent{Right: true}), SinkFunc(func(res sim.StepResult) {
		results = append(results, res)
	}), 0)

	ran := loop.RunTicks(1000)
	assert.Equal(t, 200, ran)
	require.Len(t, results, 200-cfg.Match.CountdownTicks)
	assert.Equal(t, uint64(1), results[0].Tick)
	assert.Greater(t, results[len(results)-1].State.Side(cfg.Side1).Position.X, -5.0)
	assert.False(t, loop.Running())
}

func TestRunTicksStopsOnKnockout(t *testing.T) {
	m := match.New(sim.New(nil))
	m.Start()
	loop := NewGameLoop(m, limitedSource(1000, messages.PlayerIntent{}), nil, 0)
	loop.RunTicks(cfg.Match.CountdownTicks)
	require.Equal(t, cfg.MatchStatePlaying, m.State())

	w := m.Sim().World()
	components.Resources.Get(systems.CombatantBySide(w, cfg.Side1)).Health = 0

	assert.Equal(t, 1, loop.RunTicks(10))
	assert.Equal(t, cfg.MatchStateFinished, m.State())
	assert.Equal(t, cfg.Side2, m.Winner())
}

func TestRunStopsOnStop(t *testing.T) {
	m := match.New(sim.New(nil))
	m.Start()
	loop := NewGameLoop(m, limitedSource(1<<40, messages.PlayerIntent{}), nil, 1000)

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	assert.Equal(t, 0, loop.RunTicks(5), "a stopped loop stays stopped")
}
