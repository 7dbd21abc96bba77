// Package loop drives a match at a fixed tick rate, pulling intents from a
// source and handing every stepped tick to a sink.
package loop

import (
	"log"
	"sync"
	"time"

	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/match"
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/sjmiguel8/box-brawl/sim"
)

// IntentSource supplies both sides' intents for a loop iteration. ok is
// false once the source is exhausted.
type IntentSource interface {
	Intents(iteration uint64) (p1, p2 messages.PlayerIntent, ok bool)
}

// IntentSourceFunc adapts a function to an IntentSource.
type IntentSourceFunc func(iteration uint64) (p1, p2 messages.PlayerIntent, ok bool)

func (f IntentSourceFunc) Intents(iteration uint64) (messages.PlayerIntent, messages.PlayerIntent, bool) {
	return f(iteration)
}

// Sink receives the result of every simulated tick.
type Sink interface {
	Consume(res sim.StepResult)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(res sim.StepResult)

func (f SinkFunc) Consume(res sim.StepResult) {
	f(res)
}

type GameLoop struct {
	match     *match.Match
	source    IntentSource
	sink      Sink
	tickRate  int
	iteration uint64
	running   bool
	stopChan  chan struct{}
	stopOnce  sync.Once
}

// NewGameLoop creates a loop. A nil sink discards results and a tick rate
// below 1 uses the configured rate.
func NewGameLoop(m *match.Match, source IntentSource, sink Sink, tickRate int) *GameLoop {
	if tickRate < 1 {
		tickRate = cfg.Timing.TickRate
	}
	if sink == nil {
		sink = SinkFunc(func(sim.StepResult) {})
	}
	return &GameLoop{
		match:    m,
		source:   source,
		sink:     sink,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run advances the match once per tick interval until Stop is called, the
// source runs out or the match finishes.
func (g *GameLoop) Run() {
	g.running = true
	defer func() { g.running = false }()

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] Started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("[loop] Stopped")
			return
		case <-ticker.C:
			if _, more := g.tick(); !more {
				return
			}
		}
	}
}

// RunTicks advances up to n iterations without waiting between them and
// returns how many ran.
func (g *GameLoop) RunTicks(n int) int {
	g.running = true
	defer func() { g.running = false }()

	for i := 0; i < n; i++ {
		select {
		case <-g.stopChan:
			return i
		default:
		}
		ran, more := g.tick()
		if !more {
			if ran {
				return i + 1
			}
			return i
		}
	}
	return n
}

// Stop ends Run or RunTicks. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

// Running reports whether the loop is currently iterating.
func (g *GameLoop) Running() bool {
	return g.running
}

// tick runs one iteration. ran is false when the source had no intents.
func (g *GameLoop) tick() (ran, more bool) {
	p1, p2, ok := g.source.Intents(g.iteration + 1)
	if !ok {
		log.Printf("[loop] Intent source exhausted after %d iterations", g.iteration)
		return false, false
	}
	g.iteration++

	res, stepped := g.match.Update(p1, p2, 1/float64(g.tickRate))
	if stepped {
		g.sink.Consume(res)
	}

	if g.match.State() == cfg.MatchStateFinished {
		log.Printf("[loop] Match finished, winner: %s", g.match.Winner())
		return true, false
	}
	return true, true
}
