// Command brawl-sim runs a scripted fight headless and prints the outcome.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sjmiguel8/box-brawl/assets"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/loop"
	"github.com/sjmiguel8/box-brawl/match"
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/sjmiguel8/box-brawl/sim"
)

func main() {
	arenaName := flag.String("arena", "", "Arena name (default from script, then "+assets.DefaultArena+")")
	scriptPath := flag.String("script", "", "JSON intent script (empty = built-in demo)")
	tickRate := flag.Int("tickrate", cfg.Timing.TickRate, "Ticks per second")
	realtime := flag.Bool("realtime", false, "Run at the tick rate instead of as fast as possible")
	trace := flag.Bool("trace", false, "Log every effect")
	list := flag.Bool("list", false, "List arenas and exit")
	flag.Parse()

	if *list {
		for _, name := range assets.ArenaNames() {
			fmt.Println(name)
		}
		return
	}

	script := DemoScript(cfg.Match.CountdownTicks)
	if *scriptPath != "" {
		var err error
		if script, err = LoadScript(*scriptPath); err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
	}

	name := *arenaName
	if name == "" {
		name = script.Arena
	}
	arena, err := assets.LoadArena(name)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	m := match.New(sim.New(arena))
	m.Start()

	stats := &runStats{trace: *trace}
	gameLoop := loop.NewGameLoop(m, script, stats, *tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		gameLoop.Stop()
	}()

	log.Printf("Running %d scripted ticks on %q (tick rate: %d/s, realtime: %v)",
		script.Len(), arena.Name, *tickRate, *realtime)
	if *realtime {
		gameLoop.Run()
	} else {
		gameLoop.RunTicks(int(script.Len()))
	}

	stats.report(m)
}

// runStats is the loop sink: it tallies effects and logs damage.
type runStats struct {
	trace   bool
	ticks   uint64
	effects map[messages.EffectKind]int
	last    sim.Snapshot
}

func (r *runStats) Consume(res sim.StepResult) {
	if r.effects == nil {
		r.effects = make(map[messages.EffectKind]int)
	}
	r.ticks = res.Tick
	r.last = res.State

	for _, e := range res.Effects {
		r.effects[e.Kind()]++
		if r.trace {
			log.Printf("[%05d] %s %+v", res.Tick, e.Kind(), e)
		}
	}
	for _, d := range res.Damage {
		log.Printf("[%05d] %s took %.1f damage (special: %v), health %.1f",
			res.Tick, d.Side, d.Damage, d.Special, res.State.Side(d.Side).Health)
	}
}

func (r *runStats) report(m *match.Match) {
	fmt.Printf("ticks fought: %d\n", r.ticks)
	fmt.Printf("state: %s, winner: %s\n", m.State(), m.Winner())
	for i, score := range m.Scores() {
		side := cfg.Side1
		if i == 1 {
			side = cfg.Side2
		}
		c := r.last.Side(side)
		fmt.Printf("%s: health %.1f stamina %.1f meter %.1f | hits %d (special %d) dealt %.1f\n",
			side, c.Health, c.Stamina, c.SpecialMeter, score.Hits, score.SpecialHits, score.DamageDealt)
	}
	for kind := messages.KindHit; kind <= messages.KindParticleBurst; kind++ {
		if n := r.effects[kind]; n > 0 {
			fmt.Printf("  %s: %d\n", kind, n)
		}
	}
}
