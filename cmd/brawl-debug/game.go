package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sjmiguel8/box-brawl/assets"
	cfg "github.com/sjmiguel8/box-brawl/config"
	"github.com/sjmiguel8/box-brawl/fonts"
	"github.com/sjmiguel8/box-brawl/match"
	"github.com/sjmiguel8/box-brawl/shared/gamemath"
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/sjmiguel8/box-brawl/sim"
)

const (
	screenWidth  = 960
	screenHeight = 540
	unit         = 48.0 // pixels per arena unit
	floorY       = 480.0
	boxWidth     = 1.0
	boxHeight    = 2.0
)

var (
	background  = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	floorColor  = color.RGBA{R: 70, G: 60, B: 50, A: 255}
	platColor   = color.RGBA{R: 110, G: 95, B: 80, A: 255}
	sideColors  = [2]color.RGBA{{R: 70, G: 130, B: 255, A: 255}, {R: 255, G: 80, B: 80, A: 255}}
	stateTint   = map[cfg.StateID]color.RGBA{cfg.Attacking: cfg.Yellow, cfg.SpecialAttacking: cfg.Orange, cfg.Hitstun: cfg.White, cfg.Blocking: cfg.LightGrey}
	barBack     = color.RGBA{R: 40, G: 40, B: 40, A: 220}
	healthColor = color.RGBA{R: 80, G: 200, B: 90, A: 255}
	staminaCol  = color.RGBA{R: 230, G: 200, B: 60, A: 255}
	meterColor  = color.RGBA{R: 150, G: 90, B: 255, A: 255}
)

// Game is the debug viewer: two local players on one keyboard.
type Game struct {
	settings  *SavedSettings
	arenas    []string
	match     *match.Match
	last      sim.StepResult
	particles *particleSystem
	shakeRng  *rand.Rand
	paused    bool
}

func NewGame(settings *SavedSettings) (*Game, error) {
	if settings == nil {
		settings = &SavedSettings{Arena: assets.DefaultArena}
	}
	g := &Game{
		settings:  settings,
		arenas:    assets.ArenaNames(),
		particles: newParticleSystem(1),
		shakeRng:  rand.New(rand.NewSource(2)),
	}
	if err := g.loadArena(settings.Arena); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) loadArena(name string) error {
	arena, err := assets.LoadArena(name)
	if err != nil {
		return err
	}
	g.settings.Arena = arena.Name
	g.match = match.New(sim.New(arena))
	g.match.Start()
	g.last = sim.StepResult{State: g.match.Sim().Snapshot()}
	g.particles.Clear()
	return nil
}

func (g *Game) nextArena() {
	if len(g.arenas) == 0 {
		return
	}
	next := g.arenas[0]
	for i, name := range g.arenas {
		if name == g.settings.Arena {
			next = g.arenas[(i+1)%len(g.arenas)]
		}
	}
	if err := g.loadArena(next); err != nil {
		log.Printf("Warning: Could not load arena %q: %v", next, err)
		return
	}
	SaveSettings(g.settings)
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.settings.Overlay = !g.settings.Overlay
		SaveSettings(g.settings)
	case inpututil.IsKeyJustPressed(ebiten.KeyF11):
		g.settings.Fullscreen = !g.settings.Fullscreen
		ebiten.SetFullscreen(g.settings.Fullscreen)
		SaveSettings(g.settings)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.nextArena()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.match.Restart()
		g.particles.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.paused = !g.paused
	}

	if g.paused {
		return nil
	}

	p1, p2 := pollIntents()
	if res, stepped := g.match.Update(p1, p2, 1.0/float64(ebiten.TPS())); stepped {
		g.last = res
		for _, e := range res.Effects {
			if burst, ok := e.(messages.ParticleBurstEvent); ok {
				g.particles.Spawn(burst)
			}
		}
	}
	g.particles.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	shake := g.last.State.Shake * unit
	ox := float32((g.shakeRng.Float64()*2 - 1) * shake)
	oy := float32((g.shakeRng.Float64()*2 - 1) * shake)

	g.drawArena(screen, ox, oy)
	for _, c := range g.last.State.Combatants {
		drawCombatant(screen, c, ox, oy)
	}
	g.drawParticles(screen, ox, oy)
	g.drawHUD(screen)
	if g.settings.Overlay {
		g.drawOverlay(screen)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

// toScreen maps an arena point to screen pixels. Arena y = 0 is the floor.
func toScreen(x, y float64) (float32, float32) {
	return float32(screenWidth/2 + x*unit), float32(floorY - y*unit)
}

func (g *Game) drawArena(screen *ebiten.Image, ox, oy float32) {
	arena := g.match.Sim().Arena()

	left, _ := toScreen(-arena.WallExtent-boxWidth/2, 0)
	right, _ := toScreen(arena.WallExtent+boxWidth/2, 0)
	vector.FillRect(screen, left+ox, floorY+oy, right-left, screenHeight-floorY, floorColor, false)

	for _, p := range arena.Platforms {
		x, y := toScreen(p.Position.X-p.Size.X/2, p.Top())
		vector.FillRect(screen, x+ox, y+oy, float32(p.Size.X*unit), float32(p.Size.Y*unit), platColor, false)
	}
}

func drawCombatant(screen *ebiten.Image, c sim.CombatantState, ox, oy float32) {
	x, y := toScreen(c.Position.X-boxWidth/2, c.Position.Y+boxHeight/2)
	w, h := float32(boxWidth*unit), float32(boxHeight*unit)
	vector.FillRect(screen, x+ox, y+oy, w, h, sideColors[c.Side.Index()], false)

	if tint, ok := stateTint[c.State]; ok {
		vector.StrokeRect(screen, x+ox, y+oy, w, h, 3, tint, false)
	}

	// Facing marker
	dir := float32(gamemath.FacingSign(c.FacingRight))
	cx, cy := x+w/2+ox, y+h/3+oy
	vector.FillRect(screen, cx+dir*w/4-3, cy-3, 6, 6, cfg.White, false)
}

func (g *Game) drawParticles(screen *ebiten.Image, ox, oy float32) {
	for _, p := range g.particles.particles {
		x, y := toScreen(p.pos.X, p.pos.Y)
		size := float32(p.size * unit)
		c := p.color
		c.A = uint8(float64(c.A) * p.alpha)
		vector.FillRect(screen, x+ox-size/2, y+oy-size/2, size, size, c, false)
	}
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, fraction float64, fill color.RGBA, rightToLeft bool) {
	vector.FillRect(screen, x, y, w, h, barBack, false)
	fw := w * float32(gamemath.ClampFloat(fraction, 0, 1))
	if rightToLeft {
		x += w - fw
	}
	vector.FillRect(screen, x, y, fw, h, fill, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	const barW, margin = 360, 20
	for i, c := range g.last.State.Combatants {
		x := float32(margin)
		if i == 1 {
			x = screenWidth - margin - barW
		}
		rtl := i == 1
		drawBar(screen, x, 16, barW, 14, c.Health/cfg.Resources.MaxHealth, healthColor, rtl)
		drawBar(screen, x, 34, barW, 6, c.Stamina/cfg.Resources.MaxStamina, staminaCol, rtl)
		drawBar(screen, x, 44, barW, 6, c.SpecialMeter/cfg.Resources.MaxSpecial, meterColor, rtl)
		if c.ComboCounter > 1 && c.ComboTimer > 0 {
			text.Draw(screen, fmt.Sprintf("%d HITS", c.ComboCounter), fonts.Mono.Get(), int(x), 72, cfg.Yellow)
		}
	}

	title := fonts.MonoTitle.Get()
	switch g.match.State() {
	case cfg.MatchStateCountdown:
		text.Draw(screen, fmt.Sprintf("%d", g.match.CountdownValue()), title, screenWidth/2-12, screenHeight/2, cfg.Orange)
	case cfg.MatchStateFinished:
		msg := "DOUBLE KO"
		if w := g.match.Winner(); w != cfg.SideNone {
			msg = fmt.Sprintf("%s WINS", w)
		}
		text.Draw(screen, msg, title, screenWidth/2-len(msg)*12, screenHeight/2, cfg.White)
		text.Draw(screen, "R to restart", fonts.Mono.Get(), screenWidth/2-48, screenHeight/2+30, cfg.LightGrey)
	}
	if g.paused {
		text.Draw(screen, "PAUSED", title, screenWidth/2-72, screenHeight/2-60, cfg.White)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	snap := g.last.State
	msg := fmt.Sprintf("TPS %.0f  arena %s  tick %d  shake %.3f  particles %d\n",
		ebiten.ActualTPS(), g.settings.Arena, snap.Tick, snap.Shake, g.particles.Len())
	for _, c := range snap.Combatants {
		msg += fmt.Sprintf("%s %-16s pos (%.2f, %.2f) vel (%.2f, %.2f) grounded %v plat %d\n",
			c.Side, c.State, c.Position.X, c.Position.Y, c.Velocity.X, c.Velocity.Y, c.Grounded, c.Platform)
		msg += fmt.Sprintf("   cd %d/%d combo %d (%d) hitstun %d seq %v special %s\n",
			c.AttackCooldown, c.DashCooldown, c.ComboCounter, c.ComboTimer, c.Hitstun, c.AttackSequence, c.Special)
	}
	scores := g.match.Scores()
	msg += fmt.Sprintf("score p1 %d hits %.1f dmg | p2 %d hits %.1f dmg\n",
		scores[0].Hits, scores[0].DamageDealt, scores[1].Hits, scores[1].DamageDealt)
	msg += "F1 overlay  F11 fullscreen  Tab arena  R restart  Esc pause"
	ebitenutil.DebugPrintAt(screen, msg, 8, 90)
}
