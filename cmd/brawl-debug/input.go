package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sjmiguel8/box-brawl/shared/messages"
)

// ActionID is a combat action a key or button can trigger.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionBlock
	ActionSpecial
	ActionDash
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its inputs for one side.
type Bindings [ActionCount]InputBinding

// Gamepad buttons are shared; each side reads its own pad.
var gamepadButtons = [ActionCount][]ebiten.StandardGamepadButton{
	ActionMoveLeft:  {ebiten.StandardGamepadButtonLeftLeft},
	ActionMoveRight: {ebiten.StandardGamepadButtonLeftRight},
	ActionJump:      {ebiten.StandardGamepadButtonRightBottom},
	ActionAttack:    {ebiten.StandardGamepadButtonRightLeft},
	ActionBlock:     {ebiten.StandardGamepadButtonFrontBottomLeft, ebiten.StandardGamepadButtonFrontTopLeft},
	ActionSpecial:   {ebiten.StandardGamepadButtonRightTop},
	ActionDash:      {ebiten.StandardGamepadButtonRightRight, ebiten.StandardGamepadButtonFrontBottomRight},
}

func withGamepad(keys [ActionCount][]ebiten.Key) Bindings {
	var b Bindings
	for i := range b {
		b[i] = InputBinding{Keys: keys[i], StandardGamepadButtons: gamepadButtons[i]}
	}
	return b
}

// Player1Bindings and Player2Bindings share one keyboard.
var (
	Player1Bindings = withGamepad([ActionCount][]ebiten.Key{
		ActionMoveLeft:  {ebiten.KeyA},
		ActionMoveRight: {ebiten.KeyD},
		ActionJump:      {ebiten.KeyW, ebiten.KeySpace},
		ActionAttack:    {ebiten.KeyG, ebiten.KeyZ},
		ActionBlock:     {ebiten.KeyH, ebiten.KeyQ},
		ActionSpecial:   {ebiten.KeyT, ebiten.KeyE},
		ActionDash:      {ebiten.KeyF},
	})
	Player2Bindings = withGamepad([ActionCount][]ebiten.Key{
		ActionMoveLeft:  {ebiten.KeyArrowLeft},
		ActionMoveRight: {ebiten.KeyArrowRight},
		ActionJump:      {ebiten.KeyArrowUp},
		ActionAttack:    {ebiten.KeySlash},
		ActionBlock:     {ebiten.KeyPeriod},
		ActionSpecial:   {ebiten.KeyP},
		ActionDash:      {ebiten.KeyL},
	})
)

// Analog stick deadzone (0.0 to 1.0)
const analogDeadzone = 0.25

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollIntents reads both sides' intents. Side 1 uses the first connected
// gamepad and side 2 the second. Nothing is held while the window is
// unfocused.
func pollIntents() (p1, p2 messages.PlayerIntent) {
	if !ebiten.IsFocused() {
		return messages.PlayerIntent{}, messages.PlayerIntent{}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	pad := func(i int) (ebiten.GamepadID, bool) {
		if i >= len(gamepadIDs) || !ebiten.IsStandardGamepadLayoutAvailable(gamepadIDs[i]) {
			return 0, false
		}
		return gamepadIDs[i], true
	}

	id1, ok1 := pad(0)
	id2, ok2 := pad(1)
	return readIntent(&Player1Bindings, id1, ok1), readIntent(&Player2Bindings, id2, ok2)
}

func readIntent(b *Bindings, gpID ebiten.GamepadID, hasPad bool) messages.PlayerIntent {
	var held [ActionCount]bool
	for action, binding := range b {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[action] = true
			}
		}
		if !hasPad {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				held[action] = true
			}
		}
	}

	// Merge analog stick into directional actions
	if hasPad {
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -analogDeadzone {
			held[ActionMoveLeft] = true
		}
		if x > analogDeadzone {
			held[ActionMoveRight] = true
		}
	}

	return intentFromActions(held)
}

func intentFromActions(held [ActionCount]bool) messages.PlayerIntent {
	return messages.PlayerIntent{
		Left:    held[ActionMoveLeft],
		Right:   held[ActionMoveRight],
		Jump:    held[ActionJump],
		Attack:  held[ActionAttack],
		Block:   held[ActionBlock],
		Special: held[ActionSpecial],
		Dash:    held[ActionDash],
	}
}
