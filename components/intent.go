package components

import (
	"github.com/sjmiguel8/box-brawl/shared/messages"
	"github.com/yohamta/donburi"
)

// IntentData stores the intent for the current tick and the one before it.
type IntentData struct {
	Current  messages.PlayerIntent
	Previous messages.PlayerIntent
}

var Intent = donburi.NewComponentType[IntentData]()

// Set shifts Current into Previous and stores the new intent.
func (i *IntentData) Set(intent messages.PlayerIntent) {
	i.Previous = i.Current
	i.Current = intent
}
