package components

import "github.com/yohamta/donburi"

// ClockData is the simulation tick counter. Tick is the number of the tick
// currently being processed.
type ClockData struct {
	Tick  uint64
	Delta float64 // last sanitized frame delta in seconds, informational only
}

var Clock = donburi.NewComponentType[ClockData]()
