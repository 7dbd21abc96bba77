package components

import "github.com/yohamta/donburi"

// PendingKind is the kind of a deferred combatant event.
type PendingKind int

const (
	PendingBasicHit PendingKind = iota
	PendingSpecialHit
	PendingAttackEnd
	PendingSpecialEnd
	PendingDashEnd
)

var pendingKindNames = map[PendingKind]string{
	PendingBasicHit:   "basicHit",
	PendingSpecialHit: "specialHit",
	PendingAttackEnd:  "attackEnd",
	PendingSpecialEnd: "specialEnd",
	PendingDashEnd:    "dashEnd",
}

func (k PendingKind) String() string {
	if name, ok := pendingKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// PendingEvent fires once the simulation clock reaches FireAt.
type PendingEvent struct {
	FireAt uint64
	Kind   PendingKind
}

// PendingData is the per-combatant queue of deferred events, kept in
// scheduling order.
type PendingData struct {
	Events []PendingEvent
}

var Pending = donburi.NewComponentType[PendingData]()

// Schedule queues an event to fire delay ticks after now.
func (p *PendingData) Schedule(now uint64, delay int, kind PendingKind) {
	p.Events = append(p.Events, PendingEvent{FireAt: now + uint64(delay), Kind: kind})
}

// Due removes and returns the events with FireAt <= now, in scheduling order.
func (p *PendingData) Due(now uint64) []PendingEvent {
	var due []PendingEvent
	kept := p.Events[:0]
	for _, ev := range p.Events {
		if ev.FireAt <= now {
			due = append(due, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	p.Events = kept
	return due
}

// Clear drops every queued event.
func (p *PendingData) Clear() {
	p.Events = p.Events[:0]
}
