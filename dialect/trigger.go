package dialect

// TriggerTiming is when a trigger fires relative to its event.
type TriggerTiming int

const (
	TriggerBefore TriggerTiming = iota
	TriggerAfter
	TriggerInsteadOf
)

// String returns the SQL keyword for this timing.
func (t TriggerTiming) String() string {
	switch t {
	case TriggerAfter:
		return "AFTER"
	case TriggerInsteadOf:
		return "INSTEAD OF"
	default:
		return "BEFORE"
	}
}

// TriggerEvent is the statement kind that fires a trigger.
type TriggerEvent int

const (
	TriggerInsert TriggerEvent = iota
	TriggerUpdate
	TriggerDelete
	TriggerTruncate
)

// String returns the SQL keyword for this event.
func (e TriggerEvent) String() string {
	switch e {
	case TriggerUpdate:
		return "UPDATE"
	case TriggerDelete:
		return "DELETE"
	case TriggerTruncate:
		return "TRUNCATE"
	default:
		return "INSERT"
	}
}

// TriggerScope is the FOR EACH granularity of a trigger.
type TriggerScope int

const (
	// ScopeDefault leaves the granularity to the database.
	ScopeDefault TriggerScope = iota
	ScopeRow
	ScopeStatement
)

// TriggerShape summarises a CREATE TRIGGER request for dialect-owned
// validation. It carries only the facts the rules need.
type TriggerShape struct {
	Name               string
	Timing             TriggerTiming
	Events             []TriggerEvent
	Scope              TriggerScope
	Constraint         bool
	HasReferencedTable bool
	HasColumnFilter    bool
	HasCondition       bool
}

// HasEvent reports whether e is among the shape's events.
func (s TriggerShape) HasEvent(e TriggerEvent) bool {
	for _, ev := range s.Events {
		if ev == e {
			return true
		}
	}
	return false
}
