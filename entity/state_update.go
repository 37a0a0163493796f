package entity

// StateUpdate is pushed to a session's state-update sink whenever a
// <Kind>StateResponse frame is routed to an already-catalogued entity
// (spec.md §3, §4.5). State holds the decoded per-kind state record (e.g.
// *api.LightStateResponse) — callers type-switch on Kind to recover it.
type StateUpdate struct {
	Kind     Kind
	Key      uint32
	ObjectID string
	State    any
}
