package component

// Action is a discrete, edge-triggered input. Actions travel on the world
// event queue rather than in the Input component.
type Action string

const (
	ActionJump   Action = "jump"
	ActionGather Action = "gather"
)

// ActionEventType is the EventQueue type for Action payloads.
const ActionEventType = "action"
