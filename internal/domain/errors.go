package domain

import "errors"

// Cycle-fatal errors. Anything else surfacing from a decision cycle is
// either a per-order rejection (carried in ValidationOutcome) or a
// degradation the decision source already converted to a hold.
var (
	ErrAgentNotFound        = errors.New("agent not found")
	ErrAgentInactive        = errors.New("agent is not active")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientPosition = errors.New("insufficient position")
)
