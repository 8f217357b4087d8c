// Package workorder contains the pure validation logic for maintenance and
// repair orders on fleet assets.
package workorder

import "fmt"

// Work order types.
const (
	TypePreventive = "PM" // scheduled maintenance
	TypeCorrective = "CM" // repair
)

// Work order statuses.
const (
	StatusOpen = "open"
	StatusDone = "done"
)

// Priorities run 1 (highest) to 3 (lowest).
var validPriorities = map[string]bool{"1": true, "2": true, "3": true}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CreateContext provides context for work order creation guards. ETA must
// already be resolved (either given by the caller or defaulted from the
// working-day calendar).
type CreateContext struct {
	AssetCode string
	Type      string
	Priority  string
	ETA       string
}

// CanCreate evaluates whether a work order can be created.
// Rules:
// - Asset code is required
// - Type must be PM or CM
// - Priority must be 1, 2 or 3
// - ETA is required
func CanCreate(ctx CreateContext) GuardResult {
	if ctx.AssetCode == "" {
		return GuardResult{Reason: "asset code is required"}
	}
	if ctx.Type != TypePreventive && ctx.Type != TypeCorrective {
		return GuardResult{Reason: fmt.Sprintf("invalid work order type: %s (valid: PM, CM)", ctx.Type)}
	}
	if !validPriorities[ctx.Priority] {
		return GuardResult{Reason: fmt.Sprintf("invalid priority: %s (valid: 1, 2, 3)", ctx.Priority)}
	}
	if ctx.ETA == "" {
		return GuardResult{Reason: "eta is required"}
	}
	return GuardResult{Allowed: true}
}
