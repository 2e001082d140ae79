package engine

import "fmt"

// InsufficientFundsError is returned when a purchase costs more than the
// freshly recomputed balance. The declined purchase mutates nothing.
type InsufficientFundsError struct {
	Item    string
	Price   int
	Balance int
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("'%s' costs %d RC but balance is %d RC", e.Item, e.Price, e.Balance)
}

// NotSatisfiedError is returned when claiming a quest or achievement whose
// progress has not reached its target yet.
type NotSatisfiedError struct {
	Kind string // "quest" or "achievement"
	ID   string
}

func (e NotSatisfiedError) Error() string {
	return fmt.Sprintf("%s '%s' is not satisfied yet", e.Kind, e.ID)
}

// LockedCosmeticError is returned when activating a theme or gear toggle
// whose item has not been purchased.
type LockedCosmeticError struct {
	Item string
}

func (e LockedCosmeticError) Error() string {
	return fmt.Sprintf("'%s' is not owned yet; buy it in the shop first", e.Item)
}
