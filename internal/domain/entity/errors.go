package entity

import "errors"

var (
	// ErrInvalidLocation is returned when a tower cannot be built on a cell
	ErrInvalidLocation = errors.New("invalid tower location")
	// ErrInsufficientBudget is returned when a purchase exceeds the remaining budget
	ErrInsufficientBudget = errors.New("insufficient budget")
	// ErrNoTowerSelected is returned when upgrading without a selected tower
	ErrNoTowerSelected = errors.New("no tower selected")
	// ErrUnsupportedType is returned for tower, enemy or projectile kinds outside the catalog
	ErrUnsupportedType = errors.New("unsupported type")
)
