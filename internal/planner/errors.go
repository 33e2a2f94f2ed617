package planner

import "errors"

var (
	// ErrNotFound is returned when a command names an id the store does not hold.
	ErrNotFound = errors.New("not found")
	// ErrEmptyDay is returned when a template is captured from a day with no tasks.
	ErrEmptyDay = errors.New("day has no tasks")
	// ErrInvalidRange is returned by AddTask in strict mode when end is before start.
	ErrInvalidRange = errors.New("task ends before it starts")
)
