package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrEmptyText         = errors.New("task text is empty")
	ErrInvalidDateScope  = errors.New("unknown date scope")
	ErrMissingCustomDate = errors.New("custom scope requires a date")
)
