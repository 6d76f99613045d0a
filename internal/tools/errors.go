package tools

import "fmt"

// InvalidDataError reports an input whose shape or contents cannot be
// processed, such as an energy array that disagrees with its grid dimensions.
type InvalidDataError struct {
	Message string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid data: %s", e.Message)
}

func NewInvalidDataError(message string) *InvalidDataError {
	return &InvalidDataError{
		Message: message,
	}
}

// ConvergenceError reports an iterative solver that exhausted its iteration
// budget before reaching the requested tolerance.
type ConvergenceError struct {
	Message    string
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("failed to converge after %d iterations: %s", e.Iterations, e.Message)
}

func NewConvergenceError(message string, iterations int) *ConvergenceError {
	return &ConvergenceError{
		Message:    message,
		Iterations: iterations,
	}
}

// WatershedError reports an internal invariant violation during partitioning.
type WatershedError struct {
	Message string
}

func (e *WatershedError) Error() string {
	return fmt.Sprintf("watershed error: %s", e.Message)
}

func NewWatershedError(message string) *WatershedError {
	return &WatershedError{
		Message: message,
	}
}
