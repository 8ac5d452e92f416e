package turtget

import (
	"errors"
	"fmt"
)

// Errors.
var (
	// ErrInvalidSize is returned by New when a canvas dimension is zero or
	// negative. Such a canvas cannot support wrap-around arithmetic.
	ErrInvalidSize = errors.New("turtget: canvas size must be positive")

	// ErrNilSink is returned when a sink factory yields no sink.
	ErrNilSink = errors.New("turtget: sink factory returned nil sink")
)

// UnknownCommandError indicates a command name that is not a redrawing
// operation of Widget.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "turtget: unknown command: " + e.Name
}

// ArgumentError indicates a command argument that is not a finite number,
// or a stride too large to be a pixel count.
type ArgumentError struct {
	Name  string
	Value float64
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("turtget: %s: invalid argument %v", e.Name, e.Value)
}

// ArityError indicates a command called with the wrong number of arguments.
type ArityError struct {
	Name      string
	Want, Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("turtget: %s takes %d argument(s), got %d", e.Name, e.Want, e.Got)
}
