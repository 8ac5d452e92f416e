package turtget

import (
	"errors"
	"math"
	"slices"
)

// Widget is the caller-facing handle of a World. Every operation except
// Output mutates the world and then redraws, so the sink always shows the
// current state when the call returns.
type Widget struct {
	world *World
}

// NewWidget wraps w.
func NewWidget(w *World) *Widget {
	return &Widget{world: w}
}

// Start creates a World configured by opts, wraps it in a Widget and
// displays the initial frame.
func Start(opts ...WorldOption) (*Widget, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	tw := NewWidget(w)
	if err := w.Redraw(); err != nil {
		return nil, err
	}
	return tw, nil
}

// World returns the wrapped World.
func (tw *Widget) World() *World {
	return tw.world
}

// Output redraws and returns the output sink.
func (tw *Widget) Output() (Sink, error) {
	if err := tw.world.Redraw(); err != nil {
		return nil, err
	}
	return tw.world.Output()
}

// redrawing runs action and then redraws, even if action panics.
func (tw *Widget) redrawing(action func()) (err error) {
	defer func() {
		err = errors.Join(err, tw.world.Redraw())
	}()
	action()
	return nil
}

// Show makes the turtle icon visible.
func (tw *Widget) Show() error {
	return tw.redrawing(func() { tw.world.Turtle().SetVisible(true) })
}

// Hide hides the turtle icon.
func (tw *Widget) Hide() error {
	return tw.redrawing(func() { tw.world.Turtle().SetVisible(false) })
}

// Down lowers the pen: subsequent moves leave a trace.
func (tw *Widget) Down() error {
	return tw.redrawing(func() { tw.world.Turtle().SetDrawing(true) })
}

// Up raises the pen: subsequent moves leave no trace.
func (tw *Widget) Up() error {
	return tw.redrawing(func() { tw.world.Turtle().SetDrawing(false) })
}

// Turn changes the heading by angle degrees. An infinite or NaN angle is
// rejected with an *ArgumentError and nothing is redrawn.
func (tw *Widget) Turn(angle float64) error {
	if !finite(angle) {
		return &ArgumentError{Name: "turn", Value: angle}
	}
	return tw.redrawing(func() { tw.world.Turtle().Turn(angle) })
}

// Forward moves the turtle stride pixels along its heading.
func (tw *Widget) Forward(stride int) error {
	return tw.redrawing(func() { tw.world.Move(stride) })
}

// Backward moves the turtle stride pixels against its heading.
func (tw *Widget) Backward(stride int) error {
	return tw.Forward(-stride)
}

// Reset clears the drawing and restores the default pose.
func (tw *Widget) Reset() error {
	return tw.redrawing(tw.world.Reset)
}

// command is a redrawing operation addressable by name.
type command struct {
	arity  int
	run    func(tw *Widget, args []float64) error
	stride bool
}

// maxStride bounds strides passed by name so that the conversion to int is
// exact on every platform.
const maxStride = math.MaxInt32

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

var commands = map[string]command{
	"forward":  {1, func(tw *Widget, a []float64) error { return tw.Forward(int(a[0])) }, true},
	"backward": {1, func(tw *Widget, a []float64) error { return tw.Backward(int(a[0])) }, true},
	"turn":     {1, func(tw *Widget, a []float64) error { return tw.Turn(a[0]) }, false},
	"show":     {0, func(tw *Widget, _ []float64) error { return tw.Show() }, false},
	"hide":     {0, func(tw *Widget, _ []float64) error { return tw.Hide() }, false},
	"down":     {0, func(tw *Widget, _ []float64) error { return tw.Down() }, false},
	"up":       {0, func(tw *Widget, _ []float64) error { return tw.Up() }, false},
	"reset":    {0, func(tw *Widget, _ []float64) error { return tw.Reset() }, false},
}

// Commands returns the names of the redrawing operations, sorted.
// A binding layer can expose exactly these names to scripts.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Call invokes the redrawing operation called name. Strides are truncated
// toward zero. Arguments must be finite, and strides at most maxStride in
// magnitude; otherwise Call returns an *ArgumentError without redrawing.
func (tw *Widget) Call(name string, args ...float64) error {
	c, ok := commands[name]
	if !ok {
		return &UnknownCommandError{Name: name}
	}
	if len(args) != c.arity {
		return &ArityError{Name: name, Want: c.arity, Got: len(args)}
	}
	for _, a := range args {
		if !finite(a) || (c.stride && math.Abs(a) > maxStride) {
			return &ArgumentError{Name: name, Value: a}
		}
	}
	return c.run(tw, args)
}
