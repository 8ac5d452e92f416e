package turtget

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func newTestWidget(t *testing.T, opts ...WorldOption) (*Widget, *MemorySink) {
	t.Helper()
	mem := NewMemorySink()
	tw, err := Start(append([]WorldOption{WithSink(mem)}, opts...)...)
	if err != nil {
		t.Fatalf("Start() = %v", err)
	}
	return tw, mem
}

func TestStartDisplaysInitialFrame(t *testing.T) {
	tw, mem := newTestWidget(t)

	if mem.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", mem.Frames())
	}
	if mem.Frame() == nil {
		t.Fatal("no frame displayed")
	}
	if tw.World().Size() != DefaultSize {
		t.Errorf("Size() = %v, want %v", tw.World().Size(), DefaultSize)
	}
}

func TestStartInvalidSize(t *testing.T) {
	if _, err := Start(WithSize(0, 0)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Start() = %v, want ErrInvalidSize", err)
	}
}

func TestWidgetOperationsRedrawOnce(t *testing.T) {
	tests := []struct {
		name string
		op   func(tw *Widget) error
	}{
		{"show", (*Widget).Show},
		{"hide", (*Widget).Hide},
		{"down", (*Widget).Down},
		{"up", (*Widget).Up},
		{"reset", (*Widget).Reset},
		{"turn", func(tw *Widget) error { return tw.Turn(45) }},
		{"forward", func(tw *Widget) error { return tw.Forward(10) }},
		{"backward", func(tw *Widget) error { return tw.Backward(10) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw, mem := newTestWidget(t, WithSize(100, 100))
			before := mem.Frames()

			if err := tc.op(tw); err != nil {
				t.Fatalf("%s() = %v", tc.name, err)
			}
			if got := mem.Frames() - before; got != 1 {
				t.Errorf("%s() displayed %d frames, want 1", tc.name, got)
			}
			if mem.Clears() != mem.Frames() {
				t.Errorf("clears=%d frames=%d, want every frame preceded by a clear", mem.Clears(), mem.Frames())
			}
		})
	}
}

func TestWidgetPenAndVisibility(t *testing.T) {
	tw, _ := newTestWidget(t, WithSize(100, 100))
	tt := tw.World().Turtle()

	_ = tw.Up()
	_ = tw.Hide()
	if tt.Drawing() || tt.Visible() {
		t.Errorf("after Up/Hide: drawing=%v visible=%v", tt.Drawing(), tt.Visible())
	}
	_ = tw.Down()
	_ = tw.Show()
	if !tt.Drawing() || !tt.Visible() {
		t.Errorf("after Down/Show: drawing=%v visible=%v", tt.Drawing(), tt.Visible())
	}
}

func TestWidgetForwardScenario(t *testing.T) {
	tw, mem := newTestWidget(t)

	if err := tw.Forward(100); err != nil {
		t.Fatal(err)
	}
	if got := tw.World().Turtle().Location(); got != Pt(0, -100) {
		t.Errorf("Location() = %v, want (0,-100)", got)
	}
	// The trace is in the displayed frame, below the icon.
	if got := mem.Frame().RGBAAt(300, 260); got.R > 0x40 {
		t.Errorf("frame (300,260) = %v, want black trace", got)
	}

	if err := tw.Backward(100); err != nil {
		t.Fatal(err)
	}
	if got := tw.World().Turtle().Location(); got != Pt(0, 0) {
		t.Errorf("Location() after Backward = %v, want (0,0)", got)
	}
}

func TestWidgetTurnThenForward(t *testing.T) {
	tw, _ := newTestWidget(t)

	_ = tw.Turn(90)
	_ = tw.Forward(100)

	if got := tw.World().Turtle().Location(); got != Pt(100, 0) {
		t.Errorf("Location() = %v, want (100,0)", got)
	}
}

func TestWidgetSquareReturnsHome(t *testing.T) {
	tw, _ := newTestWidget(t)

	for range 4 {
		_ = tw.Forward(100)
		_ = tw.Turn(90)
	}

	tt := tw.World().Turtle()
	if tt.Location() != (Point{}) || tt.Heading() != 0 {
		t.Errorf("after square: location=%v heading=%v, want origin heading 0", tt.Location(), tt.Heading())
	}
}

func TestWidgetResetClearsDrawing(t *testing.T) {
	tw, _ := newTestWidget(t, WithSize(100, 100))
	_ = tw.Forward(30)
	_ = tw.Turn(10)

	if err := tw.Reset(); err != nil {
		t.Fatal(err)
	}

	w := tw.World()
	if !isBlank(w.Canvas(), white) {
		t.Error("Reset() kept the drawing")
	}
	if w.Turtle().Heading() != 0 {
		t.Errorf("Heading() = %v, want 0", w.Turtle().Heading())
	}
}

func TestWidgetOutput(t *testing.T) {
	tw, mem := newTestWidget(t, WithSize(40, 40))
	before := mem.Frames()

	out, err := tw.Output()
	if err != nil {
		t.Fatal(err)
	}
	if out != mem {
		t.Errorf("Output() = %v, want the configured sink", out)
	}
	if mem.Frames() != before+1 {
		t.Error("Output() did not redraw")
	}
}

func TestWidgetRedrawsAfterPanic(t *testing.T) {
	tw, mem := newTestWidget(t, WithSize(40, 40))
	before := mem.Frames()

	func() {
		defer func() { _ = recover() }()
		_ = tw.redrawing(func() { panic("boom") })
	}()

	if mem.Frames() != before+1 {
		t.Error("redrawing skipped the redraw after a panic")
	}
}

func TestWidgetPropagatesSinkError(t *testing.T) {
	errBoom := errors.New("boom")
	rec := &recordingSink{}
	w := newTestWorld(t, WithSize(20, 20), WithSink(rec))
	tw := NewWidget(w)

	rec.displayErr = errBoom
	if err := tw.Forward(5); !errors.Is(err, errBoom) {
		t.Errorf("Forward() = %v, want sink error", err)
	}
	// The mutation still happened.
	if w.Turtle().Location() != Pt(0, -5) {
		t.Errorf("Location() = %v, want (0,-5)", w.Turtle().Location())
	}
}

func TestCommands(t *testing.T) {
	want := []string{"backward", "down", "forward", "hide", "reset", "show", "turn", "up"}
	if got := Commands(); !slices.Equal(got, want) {
		t.Errorf("Commands() = %v, want %v", got, want)
	}
}

func TestWidgetCall(t *testing.T) {
	tw, _ := newTestWidget(t)

	if err := tw.Call("turn", 90); err != nil {
		t.Fatal(err)
	}
	if err := tw.Call("forward", 50.9); err != nil {
		t.Fatal(err)
	}
	if got := tw.World().Turtle().Location(); got != Pt(50, 0) {
		t.Errorf("Location() = %v, want (50,0)", got)
	}
	if err := tw.Call("up"); err != nil {
		t.Fatal(err)
	}
	if tw.World().Turtle().Drawing() {
		t.Error("Call(up) left the pen down")
	}

	var unknown *UnknownCommandError
	if err := tw.Call("jump", 1); !errors.As(err, &unknown) || unknown.Name != "jump" {
		t.Errorf("Call(jump) = %v, want UnknownCommandError", err)
	}

	var arity *ArityError
	if err := tw.Call("forward"); !errors.As(err, &arity) || arity.Want != 1 || arity.Got != 0 {
		t.Errorf("Call(forward) = %v, want ArityError", err)
	}
	if err := tw.Call("hide", 3); !errors.As(err, &arity) {
		t.Errorf("Call(hide, 3) = %v, want ArityError", err)
	}
}

func TestWidgetCallRejectsInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		arg  float64
	}{
		{"turn +inf", "turn", math.Inf(1)},
		{"turn -inf", "turn", math.Inf(-1)},
		{"turn nan", "turn", math.NaN()},
		{"forward inf", "forward", math.Inf(1)},
		{"forward nan", "forward", math.NaN()},
		{"backward huge", "backward", 1e300},
		{"forward past int32", "forward", math.MaxInt32 + 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw, mem := newTestWidget(t)

			var argErr *ArgumentError
			if err := tw.Call(tc.cmd, tc.arg); !errors.As(err, &argErr) || argErr.Name != tc.cmd {
				t.Fatalf("Call(%s, %v) = %v, want ArgumentError", tc.cmd, tc.arg, err)
			}
			tt := tw.World().Turtle()
			if tt.Heading() != 0 || tt.Location() != (Point{}) {
				t.Errorf("turtle changed: heading=%v location=%v", tt.Heading(), tt.Location())
			}
			if mem.Frames() != 1 {
				t.Errorf("Frames() = %d, want only the initial frame", mem.Frames())
			}
		})
	}
}

func TestWidgetTurnRejectsNonFinite(t *testing.T) {
	tw, _ := newTestWidget(t)
	if err := tw.Turn(45); err != nil {
		t.Fatal(err)
	}

	var argErr *ArgumentError
	if err := tw.Turn(math.NaN()); !errors.As(err, &argErr) {
		t.Errorf("Turn(NaN) = %v, want ArgumentError", err)
	}
	if err := tw.Forward(100); err != nil {
		t.Fatal(err)
	}
	if got := tw.World().Turtle().Heading(); got != 45 {
		t.Errorf("Heading() = %v, want 45", got)
	}
	if got := tw.World().Turtle().Location(); got != Pt(70, -70) {
		t.Errorf("Location() = %v, want (70,-70)", got)
	}
}
