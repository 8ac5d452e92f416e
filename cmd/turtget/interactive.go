package main

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/moshez/turtget"
	"github.com/moshez/turtget/internal/script"
	"github.com/moshez/turtget/sink"
)

const helpText = "arrows move/turn  space pen  h hide  r reset  q quit"

// interactive draws on the controlling terminal and moves the turtle with
// the keyboard until the user quits. prog, if any, runs first.
func interactive(cfg *config, opts []turtget.WorldOption, prog *script.Program) (err error) {
	term, err := sink.OpenTerminal()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, term.Close())
	}()

	tw, err := turtget.Start(append(opts, turtget.WithSink(term))...)
	if err != nil {
		return err
	}
	term.SetStatus(func() string {
		return tw.World().Turtle().String() + "  |  " + helpText
	})
	if err := tw.World().Redraw(); err != nil {
		return err
	}
	if prog != nil {
		if err := prog.Run(tw); err != nil {
			return err
		}
	}

	return loop(term.Screen(), tw, cfg.step, cfg.angle)
}

// loop handles one screen event at a time until a quit key.
func loop(screen tcell.Screen, tw *turtget.Widget, step int, angle float64) error {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			if err := tw.World().Redraw(); err != nil {
				return err
			}
		case *tcell.EventKey:
			quit, err := handleKey(tw, ev.Key(), ev.Rune(), step, angle)
			if err != nil {
				return err
			}
			if quit {
				turtget.Logger().Info("turtget: quit")
				return nil
			}
		}
	}
}

// handleKey applies one key press. Unbound keys are ignored.
func handleKey(tw *turtget.Widget, key tcell.Key, ch rune, step int, angle float64) (quit bool, err error) {
	t := tw.World().Turtle()

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyUp:
		return false, tw.Forward(step)
	case tcell.KeyDown:
		return false, tw.Backward(step)
	case tcell.KeyLeft:
		return false, tw.Turn(-angle)
	case tcell.KeyRight:
		return false, tw.Turn(angle)
	case tcell.KeyRune:
	default:
		return false, nil
	}

	switch ch {
	case 'q', 'Q':
		return true, nil
	case ' ':
		if t.Drawing() {
			return false, tw.Up()
		}
		return false, tw.Down()
	case 'h', 'H':
		if t.Visible() {
			return false, tw.Hide()
		}
		return false, tw.Show()
	case 'r', 'R':
		return false, tw.Reset()
	}
	return false, nil
}
