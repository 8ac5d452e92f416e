// Command turtget draws turtle graphics.
//
// In batch mode it runs a script and writes the final frame to a sink:
//
//	turtget -script square.tg -sink png -out square.png
//	echo 'repeat 36 [ fd 10 rt 10 ]' | turtget -script - -sink ascii
//
// With -interactive it drives the turtle from the keyboard on the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/moshez/turtget"
	"github.com/moshez/turtget/internal/icon"
	"github.com/moshez/turtget/internal/script"
	"github.com/moshez/turtget/sink"
)

const defaultPNG = "turtle.png"

type config struct {
	width, height int
	script        string
	sink          string
	out           string
	columns       int
	icon          string
	caption       bool
	interactive   bool
	step          int
	angle         float64
	verbose       bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "turtget:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("turtget", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.width, "width", turtget.DefaultSize.W, "canvas width")
	fs.IntVar(&cfg.height, "height", turtget.DefaultSize.H, "canvas height")
	fs.StringVar(&cfg.script, "script", "", `script file to run ("-" reads stdin)`)
	fs.StringVar(&cfg.sink, "sink", "png", "batch output sink: "+strings.Join(sink.List(), ", ")+" (terminal only with -interactive)")
	fs.StringVar(&cfg.out, "out", "", "output file (default stdout, or "+defaultPNG+" for png)")
	fs.IntVar(&cfg.columns, "columns", sink.DefaultColumns, "text width of the ascii sink")
	fs.StringVar(&cfg.icon, "icon", "", "image file used as the turtle icon")
	fs.BoolVar(&cfg.caption, "caption", false, "print the turtle pose on every frame")
	fs.BoolVar(&cfg.interactive, "interactive", false, "drive the turtle with the keyboard")
	fs.IntVar(&cfg.step, "step", 10, "interactive: pixels per arrow key")
	fs.Float64Var(&cfg.angle, "angle", 15, "interactive: degrees per arrow key")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.step <= 0 {
		return nil, fmt.Errorf("-step must be positive, got %d", cfg.step)
	}
	if cfg.sink == "terminal" && !cfg.interactive {
		return nil, errors.New("-sink terminal requires -interactive")
	}
	return &cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		turtget.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts, err := worldOptions(cfg)
	if err != nil {
		return err
	}

	var prog *script.Program
	if cfg.script != "" {
		if prog, err = loadScript(cfg.script, stdin); err != nil {
			return err
		}
	}

	if cfg.interactive {
		return interactive(cfg, opts, prog)
	}
	return batch(cfg, opts, prog, stdout)
}

func worldOptions(cfg *config) ([]turtget.WorldOption, error) {
	opts := []turtget.WorldOption{
		turtget.WithSize(cfg.width, cfg.height),
		turtget.WithCaption(cfg.caption),
	}
	if cfg.icon != "" {
		glyph, err := icon.LoadFile(cfg.icon)
		if err != nil {
			return nil, err
		}
		opts = append(opts, turtget.WithIcon(glyph))
	}
	return opts, nil
}

func loadScript(name string, stdin io.Reader) (*script.Program, error) {
	var (
		src []byte
		err error
	)
	if name == "-" {
		src, err = io.ReadAll(stdin)
	} else {
		src, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return script.Parse(string(src))
}

// batch runs prog against an in-memory world and pushes only the final
// frame to the selected sink.
func batch(cfg *config, opts []turtget.WorldOption, prog *script.Program, stdout io.Writer) (err error) {
	tw, err := turtget.Start(opts...)
	if err != nil {
		return err
	}
	if prog != nil {
		if err := prog.Run(tw); err != nil {
			return err
		}
	}

	out, closeOut, err := openSink(cfg, stdout)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeOut())
	}()

	if err := out.Clear(); err != nil {
		return err
	}
	if err := out.Display(tw.World().Frame()); err != nil {
		return err
	}
	turtget.Logger().Info("turtget: frame written", "sink", cfg.sink, "out", cfg.out)
	return nil
}

// openSink creates the sink named by cfg. The returned function releases
// the output file and the sink itself.
func openSink(cfg *config, stdout io.Writer) (turtget.Sink, func() error, error) {
	opts := sink.Options{Columns: cfg.columns, Path: cfg.out}
	var closers []io.Closer

	switch cfg.sink {
	case "png":
		if opts.Path == "" {
			opts.Path = defaultPNG
		}
	case "html", "ascii":
		opts.Writer = stdout
		if cfg.out != "" && cfg.out != "-" {
			f, err := os.Create(cfg.out)
			if err != nil {
				return nil, nil, err
			}
			opts.Writer = f
			closers = append(closers, f)
		}
	}

	closeAll := func() error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c.Close())
		}
		return errors.Join(errs...)
	}

	s, err := sink.New(cfg.sink, opts)
	if err != nil {
		return nil, nil, errors.Join(err, closeAll())
	}
	if c, ok := s.(io.Closer); ok {
		closers = append([]io.Closer{c}, closers...)
	}
	return s, closeAll, nil
}
