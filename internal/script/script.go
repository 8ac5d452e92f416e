// Package script implements the small command language accepted by
// cmd/turtget:
//
//	# a square
//	repeat 4 [ forward 100 turn 90 ]
//
// A command is a name followed by numeric arguments on the same line.
// repeat N [ ... ] runs its body N times and may be nested. Everything from
// # to the end of a line is a comment. Logo abbreviations (fd, bk, rt, lt,
// pu, pd, st, ht) are accepted; left and lt turn by the negated angle.
package script

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/moshez/turtget"
)

// Caller executes a named command. *turtget.Widget implements it.
type Caller interface {
	Call(name string, args ...float64) error
}

var _ Caller = (*turtget.Widget)(nil)

// SyntaxError reports a malformed script.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("script: line %d: %s", e.Line, e.Msg)
}

// aliases maps abbreviations to command names.
var aliases = map[string]string{
	"fd":    "forward",
	"bk":    "backward",
	"back":  "backward",
	"rt":    "turn",
	"right": "turn",
	"lt":    "left",
	"pu":    "up",
	"pd":    "down",
	"st":    "show",
	"ht":    "hide",
}

// Program is a parsed script.
type Program struct {
	body []stmt
}

type stmt struct {
	line int
	name string
	args []float64

	// repeat only
	count int
	body  []stmt
}

// Parse parses src.
func Parse(src string) (*Program, error) {
	p := &parser{toks: lex(src)}
	body, err := p.block(0)
	if err != nil {
		return nil, err
	}
	return &Program{body: body}, nil
}

// Run executes the program against c, stopping at the first error.
func (p *Program) Run(c Caller) error {
	return run(p.body, c)
}

// Commands returns the number of top-level statements.
func (p *Program) Commands() int {
	return len(p.body)
}

func run(body []stmt, c Caller) error {
	for _, s := range body {
		if s.name == "repeat" {
			for range s.count {
				if err := run(s.body, c); err != nil {
					return err
				}
			}
			continue
		}

		name, args := s.name, s.args
		if name == "left" {
			name = "turn"
			args = negate(args)
		}
		turtget.Logger().Debug("script: call", "line", s.line, "command", name, "args", args)
		if err := c.Call(name, args...); err != nil {
			return fmt.Errorf("script: line %d: %s: %w", s.line, s.name, err)
		}
	}
	return nil
}

func negate(args []float64) []float64 {
	out := make([]float64, len(args))
	for i, a := range args {
		out[i] = -a
	}
	return out
}

var bracketSpacer = strings.NewReplacer("[", " [ ", "]", " ] ")

type token struct {
	text string
	line int
}

// lex splits src into words, treating [ and ] as separate tokens and
// dropping comments.
func lex(src string) []token {
	var toks []token
	for i, raw := range strings.Split(src, "\n") {
		if j := strings.IndexByte(raw, '#'); j >= 0 {
			raw = raw[:j]
		}
		raw = bracketSpacer.Replace(raw)
		for _, f := range strings.FieldsFunc(raw, unicode.IsSpace) {
			toks = append(toks, token{text: f, line: i + 1})
		}
	}
	return toks
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) lastLine() int {
	if len(p.toks) == 0 {
		return 1
	}
	return p.toks[len(p.toks)-1].line
}

// block parses statements until the end of input (depth 0) or a closing
// bracket (depth > 0).
func (p *parser) block(depth int) ([]stmt, error) {
	var body []stmt
	for {
		tok, ok := p.peek()
		if !ok {
			if depth > 0 {
				return nil, &SyntaxError{Line: p.lastLine(), Msg: "missing ]"}
			}
			return body, nil
		}
		p.pos++

		switch {
		case tok.text == "]":
			if depth == 0 {
				return nil, &SyntaxError{Line: tok.line, Msg: "unexpected ]"}
			}
			return body, nil
		case tok.text == "[":
			return nil, &SyntaxError{Line: tok.line, Msg: "unexpected ["}
		case isNumber(tok.text):
			return nil, &SyntaxError{Line: tok.line, Msg: "expected command, got " + tok.text}
		}

		name := strings.ToLower(tok.text)
		if name == "repeat" {
			s, err := p.repeat(tok, depth)
			if err != nil {
				return nil, err
			}
			body = append(body, s)
			continue
		}
		if full, ok := aliases[name]; ok {
			name = full
		}

		s := stmt{line: tok.line, name: name}
		for {
			arg, ok := p.peek()
			if !ok || arg.line != tok.line {
				break
			}
			v, err := parseNumber(arg.text)
			if errors.Is(err, errNotFinite) {
				return nil, &SyntaxError{Line: arg.line, Msg: "argument must be a finite number, got " + arg.text}
			}
			if err != nil {
				break
			}
			s.args = append(s.args, v)
			p.pos++
		}
		body = append(body, s)
	}
}

func (p *parser) repeat(kw token, depth int) (stmt, error) {
	n, ok := p.peek()
	if !ok {
		return stmt{}, &SyntaxError{Line: kw.line, Msg: "repeat needs a count"}
	}
	count, err := strconv.Atoi(n.text)
	if err != nil || count < 0 {
		return stmt{}, &SyntaxError{Line: n.line, Msg: "repeat count must be a non-negative integer, got " + n.text}
	}
	p.pos++

	open, ok := p.peek()
	if !ok || open.text != "[" {
		return stmt{}, &SyntaxError{Line: kw.line, Msg: "repeat needs a [ block ]"}
	}
	p.pos++

	body, err := p.block(depth + 1)
	if err != nil {
		return stmt{}, err
	}
	return stmt{line: kw.line, name: "repeat", count: count, body: body}, nil
}

var errNotFinite = errors.New("not a finite number")

// parseNumber parses a numeric literal. Infinities and NaN are rejected with
// errNotFinite.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errNotFinite
	}
	return v, nil
}

func isNumber(s string) bool {
	_, err := parseNumber(s)
	return err == nil
}
