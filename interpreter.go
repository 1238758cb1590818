package sexpr

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// Interpreter evaluates source text one top-level expression at a time.
// It holds configuration only; every call to Evaluate starts from a fresh
// cursor and an empty top-level scope.
type Interpreter struct {
	out    io.Writer
	logger *slog.Logger
}

// Option is a functional option for configuring the Interpreter.
type Option func(*Interpreter)

// WithOutput sets the diagnostic sink that print writes to.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.out = w
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

func New(opts ...Option) *Interpreter {
	in := &Interpreter{out: os.Stderr}
	for _, opt := range opts {
		opt(in)
	}
	if in.logger == nil {
		in.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return in
}

// Evaluate parses and evaluates exactly one expression from source. Only
// spaces may follow it.
func (in *Interpreter) Evaluate(source string) (Value, error) {
	ev := &evaluator{cur: newCursor(source), out: in.out, logger: in.logger}

	val, err := ev.eval(NewEnv(nil))
	if err != nil {
		return nil, err
	}

	ev.cur.skipSpaces()
	if !ev.cur.atEnd() {
		return nil, newError(SyntaxError, ev.cur.pos, "unexpected trailing input: %s", ev.cur.rest())
	}

	in.logger.Debug("evaluated", "source", source, "result", Print(val))
	return val, nil
}

// a built-in form; the cursor is just past its head keyword
type form func(ev *evaluator, env *Env) (Value, error)

var forms []struct {
	head string
	fn   form
}

func init() {
	// matched by prefix, in order
	forms = []struct {
		head string
		fn   form
	}{
		{"add", (*evaluator).add},
		{"mult", (*evaluator).mult},
		{"div", (*evaluator).div},
		{"eq", (*evaluator).eq},
		{"let", (*evaluator).let},
		{"print", (*evaluator).print},
	}
}

// evaluator parses and evaluates in a single pass over the cursor.
type evaluator struct {
	cur    *cursor
	out    io.Writer
	logger *slog.Logger
	depth  int
}

func (ev *evaluator) eval(env *Env) (Value, error) {
	c := ev.cur
	c.skipSpaces()

	if c.atEnd() {
		return nil, newError(SyntaxError, c.pos, "tried to evaluate an empty expression")
	}

	ch := c.peek()
	switch {
	case ch == '(':
		c.pos++
		ev.depth++
		defer func() { ev.depth-- }()
		return ev.evalForm(env)
	case ch == '-' || isNum(ch):
		n, err := c.readNumber()
		if err != nil {
			return nil, err
		}
		return n, nil
	case isAlpha(ch):
		start := c.pos
		name := c.readIdentifier()
		val, ok := env.Find(name)
		if !ok {
			return nil, newError(BindingError, start, "unbound reference: %s", name)
		}
		return val, nil
	}

	return nil, newError(SyntaxError, c.pos, "unexpected char '%c'", ch)
}

func (ev *evaluator) evalForm(env *Env) (Value, error) {
	c := ev.cur
	for _, f := range forms {
		if c.consumePrefix(f.head) {
			ev.logger.Debug("form", "head", f.head, "pos", c.pos, "depth", ev.depth)
			return f.fn(ev, env)
		}
	}
	return nil, newError(SyntaxError, c.pos, "expected the name of a callable: %s", c.rest())
}

// Forms

func (ev *evaluator) add(env *Env) (Value, error) {
	return ev.reduce(env, 0, func(r, x float64) float64 {
		return r + x
	})
}

func (ev *evaluator) mult(env *Env) (Value, error) {
	return ev.reduce(env, 1, func(r, x float64) float64 {
		return r * x
	})
}

// reduce folds zero or more number operands up to the closing paren.
func (ev *evaluator) reduce(env *Env, ret float64, accum func(float64, float64) float64) (Value, error) {
	c := ev.cur
	for {
		c.skipSpaces()
		if c.atEnd() || c.peek() == ')' {
			break
		}
		n, err := ev.number(env)
		if err != nil {
			return nil, err
		}
		ret = accum(ret, n)
	}

	if err := c.expect(')'); err != nil {
		return nil, err
	}
	return Number(ret), nil
}

func (ev *evaluator) div(env *Env) (Value, error) {
	if err := ev.requireOperand("div"); err != nil {
		return nil, err
	}
	n, err := ev.number(env)
	if err != nil {
		return nil, err
	}

	if err := ev.requireOperand("div"); err != nil {
		return nil, err
	}
	m, err := ev.number(env)
	if err != nil {
		return nil, err
	}

	if err := ev.close("div"); err != nil {
		return nil, err
	}
	return Number(n / m), nil
}

func (ev *evaluator) eq(parent *Env) (Value, error) {
	env := ChildEnv(parent)
	ev.logger.Debug("scope", "form", "eq", "pos", ev.cur.pos)

	if err := ev.requireOperand("eq"); err != nil {
		return nil, err
	}
	a, err := ev.eval(env)
	if err != nil {
		return nil, err
	}

	if err := ev.requireOperand("eq"); err != nil {
		return nil, err
	}
	pos := ev.cur.pos
	b, err := ev.eval(env)
	if err != nil {
		return nil, err
	}

	same, err := Equals(a, b)
	if err != nil {
		return nil, withPos(err, pos)
	}

	if err := ev.close("eq"); err != nil {
		return nil, err
	}
	return Boolean(same), nil
}

func (ev *evaluator) let(parent *Env) (Value, error) {
	c := ev.cur
	env := ChildEnv(parent)
	ev.logger.Debug("scope", "form", "let", "pos", c.pos)

	for {
		c.skipSpaces()
		if !isAlpha(c.peek()) {
			break
		}

		// an identifier right before ')' is the body, not a binding
		end := c.identifierEnd()
		if end < len(c.src) && c.src[end] == ')' {
			break
		}

		start := c.pos
		name := c.readIdentifier()
		val, err := ev.eval(env)
		if err != nil {
			return nil, err
		}
		if err := env.Define(name, val); err != nil {
			return nil, newError(InternalError, start, "%v", err)
		}
	}

	ret, err := ev.eval(env)
	if err != nil {
		return nil, err
	}

	if err := c.expect(')'); err != nil {
		return nil, err
	}
	return ret, nil
}

func (ev *evaluator) print(env *Env) (Value, error) {
	val, err := ev.eval(env)
	if err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintln(ev.out, Print(val)); err != nil {
		return nil, errors.Wrap(err, "writing print output")
	}

	ev.cur.skipSpaces()
	if err := ev.cur.expect(')'); err != nil {
		return nil, err
	}
	return Nil, nil
}

// Operand helpers

// number evaluates the next operand and requires it to be a Number.
func (ev *evaluator) number(env *Env) (float64, error) {
	pos := ev.cur.pos
	v, err := ev.eval(env)
	if err != nil {
		return 0, err
	}
	n, ok := v.(Number)
	if !ok {
		return 0, newError(TypeError, pos, "expected a number, got %s", v.Kind())
	}
	return float64(n), nil
}

func (ev *evaluator) requireOperand(name string) error {
	c := ev.cur
	c.skipSpaces()
	if c.atEnd() || c.peek() == ')' {
		return newError(ArityError, c.pos, "not enough arguments for %s", name)
	}
	return nil
}

// close consumes the closing paren of a form taking exactly two operands.
func (ev *evaluator) close(name string) error {
	c := ev.cur
	c.skipSpaces()
	if !c.atEnd() && c.peek() != ')' {
		return newError(ArityError, c.pos, "too many arguments for %s", name)
	}
	return c.expect(')')
}
