// Package console is the interactive line-oriented front-end of the form.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resumeforge/internal/actions"
	"github.com/jonathan/resumeforge/internal/observability"
	"github.com/jonathan/resumeforge/internal/preview"
	"github.com/jonathan/resumeforge/internal/rendering"
	"github.com/jonathan/resumeforge/internal/types"
	"github.com/jonathan/resumeforge/internal/view"
)

const helpText = `Form:
  set <field> <value>                     personal field (fullName, email, phone,
                                          location, website, linkedin, summary)
  add <section>                           new experience, education or skills entry
  update <section> <ref> <field> <value>  ref is an id, a position or "last"
  remove <section> <ref>
  goto <section>    next    back
  reset                                   start a new resume
  export                                  print to PDF (needs 50% complete)
Display:
  show [section]    preview [text|html|latex]    progress
  help    quit
Values may use \n for line breaks.`

// DefaultMaxLineBytes bounds a single input line. Longer lines are reported
// and skipped; the session keeps running.
const DefaultMaxLineBytes = 16 << 20

// Console reads commands from in and writes results to out.
type Console struct {
	session   *actions.Session
	in        io.Reader
	out       io.Writer
	boxes     *observability.Printer
	renderers map[rendering.Format]rendering.Renderer
	maxLine   int
}

// Option configures a Console.
type Option func(*Console)

// WithRenderer replaces the renderer used for its format.
func WithRenderer(r rendering.Renderer) Option {
	return func(c *Console) {
		c.renderers[r.Format()] = r
	}
}

// WithMaxLineBytes changes the longest accepted input line.
func WithMaxLineBytes(n int) Option {
	return func(c *Console) {
		if n > 0 {
			c.maxLine = n
		}
	}
}

// New creates a console over session.
func New(session *actions.Session, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		session:   session,
		in:        in,
		out:       out,
		boxes:     observability.NewPrinter(out),
		renderers: make(map[rendering.Format]rendering.Renderer),
		maxLine:   DefaultMaxLineBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prompt shows the active section and the completion percentage.
func (c *Console) Prompt() string {
	ctrl := c.session.View
	pct := ctrl.Progress().Percentage
	if ctrl.Layout() == view.LayoutSteps && ctrl.Step() > 0 {
		return fmt.Sprintf("[step %d/%d %s %d%%] > ", ctrl.Step(), ctrl.StepCount(), ctrl.Active(), pct)
	}
	return fmt.Sprintf("[%s %d%%] > ", ctrl.Active(), pct)
}

// Run processes lines until quit, end of input or cancellation.
//
//nolint:errcheck // writing to the console; errors are not recoverable
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, `ResumeForge. Type "help" for commands.`)
	c.boxes.PrintSection(c.session.Store.Snapshot(), c.session.View.Active())

	reader := bufio.NewReader(c.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, c.Prompt())
		line, err := c.readLine(reader)
		if errors.Is(err, errLineTooLong) {
			c.session.Log.Warn("input line skipped", "limit", c.maxLine)
			fmt.Fprintf(c.out, "error: line longer than %d bytes, nothing changed\n", c.maxLine)
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}
		if c.Execute(ctx, line) {
			return nil
		}
	}
}

var errLineTooLong = errors.New("line too long")

// readLine returns the next line without its terminator. A line over the
// limit is consumed in full and reported as errLineTooLong. io.EOF is only
// returned once no data is left.
func (c *Console) readLine(r *bufio.Reader) (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > c.maxLine+1 {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !(errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong)) {
			return "", err
		}
		break
	}
	if tooLong {
		return "", errLineTooLong
	}
	return strings.TrimRight(string(buf), "\r\n"), nil
}

// Execute handles one line and reports whether the console should stop.
//
//nolint:errcheck // writing to the console; errors are not recoverable
func (c *Console) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(c.out, helpText)
		return false
	case "progress":
		c.boxes.PrintProgress(c.session.View.Progress(), c.session.View.Active())
		return false
	case "show":
		c.show(arg)
		return false
	case "preview":
		c.preview(arg)
		return false
	}

	action, err := actions.ParseLine(line)
	if errors.Is(err, actions.ErrNotAction) {
		fmt.Fprintf(c.out, "unknown command %q, type \"help\" for commands\n", cmd)
		return false
	}
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return false
	}

	msg, err := c.session.Apply(ctx, action)
	if err != nil {
		c.session.Log.Debug("action failed", "action", action.String(), "error", err)
		fmt.Fprintf(c.out, "error: %v\n", err)
		return false
	}
	fmt.Fprintln(c.out, msg)

	switch action.Op {
	case actions.OpGoTo, actions.OpNext, actions.OpBack, actions.OpReset:
		c.show("")
	}
	return false
}

//nolint:errcheck // writing to the console; errors are not recoverable
func (c *Console) show(arg string) {
	section := c.session.View.Active()
	if arg != "" {
		s, err := types.ParseSection(arg)
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return
		}
		section = s
	}
	if section == types.SectionPreview {
		c.preview("")
		return
	}
	c.boxes.PrintSection(c.session.Store.Snapshot(), section)
}

//nolint:errcheck // writing to the console; errors are not recoverable
func (c *Console) preview(arg string) {
	format := rendering.FormatText
	if arg != "" {
		f, err := rendering.ParseFormat(arg)
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return
		}
		format = f
	}

	r, ok := c.renderers[format]
	if !ok {
		r = rendering.Default(format)
	}
	if err := r.Render(c.out, preview.Build(c.session.Store.Snapshot())); err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
	}
}
