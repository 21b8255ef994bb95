// Package console is the text front end: the strategy menu, the interactive
// session, and the step-by-step rendering of a solution.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hanoi-search/internal/hanoi"
)

const (
	colorTitle   = lipgloss.Color("#22c55e")
	colorStep    = lipgloss.Color("#20B9B4")
	colorMuted   = lipgloss.Color("#9ca3af")
	colorError   = lipgloss.Color("#E74C3C")
	colorWarning = lipgloss.Color("#F4D03F")
)

// Renderer prints states and solutions. Colours are dropped automatically
// when the writer is not a terminal.
type Renderer struct {
	w io.Writer

	title   lipgloss.Style
	step    lipgloss.Style
	peg     lipgloss.Style
	muted   lipgloss.Style
	errText lipgloss.Style
	warn    lipgloss.Style
}

func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		step:    r.NewStyle().Bold(true).Foreground(colorStep),
		peg:     r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
		errText: r.NewStyle().Bold(true).Foreground(colorError),
		warn:    r.NewStyle().Foreground(colorWarning),
	}
}

// Title prints a highlighted heading line.
func (r *Renderer) Title(format string, args ...any) {
	fmt.Fprintln(r.w, r.title.Render(fmt.Sprintf(format, args...)))
}

// Line prints plain text.
func (r *Renderer) Line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Warn prints a recoverable problem, such as bad menu input.
func (r *Renderer) Warn(format string, args ...any) {
	fmt.Fprintln(r.w, r.warn.Render(fmt.Sprintf(format, args...)))
}

// Error prints a failed operation.
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.w, r.errText.Render("Error: "+err.Error()))
}

// State prints the three pegs, one per line.
func (r *Renderer) State(s hanoi.State) {
	for i := 0; i < hanoi.PegCount; i++ {
		label := r.peg.Render(fmt.Sprintf("Peg%d:", i+1))
		fmt.Fprintf(r.w, "%s %s\n", label, hanoi.FormatPeg(s.Peg(i)))
	}
}

// Solution prints every state of the path, root first, numbered from 0,
// followed by a one-line summary.
func (r *Renderer) Solution(res hanoi.Result) {
	r.Title("Path to solution:")
	states := res.States()
	for i, s := range states {
		header := r.step.Render(fmt.Sprintf("Step %d", i))
		if i > 0 {
			if m, ok := hanoi.MoveBetween(states[i-1], s); ok {
				header += " " + r.muted.Render("("+m.String()+")")
			}
		}
		fmt.Fprintln(r.w, header)
		r.State(s)
	}
	r.Line("%s", r.muted.Render(summary(res)))
}

func summary(res hanoi.Result) string {
	parts := []string{
		fmt.Sprintf("strategy=%s", res.Strategy),
		fmt.Sprintf("moves=%d", res.Moves()),
		fmt.Sprintf("expanded=%d", res.Expanded),
		fmt.Sprintf("generated=%d", res.Generated),
	}
	return strings.Join(parts, " ")
}
