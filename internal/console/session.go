package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"hanoi-search/internal/hanoi"
)

// Session drives one interactive solve: announce, menu, search, render.
type Session struct {
	Disks  int
	Solver *hanoi.Solver
	Logger *slog.Logger

	in  *bufio.Reader
	out *Renderer
}

func NewSession(in io.Reader, out io.Writer, disks int, solver *hanoi.Solver, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		Disks:  disks,
		Solver: solver,
		Logger: logger,
		in:     bufio.NewReader(in),
		out:    NewRenderer(out),
	}
}

// Run performs a single menu round. A failed search is reported to the
// user and is not returned as an error; only I/O problems and an invalid
// disk count are.
func (s *Session) Run() error {
	start, err := hanoi.Initial(s.Disks)
	if err != nil {
		return err
	}
	s.out.Line("The minimum number of steps to solve this puzzle with %d disks is: %d",
		s.Disks, hanoi.MinMoves(s.Disks))
	s.out.Title("Initial State of puzzle:")
	s.out.State(start)

	choice, err := ReadChoice(s.in, s.out)
	if err != nil {
		return fmt.Errorf("read menu choice: %w", err)
	}
	strategy, ok := choice.Strategy()
	if !ok {
		s.out.Line("Exiting...")
		return nil
	}

	_, err = Solve(s.out, s.Solver, strategy, start, s.Logger)
	if err != nil {
		s.Logger.Warn("search did not reach the goal", "strategy", strategy.String(), "error", err)
	}
	return nil
}

// Solve runs strategy from start and renders either the path or the
// failure. The search error is returned for callers that need an exit code.
func Solve(r *Renderer, solver *hanoi.Solver, strategy hanoi.Strategy, start hanoi.State, logger *slog.Logger) (hanoi.Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r.Title("Solving with %s", displayName(strategy))
	logger.Info("search started", "strategy", strategy.String(), "disks", start.Disks())

	res, err := solver.Solve(strategy, hanoi.NewRoot(start))
	if err != nil {
		r.Error(err)
		return res, err
	}
	r.Solution(res)
	return res, nil
}

func displayName(s hanoi.Strategy) string {
	switch s {
	case hanoi.BreadthFirst:
		return "Breadth-First Search"
	case hanoi.BestFirst:
		return "A* Search"
	default:
		return s.String()
	}
}
