package hanoi

import (
	"container/heap"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	ErrDepthLimit      = errors.New("no solution within depth limit")
	ErrExhausted       = errors.New("search space exhausted")
	ErrExpansionLimit  = errors.New("expansion limit reached")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Strategy selects the frontier discipline.
type Strategy int

const (
	// BreadthFirst pops the earliest-inserted node (FIFO).
	BreadthFirst Strategy = iota + 1
	// BestFirst pops the node with the lowest G + H (A*).
	BestFirst
)

var strategyDisplayName = map[Strategy]string{
	BreadthFirst: "breadth-first",
	BestFirst:    "a-star",
}

func (s Strategy) String() string {
	if name, ok := strategyDisplayName[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy accepts the CLI and menu spellings of a strategy.
func ParseStrategy(v string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "bfs", "breadth-first", "uninformed":
		return BreadthFirst, nil
	case "2", "astar", "a*", "a-star", "best-first", "informed":
		return BestFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, v)
	}
}

// Options configures a Solver.
type Options struct {
	// DepthLimit caps G for breadth-first search. 0 means 2^n - 1.
	DepthLimit int
	// MaxExpansions stops either strategy after that many expansions. 0 means unbounded.
	MaxExpansions int
	Logger        *slog.Logger
	Metrics       *Metrics
}

// Option modifies Options.
type Option func(*Options)

// WithDepthLimit sets the breadth-first depth limit.
func WithDepthLimit(limit int) Option {
	return func(o *Options) { o.DepthLimit = limit }
}

// WithMaxExpansions bounds the number of expanded nodes.
func WithMaxExpansions(limit int) Option {
	return func(o *Options) { o.MaxExpansions = limit }
}

// WithLogger routes search diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithMetrics records search counters on m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// Result is the outcome of a search.
type Result struct {
	Strategy  Strategy
	Goal      *Node
	Path      []*Node // root first
	Expanded  int
	Generated int
	Found     bool
}

// Moves is the number of transfers in the solution.
func (r Result) Moves() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// States lists the solution states, root first.
func (r Result) States() []State {
	out := make([]State, len(r.Path))
	for i, n := range r.Path {
		out[i] = n.State
	}
	return out
}

// Solver runs searches. It keeps no state between calls.
type Solver struct {
	opts   Options
	logger *slog.Logger
}

// NewSolver applies options over the defaults.
func NewSolver(options ...Option) *Solver {
	var opts Options
	for _, option := range options {
		option(&opts)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Solver{opts: opts, logger: logger}
}

// Solve dispatches to the chosen strategy.
func (s *Solver) Solve(strategy Strategy, root *Node) (Result, error) {
	switch strategy {
	case BreadthFirst:
		return s.BreadthFirst(root)
	case BestFirst:
		return s.BestFirst(root)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

// BreadthFirst explores the tree level by level from root, skipping states
// already enqueued and children deeper than the depth limit.
func (s *Solver) BreadthFirst(root *Node) (Result, error) {
	if root == nil {
		return Result{}, ErrNilNode
	}
	disks := root.State.Disks()
	limit := s.opts.DepthLimit
	if limit <= 0 {
		limit = MinMoves(disks)
	}
	run := s.newRun(BreadthFirst, disks)

	queue := []*Node{root}
	visited := map[Key]bool{root.State.Key(): true}

	for len(queue) > 0 {
		current := queue[0]
		queue[0] = nil
		queue = queue[1:]

		if done, res, err := run.visit(current); done {
			return res, err
		}

		for _, child := range run.expand(current) {
			key := child.State.Key()
			if visited[key] || child.G > limit {
				continue
			}
			visited[key] = true
			queue = append(queue, child)
		}
	}
	return run.fail(outcomeDepthLimit, fmt.Errorf("%w (limit %d)", ErrDepthLimit, limit))
}

// BestFirst always expands the frontier node with the lowest F. Equal
// scores are served in insertion order.
func (s *Solver) BestFirst(root *Node) (Result, error) {
	if root == nil {
		return Result{}, ErrNilNode
	}
	run := s.newRun(BestFirst, root.State.Disks())

	open := &frontier{}
	heap.Init(open)
	open.push(root)
	visited := map[Key]bool{root.State.Key(): true}

	for open.Len() > 0 {
		current := heap.Pop(open).(*frontierItem).node

		if done, res, err := run.visit(current); done {
			return res, err
		}

		for _, child := range run.expand(current) {
			key := child.State.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			open.push(child)
		}
	}
	return run.fail(outcomeExhausted, ErrExhausted)
}

// searchRun holds the per-call bookkeeping shared by both strategies.
type searchRun struct {
	solver   *Solver
	strategy Strategy
	disks    int
	result   Result
	logger   *slog.Logger
}

func (s *Solver) newRun(strategy Strategy, disks int) *searchRun {
	return &searchRun{
		solver:   s,
		strategy: strategy,
		disks:    disks,
		result:   Result{Strategy: strategy},
		logger:   s.logger.With("strategy", strategy.String(), "disks", disks),
	}
}

// visit tests n for the goal and the expansion budget. done is true when the
// search must stop with res and err.
func (r *searchRun) visit(n *Node) (done bool, res Result, err error) {
	r.logger.Debug("searching node", "state", n.State, "g", n.G, "f", n.F())

	if n.State.IsGoal(r.disks) {
		path, traceErr := Trace(n)
		if traceErr != nil {
			return true, r.result, traceErr
		}
		r.result.Goal = n
		r.result.Path = Reverse(path)
		r.result.Found = true
		r.solver.opts.Metrics.observeOutcome(r.strategy, outcomeFound)
		r.logger.Info("solution found",
			"moves", r.result.Moves(),
			"expanded", r.result.Expanded,
			"generated", r.result.Generated,
		)
		return true, r.result, nil
	}

	if limit := r.solver.opts.MaxExpansions; limit > 0 && r.result.Expanded >= limit {
		res, err := r.fail(outcomeExpansionLimit, fmt.Errorf("%w (%d)", ErrExpansionLimit, limit))
		return true, res, err
	}
	return false, Result{}, nil
}

func (r *searchRun) expand(n *Node) []*Node {
	metrics := r.solver.opts.Metrics
	children := GenerateMoves(n, func(m Move, legal bool) {
		if legal {
			r.logger.Debug("safe move generated", "from", n.State, "move", m)
			return
		}
		metrics.observeRejected(r.strategy)
		r.logger.Debug("unsafe move discarded", "from", n.State, "move", m)
	})
	r.result.Expanded++
	r.result.Generated += len(children)
	metrics.observeExpansion(r.strategy, len(children))
	return children
}

func (r *searchRun) fail(outcome string, err error) (Result, error) {
	r.solver.opts.Metrics.observeOutcome(r.strategy, outcome)
	r.logger.Warn("search failed",
		"outcome", outcome,
		"expanded", r.result.Expanded,
		"error", err,
	)
	return r.result, err
}

// frontier is a min-heap on (F, insertion order).
type frontierItem struct {
	node  *Node
	seq   int
	index int
}

type frontier struct {
	items []*frontierItem
	next  int
}

func (f *frontier) Len() int { return len(f.items) }
func (f *frontier) Less(i, j int) bool {
	fi, fj := f.items[i].node.F(), f.items[j].node.F()
	if fi == fj {
		return f.items[i].seq < f.items[j].seq
	}
	return fi < fj
}
func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.items[i].index = i
	f.items[j].index = j
}
func (f *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(f.items)
	f.items = append(f.items, item)
}
func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	f.items = old[:n-1]
	return item
}

func (f *frontier) push(n *Node) {
	heap.Push(f, &frontierItem{node: n, seq: f.next})
	f.next++
}
