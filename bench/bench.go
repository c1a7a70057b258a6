// Package bench runs the opening-move benchmark: exhaustive solves of
// the three strategically distinct first moves, concurrently and then
// serially.
package bench

import (
	"expvar"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/ttsolve/solver"
)

var (
	openingRuns *expvar.Int
	workersBusy *expvar.Int
)

func init() {
	openingRuns = expvar.NewInt("openingRuns")
	workersBusy = expvar.NewInt("workersBusy")
}

// Opening is one of the symmetry classes of first move.
type Opening struct {
	Cell int
	Name string
}

// Openings are the three strategically distinct first moves on a 3x3
// board; every other cell is a rotation or reflection of one of these.
var Openings = []Opening{
	{Cell: 0, Name: "corner"},
	{Cell: 1, Name: "edge"},
	{Cell: 4, Name: "center"},
}

// ReferenceCornerNodes is the known call count for a single
// corner-opening solve with both prunings enabled.
const ReferenceCornerNodes = 1903

// OpeningResult is the node total contributed by one opening's runs.
type OpeningResult struct {
	Opening Opening
	Nodes   uint64
}

// PhaseResult reports one timed phase.
type PhaseResult struct {
	Parallel   bool
	Elapsed    time.Duration
	Nodes      uint64
	Iterations int
	PerOpening []OpeningResult
}

// Harness benchmarks the solver across the three openings. The only
// state shared between concurrent opening runs is the phase node
// counter; every run owns a private solver and board.
type Harness struct {
	iterations   int
	abPrune      bool
	winLosePrune bool

	totalNodes atomic.Uint64
}

// NewHarness creates a harness. A non-positive iteration count is
// coerced to 1.
func NewHarness(iterations int, abPrune, winLosePrune bool) *Harness {
	if iterations <= 0 {
		iterations = 1
	}
	return &Harness{
		iterations:   iterations,
		abPrune:      abPrune,
		winLosePrune: winLosePrune,
	}
}

// runOpening solves one opening position to full depth, iterations
// times, then adds the run's node total to the shared phase counter.
func (h *Harness) runOpening(op Opening) (OpeningResult, error) {
	s := new(solver.Solver)
	if err := s.Init(op.Cell); err != nil {
		return OpeningResult{}, err
	}
	s.SetABPrune(h.abPrune)
	s.SetWinLosePrune(h.winLosePrune)

	workersBusy.Add(1)
	defer workersBusy.Add(-1)
	for i := 0; i < h.iterations; i++ {
		if score := s.Solve(); score != solver.ScoreTie {
			// The game is a provable draw from any opening; anything
			// else means the search is broken.
			log.Error().Str("opening", op.Name).Int("score", int(score)).
				Msg("unexpected-final-score")
		}
	}
	h.totalNodes.Add(s.Nodes())
	openingRuns.Add(1)
	log.Debug().Str("opening", op.Name).Uint64("nodes", s.Nodes()).
		Msg("opening-done")
	return OpeningResult{Opening: op, Nodes: s.Nodes()}, nil
}

func (h *Harness) runPhase(parallel bool) (PhaseResult, error) {
	h.totalNodes.Store(0)
	per := make([]OpeningResult, len(Openings))
	start := time.Now()
	if parallel {
		// Two helper workers; the last opening runs on the calling
		// goroutine, so there are exactly as many workers as openings.
		g := errgroup.Group{}
		last := len(Openings) - 1
		for i := 0; i < last; i++ {
			i := i
			g.Go(func() error {
				var err error
				per[i], err = h.runOpening(Openings[i])
				return err
			})
		}
		var err error
		per[last], err = h.runOpening(Openings[last])
		// Join before reading the counter.
		if werr := g.Wait(); err == nil {
			err = werr
		}
		if err != nil {
			return PhaseResult{}, err
		}
	} else {
		for i, op := range Openings {
			r, err := h.runOpening(op)
			if err != nil {
				return PhaseResult{}, err
			}
			per[i] = r
		}
	}
	res := PhaseResult{
		Parallel:   parallel,
		Elapsed:    time.Since(start),
		Nodes:      h.totalNodes.Load(),
		Iterations: h.iterations,
		PerOpening: per,
	}
	log.Info().Bool("parallel", parallel).Dur("elapsed", res.Elapsed).
		Uint64("nodes", res.Nodes).Msg("phase-done")
	return res, nil
}

// RunParallel executes the three opening runs concurrently.
func (h *Harness) RunParallel() (PhaseResult, error) {
	return h.runPhase(true)
}

// RunSerial executes the three opening runs one after another.
func (h *Harness) RunSerial() (PhaseResult, error) {
	return h.runPhase(false)
}

// SelfCheck solves the corner opening once with both prunings enabled
// and compares the call count against the known reference. This is a
// developer assertion, not part of the benchmark.
func SelfCheck() error {
	s := new(solver.Solver)
	if err := s.Init(Openings[0].Cell); err != nil {
		return err
	}
	score := s.Solve()
	log.Info().Uint64("calls", s.Nodes()).Int("score", int(score)).
		Msg("self-check")
	if s.Nodes() != ReferenceCornerNodes {
		return fmt.Errorf("expected %d minimax calls, got %d",
			ReferenceCornerNodes, s.Nodes())
	}
	return nil
}
