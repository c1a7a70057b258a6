// Package solver implements an exact minimax search of the tic-tac-toe
// game tree, with alpha-beta pruning and a win/lose cutoff.
package solver

import (
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/domino14/ttsolve/board"
)

// thanks Wikipedia:
/*
function alphabeta(node, depth, α, β, maximizingPlayer) is
    if node is a terminal node then
        return the value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            if value ≥ β then
                break (* β cutoff *)
            α := max(α, value)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            if value ≤ α then
                break (* α cutoff *)
            β := min(β, value)
        return value
**/

// Score is an opaque ranking value. Only the ordering matters; no
// arithmetic is ever performed on scores.
type Score int16

const (
	ScoreLose Score = 4
	ScoreTie  Score = 5
	ScoreWin  Score = 6
	// Sentinel bounds used to seed alpha and beta. They lie strictly
	// outside [ScoreLose, ScoreWin] so they can never equal a real
	// terminal score.
	ScoreMin Score = 2
	ScoreMax Score = 9
)

// EarliestWinDepth is the first ply at which a completed line is
// geometrically possible: the first player's third move lands with four
// plies already played.
const EarliestWinDepth = 4

var ErrBadOpening = errors.New("opening cell out of range")

// Solver solves a single opening position to full depth. It owns its
// board; each recursive call claims one cell, recurses, and restores it
// before returning, so the board is unchanged after every Solve.
type Solver struct {
	b       board.Board
	opening int

	abPruneOptim      bool
	winLosePruneOptim bool

	nodes atomic.Uint64
}

// Init sets up the solver for an opening: X placed at the given cell on
// an otherwise empty board. Both pruning optimizations default to on.
func (s *Solver) Init(opening int) error {
	if opening < 0 || opening >= board.NumCells {
		return ErrBadOpening
	}
	s.b = board.Board{}
	s.b[opening] = board.X
	s.opening = opening
	s.abPruneOptim = true
	s.winLosePruneOptim = true
	log.Debug().Int("opening", opening).Msg("solver-init")
	return nil
}

func (s *Solver) SetABPrune(on bool) {
	s.abPruneOptim = on
}

func (s *Solver) SetWinLosePrune(on bool) {
	s.winLosePruneOptim = on
}

// Nodes returns the number of minimax calls made by this solver since
// Init. It accumulates across repeated Solve calls.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Board returns a copy of the solver's board.
func (s *Solver) Board() board.Board {
	return s.b
}

// Solve searches the opening position to full depth and returns its
// exact score. The opening X counts as ply zero, so O is first to move
// inside the search.
func (s *Solver) Solve() Score {
	return s.minimax(ScoreMin, ScoreMax, 0, s.opening)
}

// minimax tries moves in ascending cell order. The order is part of the
// contract: it determines which branch cuts off first and therefore the
// exact node count.
func (s *Solver) minimax(α, β Score, depth, lastMove int) Score {
	s.nodes.Add(1)

	if depth >= EarliestWinDepth {
		p := s.b.WinnerAt(lastMove)
		if p != board.Empty {
			if p == board.X {
				return ScoreWin
			}
			return ScoreLose
		}
		if depth == board.NumCells-1 {
			// Board full, no line found.
			return ScoreTie
		}
	}

	var value Score
	var mover board.Piece
	maximizing := depth&1 == 1
	if maximizing {
		value = ScoreMin
		mover = board.X
	} else {
		value = ScoreMax
		mover = board.O
	}

	for c := 0; c < board.NumCells; c++ {
		if s.b[c] != board.Empty {
			continue
		}
		s.b[c] = mover
		score := s.minimax(α, β, depth+1, c)
		s.b[c] = board.Empty

		if maximizing {
			if s.winLosePruneOptim && score == ScoreWin {
				// A win cannot be improved on; skip the siblings.
				return ScoreWin
			}
			if score > value {
				value = score
				if s.abPruneOptim {
					if value >= β {
						return value // β cutoff
					}
					if value > α {
						α = value
					}
				}
			}
		} else {
			if s.winLosePruneOptim && score == ScoreLose {
				return ScoreLose
			}
			if score < value {
				value = score
				if s.abPruneOptim {
					if value <= α {
						return value // α cutoff
					}
					if value < β {
						β = value
					}
				}
			}
		}
	}
	return value
}
