package board

import (
	"sort"
	"testing"

	"github.com/matryer/is"
)

func isWinningLine(cells []int) bool {
	for _, l := range winningLines {
		line := []int{l[0], l[1], l[2]}
		sort.Ints(line)
		if cells[0] == line[0] && cells[1] == line[1] && cells[2] == line[2] {
			return true
		}
	}
	return false
}

func TestLinePairsCoverAllLines(t *testing.T) {
	is := is.New(t)
	count := 0
	for c := range linePairs {
		for _, pr := range linePairs[c] {
			cells := []int{c, pr[0], pr[1]}
			sort.Ints(cells)
			is.True(isWinningLine(cells)) // every entry must be a real line
			count++
		}
	}
	// Each of the 8 lines appears once through each of its 3 cells.
	is.Equal(count, 24)
}

func TestLinePairsCounts(t *testing.T) {
	is := is.New(t)
	corners := []int{0, 2, 6, 8}
	edges := []int{1, 3, 5, 7}
	for _, c := range corners {
		is.Equal(len(linePairs[c]), 3)
	}
	for _, c := range edges {
		is.Equal(len(linePairs[c]), 2)
	}
	is.Equal(len(linePairs[4]), 4)
}

// TestWinnerAtMatchesFullScan plays out every game reachable by
// alternating play, stopping at terminal states, and checks that the
// last-move detector always agrees with a full eight-line scan.
func TestWinnerAtMatchesFullScan(t *testing.T) {
	is := is.New(t)
	var b Board
	states := 0
	var walk func(mover Piece, depth int)
	walk = func(mover Piece, depth int) {
		for c := 0; c < NumCells; c++ {
			if b[c] != Empty {
				continue
			}
			b[c] = mover
			states++
			is.Equal(b.WinnerAt(c), b.Winner())
			if b.Winner() == Empty && depth < NumCells-1 {
				next := X
				if mover == X {
					next = O
				}
				walk(next, depth+1)
			}
			b[c] = Empty
		}
	}
	walk(X, 0)
	if states < 500000 {
		t.Errorf("only visited %d states; enumeration is broken", states)
	}
}

func TestWinnerAtIgnoresLinesElsewhere(t *testing.T) {
	is := is.New(t)
	b := Board{X, X, X, O, O, Empty, Empty, Empty, Empty}
	// The top row is complete, but cell 5 does not sit on it.
	is.Equal(b.WinnerAt(5), Empty)
	is.Equal(b.WinnerAt(0), X)
	is.Equal(b.WinnerAt(1), X)
	is.Equal(b.WinnerAt(2), X)
	is.Equal(b.Winner(), X)
}

func TestEmptyBoard(t *testing.T) {
	is := is.New(t)
	var b Board
	is.Equal(b.Winner(), Empty)
	for c := 0; c < NumCells; c++ {
		is.Equal(b.WinnerAt(c), Empty)
		is.True(b.IsEmpty(c))
	}
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	b := Board{X, Empty, O, Empty, X, Empty, Empty, Empty, O}
	is.Equal(b.ToDisplayText(), "X| |O\n-+-+-\n |X| \n-+-+-\n | |O\n")
}
