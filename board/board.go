// Package board implements the 3x3 tic-tac-toe board and its
// winning-line geometry.
package board

import "strings"

// Piece is the contents of a single cell.
type Piece uint8

const (
	Empty Piece = iota
	X
	O
)

func (p Piece) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

const (
	// Dim is the board dimension.
	Dim = 3
	// NumCells is the number of cells on the board.
	NumCells = Dim * Dim
)

// Board is a grid of cells in row-major order:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Board [NumCells]Piece

// winningLines are the eight completed lines: three rows, three columns,
// two diagonals.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// linePairs[c] holds, for every winning line through cell c, the other two
// cells of that line. Corners touch three lines, edges two, the center
// four.
var linePairs = [NumCells][][2]int{
	{{1, 2}, {3, 6}, {4, 8}},
	{{0, 2}, {4, 7}},
	{{0, 1}, {5, 8}, {4, 6}},
	{{4, 5}, {0, 6}},
	{{0, 8}, {2, 6}, {1, 7}, {3, 5}},
	{{3, 4}, {2, 8}},
	{{7, 8}, {0, 3}, {4, 2}},
	{{6, 8}, {1, 4}},
	{{6, 7}, {2, 5}, {0, 4}},
}

// WinnerAt returns the piece that completes a line through cell c, or
// Empty. Only lines through the cell written last can newly become
// winning, so this checks at most four lines instead of rescanning the
// whole board.
func (b *Board) WinnerAt(c int) Piece {
	p := b[c]
	for _, pr := range linePairs[c] {
		if p == b[pr[0]] && p == b[pr[1]] {
			return p
		}
	}
	return Empty
}

// Winner scans all eight lines and returns the piece holding a completed
// one, or Empty. The search itself uses WinnerAt; the full scan exists as
// a cross-check and for display callers that have no last-move context.
func (b *Board) Winner() Piece {
	for _, l := range winningLines {
		p := b[l[0]]
		if p != Empty && p == b[l[1]] && p == b[l[2]] {
			return p
		}
	}
	return Empty
}

// IsEmpty returns whether cell c holds no piece.
func (b *Board) IsEmpty(c int) bool {
	return b[c] == Empty
}

// ToDisplayText returns a human-readable rendering of the board.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for r := 0; r < Dim; r++ {
		if r > 0 {
			sb.WriteString("-+-+-\n")
		}
		for c := 0; c < Dim; c++ {
			if c > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(b[r*Dim+c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
