package uttt

import (
	"fmt"
	"strconv"
	"strings"
)

// A move: the board (row, col) within the game, and the cell (row, col) within that board
type Move struct {
	BoardRow, BoardCol uint8
	CellRow, CellCol   uint8
}

// Create a move from 4 coordinates, each of them should be in [0, 2]
func NewMove(boardRow, boardCol, cellRow, cellCol int) Move {
	return Move{
		BoardRow: uint8(boardRow),
		BoardCol: uint8(boardCol),
		CellRow:  uint8(cellRow),
		CellCol:  uint8(cellCol),
	}
}

// Whether all of the coordinates are within the range
func (m Move) Valid() bool {
	return m.BoardRow < BoardSize && m.BoardCol < BoardSize &&
		m.CellRow < BoardSize && m.CellCol < BoardSize
}

// Coordinates of the board this move is played on
func (m Move) Board() Coords {
	return Coords{Row: m.BoardRow, Col: m.BoardCol}
}

// Coordinates of the cell within the board
func (m Move) Cell() Coords {
	return Coords{Row: m.CellRow, Col: m.CellCol}
}

// Get string representation of the move, will contain
// A/B/C 1/2/3 as board coordinates and a/b/c 1/2/3 as cell coordinates,
// for example board (2, 1), cell (0, 2) -> B1c3
//
//	   A   B   C
//	 +---+---+---+
//	 | 0 | 1 | 2 | 3
//	 +---+---+---+
//	 | 3 | 4 | 5 | 2
//	 +---+---+---+
//	 | 6 | 7 | 8 | 1
//	 +---+---+---+
func (m Move) String() string {
	if !m.Valid() {
		return "(none)"
	}

	builder := strings.Builder{}
	builder.WriteByte('A' + m.BoardCol)
	builder.WriteByte('3' - m.BoardRow)
	builder.WriteByte('a' + m.CellCol)
	builder.WriteByte('3' - m.CellRow)
	return builder.String()
}

// Parse a move, either in the notation produced by Move.String (e.g. 'B1c3'),
// or as 4 integers: board row, board col, cell row, cell col (e.g. '2 1 0 2')
func ParseMove(str string) (Move, error) {
	str = strings.TrimSpace(str)

	if fields := strings.Fields(str); len(fields) == 4 {
		var coords [4]int
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v >= BoardSize {
				return Move{}, fmt.Errorf("%w: %q, coordinates must be integers between 0 and 2", ErrInvalidMoveSyntax, str)
			}
			coords[i] = v
		}
		return NewMove(coords[0], coords[1], coords[2], coords[3]), nil
	}

	// Helper function to make sure the coordinates are within the range
	_cmp := func(i int, letter byte) bool {
		return (str[i] >= letter && str[i] <= letter+2) &&
			(str[i+1] >= '1' && str[i+1] <= '3')
	}

	if len(str) == 4 && _cmp(0, 'A') && _cmp(2, 'a') {
		return Move{
			BoardRow: '3' - str[1],
			BoardCol: str[0] - 'A',
			CellRow:  '3' - str[3],
			CellCol:  str[2] - 'a',
		}, nil
	}

	return Move{}, fmt.Errorf("%w: %q, expected e.g. 'B1c3' or '2 1 0 2'", ErrInvalidMoveSyntax, str)
}

// Fixed size list of moves, no allocation needed
type MoveList struct {
	moves [BoardSize * BoardSize * BoardSize * BoardSize]Move
	size  uint8
}

// Reset the movelist, simply sets the size to 0
func (ml *MoveList) Clear() {
	ml.size = 0
}

// Appends a new move to the list of moves
func (ml *MoveList) Append(m Move) {
	ml.moves[ml.size] = m
	ml.size++
}

// Get the actual slice of valid moves
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.size]
}

func (ml *MoveList) Size() int {
	return int(ml.size)
}

func (ml *MoveList) Contains(m Move) bool {
	for _, move := range ml.Slice() {
		if move == m {
			return true
		}
	}
	return false
}

// Convert movelist into a string, uses move notation with space seperation
func (ml *MoveList) String() string {
	if ml.size == 0 {
		return "empty"
	}

	strMoves := make([]string, ml.size)
	for i, m := range ml.Slice() {
		strMoves[i] = m.String()
	}
	return strings.Join(strMoves, " ")
}
