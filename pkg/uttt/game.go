package uttt

import (
	"fmt"
	"strings"

	"github.com/OneOfOne/xxhash"
)

// Snapshot of the whole 9x9 game. Game is a plain value: it has no pointers
// or slices, so two games are equal (==) iff every square, the side to move
// and the last move coordinates are the same, and it can be used as a map key.
// ApplyMove never modifies the receiver, it returns a new game.
type Game struct {
	boards [BoardSize][BoardSize]Board
	turn   Player
	// cell coordinates of the previous move, which is also the address
	// of the board the next player is sent to
	last    Coords
	hasLast bool
}

// Create a new game, all boards empty, X to move
func NewGame() Game {
	return Game{turn: X}
}

// Get the board at given coordinates
func (g Game) Board(row, col int) Board {
	return g.boards[row][col]
}

// Get the square targeted by given coordinates
func (g Game) At(boardRow, boardCol, cellRow, cellCol int) Square {
	return g.boards[boardRow][boardCol].Squares[cellRow][cellCol]
}

// Player making the next move
func (g Game) Turn() Player {
	return g.turn
}

// Cell coordinates of the previous move, false only for the starting position
func (g Game) LastMove() (Coords, bool) {
	return g.last, g.hasLast
}

// The board the player to move is forced to play in. Returns false when
// the player may choose any unfinished board (no previous move, or
// the board pointed by the previous move is already finished).
func (g Game) ActiveBoard() (Coords, bool) {
	if g.hasLast && g.boards[g.last.Row][g.last.Col].Outcome() == InProgress {
		return g.last, true
	}
	return Coords{}, false
}

// Count the occupied squares of the whole game
func (g Game) Ply() int {
	ply := 0
	for i := range BoardSize * BoardSize {
		for _, row := range g.boards[i/BoardSize][i%BoardSize].Squares {
			for _, sq := range row {
				if sq != Empty {
					ply++
				}
			}
		}
	}
	return ply
}

// Verifies the move, and if it's valid returns the game after it was made.
// The receiver is left untouched. Coordinates outside [0, 2] are a programming error.
func (g Game) ApplyMove(m Move) (Game, error) {
	if !m.Valid() {
		panic(fmt.Sprintf("uttt: move coordinates out of range: %d %d %d %d",
			m.BoardRow, m.BoardCol, m.CellRow, m.CellCol))
	}

	if g.Winner().Terminal() {
		return Game{}, &InvalidMoveError{Move: m, Err: ErrGameOver}
	}

	target := &g.boards[m.BoardRow][m.BoardCol]
	if target.Squares[m.CellRow][m.CellCol] != Empty {
		return Game{}, &InvalidMoveError{Move: m, Err: ErrCellAlreadyOccupied}
	}

	// The opponent's last move sends us to the board (x, y), unless that board
	// is already finished, then we are free to choose
	if at, ok := g.ActiveBoard(); ok && (at.Row != m.BoardRow || at.Col != m.BoardCol) {
		return Game{}, &InvalidMoveError{Move: m, Err: ErrInvalidBoard}
	}

	// Won or tied boards are locked for good
	if target.Outcome().Terminal() {
		return Game{}, &InvalidMoveError{Move: m, Err: ErrBoardLocked}
	}

	target.Squares[m.CellRow][m.CellCol] = Occupied(g.turn)
	g.turn = g.turn.Other()
	g.last = Coords{Row: m.CellRow, Col: m.CellCol}
	g.hasLast = true
	return g, nil
}

// Outcome of the whole game, computed over the outcomes of the 9 boards.
// Only a won board counts for a line, a tied one is dead for both players.
func (g Game) Winner() GameState {
	var cross, circle, finished uint
	for i := range BoardSize * BoardSize {
		switch g.boards[i/BoardSize][i%BoardSize].Outcome() {
		case XWon:
			cross |= 1 << i
		case OWon:
			circle |= 1 << i
		case Tie:
		default:
			continue
		}
		finished |= 1 << i
	}
	return _resolve(cross, circle, finished)
}

// Outcomes of every board, row-major
func (g Game) BoardOutcomes() [BoardSize * BoardSize]GameState {
	var outcomes [BoardSize * BoardSize]GameState
	for i := range outcomes {
		outcomes[i] = g.boards[i/BoardSize][i%BoardSize].Outcome()
	}
	return outcomes
}

const _noLastMove byte = 0xff

// Content hash of the game, consistent with ==
func (g Game) Hash() uint64 {
	var buf [BoardSize*BoardSize*BoardSize*BoardSize + 2]byte
	n := 0
	for _, boardRow := range g.boards {
		for _, board := range boardRow {
			for _, row := range board.Squares {
				for _, sq := range row {
					buf[n] = byte(sq)
					n++
				}
			}
		}
	}

	buf[n] = byte(g.turn)
	buf[n+1] = _noLastMove
	if g.hasLast {
		buf[n+1] = byte(g.last.Index())
	}
	return xxhash.Checksum64(buf[:])
}

// Draws the game as a box drawing grid, one character per cell:
//
//	┏━━━┳━━━┳━━━┓
//	┃X  ┃   ┃   ┃
//	┃ O ┃   ┃   ┃
//	┃   ┃   ┃   ┃
//	┣━━━╋━━━╋━━━┫
//	...
//	┗━━━┻━━━┻━━━┛
func (g Game) String() string {
	builder := strings.Builder{}
	builder.WriteString("┏━━━┳━━━┳━━━┓\n")
	for boardRow := range BoardSize {
		for cellRow := range BoardSize {
			builder.WriteString("┃")
			for boardCol := range BoardSize {
				for cellCol := range BoardSize {
					builder.WriteString(g.boards[boardRow][boardCol].Squares[cellRow][cellCol].String())
				}
				builder.WriteString("┃")
			}
			builder.WriteByte('\n')
		}

		if boardRow == BoardSize-1 {
			builder.WriteString("┗━━━┻━━━┻━━━┛\n")
		} else {
			builder.WriteString("┣━━━╋━━━╋━━━┫\n")
		}
	}
	return builder.String()
}
