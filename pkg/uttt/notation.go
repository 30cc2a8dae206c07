package uttt

import (
	"fmt"
	"strings"
)

const StartingPosition string = "9/9/9/9/9/9/9/9/9 x -"

// string notation for the ultimate tic tac toe game,
// much like the FEN representation of a chessboard:
//
//	B/B/B/B/B/B/B/B/B <turn> <last move>
//
// where `B` is one board (boards in row-major order), with cells in row-major order,
// 'x' and 'o' for the pieces and a digit for a run of empty cells. For example:
//
//	o | x | x
//	---------
//	x | o |
//	---------
//	o |   |
//
// is written as:
//
//	oxxxo1o2
//
// <turn> - either 'x' or 'o'
//
// <last move> - row-major index (0-8) of the cell played by the previous move, that is
// the board the player to move is sent to, or '-' if there is no previous move
//
// Examples:
//
// * 9/9/9/9/9/9/9/9/9 x -
//
// * 4x4/9/9/9/o8/9/9/9/9 x 0
func (g Game) Notation() string {
	builder := strings.Builder{}

	for i := range BoardSize * BoardSize {
		board := g.boards[i/BoardSize][i%BoardSize]

		counter := 0
		for j := range BoardSize * BoardSize {
			switch sq := board.Squares[j/BoardSize][j%BoardSize]; sq {
			case CrossSquare, CircleSquare:
				// Write the counter, and current piece
				if counter > 0 {
					builder.WriteByte('0' + byte(counter))
					counter = 0
				}
				if sq == CrossSquare {
					builder.WriteByte('x')
				} else {
					builder.WriteByte('o')
				}
			default:
				counter++
			}
		}

		if counter > 0 {
			builder.WriteByte('0' + byte(counter))
		}
		if i != BoardSize*BoardSize-1 {
			builder.WriteByte('/')
		}
	}

	builder.WriteByte(' ')
	if g.turn == O {
		builder.WriteByte('o')
	} else {
		builder.WriteByte('x')
	}

	builder.WriteByte(' ')
	if g.hasLast {
		builder.WriteByte('0' + byte(g.last.Index()))
	} else {
		builder.WriteByte('-')
	}

	return builder.String()
}

// Create the game from given notation string, "startpos" is accepted
// as an alias of the starting position
func FromNotation(notation string) (Game, error) {
	if notation == "startpos" {
		notation = StartingPosition
	}

	sections := strings.Fields(notation)
	if len(sections) != 3 {
		return Game{}, fmt.Errorf("%w: expected 3 space separated sections, got %d", ErrInvalidNotation, len(sections))
	}

	boards := strings.Split(sections[0], "/")
	if len(boards) != BoardSize*BoardSize {
		return Game{}, fmt.Errorf("%w: expected %d boards, got %d", ErrInvalidNotation, BoardSize*BoardSize, len(boards))
	}

	var g Game
	for i, str := range boards {
		board := &g.boards[i/BoardSize][i%BoardSize]
		cell := 0

		for j, v := range str {
			switch {
			case v == 'x' || v == 'o':
				if cell >= BoardSize*BoardSize {
					return Game{}, fmt.Errorf("%w: too many cells in board %d", ErrInvalidNotation, i)
				}
				board.Squares[cell/BoardSize][cell%BoardSize] = pieceFromRune(v)
				cell++
			case '1' <= v && v <= '9':
				// Number, meaning skip given number of squares
				cell += int(v - '0')
				if cell > BoardSize*BoardSize {
					return Game{}, fmt.Errorf("%w: invalid number of skip squares in board %d, at index %d", ErrInvalidNotation, i, j)
				}
			default:
				return Game{}, fmt.Errorf("%w: unexpected token %q in board %d", ErrInvalidNotation, v, i)
			}
		}

		if cell != BoardSize*BoardSize {
			return Game{}, fmt.Errorf("%w: invalid number of squares within board %d", ErrInvalidNotation, i)
		}
	}

	switch sections[1] {
	case "x":
		g.turn = X
	case "o":
		g.turn = O
	default:
		return Game{}, fmt.Errorf("%w: invalid side %q", ErrInvalidNotation, sections[1])
	}

	switch last := sections[2]; {
	case last == "-":
	case len(last) == 1 && last[0] >= '0' && last[0] <= '8':
		g.last = coordsFromIndex(int(last[0] - '0'))
		g.hasLast = true
	default:
		return Game{}, fmt.Errorf("%w: invalid last move %q, expected a digit 0-8 or '-'", ErrInvalidNotation, last)
	}

	return g, nil
}

func pieceFromRune(r rune) Square {
	switch r {
	case 'x':
		return CrossSquare
	case 'o':
		return CircleSquare
	}
	return Empty
}
