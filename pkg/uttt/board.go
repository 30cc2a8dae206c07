package uttt

const fullMask uint = 0b111111111

// horizontal, vertical and diagonal patterns as bitboards,
// bit i is the cell (i / 3, i % 3)
var _winningBitboardPatterns = [8]uint{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// A traditional 3x3 tic tac toe board
type Board struct {
	Squares [BoardSize][BoardSize]Square
}

// Get the square at given coordinates
func (b Board) Square(row, col int) Square {
	return b.Squares[row][col]
}

// Convert the board into (cross bitboard, circle bitboard)
func (b Board) bitboards() (cross, circle uint) {
	for i := range BoardSize * BoardSize {
		switch b.Squares[i/BoardSize][i%BoardSize] {
		case CrossSquare:
			cross |= 1 << i
		case CircleSquare:
			circle |= 1 << i
		}
	}
	return cross, circle
}

// Outcome of this board: a 3 in a row wins, regardless of the remaining empty squares,
// a full board without a line is a tie
func (b Board) Outcome() GameState {
	cross, circle := b.bitboards()
	return _resolve(cross, circle, cross|circle)
}

// Evaluate the 8 winning lines on given bitboards, 'filled' tells which
// of the 9 slots can't be played anymore. O's lines are checked first.
func _resolve(cross, circle, filled uint) GameState {
	for _, pattern := range _winningBitboardPatterns {
		if circle&pattern == pattern {
			return OWon
		}
	}
	for _, pattern := range _winningBitboardPatterns {
		if cross&pattern == pattern {
			return XWon
		}
	}

	if filled&fullMask == fullMask {
		return Tie
	}
	return InProgress
}
