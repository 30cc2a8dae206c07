package uttt

import "math/bits"

// Generate all legal moves in given position, in a fixed order: boards row-major,
// then cells row-major. If the last move sends the player to an unfinished board,
// only that board is searched, otherwise every unfinished board is.
// Finished (won or tied) boards never produce moves.
// Returns ErrGameOver if the game has a winner or is tied.
func (g Game) LegalMoves() (MoveList, error) {
	if g.Winner().Terminal() {
		return MoveList{}, ErrGameOver
	}
	return g.legalMoves(), nil
}

// Same as LegalMoves, without the termination check
func (g Game) legalMoves() MoveList {
	var movelist MoveList

	if at, ok := g.ActiveBoard(); ok {
		g.appendBoardMoves(&movelist, at)
		return movelist
	}

	for i := range BoardSize * BoardSize {
		at := coordsFromIndex(i)
		if g.boards[at.Row][at.Col].Outcome() != InProgress {
			continue
		}
		g.appendBoardMoves(&movelist, at)
	}
	return movelist
}

func (g Game) appendBoardMoves(movelist *MoveList, at Coords) {
	cross, circle := g.boards[at.Row][at.Col].bitboards()

	// This is valid, because these 2 bitboards are mutally exclusive
	free := fullMask ^ (cross | circle)
	for free != 0 {
		cell := coordsFromIndex(bits.TrailingZeros(free))
		movelist.Append(Move{
			BoardRow: at.Row,
			BoardCol: at.Col,
			CellRow:  cell.Row,
			CellCol:  cell.Col,
		})
		free &= free - 1
	}
}

// Find the move that turns this game into 'next', false if no single legal move does
func (g Game) MoveTo(next Game) (Move, bool) {
	moves, err := g.LegalMoves()
	if err != nil {
		return Move{}, false
	}

	for _, m := range moves.Slice() {
		if child, err := g.ApplyMove(m); err == nil && child == next {
			return m, true
		}
	}
	return Move{}, false
}
