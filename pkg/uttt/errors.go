package uttt

import (
	"errors"
	"fmt"
)

var (
	// The specified cell is already occupied
	ErrCellAlreadyOccupied = errors.New("the specified cell is already occupied")
	// The specified board does not match the coordinates of the opponent's last move
	ErrInvalidBoard = errors.New("the specified board does not match the coordinates of the opponent's last move")
	// The specified board is already won or tied, it's an ErrInvalidBoard as well
	ErrBoardLocked = fmt.Errorf("%w: the specified board is already finished", ErrInvalidBoard)
	// There is a winner or a tie, no move can be made
	ErrGameOver = errors.New("the game is already over")

	ErrInvalidNotation   = errors.New("invalid notation")
	ErrInvalidMoveSyntax = errors.New("invalid move syntax")
)

// Making a move wasn't possible, use errors.Is with one of the
// sentinel errors above to find out why
type InvalidMoveError struct {
	Move Move
	Err  error
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("move %s (%d %d %d %d): %v",
		e.Move, e.Move.BoardRow, e.Move.BoardCol, e.Move.CellRow, e.Move.CellCol, e.Err)
}

func (e *InvalidMoveError) Unwrap() error {
	return e.Err
}
