package uttt

// The side length of a board *and* of the game, this should never change
const BoardSize = 3

// Either X or O, X always starts
type Player uint8

const (
	X Player = iota
	O
)

// Get the opponent of this player
func (p Player) Other() Player {
	return p ^ 1
}

func (p Player) String() string {
	if p == O {
		return "O"
	}
	return "X"
}

// Content of a single cell of a board, the zero value is Empty
type Square uint8

const (
	Empty Square = iota
	CrossSquare
	CircleSquare
)

// Square occupied by given player
func Occupied(p Player) Square {
	return Square(p) + 1
}

// Get the owner of this square, returns false if it's empty
func (s Square) Player() (Player, bool) {
	switch s {
	case CrossSquare:
		return X, true
	case CircleSquare:
		return O, true
	}
	return X, false
}

func (s Square) String() string {
	switch s {
	case CrossSquare:
		return "X"
	case CircleSquare:
		return "O"
	}
	return " "
}

// Outcome of a board or of the whole game
type GameState uint8

const (
	InProgress GameState = iota
	Tie
	XWon
	OWon
)

// Winning state for the given player
func Won(p Player) GameState {
	if p == O {
		return OWon
	}
	return XWon
}

// Returns the winner, if there is one
func (s GameState) Winner() (Player, bool) {
	switch s {
	case XWon:
		return X, true
	case OWon:
		return O, true
	}
	return X, false
}

// Tie or a win, no more moves can be made
func (s GameState) Terminal() bool {
	return s != InProgress
}

func (s GameState) String() string {
	switch s {
	case Tie:
		return "Tie"
	case XWon:
		return "X won"
	case OWon:
		return "O won"
	}
	return "In progress"
}

// Row and column of a board within the game, or of a cell within a board
type Coords struct {
	Row, Col uint8
}

// Index of these coordinates in a row-major 3x3 grid
func (c Coords) Index() int {
	return int(c.Row)*BoardSize + int(c.Col)
}

func coordsFromIndex(i int) Coords {
	return Coords{Row: uint8(i / BoardSize), Col: uint8(i % BoardSize)}
}
