package uttt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	xRow     = "xxx6"
	oRow     = "ooo6"
	tiedCell = "xoxxoxoxo"
)

func mustNotation(t *testing.T, notation string) Game {
	t.Helper()
	g, err := FromNotation(notation)
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	assert.Equal(t, X, g.Turn())
	_, ok := g.LastMove()
	assert.False(t, ok)
	assert.Equal(t, InProgress, g.Winner())
	assert.Equal(t, 0, g.Ply())
	assert.Equal(t, StartingPosition, g.Notation())

	moves, err := g.LegalMoves()
	require.NoError(t, err)
	assert.Equal(t, 81, moves.Size())
	// Reference order: boards row-major, then cells row-major
	assert.Equal(t, NewMove(0, 0, 0, 0), moves.Slice()[0])
	assert.Equal(t, NewMove(0, 0, 0, 1), moves.Slice()[1])
	assert.Equal(t, NewMove(0, 1, 0, 0), moves.Slice()[9])
	assert.Equal(t, NewMove(2, 2, 2, 2), moves.Slice()[80])
}

func TestApplyMoveSequence(t *testing.T) {
	// Given: a new game
	g := NewGame()

	// When: a short legal sequence is played
	for _, m := range []Move{
		NewMove(0, 0, 1, 1),
		NewMove(1, 1, 0, 0),
		NewMove(0, 0, 2, 2),
		NewMove(2, 2, 0, 2),
		NewMove(0, 2, 1, 0),
	} {
		var err error
		g, err = g.ApplyMove(m)
		require.NoError(t, err, "move %s", m)
	}

	// Then: the next player is sent to the board (1, 0)
	last, ok := g.LastMove()
	require.True(t, ok)
	assert.Equal(t, Coords{Row: 1, Col: 0}, last)
	assert.Equal(t, O, g.Turn())
	assert.Equal(t, 5, g.Ply())
	assert.Equal(t, Occupied(X), g.At(0, 2, 1, 0))

	active, ok := g.ActiveBoard()
	require.True(t, ok)
	assert.Equal(t, Coords{Row: 1, Col: 0}, active)
}

func TestApplyMoveIsPure(t *testing.T) {
	g := NewGame()
	before := g

	a, err := g.ApplyMove(NewMove(1, 1, 1, 1))
	require.NoError(t, err)
	b, err := g.ApplyMove(NewMove(1, 1, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, before, g, "receiver must not change")
	assert.Equal(t, Empty, g.At(1, 1, 1, 1))
}

func TestApplyMoveErrors(t *testing.T) {
	g, err := NewGame().ApplyMove(NewMove(0, 0, 1, 1))
	require.NoError(t, err)

	t.Run("CellAlreadyOccupied", func(t *testing.T) {
		// board (1, 1) is forced, play there and come back to (0, 0), cell (1, 1)
		g2, err := g.ApplyMove(NewMove(1, 1, 0, 0))
		require.NoError(t, err)
		_, err = g2.ApplyMove(NewMove(0, 0, 1, 1))
		require.ErrorIs(t, err, ErrCellAlreadyOccupied)

		var moveErr *InvalidMoveError
		require.ErrorAs(t, err, &moveErr)
		assert.Equal(t, NewMove(0, 0, 1, 1), moveErr.Move)
	})

	t.Run("InvalidBoard", func(t *testing.T) {
		_, err := g.ApplyMove(NewMove(2, 2, 0, 0))
		require.ErrorIs(t, err, ErrInvalidBoard)
		assert.NotErrorIs(t, err, ErrCellAlreadyOccupied)
	})

	t.Run("BoardLocked", func(t *testing.T) {
		// X has the top row of board (0, 0), O was sent there, so it's free to choose
		locked := mustNotation(t, xRow+"/oo7/9/9/9/9/9/9/9 o 0")
		_, err := locked.ApplyMove(NewMove(0, 0, 2, 2))
		require.ErrorIs(t, err, ErrBoardLocked)
		require.ErrorIs(t, err, ErrInvalidBoard)

		_, err = locked.ApplyMove(NewMove(0, 1, 2, 2))
		require.NoError(t, err)
	})

	t.Run("GameOver", func(t *testing.T) {
		over := mustNotation(t, xRow+"/"+xRow+"/"+xRow+"/9/9/9/9/9/9 o 0")
		require.Equal(t, XWon, over.Winner())
		_, err := over.ApplyMove(NewMove(1, 1, 1, 1))
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = g.ApplyMove(NewMove(3, 0, 0, 0)) })
	})
}

func TestBoardOutcome(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  GameState
	}{
		{"Empty", "9", InProgress},
		{"Row", xRow, XWon},
		{"Column", "o2o2o2", OWon},
		{"Diagonal", "x3x3x", XWon},
		{"AntiDiagonal", "2o1o1o2", OWon},
		{"WinWithEmptySquares", "3ooo3", OWon},
		{"Tie", tiedCell, Tie},
		{"Unfinished", "xox1ox1x1", InProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNotation(t, tt.board+"/9/9/9/9/9/9/9/9 x -")
			assert.Equal(t, tt.want, g.Board(0, 0).Outcome())
		})
	}
}

func TestLockedBoardIsNeverOffered(t *testing.T) {
	// X occupies (0,0), (0,1), (0,2) of the board (0, 0), last move points at it
	for _, side := range []string{"x", "o"} {
		t.Run(side, func(t *testing.T) {
			g := mustNotation(t, xRow+"/o8/o8/9/9/9/9/9/9 "+side+" 0")
			require.Equal(t, XWon, g.Board(0, 0).Outcome())

			_, ok := g.ActiveBoard()
			require.False(t, ok, "won board can't be the active one")

			moves, err := g.LegalMoves()
			require.NoError(t, err)
			for _, m := range moves.Slice() {
				assert.NotEqual(t, Coords{}, m.Board(), "move %s targets the locked board", m)
			}
			// 9 boards, 1 locked, 2 cells taken elsewhere
			assert.Equal(t, 8*9-2, moves.Size())
		})
	}
}

func TestTiedBoardIsLocked(t *testing.T) {
	g := mustNotation(t, tiedCell+"/9/9/9/9/9/9/9/9 o 4")
	// board (1, 1) is active
	moves, err := g.LegalMoves()
	require.NoError(t, err)
	assert.Equal(t, 9, moves.Size())

	// Send the opponent to the tied board (0, 0)
	g, err = g.ApplyMove(NewMove(1, 1, 0, 0))
	require.NoError(t, err)
	_, ok := g.ActiveBoard()
	assert.False(t, ok)

	moves, err = g.LegalMoves()
	require.NoError(t, err)
	for _, m := range moves.Slice() {
		assert.NotEqual(t, Coords{}, m.Board())
	}
}

func TestGameWinner(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     GameState
	}{
		{"Start", StartingPosition, InProgress},
		{"RowOfWonBoards", xRow + "/" + xRow + "/" + xRow + "/9/9/9/9/9/9 o 0", XWon},
		{"DiagonalOfWonBoards", oRow + "/9/9/9/" + oRow + "/9/9/9/" + oRow + " x 2", OWon},
		{"TiedBoardBreaksLine", xRow + "/" + tiedCell + "/" + xRow + "/9/9/9/9/9/9 o 0", InProgress},
		{
			"AllTied",
			tiedCell + "/" + tiedCell + "/" + tiedCell + "/" +
				tiedCell + "/" + tiedCell + "/" + tiedCell + "/" +
				tiedCell + "/" + tiedCell + "/" + tiedCell + " x 4",
			Tie,
		},
		{
			// X O X / X O X / O X O, no line for either player
			"AllFinishedNoLine",
			xRow + "/" + oRow + "/" + xRow + "/" +
				xRow + "/" + oRow + "/" + xRow + "/" +
				oRow + "/" + xRow + "/" + oRow + " x 4",
			Tie,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNotation(t, tt.notation)
			assert.Equal(t, tt.want, g.Winner())

			if tt.want.Terminal() {
				moves, err := g.LegalMoves()
				require.ErrorIs(t, err, ErrGameOver)
				assert.Zero(t, moves.Size())
			}
		})
	}
}

// Plays random games and checks the move generator invariants on every visited state
func TestLegalMovesOnRandomGames(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for game := 0; game < 50; game++ {
		g := NewGame()
		for ply := 0; !g.Winner().Terminal(); ply++ {
			require.Less(t, ply, 81, "game longer than 81 plies")

			moves, err := g.LegalMoves()
			require.NoError(t, err)
			require.NotZero(t, moves.Size(), "in progress game without moves:\n%s", g)

			active, restricted := g.ActiveBoard()
			for _, m := range moves.Slice() {
				require.Equal(t, Empty, g.At(int(m.BoardRow), int(m.BoardCol), int(m.CellRow), int(m.CellCol)))
				require.Equal(t, InProgress, g.Board(int(m.BoardRow), int(m.BoardCol)).Outcome())
				if restricted {
					require.Equal(t, active, m.Board())
				}

				next, err := g.ApplyMove(m)
				require.NoError(t, err, "generated move %s rejected", m)
				require.Equal(t, g.Turn().Other(), next.Turn())
			}

			g, err = g.ApplyMove(moves.Slice()[r.Intn(moves.Size())])
			require.NoError(t, err)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := NewGame()
	for !g.Winner().Terminal() {
		parsed := mustNotation(t, g.Notation())
		require.Equal(t, g, parsed)
		require.Equal(t, g.Hash(), parsed.Hash())

		moves, err := g.LegalMoves()
		require.NoError(t, err)
		g, err = g.ApplyMove(moves.Slice()[r.Intn(moves.Size())])
		require.NoError(t, err)
	}
}

func TestFromNotationErrors(t *testing.T) {
	for _, notation := range []string{
		"",
		"9/9/9/9/9/9/9/9 x -",
		"9/9/9/9/9/9/9/9/9 z -",
		"9/9/9/9/9/9/9/9/9 x 9",
		"9/9/9/9/9/9/9/9/8 x -",
		"9/9/9/9/9/9/9/9/xxxxxxxxxx x -",
		"9/9/9/9/9/9/9/9/4q4 x -",
	} {
		_, err := FromNotation(notation)
		assert.ErrorIs(t, err, ErrInvalidNotation, "notation %q", notation)
	}

	g, err := FromNotation("startpos")
	require.NoError(t, err)
	assert.Equal(t, NewGame(), g)
}

func TestHashDistinguishesTurnAndLastMove(t *testing.T) {
	a := mustNotation(t, "4x4/9/9/9/9/9/9/9/9 o 4")
	b := mustNotation(t, "4x4/9/9/9/9/9/9/9/9 x 4")
	c := mustNotation(t, "4x4/9/9/9/9/9/9/9/9 o -")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestGameString(t *testing.T) {
	g, err := NewGame().ApplyMove(NewMove(0, 0, 0, 0))
	require.NoError(t, err)
	g, err = g.ApplyMove(NewMove(0, 0, 1, 1))
	require.NoError(t, err)

	want := "┏━━━┳━━━┳━━━┓\n" +
		"┃X  ┃   ┃   ┃\n" +
		"┃ O ┃   ┃   ┃\n" +
		"┃   ┃   ┃   ┃\n" +
		"┣━━━╋━━━╋━━━┫\n" +
		"┃   ┃   ┃   ┃\n" +
		"┃   ┃   ┃   ┃\n" +
		"┃   ┃   ┃   ┃\n" +
		"┣━━━╋━━━╋━━━┫\n" +
		"┃   ┃   ┃   ┃\n" +
		"┃   ┃   ┃   ┃\n" +
		"┃   ┃   ┃   ┃\n" +
		"┗━━━┻━━━┻━━━┛\n"
	assert.Equal(t, want, g.String())
}
