package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/super-ttt/pkg/uttt"
)

// Marker of an empty cell the player to move can play in
const TargetMarker = "·"

// Draws games on a terminal, with colors if the terminal supports them
type Renderer struct {
	out *termenv.Output
}

// With 'noColor' set, plain text is written regardless of the terminal
func New(w io.Writer, noColor bool) *Renderer {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) style(s string) termenv.Style {
	return r.out.String(s)
}

func (r *Renderer) square(sq uttt.Square, finished bool) string {
	style := r.style(sq.String())
	switch sq {
	case uttt.CrossSquare:
		style = style.Foreground(r.out.Color("1")).Bold()
	case uttt.CircleSquare:
		style = style.Foreground(r.out.Color("4")).Bold()
	}
	if finished {
		style = style.Faint()
	}
	return style.String()
}

// Draw the game as a grid, with board labels matching the move notation.
// Cells the player to move can play in are marked with TargetMarker,
// finished boards are dimmed.
func (r *Renderer) Board(g uttt.Game) string {
	var targets uttt.MoveList
	if moves, err := g.LegalMoves(); err == nil {
		targets = moves
	}
	outcomes := g.BoardOutcomes()

	builder := strings.Builder{}
	builder.WriteString("  A   B   C\n")
	builder.WriteString("┏━━━┳━━━┳━━━┓\n")
	for boardRow := range uttt.BoardSize {
		for cellRow := range uttt.BoardSize {
			builder.WriteString("┃")
			for boardCol := range uttt.BoardSize {
				finished := outcomes[boardRow*uttt.BoardSize+boardCol].Terminal()
				for cellCol := range uttt.BoardSize {
					m := uttt.NewMove(boardRow, boardCol, cellRow, cellCol)
					if targets.Contains(m) {
						builder.WriteString(r.style(TargetMarker).Foreground(r.out.Color("2")).String())
						continue
					}
					builder.WriteString(r.square(g.At(boardRow, boardCol, cellRow, cellCol), finished))
				}
				builder.WriteString("┃")
			}
			if cellRow == 1 {
				fmt.Fprintf(&builder, " %d", uttt.BoardSize-boardRow)
			}
			builder.WriteByte('\n')
		}

		if boardRow == uttt.BoardSize-1 {
			builder.WriteString("┗━━━┻━━━┻━━━┛\n")
		} else {
			builder.WriteString("┣━━━╋━━━╋━━━┫\n")
		}
	}
	return builder.String()
}

// One line summary: the result, or the player to move and where
func (r *Renderer) Status(g uttt.Game) string {
	if state := g.Winner(); state.Terminal() {
		if winner, ok := state.Winner(); ok {
			return r.style(fmt.Sprintf("%v won", winner)).Bold().String()
		}
		return r.style("Tie").Bold().String()
	}

	where := "any board"
	if at, ok := g.ActiveBoard(); ok {
		where = fmt.Sprintf("board %c%d", 'A'+at.Col, uttt.BoardSize-int(at.Row))
	}
	return fmt.Sprintf("Current player: %s (%s)", r.square(uttt.Occupied(g.Turn()), false), where)
}

// Write the board followed by the status line
func (r *Renderer) WriteGame(g uttt.Game) error {
	_, err := fmt.Fprintf(r.out, "%s%s\n", r.Board(g), r.Status(g))
	return err
}

// Write a single line of text
func (r *Renderer) Println(a ...any) error {
	_, err := fmt.Fprintln(r.out, a...)
	return err
}
