package bench

import (
	"github.com/rs/zerolog"
)

// Progress callbacks of the arena. Workers call them from their own goroutines,
// so implementations must be safe for concurrent use.
type ListenerLike interface {
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
}

// Does nothing
type DefaultListener struct{}

func (DefaultListener) OnMoveMade(VersusWorkerInfo)     {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo)       {}

// Reports finished games and the summary to a logger, moves are logged at trace level
type LogListener struct {
	Logger zerolog.Logger
}

func NewLogListener(logger zerolog.Logger) *LogListener {
	return &LogListener{Logger: logger}
}

func (l *LogListener) OnMoveMade(info VersusWorkerInfo) {
	if len(info.Moves) == 0 {
		return
	}
	l.Logger.Trace().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames+1).
		Int("ply", info.GameMoveNum).
		Stringer("move", info.Moves[len(info.Moves)-1]).
		Msg("move")
}

func (l *LogListener) OnFinishedGame(info VersusWorkerInfo) {
	l.Logger.Debug().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames).
		Int("of", info.NGames).
		Int("moves", info.GameMoveNum).
		Stringer("result", info.Position.Winner()).
		Msg("game finished")
}

func (l *LogListener) OnFinishedWork(info VersusWorkerInfo) {
	l.Logger.Info().
		Int("worker", info.WorkerID).
		Int("games", info.FinishedGames).
		Int(info.P1Name, info.P1Wins).
		Int(info.P2Name, info.P2Wins).
		Int("draws", info.Draws).
		Msg("worker done")
}

func (l *LogListener) Summary(summary VersusSummaryInfo) {
	l.Logger.Info().
		Int("games", summary.TotalGames).
		Int(summary.P1Name, summary.P1Wins).
		Int(summary.P2Name, summary.P2Wins).
		Int("draws", summary.Draws).
		Int("first_to_move_wins", summary.FirstToMoveWins).
		Int("second_to_move_wins", summary.SecondToMoveWins).
		Msg("arena finished")
}
