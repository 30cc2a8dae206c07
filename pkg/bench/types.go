package bench

import (
	"fmt"

	"github.com/IlikeChooros/super-ttt/pkg/mcts"
	"github.com/IlikeChooros/super-ttt/pkg/uttt"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

// Tallies of played games, each worker keeps its own copy,
// they are summed up once the work is done
type VersusArenaStats struct {
	P1Wins           int
	P2Wins           int
	Draws            int
	FirstToMoveWins  int
	SecondToMoveWins int
}

func (vas VersusArenaStats) Total() int {
	return vas.P1Wins + vas.P2Wins + vas.Draws
}

func (vas *VersusArenaStats) add(other VersusArenaStats) {
	vas.P1Wins += other.P1Wins
	vas.P2Wins += other.P2Wins
	vas.Draws += other.Draws
	vas.FirstToMoveWins += other.FirstToMoveWins
	vas.SecondToMoveWins += other.SecondToMoveWins
}

func (vas *VersusArenaStats) record(result VersusMatchResult, outcome GameOutcome) {
	switch result {
	case VersusPl1Win:
		vas.P1Wins++
	case VersusPl2Win:
		vas.P2Wins++
	default:
		vas.Draws++
	}

	if !outcome.IsDraw {
		if outcome.FirstPlayerWon {
			vas.FirstToMoveWins++
		} else {
			vas.SecondToMoveWins++
		}
	}
}

type VersusWorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []uttt.Move
	Position      uttt.Game
	VersusArenaStats
	P1Name string
	P2Name string
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

func (s VersusSummaryInfo) String() string {
	return fmt.Sprintf("%s vs %s: %d games, %d-%d, %d draws (first to move won %d, second %d)",
		s.P1Name, s.P2Name, s.TotalGames, s.P1Wins, s.P2Wins, s.Draws,
		s.FirstToMoveWins, s.SecondToMoveWins)
}

// represents result from the first-player's perspective in a single game
type GameOutcome struct {
	FirstPlayerWon bool
	IsDraw         bool
}

// maps a game outcome to which agent won, given player assignments
func toAgentResult(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	if outcome.IsDraw {
		return VersusDraw
	}

	if p1WentFirst == outcome.FirstPlayerWon {
		return VersusPl1Win
	}
	return VersusPl2Win
}

// determines winner based on the final position and the side that made the first move
func computeOutcome(final uttt.Game, firstToMove uttt.Player) GameOutcome {
	state := final.Winner()
	if !state.Terminal() {
		panic("computeOutcome: position not terminated")
	}

	winner, ok := state.Winner()
	if !ok {
		return GameOutcome{IsDraw: true}
	}
	return GameOutcome{FirstPlayerWon: winner == firstToMove}
}

// Aggregated results of random self-play games
type SelfPlayResult struct {
	Games int `json:"games"`
	// Outcomes from X's perspective, X always moves first
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Ties  int `json:"ties"`
	// Total number of moves played in all games
	Plies   int `json:"plies"`
	Workers int `json:"workers"`
}

func (r *SelfPlayResult) record(outcome mcts.Outcome, plies int) {
	r.Games++
	r.Plies += plies
	switch outcome {
	case mcts.XWins:
		r.XWins++
	case mcts.OWins:
		r.OWins++
	default:
		r.Ties++
	}
}

func (r *SelfPlayResult) add(other SelfPlayResult) {
	r.Games += other.Games
	r.XWins += other.XWins
	r.OWins += other.OWins
	r.Ties += other.Ties
	r.Plies += other.Plies
}

func rate(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

func (r SelfPlayResult) XRate() float64 {
	return rate(r.XWins, r.Games)
}

func (r SelfPlayResult) ORate() float64 {
	return rate(r.OWins, r.Games)
}

func (r SelfPlayResult) TieRate() float64 {
	return rate(r.Ties, r.Games)
}

// Average game length in moves
func (r SelfPlayResult) AvgPlies() float64 {
	return rate(r.Plies, r.Games)
}

func (r SelfPlayResult) String() string {
	return fmt.Sprintf("First player wins: %.4f\nSecond player wins: %.4f\nTies: %.4f\nGames: %d, average length: %.1f moves",
		r.XRate(), r.ORate(), r.TieRate(), r.Games, r.AvgPlies())
}
