package bench

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/super-ttt/pkg/mcts"
	"github.com/IlikeChooros/super-ttt/pkg/uttt"
)

/*
Arena benchmark subpackage, allows to play a series of games between two
different agents (MCTS engines with different budgets, or random players).
*/

type VersusArena struct {
	Player1  AgentSpec
	Player2  AgentSpec
	NGames   int
	NThreads int
	Position uttt.Game
	// Base seed, worker i uses Seed + 2*i and Seed + 2*i + 1 for its agents
	Seed   int64
	Logger zerolog.Logger
}

func NewVersusArena(p1, p2 AgentSpec) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NThreads: 2,
		Position: uttt.NewGame(),
		Seed:     mcts.SeedGeneratorFn(),
		Logger:   zerolog.Nop(),
	}
}

func (va *VersusArena) Setup(nGames, nThreads int) *VersusArena {
	va.NGames = nGames
	va.NThreads = nThreads
	return va
}

// Play all games, distributed equally between the workers. Players alternate
// the first move: player 1 starts in even games. Cancelling the context
// stops the workers between moves, the games finished so far are still summarized.
func (va *VersusArena) Run(ctx context.Context, listener ListenerLike) (VersusSummaryInfo, error) {
	if va.NGames <= 0 || va.NThreads <= 0 {
		return VersusSummaryInfo{}, fmt.Errorf("arena: games (%d) and threads (%d) must be positive", va.NGames, va.NThreads)
	}
	if va.Position.Winner().Terminal() {
		return VersusSummaryInfo{}, fmt.Errorf("arena: starting position is already finished")
	}
	if listener == nil {
		listener = DefaultListener{}
	}

	nThreads := min(va.NThreads, va.NGames)
	results := make([]VersusArenaStats, nThreads)
	group, ctx := errgroup.WithContext(ctx)

	nGames := va.NGames / nThreads
	rest := va.NGames % nThreads
	for i := range nThreads {
		delta := 0
		if rest > 0 {
			delta = 1
			rest--
		}

		id, n := i, nGames+delta
		group.Go(func() error {
			stats, err := va.worker(ctx, id, n, listener)
			results[id] = stats
			return err
		})
	}

	err := group.Wait()

	total := VersusArenaStats{}
	for _, r := range results {
		total.add(r)
	}

	summary := VersusSummaryInfo{
		TotalGames:       total.Total(),
		P1Wins:           total.P1Wins,
		P2Wins:           total.P2Wins,
		FirstToMoveWins:  total.FirstToMoveWins,
		SecondToMoveWins: total.SecondToMoveWins,
		Draws:            total.Draws,
		Workers:          nThreads,
		P1Name:           va.Player1.String(),
		P2Name:           va.Player2.String(),
	}
	listener.Summary(summary)
	return summary, err
}

func (va *VersusArena) worker(ctx context.Context, id, nGames int, listener ListenerLike) (VersusArenaStats, error) {
	logger := va.Logger.With().Int("worker", id).Logger()
	p1 := va.Player1.New(va.Seed+int64(2*id), logger)
	p2 := va.Player2.New(va.Seed+int64(2*id+1), logger)

	info := VersusWorkerInfo{
		WorkerID: id,
		NGames:   nGames,
		P1Name:   p1.Name(),
		P2Name:   p2.Name(),
	}

	for i := range nGames {
		p1WentFirst := i%2 == 0
		first, second := p1, p2
		if !p1WentFirst {
			first, second = p2, p1
		}

		final, moves, err := va.playGame(ctx, first, second, &info, listener)
		if err != nil {
			return info.VersusArenaStats, err
		}

		outcome := computeOutcome(final, va.Position.Turn())
		info.record(toAgentResult(outcome, p1WentFirst), outcome)
		info.FinishedGames++
		info.Moves = moves
		info.GameMoveNum = len(moves)
		info.Position = final
		listener.OnFinishedGame(info)
	}

	listener.OnFinishedWork(info)
	return info.VersusArenaStats, nil
}

// Play one game from the arena's starting position, 'first' makes the first move
func (va *VersusArena) playGame(ctx context.Context, first, second Agent, info *VersusWorkerInfo, listener ListenerLike) (uttt.Game, []uttt.Move, error) {
	first.Reset()
	second.Reset()

	g := va.Position
	moves := make([]uttt.Move, 0, 81)
	agents := [2]Agent{first, second}

	for turn := 0; !g.Winner().Terminal(); turn ^= 1 {
		if err := ctx.Err(); err != nil {
			return g, moves, err
		}

		next := agents[turn].Play(g)
		m, ok := g.MoveTo(next)
		if !ok {
			return g, moves, fmt.Errorf("arena: %s returned a position that is not reachable in one move:\n%v", agents[turn].Name(), next)
		}

		g = next
		moves = append(moves, m)

		info.Moves = moves
		info.GameMoveNum = len(moves)
		info.Position = g
		listener.OnMoveMade(*info)
	}
	return g, moves, nil
}
