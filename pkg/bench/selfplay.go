package bench

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/super-ttt/pkg/mcts"
	"github.com/IlikeChooros/super-ttt/pkg/uttt"
)

// Random self-play experiment: play 'Games' uniformly random games from the
// starting position and count the outcomes
type SelfPlay struct {
	Games    int
	NThreads int
	// worker i uses Seed + i
	Seed   int64
	Logger zerolog.Logger
}

func NewSelfPlay(games, nThreads int) *SelfPlay {
	return &SelfPlay{
		Games:    games,
		NThreads: nThreads,
		Seed:     mcts.SeedGeneratorFn(),
		Logger:   zerolog.Nop(),
	}
}

// Run the experiment, every worker counts its own games, the results are summed
// once all of them are done. Cancelling the context stops the workers between games
// and returns the context's error with the partial result.
func (sp *SelfPlay) Run(ctx context.Context) (SelfPlayResult, error) {
	if sp.Games <= 0 || sp.NThreads <= 0 {
		return SelfPlayResult{}, fmt.Errorf("self-play: games (%d) and threads (%d) must be positive", sp.Games, sp.NThreads)
	}

	nThreads := min(sp.NThreads, sp.Games)
	results := make([]SelfPlayResult, nThreads)
	group, ctx := errgroup.WithContext(ctx)

	nGames := sp.Games / nThreads
	rest := sp.Games % nThreads
	for i := range nThreads {
		n := nGames
		if i < rest {
			n++
		}

		id := i
		group.Go(func() error {
			r := mcts.NewRand(sp.Seed + int64(id))
			start := uttt.NewGame()
			local := &results[id]

			for range n {
				if err := ctx.Err(); err != nil {
					return err
				}
				path, outcome := mcts.Simulate(start, r)
				local.record(outcome, len(path)-1)
			}

			sp.Logger.Debug().
				Int("worker", id).
				Int("games", local.Games).
				Int("x", local.XWins).
				Int("o", local.OWins).
				Int("ties", local.Ties).
				Msg("worker done")
			return nil
		})
	}

	err := group.Wait()

	total := SelfPlayResult{Workers: nThreads}
	for _, r := range results {
		total.add(r)
	}

	sp.Logger.Info().
		Int("games", total.Games).
		Float64("x_rate", total.XRate()).
		Float64("o_rate", total.ORate()).
		Float64("tie_rate", total.TieRate()).
		Msg("self-play finished")
	return total, err
}
