package deal

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/tichudeal/internal/deck"
	"github.com/lox/tichudeal/internal/randutil"
)

const (
	// NumPlayers is the size of a Tichu table
	NumPlayers = 4

	DefaultRounds         = 36
	DefaultInitialCount   = 8
	DefaultRemainingCount = 6
)

// DefaultPlayers returns the standard seat order
func DefaultPlayers() []string {
	return []string{"North", "South", "East", "West"}
}

// Options controls a batch of rounds
type Options struct {
	Rounds         int
	Seed           int64
	Players        []string
	InitialCount   int
	RemainingCount int

	// Concurrency bounds how many rounds are dealt at once (0 = NumCPU)
	Concurrency int

	// Logger receives per-round debug lines when set
	Logger *log.Logger
}

// DefaultOptions returns options for a standard 36-board batch
func DefaultOptions() Options {
	return Options{
		Rounds:         DefaultRounds,
		Players:        DefaultPlayers(),
		InitialCount:   DefaultInitialCount,
		RemainingCount: DefaultRemainingCount,
	}
}

// Validate checks that the options describe an exact deal of the deck
func (o Options) Validate() error {
	if o.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", o.Rounds)
	}
	if o.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", o.Concurrency)
	}
	return o.validateDeal()
}

func (o Options) validateDeal() error {
	if len(o.Players) != NumPlayers {
		return fmt.Errorf("need exactly %d players, got %d", NumPlayers, len(o.Players))
	}
	seen := make(map[string]bool, len(o.Players))
	for _, p := range o.Players {
		if p == "" {
			return errors.New("player label must not be empty")
		}
		if seen[p] {
			return fmt.Errorf("%w: %q", ErrDuplicatePlayer, p)
		}
		seen[p] = true
	}
	if o.InitialCount <= 0 {
		return fmt.Errorf("initial count must be positive, got %d", o.InitialCount)
	}
	if o.RemainingCount < 0 {
		return fmt.Errorf("remaining count must not be negative, got %d", o.RemainingCount)
	}
	if total := (o.InitialCount + o.RemainingCount) * len(o.Players); total != deck.Size {
		return fmt.Errorf("%d players receiving %d+%d cards deal %d cards, deck has %d",
			len(o.Players), o.InitialCount, o.RemainingCount, total, deck.Size)
	}
	return nil
}

// DealRound shuffles a fresh deck with rng, deals both phases and
// returns the sorted hands in seat order.
func DealRound(rng *rand.Rand, opts Options) ([]Hand, error) {
	if err := opts.validateDeal(); err != nil {
		return nil, err
	}

	d := deck.New(rng)

	hands, rest, err := DealInitial(d, opts.Players, opts.InitialCount)
	if err != nil {
		return nil, fmt.Errorf("initial deal: %w", err)
	}
	hands, rest, err = DealRemaining(rest, hands, opts.RemainingCount)
	if err != nil {
		return nil, fmt.Errorf("remaining deal: %w", err)
	}
	if !rest.IsEmpty() {
		return nil, fmt.Errorf("%d cards left undealt", rest.Len())
	}

	for i := range hands {
		hands[i] = hands[i].Sorted()
	}
	return hands, nil
}

// Generate deals opts.Rounds independent rounds. Round seeds are drawn
// from a master generator in board order before any dealing starts, so
// the batch depends only on opts.Seed.
func Generate(ctx context.Context, opts Options) ([]Round, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	limit := opts.Concurrency
	if limit == 0 {
		limit = runtime.NumCPU()
	}

	seeds := randutil.Seeds(opts.Seed, opts.Rounds)
	rounds := make([]Round, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, seed := range seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hands, err := DealRound(randutil.New(seed), opts)
			if err != nil {
				return fmt.Errorf("board %d: %w", i+1, err)
			}
			rounds[i] = Round{Board: i + 1, Seed: seed, Hands: hands}
			if opts.Logger != nil {
				opts.Logger.Debug("Dealt round", "board", i+1, "seed", seed)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may stop early without any goroutine reporting it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rounds, nil
}
