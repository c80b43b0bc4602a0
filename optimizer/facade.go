// Package optimizer is the public entry point of the route finder:
// Optimize(ctx, map, company, trains, bonuses, criteria) runs the full
// pipeline — per-anchor path enumeration, composite joining, conflict-
// bounded combination search, train-type permutation, and scoring — and
// returns the highest-revenue BestAssignment.
//
// The facade validates inputs first, then runs a deterministic sequence
// of stages with no partial results on failure.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/railcore/hexroute/boardmap"
	"github.com/railcore/hexroute/pathbuilder"
	"github.com/railcore/hexroute/pathstore"
	"github.com/railcore/hexroute/trainscore"
)

// Sentinel errors surfaced by Optimize.
var (
	// ErrUnknownCompany indicates company owns no tokens on the map.
	ErrUnknownCompany = errors.New("optimizer: unknown company")
	// ErrEmptyTrainSet indicates no trains were supplied.
	ErrEmptyTrainSet = errors.New("optimizer: no trains supplied")
	// ErrCancelled indicates the run was cooperatively cancelled via ctx.
	ErrCancelled = errors.New("optimizer: cancelled")
	// ErrOverBudget indicates the enumerated path set exceeded the
	// configured path budget before the search could run; the caller may
	// retry with looser criteria or a larger budget.
	ErrOverBudget = errors.New("optimizer: path budget exhausted")
)

// TrainRoute pairs one owned TrainType instance with the Route it was
// assigned, or a nil Route if that instance went unused in the optimal
// assignment.
type TrainRoute struct {
	Train trainscore.TrainType
	Route *trainscore.Route
}

// BestAssignment is the result of a successful Optimize call: the total
// revenue of the optimal assignment, the per-train-instance routes (in
// the same order as the trains slice passed to Optimize), and the Store
// path indices actually used.
type BestAssignment struct {
	TotalRevenue    uint32
	PerTrain        []TrainRoute
	PathIndicesUsed []int
}

// Options configures a single Optimize call.
type Options struct {
	Phase      boardmap.Phase
	Workers    int
	Cache      *Cache
	PathBudget int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Workers set to GOMAXPROCS, the zero Phase, and
// no cache (every call builds its own Store).
func DefaultOptions() Options {
	return Options{Phase: boardmap.Phase{}, Workers: runtime.GOMAXPROCS(0)}
}

// WithPhase sets the game phase used for Revenue lookups.
func WithPhase(p boardmap.Phase) Option {
	return func(o *Options) { o.Phase = p }
}

// WithWorkers overrides the worker-pool size for both build and search
// phases. n <= 0 is ignored (keeps the default).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithCache attaches a path-set Cache so repeated Optimize calls that
// vary only trains/bonuses reuse the enumerated Store.
func WithCache(c *Cache) Option {
	return func(o *Options) { o.Cache = c }
}

// WithPathBudget caps how many enumerated paths a single run may hold.
// When the Store grows past n, Optimize stops and returns ErrOverBudget
// rather than starting a combinatorial search it cannot afford; the
// caller may retry with looser criteria. n <= 0 means unlimited (the
// default).
func WithPathBudget(n int) Option {
	return func(o *Options) { o.PathBudget = n }
}

// Optimize runs the full route-optimization pipeline and returns the
// optimal BestAssignment. It fails fast with ErrUnknownCompany
// if company owns no tokens on m, or ErrEmptyTrainSet if trains is empty
// — no partial enumeration occurs for either. A cancelled ctx surfaces as
// ErrCancelled with a zero BestAssignment; callers must not treat that as
// a valid (if suboptimal) result.
func Optimize(ctx context.Context, m boardmap.Map, company string, trains []trainscore.TrainType, bonuses []trainscore.Bonus, criteria pathbuilder.Criteria, opts ...Option) (BestAssignment, error) {
	if m == nil {
		return BestAssignment{}, pathbuilder.ErrGraphNil
	}

	tokens := m.TokensOf(company)
	if len(tokens) == 0 {
		return BestAssignment{}, fmt.Errorf("%w: %s", ErrUnknownCompany, company)
	}
	if len(trains) == 0 {
		return BestAssignment{}, ErrEmptyTrainSet
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	store, err := buildStore(ctx, o.Cache, m, company, criteria, tokens, o.Workers)
	if err != nil {
		return BestAssignment{}, wrapCancellation(err)
	}
	if o.PathBudget > 0 && len(store.Paths) > o.PathBudget {
		return BestAssignment{}, fmt.Errorf("%w: %d paths enumerated, budget %d", ErrOverBudget, len(store.Paths), o.PathBudget)
	}

	cand, found, err := searchBest(ctx, store, trains, bonuses, o.Phase, m, o.Workers)
	if err != nil {
		return BestAssignment{}, wrapCancellation(err)
	}
	if !found {
		return BestAssignment{PerTrain: assemble(trains, candidate{})}, nil
	}

	return BestAssignment{
		TotalRevenue:    cand.revenue,
		PerTrain:        assemble(trains, cand),
		PathIndicesUsed: cand.pathIdx,
	}, nil
}

func buildStore(ctx context.Context, cache *Cache, m boardmap.Map, company string, criteria pathbuilder.Criteria, tokens []boardmap.TokenSpace, workers int) (*pathstore.Store, error) {
	if cache != nil {
		return cache.GetOrBuild(ctx, m, company, criteria, tokens, workers)
	}
	return pathstore.BuildStoreConcurrent(ctx, m, criteria, tokens, workers)
}

func wrapCancellation(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	return err
}

// assemble maps a winning candidate's train-type sequence back onto
// concrete TrainType instances, in trains' original order: the i-th
// sequence position is assigned to the first not-yet-used train whose
// Name matches, giving a deterministic instance assignment when several
// owned trains share a type.
func assemble(trains []trainscore.TrainType, cand candidate) []TrainRoute {
	out := make([]TrainRoute, len(trains))
	for i, tt := range trains {
		out[i] = TrainRoute{Train: tt}
	}

	used := make([]bool, len(trains))
	for seqPos, key := range cand.trainSeq {
		for ti, tt := range trains {
			if used[ti] || tt.Name != key {
				continue
			}
			used[ti] = true
			r := cand.routes[seqPos]
			out[ti].Route = &r
			break
		}
	}
	return out
}
