package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for pathfinder construction.
var (
	// ErrNilOccupancy is returned when no occupancy oracle is supplied.
	ErrNilOccupancy = errors.New("astar: occupancy oracle is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// BoundsMode selects how neighbor positions are tested against Bounds.
type BoundsMode int

const (
	// BoundsEither tests "x > min OR x < max" on each axis.
	BoundsEither BoundsMode = iota
	// BoundsStrict tests min <= x < max on each axis.
	BoundsStrict
)

// String returns "either" or "strict".
func (m BoundsMode) String() string {
	switch m {
	case BoundsEither:
		return "either"
	case BoundsStrict:
		return "strict"
	}
	return fmt.Sprintf("BoundsMode(%d)", int(m))
}

// ParseBoundsMode maps "either"/"strict" (or "") to a BoundsMode.
func ParseBoundsMode(s string) (BoundsMode, error) {
	switch s {
	case "", "either":
		return BoundsEither, nil
	case "strict":
		return BoundsStrict, nil
	}
	return 0, fmt.Errorf("%w: unknown bounds mode %q", ErrOptionViolation, s)
}

// Option configures a Finder via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by NewFinder.
type Option func(*Options)

// Options holds the parameters and callbacks of a Finder.
type Options struct {
	// Frame maps tiles to world positions; its TileSize is the step length
	// and the uniform edge cost.
	Frame grid.Frame

	// BoundsMode selects the bounds test for neighbors.
	BoundsMode BoundsMode

	// MaxExpansions, if > 0, caps expanded nodes per search. Hitting the cap
	// is reported as "no path".
	MaxExpansions int

	// Ctx is polled once per expansion; cancellation is reported as "no path".
	Ctx context.Context

	// OnExpand is called for each node moved to the closed set.
	OnExpand func(p grid.Pos)

	// OnOpen is called whenever a node is added to or updated in the open set,
	// with its new cost from origin.
	OnOpen func(p grid.Pos, cost float64)

	err error
}

// DefaultOptions returns Options with:
//   - the default frame (world origin, tile size 1)
//   - BoundsEither
//   - no expansion cap
//   - context.Background()
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Frame:         grid.DefaultFrame(),
		BoundsMode:    BoundsEither,
		MaxExpansions: 0,
		Ctx:           context.Background(),
		OnExpand:      func(grid.Pos) {},
		OnOpen:        func(grid.Pos, float64) {},
	}
}

// WithFrame sets the tile frame. An invalid tile size surfaces as
// grid.ErrBadTileSize from NewFinder.
func WithFrame(f grid.Frame) Option {
	return func(o *Options) { o.Frame = f }
}

// WithTileSize keeps the frame origin and replaces its tile size.
func WithTileSize(t float64) Option {
	return func(o *Options) { o.Frame.TileSize = t }
}

// WithBoundsMode selects the bounds test.
func WithBoundsMode(m BoundsMode) Option {
	return func(o *Options) {
		if m != BoundsEither && m != BoundsStrict {
			o.err = fmt.Errorf("%w: bounds mode %d", ErrOptionViolation, int(m))
			return
		}
		o.BoundsMode = m
	}
}

// WithMaxExpansions caps expanded nodes per search.
//
//	n > 0: cap at n
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithContext sets a context polled once per expansion.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand(fn func(p grid.Pos)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnOpen registers a callback run whenever the open set gains or
// updates a node.
func WithOnOpen(fn func(p grid.Pos, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}
