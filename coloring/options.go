package coloring

import "runtime"

// Defaults mirror the bounds spec.md §4.4/§4.6 document as acceptable
// ranges, replacing the original source's hardcoded constexpr tuning
// knobs with caller-overridable, validated settings (grounded on the
// functional-options convention used throughout the retrieved pack's
// graph-construction APIs).
const (
	// DefaultMaxRetries is the per-vertex commit retry cap before a
	// worker falls back to the serialized owner path. Spec.md §4.4
	// allows 4-8.
	DefaultMaxRetries = 6

	// DefaultRepairRounds bounds the conflict-detect/recolor loop.
	// Spec.md §4.6 allows 2-3.
	DefaultRepairRounds = 3

	// DefaultSlack (K) is the extra color headroom the mex computation
	// allows for colors concurrently created by other workers. Spec.md
	// §4.4 requires K >= 16.
	DefaultSlack = 16

	// DefaultHighContentionDegree is the degree above which a vertex
	// always takes the serialized owner path instead of speculating.
	DefaultHighContentionDegree = 100

	// smallGraphVertexCount and denseHighDegreeVertexCount implement the
	// thread-count policy of spec.md §4.4.
	smallGraphVertexCount       = 1000
	denseGraphVertexCount       = 10_000
	denseHighDegreeVertexCount  = 1000
)

// config aggregates all tunable knobs for a Color run. It is resolved once
// per call from defaults plus the caller's Options, then passed by value to
// every phase.
type config struct {
	threads           int
	maxRetries        int
	repairRounds      int
	slack             int32
	contentionDegree  int32
}

// Option configures a Color run.
type Option func(*config) error

// WithThreads sets the requested worker count. The actual worker count
// used may be lower: spec.md §4.4's thread-count policy caps it for small
// or pathologically dense graphs regardless of what is requested here. A
// value of 0 means "use all available cores" (the default); a negative
// value is rejected with ErrInvalidOption.
func WithThreads(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return ErrInvalidOption
		}
		c.threads = n
		return nil
	}
}

// WithMaxRetries overrides DefaultMaxRetries.
func WithMaxRetries(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return ErrInvalidOption
		}
		c.maxRetries = n
		return nil
	}
}

// WithRepairRounds overrides DefaultRepairRounds.
func WithRepairRounds(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return ErrInvalidOption
		}
		c.repairRounds = n
		return nil
	}
}

// WithSlack overrides DefaultSlack. Values below 16 are rejected per
// spec.md §4.4's K >= 16 requirement.
func WithSlack(k int) Option {
	return func(c *config) error {
		if k < 16 {
			return ErrInvalidOption
		}
		c.slack = int32(k)
		return nil
	}
}

// WithContentionDegree overrides DefaultHighContentionDegree.
func WithContentionDegree(d int) Option {
	return func(c *config) error {
		if d < 1 {
			return ErrInvalidOption
		}
		c.contentionDegree = int32(d)
		return nil
	}
}

// resolveConfig applies defaults and then opts in order, matching the
// lvlath-pack convention of "later overrides earlier, defaults resolved up
// front to keep downstream code branch-free".
func resolveConfig(opts ...Option) (config, error) {
	cfg := config{
		threads:          0, // resolved against N below in adjustThreadCount
		maxRetries:       DefaultMaxRetries,
		repairRounds:     DefaultRepairRounds,
		slack:            DefaultSlack,
		contentionDegree: DefaultHighContentionDegree,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// adjustThreadCount applies spec.md §4.4's thread-count policy: small
// graphs cap at 2 workers, very dense large graphs halve the requested
// count, otherwise the caller's request (or GOMAXPROCS if unset) stands.
func adjustThreadCount(requested, n int, maxDegree int32) int {
	threads := requested
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	switch {
	case n < smallGraphVertexCount:
		if threads > 2 {
			threads = 2
		}
	case n > denseGraphVertexCount && maxDegree > denseHighDegreeVertexCount:
		threads = threads / 2
		if threads < 1 {
			threads = 1
		}
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}
