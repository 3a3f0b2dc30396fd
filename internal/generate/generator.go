// Record builders assembling fake field values into tabular datasets.
package generate

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"datasynth/internal/config"
	"datasynth/internal/dataset"
)

// Kind identifies one dataset type.
type Kind string

const (
	KindPersonal    Kind = "personal"
	KindSales       Kind = "sales"
	KindEmployee    Kind = "employee"
	KindTimeSeries  Kind = "timeseries"
	KindReviews     Kind = "reviews"
	KindBlogPosts   Kind = "blog_posts"
	KindSocialMedia Kind = "social_media"
	KindAppLogs     Kind = "app_logs"
	KindSystem      Kind = "system"
)

var (
	ErrUnknownKind = errors.New("unknown dataset kind")

	// ErrLimitExceeded rejects oversized requests before generation.
	ErrLimitExceeded = errors.New("record count exceeds configured maximum")
)

// builders maps each kind to its builder, so adding a dataset type is
// a one-line registration.
var builders = map[Kind]func(*Generator, int) *dataset.Table{
	KindPersonal:    (*Generator).personalTable,
	KindSales:       (*Generator).salesTable,
	KindEmployee:    (*Generator).employeeTable,
	KindTimeSeries:  (*Generator).timeSeriesTable,
	KindReviews:     (*Generator).reviewsTable,
	KindBlogPosts:   (*Generator).blogPostsTable,
	KindSocialMedia: (*Generator).socialMediaTable,
	KindAppLogs:     (*Generator).appLogsTable,
	KindSystem:      (*Generator).systemTable,
}

// Kinds lists the registered dataset kinds in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindPersonal, KindSales, KindEmployee, KindTimeSeries,
		KindReviews, KindBlogPosts, KindSocialMedia, KindAppLogs, KindSystem,
	}
}

// ParseKind validates a kind string from the CLI or web UI.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := builders[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Generator builds single-table datasets. It holds no cross-run
// state; construct one per call or request, never store one globally.
type Generator struct {
	rng        *rand.Rand
	fake       *gofakeit.Faker
	hosts      []config.Host
	maxRecords int

	// anchor is the reference point for every date and timestamp
	// column. It is frozen at construction, so output is fully
	// deterministic given the same seed and anchor.
	anchor time.Time
}

// New creates a generator. A zero seed picks a wall-clock seed; any
// other value makes every built table deterministic relative to the
// generator's time anchor.
func New(cfg *config.GeneratorConfig, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		fake:       gofakeit.New(uint64(seed)),
		hosts:      cfg.Hosts,
		maxRecords: cfg.Limits.MaxRecords,
		anchor:     time.Now().UTC(),
	}
}

// Build produces one table of the given kind with count rows.
func (g *Generator) Build(kind Kind, count int) (*dataset.Table, error) {
	build, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if count < 1 {
		return nil, fmt.Errorf("record count must be at least 1, got %d", count)
	}
	if g.maxRecords > 0 && count > g.maxRecords {
		return nil, fmt.Errorf("%w: %d > %d", ErrLimitExceeded, count, g.maxRecords)
	}
	return build(g, count), nil
}

// pick returns a uniform choice from a string slice.
func (g *Generator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}

// uuid draws a v4 UUID from the generator's own random source so
// seeded runs stay reproducible.
func (g *Generator) uuid() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		panic(err) // rand.Rand reads never fail
	}
	return id.String()
}

func round2f(v float64) float64 {
	return math.Round(v*100) / 100
}
