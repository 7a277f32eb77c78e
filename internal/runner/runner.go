// Package runner dispatches puzzle days: it owns the day registry, reads
// input files, times both parts and runs every day concurrently on demand.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2023/internal/config"
)

var (
	// ErrUnknownDay indicates a day outside 1..25 or one not registered.
	ErrUnknownDay = errors.New("runner: unknown day")

	// ErrDuplicateDay indicates the same day registered twice.
	ErrDuplicateDay = errors.New("runner: day registered twice")
)

// Solver computes one part of a day from its input.
type Solver func(input string) (int, error)

// Day binds a day number to its two parts.
type Day struct {
	Number  int
	PartOne Solver
	PartTwo Solver
}

// Result is the outcome of running one day.
type Result struct {
	Day     int
	PartOne int
	PartTwo int
	Elapsed time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithReadFile replaces os.ReadFile for input loading.
func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(r *Runner) {
		if fn != nil {
			r.readFile = fn
		}
	}
}

// WithDays registers days in addition to any already present.
func WithDays(days ...Day) Option {
	return func(r *Runner) {
		for _, d := range days {
			if err := r.register(d); err != nil && r.err == nil {
				r.err = err
			}
		}
	}
}

// Runner executes registered days against input files located via config.
type Runner struct {
	cfg      config.Config
	days     map[int]Day
	log      zerolog.Logger
	readFile func(string) ([]byte, error)
	err      error
}

// New builds a Runner. Registration problems surface as the returned error.
func New(cfg config.Config, opts ...Option) (*Runner, error) {
	r := &Runner{
		cfg:      cfg,
		days:     make(map[int]Day),
		log:      zerolog.Nop(),
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.err != nil {
		return nil, r.err
	}

	return r, nil
}

func (r *Runner) register(d Day) error {
	if d.Number < 1 || d.Number > 25 || d.PartOne == nil || d.PartTwo == nil {
		return fmt.Errorf("%w: %d", ErrUnknownDay, d.Number)
	}
	if _, ok := r.days[d.Number]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, d.Number)
	}
	r.days[d.Number] = d

	return nil
}

// Days lists the registered day numbers in ascending order.
func (r *Runner) Days() []int {
	out := make([]int, 0, len(r.days))
	for n := range r.days {
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

// Run loads the input file for day and solves both parts. Elapsed covers
// the file read as well as both parts.
func (r *Runner) Run(ctx context.Context, day int) (Result, error) {
	if _, ok := r.days[day]; !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	path := r.cfg.InputPath(day)
	start := time.Now()
	b, err := r.readFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("runner: day %d: %w", day, err)
	}
	if err = ctx.Err(); err != nil {
		return Result{}, err
	}
	res, err := r.RunInput(day, string(b))
	if err != nil {
		return Result{}, err
	}
	res.Elapsed = time.Since(start)
	r.log.Debug().
		Int("day", day).
		Str("input", path).
		Dur("elapsed", res.Elapsed).
		Msg("day solved")

	return res, nil
}

// RunInput solves both parts of day on input. Carriage returns and
// trailing newlines are removed first.
func (r *Runner) RunInput(day int, input string) (Result, error) {
	d, ok := r.days[day]
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	input = strings.TrimRight(strings.ReplaceAll(input, "\r", ""), "\n")

	start := time.Now()
	one, err := d.PartOne(input)
	if err != nil {
		return Result{}, fmt.Errorf("runner: day %d part one: %w", day, err)
	}
	two, err := d.PartTwo(input)
	if err != nil {
		return Result{}, fmt.Errorf("runner: day %d part two: %w", day, err)
	}

	return Result{Day: day, PartOne: one, PartTwo: two, Elapsed: time.Since(start)}, nil
}

// RunAll runs every registered day with at most cfg.Workers in flight.
// Results are returned in day order; the first failure cancels the rest.
func (r *Runner) RunAll(ctx context.Context) ([]Result, error) {
	days := r.Days()
	results := make([]Result, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, day := range days {
		g.Go(func() error {
			res, err := r.Run(gctx, day)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Print writes res in the three-line report format.
func Print(w io.Writer, res Result) error {
	_, err := fmt.Fprintf(w, "Part one output: %d\nPart two output: %d\nTotal elapsed time: %s ns\n",
		res.PartOne, res.PartTwo, Thousands(res.Elapsed.Nanoseconds()))

	return err
}

// Thousands formats n with comma separators: 1234567 -> "1,234,567".
func Thousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	return b.String()
}
