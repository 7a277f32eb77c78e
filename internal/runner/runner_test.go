package runner_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/runner"
)

var errBoom = errors.New("boom")

func lineCount(input string) (int, error) { return len(bytes.Split([]byte(input), []byte("\n"))), nil }
func byteCount(input string) (int, error) { return len(input), nil }
func failing(string) (int, error)         { return 0, errBoom }

func fakeFS(files map[string]string) func(string) ([]byte, error) {
	return func(p string) ([]byte, error) {
		s, ok := files[p]
		if !ok {
			return nil, fs.ErrNotExist
		}
		return []byte(s), nil
	}
}

func TestRunInput_TrimsInput(t *testing.T) {
	r, err := runner.New(config.Default(), runner.WithDays(runner.Day{Number: 1, PartOne: lineCount, PartTwo: byteCount}))
	require.NoError(t, err)

	res, err := r.RunInput(1, "ab\r\ncd\n\n")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Day)
	assert.Equal(t, 2, res.PartOne)
	assert.Equal(t, 5, res.PartTwo)
}

func TestRun_ElapsedIncludesRead(t *testing.T) {
	cfg := config.Default()
	const delay = 5 * time.Millisecond
	slow := func(p string) ([]byte, error) {
		time.Sleep(delay)
		return fakeFS(map[string]string{cfg.InputPath(1): "abc"})(p)
	}
	r, err := runner.New(cfg,
		runner.WithDays(runner.Day{Number: 1, PartOne: byteCount, PartTwo: byteCount}),
		runner.WithReadFile(slow),
	)
	require.NoError(t, err)

	res, err := r.Run(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, res.PartOne)
	assert.GreaterOrEqual(t, res.Elapsed, delay)
}

func TestNew_RegistrationErrors(t *testing.T) {
	d := runner.Day{Number: 3, PartOne: byteCount, PartTwo: byteCount}
	_, err := runner.New(config.Default(), runner.WithDays(d, d))
	require.ErrorIs(t, err, runner.ErrDuplicateDay)

	_, err = runner.New(config.Default(), runner.WithDays(runner.Day{Number: 26, PartOne: byteCount, PartTwo: byteCount}))
	require.ErrorIs(t, err, runner.ErrUnknownDay)
}

func TestRun_Errors(t *testing.T) {
	cfg := config.Default()
	r, err := runner.New(cfg,
		runner.WithDays(
			runner.Day{Number: 1, PartOne: byteCount, PartTwo: failing},
			runner.Day{Number: 2, PartOne: byteCount, PartTwo: byteCount},
		),
		runner.WithReadFile(fakeFS(map[string]string{cfg.InputPath(1): "x"})),
	)
	require.NoError(t, err)

	_, err = r.Run(context.Background(), 9)
	require.ErrorIs(t, err, runner.ErrUnknownDay)

	_, err = r.Run(context.Background(), 1)
	require.ErrorIs(t, err, errBoom)

	_, err = r.Run(context.Background(), 2)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRunAll_OrderedResults(t *testing.T) {
	cfg := config.Default()
	cfg.InputDir = "in"
	cfg.Workers = 2
	files := map[string]string{}
	var days []runner.Day
	for n := 5; n >= 1; n-- {
		files[cfg.InputPath(n)] = string(bytes.Repeat([]byte{'x'}, n))
		days = append(days, runner.Day{Number: n, PartOne: byteCount, PartTwo: lineCount})
	}
	r, err := runner.New(cfg, runner.WithDays(days...), runner.WithReadFile(fakeFS(files)))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, r.Days())

	results, err := r.RunAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 5)
	for i, res := range results {
		assert.Equal(t, i+1, res.Day)
		assert.Equal(t, i+1, res.PartOne)
		assert.Equal(t, 1, res.PartTwo)
	}
}

func TestRunAll_Cancelled(t *testing.T) {
	cfg := config.Default()
	r, err := runner.New(cfg,
		runner.WithDays(runner.Day{Number: 1, PartOne: byteCount, PartTwo: byteCount}),
		runner.WithReadFile(fakeFS(map[string]string{cfg.InputPath(1): "x"})),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.RunAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runner.Print(&buf, runner.Result{PartOne: 142, PartTwo: 281, Elapsed: 1234567 * time.Nanosecond}))
	assert.Equal(t, "Part one output: 142\nPart two output: 281\nTotal elapsed time: 1,234,567 ns\n", buf.String())
}

func TestThousands(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		123456:   "123,456",
		-1234567: "-1,234,567",
	}
	for in, want := range cases {
		if got := runner.Thousands(in); got != want {
			t.Errorf("Thousands(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestAllDays(t *testing.T) {
	r, err := runner.New(config.Default(), runner.WithDays(runner.AllDays()...))
	require.NoError(t, err)
	want := make([]int, 25)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, r.Days())

	res, err := r.RunInput(6, "Time:      7  15   30\nDistance:  9  40  200\n")
	require.NoError(t, err)
	assert.Equal(t, 288, res.PartOne)
	assert.Equal(t, 71503, res.PartTwo)
}
