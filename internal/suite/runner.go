package suite

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
	"golang.org/x/sync/errgroup"
)

type Runner struct {
	engine  *calc.Engine
	workers int
}

// NewRunner evaluates cases on at most workers goroutines; workers <= 0 means GOMAXPROCS.
func NewRunner(engine *calc.Engine, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{engine: engine, workers: workers}
}

// Run returns one result per case in suite order. It only fails when ctx is
// cancelled; failing cases are reported in the results.
func (r *Runner) Run(ctx context.Context, s *Suite) ([]Result, error) {
	results := make([]Result, len(s.Cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range s.Cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.check(s.Cases[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run suite %q: %w", s.Name, err)
	}

	sum := Summarize(results)
	slog.Debug("Suite finished", "suite", s.Name, "total", sum.Total, "failed", sum.Failed)
	return results, nil
}

func (r *Runner) check(c Case) Result {
	start := time.Now()
	got, err := r.engine.Evaluate(c.Expression)
	res := Result{Case: c, Got: got, Duration: time.Since(start)}

	if err != nil {
		res.GotKind = calc.KindOf(err)
		res.Kind = res.GotKind.String()
		res.Err = err.Error()
	}

	switch {
	case c.Want != nil && err != nil:
		res.Reason = fmt.Sprintf("want %g, got error %s", *c.Want, res.Kind)
	case c.Want != nil:
		res.Passed = math.Abs(got-*c.Want) <= c.Tolerance
		if !res.Passed {
			res.Reason = fmt.Sprintf("want %g, got %g", *c.Want, got)
		}
	case err == nil:
		res.Reason = fmt.Sprintf("want error %s, got %g", c.Error, got)
	default:
		res.Passed = matchesError(c.Error, res.GotKind)
		if !res.Passed {
			res.Reason = fmt.Sprintf("want error %s, got %s", c.Error, res.Kind)
		}
	}

	return res
}

func matchesError(want string, got calc.Kind) bool {
	if k, ok := calc.ParseKind(want); ok {
		return k == got
	}
	return got.Code() == want
}
