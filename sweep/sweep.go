// Package sweep checks the numeric routines against their defining
// properties over whole ranges of inputs.
package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/config/params"
	"github.com/prysmaticlabs/numerics/math"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var log = logrus.WithField("prefix", "sweep")

// Config of a sweep. Zero Workers and ChunkSize fall back to SWEEP_WORKERS
// and SWEEP_CHUNK_SIZE.
type Config struct {
	From      int64
	To        int64
	Ops       []math.Operation
	Workers   int
	ChunkSize int64
	// Progress, when set, is called with the number of inputs a worker just
	// finished. It may be called from several goroutines at once.
	Progress func(done int64)
}

// Report summarizes a sweep that found no violation.
type Report struct {
	Inputs  int64
	Checks  int64
	Elapsed time.Duration
}

// Violation is an input whose result breaks the routine's defining property.
type Violation struct {
	Op     math.Operation
	Input  int64
	Result int64
	Reason string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s(%d) = %d: %s", v.Op, v.Input, v.Result, v.Reason)
}

// Run checks every operation in cfg.Ops for every input in [From, To]. It
// returns the first *Violation found, or the first routine error.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	start := time.Now()
	log.WithFields(logrus.Fields{
		"from":    cfg.From,
		"to":      cfg.To,
		"ops":     cfg.Ops,
		"workers": cfg.Workers,
	}).Debug("Starting sweep")

	chunks := make(chan [2]int64)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(chunks)
		for lo := cfg.From; lo <= cfg.To; lo += cfg.ChunkSize {
			hi := lo + cfg.ChunkSize - 1
			if hi > cfg.To {
				hi = cfg.To
			}
			select {
			case chunks <- [2]int64{lo, hi}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < cfg.Workers; i++ {
		g.Go(func() error {
			for c := range chunks {
				if err := checkRange(ctx, cfg.Ops, c[0], c[1]); err != nil {
					return err
				}
				if cfg.Progress != nil {
					cfg.Progress(c[1] - c[0] + 1)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	inputs := cfg.To - cfg.From + 1
	return &Report{
		Inputs:  inputs,
		Checks:  inputs * int64(len(cfg.Ops)),
		Elapsed: time.Since(start),
	}, nil
}

func (cfg *Config) normalize() error {
	active := params.ActiveConfig()
	if cfg.From < 0 || cfg.To > active.MaxInput {
		return errors.Errorf("sweep range [%d, %d] outside [0, %d]", cfg.From, cfg.To, active.MaxInput)
	}
	if cfg.From > cfg.To {
		return errors.Errorf("sweep range [%d, %d] is empty", cfg.From, cfg.To)
	}
	if len(cfg.Ops) == 0 {
		return errors.New("no operations to sweep")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = active.SweepWorkers
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = active.SweepChunkSize
	}
	return nil
}

func checkRange(ctx context.Context, ops []math.Operation, lo, hi int64) error {
	for v := lo; v <= hi; v++ {
		if v&1023 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		for _, op := range ops {
			if err := check(op, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func check(op math.Operation, v int64) error {
	switch op {
	case math.OpIntegerSquareRoot:
		return checkSqrt(v)
	case math.OpArrangeCoins:
		return checkCoins(v)
	case math.OpGuessNumber:
		return checkGuess(v)
	default:
		return errors.Errorf("unknown operation %q", op)
	}
}

func checkSqrt(x int64) error {
	r, err := math.IntegerSquareRoot(x)
	if err != nil {
		return errors.Wrapf(err, "sqrt(%d)", x)
	}
	if r < 0 || r*r > x || (r+1)*(r+1) <= x {
		return &Violation{Op: math.OpIntegerSquareRoot, Input: x, Result: r, Reason: "not the floor of the square root"}
	}
	return nil
}

func checkCoins(n int64) error {
	k, err := math.ArrangeCoins(n)
	if err != nil {
		return errors.Wrapf(err, "coins(%d)", n)
	}
	if k < 0 || math.StaircaseCoins(k) > n || math.StaircaseCoins(k+1) <= n {
		return &Violation{Op: math.OpArrangeCoins, Input: n, Result: k, Reason: "not the number of complete rows"}
	}
	return nil
}

// checkGuess searches [1, n] for the lowest, middle and highest secret.
// n = 0 has no secrets to find.
func checkGuess(n int64) error {
	if n == 0 {
		return nil
	}
	limit := math.MaxOracleCalls(n)
	for _, secret := range []int64{1, (n + 1) / 2, n} {
		calls := 0
		oracle := math.SecretOracle(secret)
		got, err := math.GuessNumber(n, math.OracleFunc(func(candidate int64) int {
			calls++
			return oracle.Guess(candidate)
		}))
		if err != nil {
			return errors.Wrapf(err, "guess(%d, secret=%d)", n, secret)
		}
		if got != secret {
			return &Violation{Op: math.OpGuessNumber, Input: n, Result: got, Reason: fmt.Sprintf("wanted secret %d", secret)}
		}
		if calls > limit {
			return &Violation{Op: math.OpGuessNumber, Input: n, Result: got, Reason: fmt.Sprintf("%d oracle calls, limit %d", calls, limit)}
		}
	}
	return nil
}
