package main

import (
	"fmt"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/jiansoft/ltimer"
	"github.com/urfave/cli"
)

var simulateFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "timers, n",
		Value: 100000,
		Usage: "number of timers to schedule",
	},
	cli.Int64Flag{
		Name:  "max-delay",
		Value: 1 << 20,
		Usage: "largest delay in ticks",
	},
	cli.Int64Flag{
		Name:  "ticks",
		Value: 1000,
		Usage: "ticks advanced per Advance call",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 1,
		Usage: "random seed",
	},
}

// simulateResult is what one simulation observed.
type simulateResult struct {
	fired     int
	offTarget int
	stats     ltimer.Statistics
}

func simulate(ctx *cli.Context) error {
	n := ctx.Int("timers")
	maxDelay := ctx.Int64("max-delay")
	step := ctx.Int64("ticks")
	if n < 0 || maxDelay <= 0 || step <= 0 {
		return fmt.Errorf("simulate: timers must be >= 0, max-delay and ticks must be > 0")
	}

	res := runSimulation(n, maxDelay, step, ctx.Int64("seed"))

	fmt.Printf("scheduled  %s timers over %s ticks\n", humanize.Comma(int64(n)), humanize.Comma(maxDelay))
	fmt.Printf("fired      %s\n", humanize.Comma(int64(res.fired)))
	fmt.Printf("cascades   %s buckets, %s entries relocated\n",
		humanize.Comma(res.stats.Cascades()), humanize.Comma(res.stats.Relocated()))
	fmt.Printf("final tick %s\n", humanize.Comma(int64(res.stats.Tick())))

	if res.offTarget > 0 {
		return fmt.Errorf("simulate: %d timers fired outside their Advance window", res.offTarget)
	}
	if res.fired != n {
		return fmt.Errorf("simulate: %d of %d timers fired", res.fired, n)
	}
	return nil
}

// runSimulation inserts n timers with random delays at tick 0 and advances in
// chunks of step ticks until all of them are due, counting every id returned
// outside the chunk that contains its expire tick.
func runSimulation(n int, maxDelay, step, seed int64) simulateResult {
	r := rand.New(rand.NewSource(seed))
	w := ltimer.NewWheel()

	expire := make([]uint64, n)
	for i := 0; i < n; i++ {
		delay := r.Int63n(maxDelay + 1)
		expire[i] = uint64(delay)
		w.Insert(uint64(i), delay)
	}

	var res simulateResult
	seen := make([]bool, n)
	for from := uint64(0); from <= uint64(maxDelay); from = w.Tick() + 1 {
		for _, id := range w.Advance(step) {
			res.fired++
			if seen[id] {
				res.offTarget++
				continue
			}
			seen[id] = true

			due := expire[id]
			if due > w.Tick() || due < from {
				res.offTarget++
			}
		}
	}

	res.stats = w.Stats()
	return res
}
