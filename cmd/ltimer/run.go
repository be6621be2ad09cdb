package main

import (
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jiansoft/ltimer"
	"github.com/urfave/cli"
)

var runFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "timers, n",
		Value: 1000,
		Usage: "number of timers to schedule",
	},
	cli.DurationFlag{
		Name:  "tick",
		Value: 10 * time.Millisecond,
		Usage: "real time per tick",
	},
	cli.DurationFlag{
		Name:  "max-delay",
		Value: 2 * time.Second,
		Usage: "largest delay",
	},
	cli.DurationFlag{
		Name:  "duration",
		Value: 3 * time.Second,
		Usage: "how long to run the driver",
	},
	cli.BoolFlag{
		Name:  "verbose",
		Usage: "log driver lifecycle",
	},
}

func run(ctx *cli.Context) error {
	n := ctx.Int("timers")
	maxDelay := ctx.Duration("max-delay")
	if n < 0 || maxDelay < 0 {
		return fmt.Errorf("run: timers and max-delay must not be negative")
	}

	var fired int64
	opts := []ltimer.Option{
		ltimer.WithTickDuration(ctx.Duration("tick")),
		ltimer.WithHandler(ltimer.HandlerFunc(func(ids []uint64) {
			atomic.AddInt64(&fired, int64(len(ids)))
		})),
	}
	if ctx.Bool("verbose") {
		opts = append(opts, ltimer.WithLogger(ltimer.Printf))
	}

	driver := ltimer.NewDriver(opts...)
	driver.Start()

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < n; i++ {
		driver.Insert(uint64(i), time.Duration(r.Int63n(int64(maxDelay)+1)))
	}

	start := ltimer.SteadyMs()
	ltimer.Sleep(int64(ctx.Duration("duration") / time.Millisecond))
	driver.Stop()

	log.Printf("ran %dms, tick %s, fired %s of %s, pending %s",
		ltimer.SteadyMs()-start,
		humanize.Comma(int64(driver.Tick())),
		humanize.Comma(atomic.LoadInt64(&fired)),
		humanize.Comma(int64(n)),
		humanize.Comma(int64(driver.Len())))

	return nil
}
