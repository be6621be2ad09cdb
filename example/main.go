package main

import (
	"log"
	"time"

	"github.com/jiansoft/ltimer"
	"github.com/jiansoft/robin"
)

func main() {
	log.Println("=== ltimer Example ===")
	log.Println()

	// 1. Driving a wheel by hand
	demonstrateWheel()

	// 2. Cascading across levels
	demonstrateCascade()

	// 3. Real-time driver
	demonstrateDriver()

	log.Println()
	log.Println("=== All examples completed ===")
}

// demonstrateWheel shows insert/advance on a wheel owned by the caller
func demonstrateWheel() {
	log.Println("--- 1. Wheel ---")

	w := ltimer.NewWheel()
	w.Insert(42, 5)

	log.Printf("Advance(4) = %v", w.Advance(4))
	log.Printf("Advance(1) = %v", w.Advance(1))
	log.Printf("Advance(100) = %v, tick=%d", w.Advance(100), w.Tick())

	// delay 0 is due at the current tick
	w.Insert(1, 0)
	w.Insert(2, -3)
	log.Printf("Advance(0) = %v", w.Advance(0))

	log.Println()
}

// demonstrateCascade shows a timer travelling from level 0 into the near ring
func demonstrateCascade() {
	log.Println("--- 2. Cascade ---")

	w := ltimer.NewWheel()
	w.Insert(1, 300)

	for i := 0; i < 300; i++ {
		if ids := w.Advance(1); len(ids) > 0 {
			log.Printf("tick %d fired %v", w.Tick(), ids)
		}
	}

	s := w.Stats()
	log.Printf("inserted=%d expired=%d cascades=%d relocated=%d",
		s.Inserted(), s.Expired(), s.Cascades(), s.Relocated())

	log.Println()
}

// demonstrateDriver runs a driver on a real clock and reports after one second
func demonstrateDriver() {
	log.Println("--- 3. Driver ---")

	driver := ltimer.NewDriver(
		ltimer.WithTickDuration(10*time.Millisecond),
		ltimer.WithLogger(ltimer.Printf),
		ltimer.WithHandler(ltimer.HandlerFunc(func(ids []uint64) {
			log.Printf("steady=%dms fired %v", ltimer.SteadyMs(), ids)
		})),
	)
	driver.Start()

	driver.Insert(1, 100*time.Millisecond)
	driver.Insert(2, 250*time.Millisecond)
	driver.Insert(3, 500*time.Millisecond)
	driver.Insert(4, time.Hour)

	done := make(chan struct{})
	robin.Delay(1).Seconds().Do(func() {
		log.Printf("after 1s: tick=%d pending=%d", driver.Tick(), driver.Len())
		close(done)
	})
	<-done

	driver.Stop()
}
