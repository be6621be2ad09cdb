package ltimer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Driver owns a Wheel and advances it from a real clock.
//
// Insert, Step and the read accessors may be called from any goroutine; they
// are serialized by the driver's mutex. Expired ids are handed to the
// configured Handler from the driver goroutine, outside the lock, so a
// handler may insert new timers. A handler must not call Stop, which waits
// for the handler's own goroutine.
type Driver struct {
	Options

	// mu 保護 wheel，Wheel 本身不做任何同步
	mu    sync.Mutex
	wheel *Wheel

	// lifeMu 串行化 Start/Stop，保護 stopCh
	lifeMu sync.Mutex

	// stopCh 用於通知背景 goroutine 停止，每次 Start 重新建立
	stopCh chan struct{}

	// wg 用於等待背景 goroutine 結束
	wg sync.WaitGroup

	// running 標記是否正在運行（原子操作）
	running int32
}

// NewDriver creates a stopped driver around a fresh wheel.
func NewDriver(opts ...Option) *Driver {
	return &Driver{
		Options: NewOptions(opts...),
		wheel:   NewWheel(),
	}
}

// Start launches the background goroutine. Calling Start on a running driver
// does nothing.
func (d *Driver) Start() {
	d.lifeMu.Lock()
	defer d.lifeMu.Unlock()

	// 使用 CAS 確保只啟動一次
	if !atomic.CompareAndSwapInt32(&d.running, 0, 1) {
		return
	}

	d.stopCh = make(chan struct{})
	d.wg.Add(1)
	go d.run(d.stopCh)

	d.Logger.Printf("ltimer: driver started, tick=%v\n", d.TickDuration)
}

// Stop signals the background goroutine and waits for it to exit. Pending
// timers stay in the wheel and fire once the driver is started again.
func (d *Driver) Stop() {
	d.lifeMu.Lock()
	defer d.lifeMu.Unlock()

	if !atomic.CompareAndSwapInt32(&d.running, 1, 0) {
		return
	}

	close(d.stopCh)
	d.wg.Wait()

	d.Logger.Printf("ltimer: driver stopped at tick %d, %d pending\n", d.Tick(), d.Len())
}

// IsRunning reports whether the background goroutine is active.
func (d *Driver) IsRunning() bool {
	return atomic.LoadInt32(&d.running) == 1
}

// Insert schedules id to fire after delay, rounded up to whole ticks. The
// firing time is accurate to one tick; a negative delay fires on the next step.
func (d *Driver) Insert(id uint64, delay time.Duration) {
	d.InsertTicks(id, d.ticksOf(delay))
}

// InsertTicks schedules id to fire after the given number of ticks.
func (d *Driver) InsertTicks(id uint64, ticks int64) {
	d.mu.Lock()
	d.wheel.Insert(id, ticks)
	d.mu.Unlock()
}

// Step advances the wheel by ticks under the driver lock and returns the
// expired ids without calling the handler. It is meant for virtual clocks
// and for tests; mixing it with a running driver is allowed but both move
// the same tick counter.
func (d *Driver) Step(ticks int64) []uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.wheel.Advance(ticks)
}

// Tick returns the wheel's current tick counter.
func (d *Driver) Tick() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.wheel.Tick()
}

// Len returns the number of pending timers.
func (d *Driver) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.wheel.Len()
}

// Stats returns a snapshot of the wheel's counters.
func (d *Driver) Stats() Statistics {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.wheel.Stats()
}

// ticksOf 將時間長度換算成 tick 數（無條件進位）
func (d *Driver) ticksOf(delay time.Duration) int64 {
	if delay <= 0 {
		return 0
	}

	// 先除再進位，delay 接近 MaxInt64 時 delay+tick-1 會溢位
	tick := d.TickDuration
	ticks := int64(delay / tick)
	if delay%tick != 0 {
		ticks++
	}
	return ticks
}

// elapsedTicks 將累積的經過時間換算成整數 tick，回傳剩下不足一個 tick 的部分
func elapsedTicks(carry, elapsed, tick time.Duration) (int64, time.Duration) {
	carry += elapsed
	if carry <= 0 {
		return 0, carry
	}

	ticks := int64(carry / tick)
	return ticks, carry - time.Duration(ticks)*tick
}

// run 是 Driver 的主循環
//
// 運作流程：
// 1. 建立 ticker，每 TickDuration 觸發一次
// 2. 以單調時鐘計算實際經過的時間，換算成整數 tick 後前進
// 3. 不足一個 tick 的部分累積到下一次，避免 ticker 延遲造成漂移
// 4. 收到停止信號時退出
func (d *Driver) run(stopCh chan struct{}) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.TickDuration)
	defer ticker.Stop()

	last := steadyNow()
	var carry time.Duration

	for {
		select {
		case <-ticker.C:
			now := steadyNow()
			var ticks int64
			ticks, carry = elapsedTicks(carry, now-last, d.TickDuration)
			last = now

			d.dispatch(d.Step(ticks))
		case <-stopCh:
			return
		}
	}
}

// dispatch 在鎖外呼叫 Handler
func (d *Driver) dispatch(ids []uint64) {
	if len(ids) == 0 {
		return
	}

	d.Handler.Handle(ids)
}
