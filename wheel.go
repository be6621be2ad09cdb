package ltimer

import (
	"math"
)

// ============================================================================
// 層級時間輪 (Hierarchical Timing Wheel) 實作說明
// ============================================================================
//
// 與一般以「秒/分/時」切分的時間輪不同，這裡完全以 tick 的位元來決定槽位：
//
//	tick (uint64)
//	┌──────────────┬────────┬────────┬────────┬────────┬──────────┐
//	│   bit 63..32 │ 31..26 │ 25..20 │ 19..14 │ 13..8  │   7..0   │
//	└──────────────┴────────┴────────┴────────┴────────┴──────────┘
//	                 level3   level2   level1   level0     near
//	                 64 槽    64 槽    64 槽    64 槽     256 槽
//
// 新增項目時，比較 expire 與 current 的高位：
// - 除了低 8 位外全部相同 → 放入 near[expire & 0xFF]
// - 否則找出第一個「高位相同」的層級 i，放入 t[i][該層級的 6 位]
//
// 每前進一個 tick：
// 1. 若低位剛好歸零，代表某個較粗層級的槽已進入可細分的範圍
// 2. 取出該槽（只取一個），用同樣的路由規則重新放入
// 3. 收集 near[tick & 0xFF] 內的所有項目
//
// 時間複雜度：
// - Insert: O(1)
// - Advance: 每 tick 攤銷 O(1)，每個項目最多被搬移 levelCount 次
//
// 注意：Wheel 不是並發安全的，多個 goroutine 共用時請透過 Driver 或自行加鎖
// ============================================================================

const (
	// nearShift 是 near 環的位元數（256 槽，1 tick 精度）
	nearShift = 8
	nearSize  = 1 << nearShift
	nearMask  = nearSize - 1

	// levelShift 是每個層級的位元數（64 槽）
	levelShift = 6
	levelSize  = 1 << levelShift
	levelMask  = levelSize - 1

	// levelCount 是層級數量
	levelCount = 4

	// bucketCount = 256 + 4 × 64 = 512
	bucketCount = nearSize + levelCount*levelSize

	// wheelBits 是 near 與所有層級合計涵蓋的位元數
	wheelBits = nearShift + levelCount*levelShift
)

// MaxDelay is the span, in ticks, covered by the near ring and the four
// levels. Longer delays still fire on time; they are re-routed through the
// top level once every 2^32 ticks until they fit.
const MaxDelay = 1<<wheelBits - 1

// timerEntry 是時間輪內的單一項目
type timerEntry struct {
	// expire 是絕對過期 tick，新增時計算一次
	expire uint64
	// id 由呼叫端提供，時間輪不解讀也不去重
	id uint64
}

// Wheel is a hierarchical timing wheel keyed by a 64-bit tick counter.
//
// A zero Wheel is ready to use. It is not safe for concurrent use; see Driver.
type Wheel struct {
	// buckets 前 256 個是 near 環，其後依序為 level 0..3 各 64 個槽
	buckets [bucketCount][]timerEntry

	// tick 是當前的 tick 計數
	tick uint64

	// count 追蹤仍在輪子裡的項目數
	count int

	stats Statistics
}

// NewWheel creates an empty wheel whose tick counter starts at zero.
func NewWheel() *Wheel {
	return &Wheel{}
}

// Tick returns the current tick counter.
func (w *Wheel) Tick() uint64 {
	return w.tick
}

// Len returns the number of timers that have not fired yet.
func (w *Wheel) Len() int {
	return w.count
}

// Stats returns a snapshot of the wheel's cumulative counters.
func (w *Wheel) Stats() Statistics {
	s := w.stats
	s.pending = w.count
	s.tick = w.tick
	return s
}

// Insert schedules id to fire delay ticks from now.
//
// A negative delay is treated as zero, which makes the timer due at the
// current tick: the next Advance call returns it before moving time forward.
// Duplicate ids are tracked independently.
func (w *Wheel) Insert(id uint64, delay int64) {
	if delay < 0 {
		delay = 0
	}

	expire := w.tick + uint64(delay)
	// 溢位時飽和到最大值，避免項目比預期更早過期
	if expire < w.tick {
		expire = math.MaxUint64
	}

	w.place(timerEntry{expire: expire, id: id})
	w.count++
	w.stats.inserted++
}

// Advance moves the wheel forward by ticks and returns the ids that became due.
//
// Timers already due at the current tick are collected first, so Advance(0)
// only drains those. Negative ticks behave like zero. Ids are returned in the
// order their buckets were drained; the order within one tick is unspecified.
func (w *Wheel) Advance(ticks int64) []uint64 {
	var expired []uint64

	// 先處理當前 tick 已到期的項目（delay 為 0 的情況）
	expired = w.collect(expired)

	for i := int64(0); i < ticks; i++ {
		// 先前進再收集
		w.shift()
		expired = w.collect(expired)
	}

	return expired
}

// Reset drops every pending timer and rewinds the tick counter to zero.
// Cumulative statistics are kept.
func (w *Wheel) Reset() {
	for i := range w.buckets {
		w.buckets[i] = nil
	}
	w.tick = 0
	w.count = 0
}

// levelBucket 回傳 (level, idx) 在 buckets 中的位置
func levelBucket(level, idx int) int {
	return nearSize + level*levelSize + idx
}

// place 依 expire 與當前 tick 的位元關係，將項目放入唯一對應的槽
//
// 必須拿 w.tick 比較，不可以拿被位移過的 expire 比較
func (w *Wheel) place(e timerEntry) {
	current := w.tick

	if e.expire|nearMask == current|nearMask {
		slot := e.expire & nearMask
		w.buckets[slot] = append(w.buckets[slot], e)
		return
	}

	// 找出第一個高位相同的層級，若 level 0..2 都不符合則落在 level 3
	level := 0
	mask := uint64(nearSize<<levelShift) - 1
	for ; level < levelCount-1; level++ {
		if e.expire|mask == current|mask {
			break
		}
		mask = mask<<levelShift | levelMask
	}

	idx := int((e.expire >> (nearShift + level*levelShift)) & levelMask)
	b := levelBucket(level, idx)
	w.buckets[b] = append(w.buckets[b], e)
}

// shift 將 tick 前進一格，必要時進位（最多只搬移一個槽）
func (w *Wheel) shift() {
	w.tick++
	ct := w.tick

	mask := uint64(nearMask)
	t := ct >> nearShift
	for level := 0; level < levelCount; level++ {
		if ct&mask != 0 {
			return
		}

		idx := int(t & levelMask)
		if idx != 0 {
			w.cascade(level, idx)
			return
		}

		mask = mask<<levelShift | levelMask
		t >>= levelShift
	}

	// 低 32 位全部歸零（包含 uint64 回繞到 0 的那一格）：
	// level 3 的第 0 槽放的是超出整個輪子範圍的項目，強制重新分配
	w.cascade(levelCount-1, 0)
}

// cascade 取出 t[level][idx] 的所有項目並重新路由
func (w *Wheel) cascade(level, idx int) {
	b := levelBucket(level, idx)
	moved := w.buckets[b]
	if len(moved) == 0 {
		return
	}

	// 先清空再重新放入，重新路由時可能放回同一個槽（距離超過 2^32 的項目）
	w.buckets[b] = nil
	for _, e := range moved {
		w.place(e)
	}

	w.stats.cascades++
	w.stats.relocated += int64(len(moved))
}

// collect 收集 near[tick & 0xFF] 內的所有項目
func (w *Wheel) collect(expired []uint64) []uint64 {
	slot := w.tick & nearMask
	bucket := w.buckets[slot]
	if len(bucket) == 0 {
		return expired
	}

	for _, e := range bucket {
		expired = append(expired, e.id)
	}

	// near 槽只會被 collect 清空，可以沿用底層陣列
	w.buckets[slot] = bucket[:0]
	w.count -= len(bucket)
	w.stats.expired += int64(len(bucket))

	return expired
}

// setTick 只給測試用，用來直接跳到回繞邊界附近
func (w *Wheel) setTick(tick uint64) {
	w.tick = tick
}
