package ltimer

import "time"

// processStart 是單調時鐘的基準點
var processStart = time.Now()

// Now returns the wall-clock time in seconds since the Unix epoch.
func Now() int64 {
	return time.Now().Unix()
}

// NowMs returns the wall-clock time in milliseconds since the Unix epoch.
func NowMs() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// Steady returns monotonic seconds elapsed since the package was loaded.
func Steady() int64 {
	return int64(steadyNow() / time.Second)
}

// SteadyMs returns monotonic milliseconds elapsed since the package was loaded.
// Unlike NowMs it never jumps when the system clock is adjusted.
func SteadyMs() int64 {
	return int64(steadyNow() / time.Millisecond)
}

// Sleep blocks the calling goroutine for ms milliseconds.
// A non-positive value returns immediately.
func Sleep(ms int64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Time returns the current wall-clock time both in milliseconds and in seconds,
// read from a single clock sample.
func Time() (ms, sec int64) {
	now := time.Now()
	return now.UnixNano() / int64(time.Millisecond), now.Unix()
}

// steadyNow 使用 time.Since 取得單調時鐘的經過時間
func steadyNow() time.Duration {
	return time.Since(processStart)
}
