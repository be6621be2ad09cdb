package ltimer

import "log"

// Logger receives the driver's lifecycle messages: start with the tick
// duration, and stop with the tick reached and the timers still pending.
// Expired ids never go through the Logger; they belong to the Handler.
type Logger interface {
	Printf(format string, args ...any)
}

// LoggerFunc adapts a printf-style function, such as testing.T.Logf or a
// structured logger's formatter, to Logger.
type LoggerFunc func(format string, args ...any)

// Printf calls f(format, args...).
func (f LoggerFunc) Printf(format string, args ...any) {
	f(format, args...)
}

// silentLogger 是 Driver 預設的 Logger，啟動與停止都不輸出
var silentLogger Logger = LoggerFunc(func(string, ...any) {})

// Printf sends driver lifecycle messages to the standard library logger.
// Pass it to WithLogger to see when a driver starts and stops.
var Printf Logger = LoggerFunc(log.Printf)
