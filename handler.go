package ltimer

import "log"

// Handler receives the ids a Driver collected during one step.
type Handler interface {
	Handle(ids []uint64)
}

// HandlerFunc is a function type that implements the Handler interface.
type HandlerFunc func(ids []uint64)

// Handle implements Handler.
func (f HandlerFunc) Handle(ids []uint64) {
	f(ids)
}

var defaultHandler = HandlerFunc(func(ids []uint64) {
	log.Printf("ltimer: %d timers expired %v", len(ids), ids)
})
