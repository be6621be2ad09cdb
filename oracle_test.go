package ltimer

import (
	"container/heap"
)

// refTimer 是參考排程器中的單一項目
type refTimer struct {
	expire uint64
	id     uint64
	index  int
}

// refQueue is a min-heap on expire tick; it serves as the reference
// scheduler the wheel is checked against.
// the 0th element is the lowest value
type refQueue []*refTimer

func newRefQueue(capacity int) *refQueue {
	pq := make(refQueue, 0, capacity)
	heap.Init(&pq)
	return &pq
}

func (pq *refQueue) Len() int {
	return len(*pq)
}

func (pq *refQueue) Less(i, j int) bool {
	return (*pq)[i].expire < (*pq)[j].expire
}

func (pq *refQueue) Swap(i, j int) {
	(*pq)[i], (*pq)[j] = (*pq)[j], (*pq)[i]
	(*pq)[i].index = i
	(*pq)[j].index = j
}

func (pq *refQueue) Push(x any) {
	rt := x.(*refTimer)
	rt.index = len(*pq)
	*pq = append(*pq, rt)
}

func (pq *refQueue) Pop() any {
	n := len(*pq)
	rt := (*pq)[n-1]
	(*pq)[n-1] = nil // avoid memory leak
	rt.index = -1    // for safety
	*pq = (*pq)[:n-1]
	return rt
}

func (pq *refQueue) enqueue(id, expire uint64) {
	heap.Push(pq, &refTimer{expire: expire, id: id})
}

// dequeueUntil 取出所有 expire <= limit 的項目
func (pq *refQueue) dequeueUntil(limit uint64) []uint64 {
	var ids []uint64
	for pq.Len() > 0 && (*pq)[0].expire <= limit {
		ids = append(ids, heap.Pop(pq).(*refTimer).id)
	}
	return ids
}
