package ltimer

import (
	"path/filepath"
	"reflect"
	"runtime"
	"sort"
	"testing"
)

func equal(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		_, file, line, _ := runtime.Caller(1)
		t.Logf("\033[37m%s:%d:\n got: %#v\nwant: %#v\033[39m\n ", filepath.Base(file), line, got, want)
		t.FailNow()
	}
}

// sortedIDs 回傳排序後的副本，同一 tick 內的順序不保證
func sortedIDs(ids []uint64) []uint64 {
	out := make([]uint64, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// locate 回傳 id 所在的層級與槽位，near 環的層級為 -1
func locate(w *Wheel, id uint64) (level, idx int, ok bool) {
	for b := range w.buckets {
		for _, e := range w.buckets[b] {
			if e.id != id {
				continue
			}
			if b < nearSize {
				return -1, b, true
			}
			b -= nearSize
			return b / levelSize, b % levelSize, true
		}
	}
	return 0, 0, false
}
