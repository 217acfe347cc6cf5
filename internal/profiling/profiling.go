package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings keyed by "subsystem.Operation".

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("shapes.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		Add(name, time.Since(start))
	}
}

// Add records d under name for the current frame
func Add(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

// ResetFrame clears the current totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix adds up every total whose name starts with prefix
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n slowest entries, e.g. "shapes.Render:4.2ms, glfw.SwapBuffers:2.1ms"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, p.name+":"+FormatMs(p.dur))
	}
	return strings.Join(parts, ", ")
}

// FormatMs renders d in milliseconds with one decimal, dropping ".0"
func FormatMs(d time.Duration) string {
	tenths := d.Microseconds() / 100
	if tenths%10 == 0 {
		return fmt.Sprintf("%dms", tenths/10)
	}
	return fmt.Sprintf("%d.%dms", tenths/10, tenths%10)
}
