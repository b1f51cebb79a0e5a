package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/atomic"
)

// Metrics counts what happened to each file during a run and how long each
// stage took. A nil *Metrics is valid and records nothing.
//
// Counters are safe for concurrent use, so they can be read while a run is
// updating them. Record and Elapsed belong to the goroutine driving the run.
type Metrics struct {
	moved     atomic.Int64
	defaulted atomic.Int64
	skipped   atomic.Int64

	stages map[string]time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{stages: make(map[string]time.Duration)}
}

func NoMetrics() *Metrics {
	return nil
}

// Record starts timing stage; call the returned func to stop.
func (x *Metrics) Record(stage string) func() {
	if x == nil {
		return func() {}
	}

	start := time.Now()
	return func() {
		x.stages[stage] += time.Since(start)
	}
}

func (x *Metrics) Move() {
	if x != nil {
		x.moved.Inc()
	}
}

// Default counts a file routed to the default bucket. It is also counted by Move.
func (x *Metrics) Default() {
	if x != nil {
		x.defaulted.Inc()
	}
}

func (x *Metrics) Skip() {
	if x != nil {
		x.skipped.Inc()
	}
}

func (x *Metrics) Moved() int64 {
	if x == nil {
		return 0
	}
	return x.moved.Load()
}

func (x *Metrics) Defaulted() int64 {
	if x == nil {
		return 0
	}
	return x.defaulted.Load()
}

func (x *Metrics) Skipped() int64 {
	if x == nil {
		return 0
	}
	return x.skipped.Load()
}

func (x *Metrics) Elapsed(stage string) time.Duration {
	if x == nil {
		return 0
	}
	return x.stages[stage]
}

func (x *Metrics) String() string {
	if x == nil {
		return ""
	}

	stages := make([]string, 0, len(x.stages))
	for name, d := range x.stages {
		stages = append(stages, fmt.Sprintf("%v=%v", name, d.Round(time.Millisecond)))
	}
	sort.Strings(stages)

	return fmt.Sprintf("moved=%d defaulted=%d skipped=%d %v", x.Moved(), x.Defaulted(), x.Skipped(), strings.Join(stages, " "))
}
