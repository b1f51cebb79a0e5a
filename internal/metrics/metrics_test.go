package metrics

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestCounters(t *testing.T) {
	mx := NewMetrics()
	mx.Move()
	mx.Move()
	mx.Default()
	mx.Skip()

	if mx.Moved() != 2 || mx.Defaulted() != 1 || mx.Skipped() != 1 {
		t.Errorf("Unexpected counters %v", mx)
	}
	if !strings.HasPrefix(mx.String(), "moved=2 defaulted=1 skipped=1") {
		t.Errorf("Unexpected summary %q", mx.String())
	}
}

func TestRecord(t *testing.T) {
	mx := NewMetrics()

	stop := mx.Record("photo")
	time.Sleep(2 * time.Millisecond)
	stop()

	if mx.Elapsed("photo") <= 0 {
		t.Errorf("Expected a positive duration for photo")
	}
	if mx.Elapsed("video") != 0 {
		t.Errorf("Expected no duration for video")
	}
}

func TestNoMetrics(t *testing.T) {
	mx := NoMetrics()
	mx.Move()
	mx.Record("photo")()

	if mx.Moved() != 0 || mx.String() != "" {
		t.Errorf("Expected a disabled metrics to record nothing")
	}
}

func TestCountersAreReadableWhileUpdated(t *testing.T) {
	mx := NewMetrics()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = mx.Moved() + mx.Defaulted() + mx.Skipped()
		}
	}()

	for i := 0; i < 1000; i++ {
		mx.Move()
		mx.Default()
		mx.Skip()
	}
	wg.Wait()

	if mx.Moved() != 1000 || mx.Defaulted() != 1000 || mx.Skipped() != 1000 {
		t.Errorf("Unexpected counters %v", mx)
	}
}
