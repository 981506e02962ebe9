// file: internal/metrics/metrics_test.go
// version: 2.0.0
// guid: 2d4733e8-12e3-42e6-9f7d-cda4a8f5d3e0

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegister_Idempotent(t *testing.T) {
	Register()
	Register()
}

func TestOperationCounters(t *testing.T) {
	IncOperationStarted("test_operation")
	IncOperationCompleted("test_operation")
	IncOperationFailed("test_operation", "format")
	ObserveOperationDuration("test_operation", 100*time.Millisecond)
}

func TestTrack_Success(t *testing.T) {
	before := testutil.ToFloat64(operationCompleted.WithLabelValues("track_ok"))
	if err := Track("track_ok", nil, func() error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := testutil.ToFloat64(operationCompleted.WithLabelValues("track_ok"))
	if after != before+1 {
		t.Errorf("completed counter = %v, want %v", after, before+1)
	}
}

func TestTrack_FailureIsClassified(t *testing.T) {
	boom := errors.New("boom")
	classify := func(err error) string {
		if errors.Is(err, boom) {
			return "boom"
		}
		return "other"
	}

	err := Track("track_fail", classify, func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got := testutil.ToFloat64(operationFailed.WithLabelValues("track_fail", "boom")); got != 1 {
		t.Errorf("failed counter = %v, want 1", got)
	}

	_ = Track("track_fail_default", nil, func() error { return boom })
	if got := testutil.ToFloat64(operationFailed.WithLabelValues("track_fail_default", "error")); got != 1 {
		t.Errorf("default class counter = %v, want 1", got)
	}
}

func TestCountersAndGauges(t *testing.T) {
	before := testutil.ToFloat64(datasetsProcessed)
	AddDatasets(3)
	if got := testutil.ToFloat64(datasetsProcessed); got != before+3 {
		t.Errorf("datasets counter = %v, want %v", got, before+3)
	}
	AddBytesWritten(1024)
	SetWatchPending(2)
	if got := testutil.ToFloat64(watchedFiles); got != 2 {
		t.Errorf("watch gauge = %v, want 2", got)
	}

	hits := testutil.ToFloat64(cacheLookups.WithLabelValues("test", "hit"))
	ObserveCacheLookup("test", true)
	ObserveCacheLookup("test", false)
	if got := testutil.ToFloat64(cacheLookups.WithLabelValues("test", "hit")); got != hits+1 {
		t.Errorf("cache hits = %v, want %v", got, hits+1)
	}
}
