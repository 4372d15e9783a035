package app

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

type fakeService struct {
	name     string
	startErr error
	stops    atomic.Int32
}

func (f *fakeService) Name() string { return f.name }

func (f *fakeService) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-ctx.Done()
	return nil
}

func (f *fakeService) Stop(ctx context.Context) error {
	f.stops.Add(1)
	return nil
}

func TestRunnerStopsAllWhenOneServiceFails(t *testing.T) {
	failing := &fakeService{name: "queue", startErr: errors.New("redis unreachable")}
	healthy := &fakeService{name: "http"}
	runner := NewRunner(failing, healthy)

	err := runner.Run(context.Background(), time.Second, nil)
	if err == nil {
		t.Fatal("want error from failing service, got nil")
	}
	if !strings.Contains(err.Error(), "queue") || !strings.Contains(err.Error(), "redis unreachable") {
		t.Fatalf("error should name the failing service and cause, got %v", err)
	}
	if failing.stops.Load() != 1 || healthy.stops.Load() != 1 {
		t.Fatalf("both services should be stopped once, got %d and %d",
			failing.stops.Load(), healthy.stops.Load())
	}
}

func TestRunnerTreatsCancelAsCleanShutdown(t *testing.T) {
	svc := &fakeService{name: "http"}
	runner := NewRunner(svc)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	if err := runner.Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("cancelled run should return nil, got %v", err)
	}
	if svc.stops.Load() != 1 {
		t.Fatalf("service should be stopped once, got %d", svc.stops.Load())
	}
}

func TestRunnerRejectsEmptyServiceSet(t *testing.T) {
	if err := NewRunner().Run(context.Background(), time.Second, nil); err == nil {
		t.Fatal("want error for empty runner, got nil")
	}
}
