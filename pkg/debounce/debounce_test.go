package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kodig3618/Job-Tracker/pkg/debounce"
)

func TestTriggerFiresAfterQuietPeriod(t *testing.T) {
	var fired atomic.Int32
	d := debounce.New(20 * time.Millisecond)

	d.Trigger(func() { fired.Add(1) })

	assert.Equal(t, int32(0), fired.Load())
	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestRetriggerCancelsPendingSlot(t *testing.T) {
	var first, second atomic.Int32
	d := debounce.New(50 * time.Millisecond)

	d.Trigger(func() { first.Add(1) })
	time.Sleep(10 * time.Millisecond)
	d.Trigger(func() { second.Add(1) })

	assert.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), first.Load(), "superseded action must never fire")
}

func TestStopCancelsOutright(t *testing.T) {
	var fired atomic.Int32
	d := debounce.New(20 * time.Millisecond)

	d.Trigger(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())

	// Stop with nothing pending is fine
	d.Stop()
}
