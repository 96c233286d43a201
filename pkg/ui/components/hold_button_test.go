package components

import (
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestHoldButtonCompletes(t *testing.T) {
	test.NewApp()

	var fired atomic.Int32
	b := NewHoldButton("Hold to reset", 200*time.Millisecond, func() { fired.Add(1) })
	test.WidgetRenderer(b)

	b.MouseDown(nil)
	b.MouseDown(nil) // second press while holding is ignored

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, b.Progress())

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestHoldButtonReleasedEarly(t *testing.T) {
	test.NewApp()

	var fired atomic.Int32
	b := NewHoldButton("Hold to reset", time.Second, func() { fired.Add(1) })
	test.WidgetRenderer(b)

	b.MouseDown(nil)
	assert.Eventually(t, func() bool { return b.Progress() > 0 }, time.Second, 10*time.Millisecond)
	b.MouseUp(nil)

	assert.Zero(t, b.Progress())
	time.Sleep(1200 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestHoldButtonMouseOutCancels(t *testing.T) {
	test.NewApp()

	var fired atomic.Int32
	b := NewHoldButton("Hold to reset", 300*time.Millisecond, func() { fired.Add(1) })
	test.WidgetRenderer(b)

	b.MouseIn(nil)
	b.MouseDown(nil)
	b.MouseOut()

	time.Sleep(500 * time.Millisecond)
	assert.Zero(t, fired.Load())
	assert.Zero(t, b.Progress())
}

func TestHoldButtonCancelWithoutHold(t *testing.T) {
	test.NewApp()

	b := NewHoldButton("Hold to reset", time.Second, nil)
	assert.NotPanics(t, b.CancelHold)
	assert.NotPanics(t, func() { b.MouseUp(nil) })
}
