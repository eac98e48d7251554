package formatter

import (
	"testing"
	"time"
)

func TestSpinner_StartStop(t *testing.T) {
	s := NewSpinner("working")
	s.Start()
	time.Sleep(120 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestSpinner_StopTwiceIsSafe(t *testing.T) {
	s := NewSpinner("working")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestStartSpinner_ReturnsStop(t *testing.T) {
	stop := StartSpinner("thinking")
	stop()
}
