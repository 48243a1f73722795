package sequence

import (
	"sync"
	"testing"
)

func TestSequencerMonotonic(t *testing.T) {
	s := New(0)
	if s.Current() != 0 {
		t.Errorf("Current = %d, want 0", s.Current())
	}
	if s.Next() != 1 || s.Next() != 2 {
		t.Error("Next should count up from start")
	}
	if s.Current() != 2 {
		t.Errorf("Current = %d, want 2", s.Current())
	}
}

func TestSequencerReset(t *testing.T) {
	s := New(0)
	s.Next()
	s.Reset(100)
	if s.Next() != 101 {
		t.Error("Next after Reset(100) should be 101")
	}
}

func TestSequencerConcurrent(t *testing.T) {
	s := New(0)
	const workers, per = 8, 1000

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < per; j++ {
				s.Next()
			}
		}()
	}
	wg.Wait()

	if s.Current() != workers*per {
		t.Errorf("Current = %d, want %d", s.Current(), workers*per)
	}
}
