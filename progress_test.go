package fractal

import (
	"sync"
	"testing"
)

func TestProgress(t *testing.T) {
	p := NewProgress(0)
	if p.Fraction() != 0 {
		t.Error("fraction of an empty render")
	}
	p.Expect(1000)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				p.Increment(1)
			}
		}()
	}
	wg.Wait()

	if p.Done() != 1000 || p.Fraction() != 1 {
		t.Errorf("progress %d/%d", p.Done(), p.Total())
	}
	if p.Cancelled() {
		t.Error("cancelled without Cancel")
	}
	p.Cancel()
	if !p.Cancelled() {
		t.Error("Cancel had no effect")
	}
}
