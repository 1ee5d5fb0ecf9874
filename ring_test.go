package vouch

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestErrorRing_NilWhenDisabled(t *testing.T) {
	if r := newErrorRing(0); r != nil {
		t.Error("expected nil ring for size 0")
	}
	if r := newErrorRing(-1); r != nil {
		t.Error("expected nil ring for negative size")
	}
}

func TestErrorRing_NilReceiverIsSafe(t *testing.T) {
	var r *errorRing

	r.push(errors.New("ignored"))
	if got := r.all(); got != nil {
		t.Errorf("expected nil from disabled ring, got %v", got)
	}
}

func TestErrorRing_OldestFirst(t *testing.T) {
	r := newErrorRing(3)

	for i := 1; i <= 2; i++ {
		r.push(fmt.Errorf("err %d", i))
	}

	got := r.all()
	if len(got) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(got))
	}
	if got[0].Error() != "err 1" || got[1].Error() != "err 2" {
		t.Errorf("expected oldest first, got %v", got)
	}
}

func TestErrorRing_EvictsOldestWhenFull(t *testing.T) {
	r := newErrorRing(3)

	for i := 1; i <= 5; i++ {
		r.push(fmt.Errorf("err %d", i))
	}

	got := r.all()
	if len(got) != 3 {
		t.Fatalf("expected 3 retained errors, got %d", len(got))
	}
	for i, want := range []string{"err 3", "err 4", "err 5"} {
		if got[i].Error() != want {
			t.Errorf("expected %q at %d, got %q", want, i, got[i].Error())
		}
	}
}

func TestErrorRing_EmptyReturnsNil(t *testing.T) {
	r := newErrorRing(4)
	if got := r.all(); got != nil {
		t.Errorf("expected nil from empty ring, got %v", got)
	}
}

func TestErrorRing_ConcurrentPush(t *testing.T) {
	r := newErrorRing(8)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.push(fmt.Errorf("err %d", n))
		}(i)
	}
	wg.Wait()

	if got := r.all(); len(got) != 8 {
		t.Errorf("expected a full ring of 8, got %d", len(got))
	}
}
