package engine

import (
	"errors"
	"testing"
)

func TestResolved(t *testing.T) {
	h := Resolved(42)
	select {
	case <-h.Done():
	default:
		t.Fatal("Done should be closed for resolved handle")
	}
	v, ok, err := h.Result()
	if !ok || err != nil || v != 42 {
		t.Errorf("Result() = %d, %v, %v; want 42, true, nil", v, ok, err)
	}
}

func TestHandle_ThenBeforeAndAfterResolve(t *testing.T) {
	h := newHandle[string]()
	var got []string
	h.Then(func(v string, err error) { got = append(got, "before:"+v) })
	h.resolve("x")
	h.Then(func(v string, err error) { got = append(got, "after:"+v) })

	if len(got) != 2 || got[0] != "before:x" || got[1] != "after:x" {
		t.Errorf("handlers got %v", got)
	}
}

func TestHandle_SettlesOnce(t *testing.T) {
	h := newHandle[int]()
	calls := 0
	h.Then(func(int, error) { calls++ })
	h.resolve(1)
	h.resolve(2)
	h.reject(errors.New("late"))

	v, _, err := h.Result()
	if v != 1 || err != nil {
		t.Errorf("Result() = %d, %v; want 1, nil", v, err)
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestHandle_PendingResult(t *testing.T) {
	h := newHandle[int]()
	if _, ok, _ := h.Result(); ok {
		t.Error("pending handle should not report settled")
	}
}

func TestAll_PreservesInputOrder(t *testing.T) {
	hs := []*Handle[int]{newHandle[int](), newHandle[int](), newHandle[int]()}
	all := All(hs)

	hs[2].resolve(30)
	hs[0].resolve(10)
	if _, ok, _ := all.Result(); ok {
		t.Fatal("All resolved before every input")
	}
	hs[1].resolve(20)

	got, ok, err := all.Result()
	if !ok || err != nil {
		t.Fatalf("Result() ok=%v err=%v", ok, err)
	}
	want := []int{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestAll_RejectsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	hs := []*Handle[int]{newHandle[int](), newHandle[int]()}
	all := All(hs)
	hs[1].reject(boom)
	hs[0].resolve(1)

	_, ok, err := all.Result()
	if !ok {
		t.Fatal("All should be settled")
	}
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestAll_Empty(t *testing.T) {
	got, ok, err := All[int](nil).Result()
	if !ok || err != nil || len(got) != 0 {
		t.Errorf("All(nil) = %v, %v, %v", got, ok, err)
	}
}
