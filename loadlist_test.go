package cliff

import "testing"

// TestLoadList_NoFailure walks the whole list without overloading.
func TestLoadList_NoFailure(t *testing.T) {
	scale := NewLoadList(1, 2, 3, 4)
	expectNext(t, scale, 1)
	expectNext(t, scale, 2)
	expectNext(t, scale, 3)
	expectNext(t, scale, 4)
	expectDone(t, scale)

	// The cliff was never found, so the estimate stays open above the
	// last value tried.
	est := scale.Estimate()
	if !est.Unbounded || est.Lo != 4 {
		t.Errorf("Estimate() = %v, want [4, +inf)", est)
	}

	expectDone(t, scale)
	scale.Overloaded()
	expectDone(t, scale)
}

// TestLoadList_Failure stops permanently at the first overload.
func TestLoadList_Failure(t *testing.T) {
	scale := NewLoadList(1, 2, 3, 4)
	expectNext(t, scale, 1)
	expectNext(t, scale, 2)
	scale.Overloaded()
	expectDone(t, scale)

	if got, want := scale.Estimate(), (Bracket{Lo: 1, Hi: 2}); got != want {
		t.Errorf("Estimate() = %v, want %v", got, want)
	}

	expectDone(t, scale)
	scale.Overloaded()
	expectDone(t, scale)
	if got, want := scale.Estimate(), (Bracket{Lo: 1, Hi: 2}); got != want {
		t.Errorf("Estimate() after termination = %v, want %v", got, want)
	}
}

// TestLoadList_FirstValueOverload overloads on the very first element.
func TestLoadList_FirstValueOverload(t *testing.T) {
	scale := NewLoadList(10, 20)
	expectNext(t, scale, 10)
	scale.Overloaded()
	expectDone(t, scale)

	if got, want := scale.Estimate(), (Bracket{Lo: 0, Hi: 10}); got != want {
		t.Errorf("Estimate() = %v, want %v", got, want)
	}
}

// TestLoadList_Empty terminates immediately on an empty list.
func TestLoadList_Empty(t *testing.T) {
	scale := NewLoadList()
	expectDone(t, scale)

	est := scale.Estimate()
	if !est.Unbounded || est.Lo != 0 {
		t.Errorf("Estimate() = %v, want [0, +inf)", est)
	}
}

// TestLoadList_LazyConsumption verifies elements are pulled one per
// produce call, never ahead of time.
func TestLoadList_LazyConsumption(t *testing.T) {
	pulled := 0
	values := []int{5, 10, 15}
	scale := LoadListFunc(func() (int, bool) {
		if pulled >= len(values) {
			return 0, false
		}
		n := values[pulled]
		pulled++
		return n, true
	})

	if pulled != 0 {
		t.Fatalf("constructor pulled %d elements", pulled)
	}
	expectNext(t, scale, 5)
	if pulled != 1 {
		t.Fatalf("one produce call pulled %d elements", pulled)
	}
	expectNext(t, scale, 10)
	scale.Overloaded()
	expectDone(t, scale)
	if pulled != 2 {
		t.Fatalf("overloaded walk pulled %d elements, want 2", pulled)
	}

	if got, want := scale.Estimate(), (Bracket{Lo: 5, Hi: 10}); got != want {
		t.Errorf("Estimate() = %v, want %v", got, want)
	}
}

// TestLoadList_ThroughInterface exercises manual override via the shared
// contract.
func TestLoadList_ThroughInterface(t *testing.T) {
	var scale CliffSearcher = NewLoadList(100, 200, 300)
	expectNext(t, scale, 100)
	expectNext(t, scale, 200)
	expectNext(t, scale, 300)
	scale.Overloaded()
	expectDone(t, scale)

	if got, want := scale.Estimate(), (Bracket{Lo: 200, Hi: 300}); got != want {
		t.Errorf("Estimate() = %v, want %v", got, want)
	}
}
