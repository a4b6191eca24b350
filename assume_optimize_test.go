//go:build optimize

package assume

import (
	"testing"

	"github.com/sufield/assume/hint"
)

func TestVerifiedOff(t *testing.T) {
	if Verified {
		t.Fatal("Verified must be false under the optimize build tag")
	}
}

func TestThatIsNoOp(t *testing.T) {
	// A violated assumption is not detected here; the check is gone.
	That(false, "never formatted %d", 1)
}

func TestHoldsNeverEvaluates(t *testing.T) {
	effects := 0
	Holds(func() bool {
		effects++
		return false
	}, "never formatted")
	if effects != 0 {
		t.Fatalf("Expected condition to stay unevaluated, got %d evaluation(s)", effects)
	}
}

func TestNeverTraps(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected Never to diverge")
		}
		// The trap is the preallocated sentinel: no diagnostic was
		// formatted on the optimized path.
		if r != hint.ErrReached {
			t.Fatalf("Expected hint.ErrReached, got %T: %v", r, r)
		}
	}()
	Never("never formatted %d", 7)
}
