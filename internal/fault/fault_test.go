package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MarcosLima-dev/core-bank-ledger-service/internal/fault"
)

func TestKindOf(t *testing.T) {
	sentinel := fault.New(fault.Validation, "value out of range")

	t.Run("returns kind of a bare fault", func(t *testing.T) {
		if got := fault.KindOf(sentinel); got != fault.Validation {
			t.Errorf("expected %v, got %v", fault.Validation, got)
		}
	})

	t.Run("returns outermost kind when faults nest", func(t *testing.T) {
		wrapped := fault.Wrapf(fault.IllegalOperation, sentinel, "operation rejected")

		if got := fault.KindOf(wrapped); got != fault.IllegalOperation {
			t.Errorf("expected %v, got %v", fault.IllegalOperation, got)
		}
	})

	t.Run("sees through fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("account 123: %w", sentinel)

		if got := fault.KindOf(wrapped); got != fault.Validation {
			t.Errorf("expected %v, got %v", fault.Validation, got)
		}
	})

	t.Run("returns empty kind for plain errors", func(t *testing.T) {
		if got := fault.KindOf(errors.New("boom")); got != "" {
			t.Errorf("expected empty kind, got %v", got)
		}
	})
}

func TestWrapf(t *testing.T) {
	cause := fault.New(fault.Validation, "bad number")
	wrapped := fault.Wrapf(fault.IllegalOperation, cause, "account %s cannot be debited", "125746398235")

	t.Run("message omits the cause", func(t *testing.T) {
		if wrapped.Error() != "account 125746398235 cannot be debited" {
			t.Errorf("unexpected message %q", wrapped.Error())
		}
	})

	t.Run("cause stays reachable via errors.Is", func(t *testing.T) {
		if !errors.Is(wrapped, cause) {
			t.Error("expected wrapped fault to match its cause")
		}
	})

	t.Run("IsKind matches the outer kind only", func(t *testing.T) {
		if !fault.IsKind(wrapped, fault.IllegalOperation) {
			t.Error("expected IsKind to match outer kind")
		}

		if fault.IsKind(wrapped, fault.Validation) {
			t.Error("expected IsKind to ignore inner kind")
		}
	})
}
