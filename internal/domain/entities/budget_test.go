package entities

import "testing"

func intPtr(v int) *int { return &v }

func TestBudget_Total(t *testing.T) {
	b := Budget{Cost: 120, Labor: 80}
	if b.Total() != 200 {
		t.Fatalf("expected 200, got %d", b.Total())
	}

	b.UpdateCosts(intPtr(50), nil)
	if b.Cost != 50 || b.Labor != 80 || b.Total() != 130 {
		t.Fatalf("unexpected state after cost update: %+v total=%d", b, b.Total())
	}

	b.UpdateCosts(nil, intPtr(0))
	if b.Cost != 50 || b.Labor != 0 || b.Total() != 50 {
		t.Fatalf("unexpected state after labor update: %+v total=%d", b, b.Total())
	}
}

func TestBudget_AcceptReject(t *testing.T) {
	b := Budget{Cost: 10, Labor: 5}
	if b.Status() != BudgetStatusPendiente {
		t.Fatalf("new budget should be pending, got %s", b.Status())
	}

	b.Accept()
	if !b.Accepted || b.Status() != BudgetStatusAceptado {
		t.Fatalf("unexpected state after accept: %+v", b)
	}
	if b.Cost != 10 || b.Labor != 5 {
		t.Fatalf("accept must not touch cost fields: %+v", b)
	}

	// reversible in both directions
	b.Reject()
	if b.Accepted || b.Status() != BudgetStatusPendiente {
		t.Fatalf("unexpected state after reject: %+v", b)
	}
}

func TestSparePartsTotal(t *testing.T) {
	parts := []SparePart{{Cost: 20}, {Cost: 30}}
	if got := SparePartsTotal(parts); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := SparePartsTotal(nil); got != 0 {
		t.Fatalf("expected 0 for no parts, got %d", got)
	}
}
