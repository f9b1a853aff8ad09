package entities

// BudgetStatus reflects customer acceptance of a budget.

type BudgetStatus string

const (
	BudgetStatusAceptado  BudgetStatus = "Aceptado"
	BudgetStatusPendiente BudgetStatus = "Pendiente"
)

// Budget is the cost estimate attached to a service order: a spare-parts cost
// snapshot plus a labor component. At most one budget exists per order.
//
// Cost is a snapshot taken when the budget is created or updated; the owning
// order's live spare-part sum may drift from it afterwards, which is the
// intended two-view design (see the budget use case's LiveTotal).
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - GSI1 (order_id-index): order_id

type Budget struct {
	ID       int  `json:"id"`
	OrderID  int  `json:"order_id"`
	Cost     int  `json:"cost"`
	Labor    int  `json:"labor"`
	Accepted bool `json:"accepted"`
}

// Total is always cost + labor, recomputed on read.
func (b Budget) Total() int {
	return b.Cost + b.Labor
}

func (b Budget) Status() BudgetStatus {
	if b.Accepted {
		return BudgetStatusAceptado
	}
	return BudgetStatusPendiente
}

// UpdateCosts applies whichever components are present and leaves the rest
// untouched.
func (b *Budget) UpdateCosts(cost, labor *int) {
	if cost != nil {
		b.Cost = *cost
	}
	if labor != nil {
		b.Labor = *labor
	}
}

func (b *Budget) Accept() {
	b.Accepted = true
}

// Reject clears acceptance. Rejecting an already-accepted budget is allowed;
// the transition is reversible in both directions.
func (b *Budget) Reject() {
	b.Accepted = false
}
