package entities

// SparePart is a line-item replacement part charged against a service order.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - GSI1 (order_id-index): order_id

type SparePart struct {
	ID      int    `json:"id"`
	OrderID int    `json:"order_id"`
	Name    string `json:"name"`
	Cost    int    `json:"cost"`
}

// SparePartsTotal sums part costs. Used for the order's live parts total,
// which is always computed from the current line items, never cached.
func SparePartsTotal(parts []SparePart) int {
	total := 0
	for _, p := range parts {
		total += p.Cost
	}
	return total
}
