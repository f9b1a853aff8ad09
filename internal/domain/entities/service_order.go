package entities

import (
	"errors"
	"time"
)

// OrderStatus is the lifecycle position of a service order, derived from the
// reviewed/repaired/delivered flags. It is never persisted.

type OrderStatus string

const (
	OrderStatusPendiente OrderStatus = "Pendiente"
	OrderStatusRevisado  OrderStatus = "Revisado"
	OrderStatusReparado  OrderStatus = "Reparado"
	OrderStatusEntregado OrderStatus = "Entregado"
)

var (
	ErrOrderNotReviewed = errors.New("service order must be reviewed before being marked as repaired")
	ErrOrderNotRepaired = errors.New("service order must be repaired before being marked as delivered")
)

// ServiceOrder is a repair work order for a customer's product.
//
// The three flags form a strictly ordered progression with no skipping and no
// reversal: reviewed, then repaired, then delivered. The mutators below are
// the only way the flags move forward.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - GSI1 (customer_id-index): customer_id

type ServiceOrder struct {
	ID          int       `json:"id"`
	CustomerID  int       `json:"customer_id"`
	Date        time.Time `json:"date"`
	Product     string    `json:"product"`
	Model       string    `json:"model,omitempty"`
	Description string    `json:"description,omitempty"`
	Fault       string    `json:"fault,omitempty"`

	Reviewed      bool   `json:"reviewed"`
	Notes         string `json:"notes,omitempty"`
	EstimatedCost int    `json:"estimated_cost"`
	Repaired      bool   `json:"repaired"`
	Delivered     bool   `json:"delivered"`
}

// Status derives the lifecycle state from the flag triple, highest flag wins.
func (s ServiceOrder) Status() OrderStatus {
	switch {
	case s.Delivered:
		return OrderStatusEntregado
	case s.Repaired:
		return OrderStatusReparado
	case s.Reviewed:
		return OrderStatusRevisado
	default:
		return OrderStatusPendiente
	}
}

// MarkReviewed flags the order as reviewed. It is idempotent: calling it again
// refreshes the review notes and cost estimate. Notes and estimate are stored
// only when notes are provided.
func (s *ServiceOrder) MarkReviewed(notes string, estimatedCost int) {
	s.Reviewed = true
	if notes != "" {
		s.Notes = notes
		s.EstimatedCost = estimatedCost
	}
}

func (s *ServiceOrder) MarkRepaired() error {
	if !s.Reviewed {
		return ErrOrderNotReviewed
	}
	s.Repaired = true
	return nil
}

func (s *ServiceOrder) MarkDelivered() error {
	if !s.Repaired {
		return ErrOrderNotRepaired
	}
	s.Delivered = true
	return nil
}

// OrderStats buckets orders by lifecycle state. The buckets are mutually
// exclusive, so pending+reviewed+repaired+delivered == total.
type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Reviewed  int `json:"reviewed"`
	Repaired  int `json:"repaired"`
	Delivered int `json:"delivered"`
}
