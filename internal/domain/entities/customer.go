package entities

// Customer is a workshop client. A customer owns zero or more service orders;
// ownership is enforced by the use cases (guarded delete, cascade).
//
// Storage model (DynamoDB):
//   - PK: id (number, issued by the id_counters table)

type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}
