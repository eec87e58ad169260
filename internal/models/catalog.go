package models

// Category represents an event category used by the catalog
type Category struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Icon string `json:"icon" db:"icon"`
}

// PaymentMethod represents an accepted payment method shown at checkout.
// Payment processing itself happens outside this service.
type PaymentMethod struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Kind    string `json:"kind" db:"kind"`
	Details string `json:"details" db:"details"`
}
