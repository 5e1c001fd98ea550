package domain

// Identity is the opaque caller identity supplied by the surrounding
// runtime. The core never authenticates it, only compares it.
type Identity string

type Account struct {
	ID           Identity `json:"id"`
	Name         string   `json:"name"`
	Surname      string   `json:"surname"`
	BalanceCents int64    `json:"balance_cents"`
	DebtCents    int64    `json:"debt_cents"`
	// ActiveRental is the ID of the item currently rented, or NoItem.
	// RentalStart is meaningful only while ActiveRental is set.
	ActiveRental int64 `json:"active_rental,omitempty"`
	RentalStart  int64 `json:"rental_start,omitempty"`
}

// Renting reports whether the account currently holds an item.
func (a *Account) Renting() bool {
	return a.ActiveRental != NoItem
}
