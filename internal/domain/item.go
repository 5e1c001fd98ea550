package domain

type ItemStatus string

const (
	ItemStatusRetired   ItemStatus = "RETIRED"
	ItemStatusInUse     ItemStatus = "IN_USE"
	ItemStatusAvailable ItemStatus = "AVAILABLE"
)

// NoItem is the reserved item identifier meaning "no such item".
// Real identifiers are assigned sequentially starting at 1.
const NoItem int64 = 0

type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	// RentRateCents is charged per elapsed whole minute of use.
	RentRateCents int64 `json:"rent_rate_cents"`
	// SaleRateCents is advisory only; no operation enforces it.
	SaleRateCents int64      `json:"sale_rate_cents"`
	Status        ItemStatus `json:"status"`
}

// ValidItemStatus reports whether s is one of the three known statuses.
func ValidItemStatus(s ItemStatus) bool {
	switch s {
	case ItemStatusRetired, ItemStatusInUse, ItemStatusAvailable:
		return true
	}
	return false
}
