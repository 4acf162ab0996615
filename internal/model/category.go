package model

import "github.com/google/uuid"

// Category classifies transactions. Structurally the same parent/child shape
// as Account/SubAccount, but categories never hold money.
type Category struct {
	ID   uuid.UUID
	Name string

	// Locked marks system-reserved categories that user flows must not
	// rename or delete.
	Locked bool

	SubCategories []SubCategory
}

// SubCategory is a named classification under a Category.
type SubCategory struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID

	// CategoryName is denormalized for identity; the store fills it on load.
	CategoryName string
}

// PairID returns the (category name, sub-category name) composite identity.
func (s SubCategory) PairID() PairID {
	return NewPairID(s.CategoryName, s.Name)
}

// ReservedCategories are seeded at store initialization and locked.
var ReservedCategories = []string{"Income", "Transfers", "Uncategorized"}
