// Package model defines the pocketbook domain types: accounts, categories,
// ledger entries, bills, income divisions, budgets, and jobs.
package model

import (
	"fmt"
	"strings"
)

// PairID is the composite identity of a child entity in a parent/child
// hierarchy: SubAccounts under Accounts, SubCategories under Categories.
// Two pairs are the same entity iff parent and name match exactly
// (case-sensitive, untrimmed) -- callers trim before constructing.
type PairID struct {
	Parent string
	Name   string
}

// NewPairID builds a PairID. An empty parent is allowed for roots.
func NewPairID(parent, name string) PairID {
	return PairID{Parent: parent, Name: name}
}

// RawValue serializes the pair as "<parent>.<name>". Round-trips through
// ParsePairID for any pair whose name is non-empty.
func (p PairID) RawValue() string {
	return p.Parent + "." + p.Name
}

// String renders the identity for display, omitting the dot for roots.
func (p PairID) String() string {
	if p.Parent == "" {
		return p.Name
	}
	return p.Parent + "." + p.Name
}

// ParsePairID reconstructs a PairID from its raw "<parent>.<name>" form.
// The parent never contains a dot, so the split is at the first one.
func ParsePairID(raw string) (PairID, error) {
	idx := strings.Index(raw, ".")
	if idx < 0 {
		return PairID{}, fmt.Errorf("malformed pair id %q: missing separator", raw)
	}
	id := PairID{Parent: raw[:idx], Name: raw[idx+1:]}
	if id.Name == "" {
		return PairID{}, fmt.Errorf("malformed pair id %q: empty name", raw)
	}
	return id, nil
}
