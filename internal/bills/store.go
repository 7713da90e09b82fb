// Package bills holds the in-memory record store for bills.
package bills

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/billmgr/internal/model"
)

// Store is an in-memory mapping from bill name to bill. It is not safe for
// concurrent use; the interactive session owns it exclusively.
type Store struct {
	byName map[string]model.Bill
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{byName: make(map[string]model.Bill)}
}

// Add inserts a bill keyed by its name, replacing any bill with the same name.
func (s *Store) Add(bill model.Bill) {
	s.byName[bill.Name] = bill
}

// List returns a snapshot of all bills sorted by name.
func (s *Store) List() []model.Bill {
	result := make([]model.Bill, 0, len(s.byName))
	for _, b := range s.byName {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Remove deletes the named bill and reports whether it existed.
func (s *Store) Remove(name string) bool {
	if _, ok := s.byName[name]; !ok {
		return false
	}
	delete(s.byName, name)
	return true
}

// Update replaces the amount of the named bill. It reports false and leaves
// the store untouched when no such bill exists.
func (s *Store) Update(name string, amount float64) bool {
	b, ok := s.byName[name]
	if !ok {
		return false
	}
	b.Amount = amount
	s.byName[name] = b
	return true
}

// Get returns a bill by name.
func (s *Store) Get(name string) (model.Bill, bool) {
	b, ok := s.byName[name]
	return b, ok
}

// Len returns the number of bills.
func (s *Store) Len() int {
	return len(s.byName)
}

// Total sums all amounts in decimal. Non-finite amounts are skipped.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.byName {
		if d, ok := model.AmountDecimal(b.Amount); ok {
			total = total.Add(d)
		}
	}
	return total
}
