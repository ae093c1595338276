package booking

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/apperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	"github.com/BruksfildServices01/salon-scheduler/internal/ledger"
)

// NumberedEntry carries the position of an entry in the ledger's scan
// order. Positions are 1-based because they are shown to the user, and the
// same position always points at the same booking while the grid is
// unchanged.
type NumberedEntry struct {
	Position int
	Entry    ledger.Entry
}

type ListBookings struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
}

func NewListBookings(cat *catalog.Catalog, led *ledger.Ledger) *ListBookings {
	return &ListBookings{catalog: cat, ledger: led}
}

// Execute lista todos os agendamentos ativos, numerados na ordem de
// varredura do grid.
func (uc *ListBookings) Execute() []NumberedEntry {
	entries := uc.ledger.AllBookings()
	numbered := make([]NumberedEntry, 0, len(entries))
	for i, e := range entries {
		numbered = append(numbered, NumberedEntry{Position: i + 1, Entry: e})
	}
	return numbered
}

// ForCustomer filtra a lista pelo telefone do cliente, preservando as
// posições globais da enumeração.
func (uc *ListBookings) ForCustomer(phone string) []NumberedEntry {
	var mine []NumberedEntry
	for _, n := range uc.Execute() {
		if n.Entry.Booking.Customer.Phone == phone {
			mine = append(mine, n)
		}
	}
	return mine
}

// ByPosition resolves a 1-based position from a previously shown list.
func (uc *ListBookings) ByPosition(pos int) (ledger.Entry, error) {
	entries := uc.ledger.AllBookings()
	if pos < 1 || pos > len(entries) {
		return ledger.Entry{}, apperr.ErrBusiness(apperr.CodeInvalidSelection)
	}
	return entries[pos-1], nil
}

// Availability reports cell occupancy in catalog order, slot-major. The
// interaction layer renders it as the slot × staff grid.
func (uc *ListBookings) Availability() [][]bool {
	slots := uc.catalog.TimeSlots()
	staff := uc.catalog.Staff()

	occupied := make([][]bool, len(slots))
	for i := range occupied {
		occupied[i] = make([]bool, len(staff))
	}

	for _, e := range uc.ledger.AllBookings() {
		si, ok := uc.catalog.SlotIndex(e.Slot)
		if !ok {
			continue
		}
		ti, ok := uc.catalog.StaffIndex(e.Staff)
		if !ok {
			continue
		}
		occupied[si][ti] = true
	}
	return occupied
}
