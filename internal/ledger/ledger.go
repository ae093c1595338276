package ledger

import (
	"sync"

	"github.com/BruksfildServices01/salon-scheduler/internal/apperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Entry is one occupied cell of the grid, in scan order.
type Entry struct {
	Slot    models.TimeSlot
	Staff   models.StaffMember
	Booking models.Booking
}

// Ledger é a grade horário × profissional. Cada célula guarda no máximo um
// agendamento ativo; Book e Cancel são o único caminho de escrita, sempre
// check-and-set sob o mutex, então duas chamadas nunca enxergam a mesma
// célula vazia ao mesmo tempo.
type Ledger struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	slots   []models.TimeSlot
	staff   []models.StaffMember
	cells   [][]*models.Booking // [slot][staff]
}

func New(cat *catalog.Catalog) *Ledger {
	slots := cat.TimeSlots()
	staff := cat.Staff()

	cells := make([][]*models.Booking, len(slots))
	for i := range cells {
		cells[i] = make([]*models.Booking, len(staff))
	}

	return &Ledger{
		catalog: cat,
		slots:   slots,
		staff:   staff,
		cells:   cells,
	}
}

// Book stores b in the (slot, staff) cell. It fails with not_found when the
// slot or staff does not resolve and with slot_conflict when the cell is
// already occupied; on failure nothing is mutated. The day label is carried
// on the booking only — the grid has no day dimension, so two bookings for
// the same slot and staff conflict regardless of day.
func (l *Ledger) Book(slot models.TimeSlot, day string, staff models.StaffMember, b models.Booking) error {
	si, ok := l.catalog.SlotIndex(slot)
	if !ok {
		return apperr.ErrBusiness(apperr.CodeNotFound)
	}
	ti, ok := l.catalog.StaffIndex(staff)
	if !ok {
		return apperr.ErrBusiness(apperr.CodeNotFound)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cells[si][ti] != nil {
		return apperr.ErrBusiness(apperr.CodeSlotConflict)
	}

	// A célula guarda uma cópia independente: o chamador não consegue
	// alterar o agendamento ativo pelo slice de serviços que passou.
	stored := b.Snapshot()
	l.cells[si][ti] = &stored
	return nil
}

// Cancel clears the (slot, staff) cell and returns the removed booking so
// the caller can forward it to the activity log. Fails with not_found when
// the slot or staff does not resolve and with empty_cell when there is
// nothing to cancel.
func (l *Ledger) Cancel(slot models.TimeSlot, day string, staff models.StaffMember) (models.Booking, error) {
	si, ok := l.catalog.SlotIndex(slot)
	if !ok {
		return models.Booking{}, apperr.ErrBusiness(apperr.CodeNotFound)
	}
	ti, ok := l.catalog.StaffIndex(staff)
	if !ok {
		return models.Booking{}, apperr.ErrBusiness(apperr.CodeNotFound)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.cells[si][ti]
	if b == nil {
		return models.Booking{}, apperr.ErrBusiness(apperr.CodeEmptyCell)
	}
	l.cells[si][ti] = nil
	return b.Snapshot(), nil
}

func (l *Ledger) HasAnyBooking() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, row := range l.cells {
		for _, b := range row {
			if b != nil {
				return true
			}
		}
	}
	return false
}

// AllBookings enumerates occupied cells in slot-major order (slot, then
// staff). The order is stable between calls, so position numbers shown to
// the user keep pointing at the same booking.
func (l *Ledger) AllBookings() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var entries []Entry
	for si, row := range l.cells {
		for ti, b := range row {
			if b == nil {
				continue
			}
			entries = append(entries, Entry{
				Slot:    l.slots[si],
				Staff:   l.staff[ti],
				Booking: b.Snapshot(),
			})
		}
	}
	return entries
}
