package ledger

import (
	"testing"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/apperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(&config.Catalog{
		Services: []models.Service{
			{Code: "corte", Description: "Corte de cabelo", Price: 30.00},
			{Code: "barba", Description: "Barba", Price: 25.00},
		},
		Staff:          []models.StaffMember{"Lucas", "Julia"},
		TimeSlots:      []models.TimeSlot{"09:00", "10:00"},
		PaymentMethods: []models.PaymentMethod{models.PaymentCash, models.PaymentPix},
	})
}

func testBooking(name string, slot models.TimeSlot, staff models.StaffMember) models.Booking {
	return models.Booking{
		ID:       uuid.New(),
		Customer: models.Customer{Name: name, Phone: "111"},
		Slot:     slot,
		Day:      "01/01",
		Services: []models.Service{{Code: "corte", Description: "Corte de cabelo", Price: 30.00}},
		Staff:    staff,
		Payment:  models.PaymentPix,
	}
}

func TestBookThenCancel(t *testing.T) {
	l := New(testCatalog())

	first := testBooking("Ana", "09:00", "Lucas")
	if err := l.Book("09:00", "01/01", "Lucas", first); err != nil {
		t.Fatalf("first Book failed: %v", err)
	}

	// Same slot+staff must conflict, even with another day label.
	second := testBooking("Bia", "09:00", "Lucas")
	err := l.Book("09:00", "02/01", "Lucas", second)
	if !apperr.IsBusiness(err, apperr.CodeSlotConflict) {
		t.Fatalf("second Book: expected slot_conflict, got %v", err)
	}

	entries := l.AllBookings()
	if len(entries) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(entries))
	}
	if entries[0].Booking.ID != first.ID {
		t.Fatalf("grid holds %v, want the first booking %v", entries[0].Booking.ID, first.ID)
	}

	removed, err := l.Cancel("09:00", "01/01", "Lucas")
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if removed.ID != first.ID {
		t.Fatalf("Cancel returned %v, want %v", removed.ID, first.ID)
	}

	if _, err := l.Cancel("09:00", "01/01", "Lucas"); !apperr.IsBusiness(err, apperr.CodeEmptyCell) {
		t.Fatalf("second Cancel: expected empty_cell, got %v", err)
	}
}

func TestUnresolvedLookups(t *testing.T) {
	l := New(testCatalog())
	b := testBooking("Ana", "09:00", "Lucas")

	cases := []struct {
		name  string
		slot  models.TimeSlot
		staff models.StaffMember
	}{
		{"unknown slot", "23:00", "Lucas"},
		{"unknown staff", "09:00", "Pedro"},
		{"both unknown", "23:00", "Pedro"},
	}

	for _, tt := range cases {
		if err := l.Book(tt.slot, "01/01", tt.staff, b); !apperr.IsBusiness(err, apperr.CodeNotFound) {
			t.Fatalf("%s: Book expected not_found, got %v", tt.name, err)
		}
		if _, err := l.Cancel(tt.slot, "01/01", tt.staff); !apperr.IsBusiness(err, apperr.CodeNotFound) {
			t.Fatalf("%s: Cancel expected not_found, got %v", tt.name, err)
		}
	}

	if l.HasAnyBooking() {
		t.Fatal("failed lookups must not mutate the grid")
	}
}

func TestScanOrderIsSlotMajor(t *testing.T) {
	l := New(testCatalog())

	// Booked out of order on purpose.
	if err := l.Book("10:00", "01/01", "Lucas", testBooking("Carla", "10:00", "Lucas")); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if err := l.Book("09:00", "01/01", "Julia", testBooking("Ana", "09:00", "Julia")); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if err := l.Book("09:00", "01/01", "Lucas", testBooking("Bia", "09:00", "Lucas")); err != nil {
		t.Fatalf("Book: %v", err)
	}

	want := []struct {
		slot  models.TimeSlot
		staff models.StaffMember
	}{
		{"09:00", "Lucas"},
		{"09:00", "Julia"},
		{"10:00", "Lucas"},
	}

	entries := l.AllBookings()
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Slot != w.slot || entries[i].Staff != w.staff {
			t.Fatalf("entry %d = (%s, %s), want (%s, %s)",
				i, entries[i].Slot, entries[i].Staff, w.slot, w.staff)
		}
	}

	// The numbering shown to users relies on the order being stable.
	again := l.AllBookings()
	for i := range entries {
		if again[i].Booking.ID != entries[i].Booking.ID {
			t.Fatalf("entry %d changed between enumerations", i)
		}
	}
}

func TestHasAnyBooking(t *testing.T) {
	l := New(testCatalog())
	if l.HasAnyBooking() {
		t.Fatal("new ledger must be empty")
	}

	if err := l.Book("09:00", "01/01", "Lucas", testBooking("Ana", "09:00", "Lucas")); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if !l.HasAnyBooking() {
		t.Fatal("expected HasAnyBooking after Book")
	}

	if _, err := l.Cancel("09:00", "01/01", "Lucas"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if l.HasAnyBooking() {
		t.Fatal("expected empty ledger after Cancel")
	}
}

func TestEntriesAreSnapshots(t *testing.T) {
	l := New(testCatalog())

	in := testBooking("Ana", "09:00", "Lucas")
	if err := l.Book("09:00", "01/01", "Lucas", in); err != nil {
		t.Fatalf("Book: %v", err)
	}

	// Mutating the caller's slice must not reach the active booking.
	in.Services[0].Price = 999.00
	if got := l.AllBookings()[0].Booking.Services[0].Price; got != 30.00 {
		t.Fatalf("grid booking price = %.2f, want 30.00 after mutating the input", got)
	}

	// Mutating a returned entry must not reach it either.
	entry := l.AllBookings()[0]
	entry.Booking.Services[0].Price = 0
	if got := l.AllBookings()[0].Booking.Services[0].Price; got != 30.00 {
		t.Fatalf("grid booking price = %.2f, want 30.00 after mutating an entry", got)
	}

	removed, err := l.Cancel("09:00", "01/01", "Lucas")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if removed.Services[0].Price != 30.00 {
		t.Fatalf("cancelled booking price = %.2f, want 30.00", removed.Services[0].Price)
	}
}

func TestEveryCellHoldsAtMostOneBooking(t *testing.T) {
	cat := testCatalog()
	l := New(cat)

	// Hammer every cell twice; after each call the grid may never hold two
	// bookings for the same (slot, staff) pair.
	for _, slot := range cat.TimeSlots() {
		for _, staff := range cat.Staff() {
			_ = l.Book(slot, "01/01", staff, testBooking("Ana", slot, staff))
			_ = l.Book(slot, "01/01", staff, testBooking("Bia", slot, staff))

			seen := make(map[string]int)
			for _, e := range l.AllBookings() {
				seen[string(e.Slot)+"|"+string(e.Staff)]++
			}
			for cell, n := range seen {
				if n > 1 {
					t.Fatalf("cell %s holds %d bookings", cell, n)
				}
			}
		}
	}
}
