package activity

import (
	"testing"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func booking(name string, price float64) models.Booking {
	return models.Booking{
		ID:       uuid.New(),
		Customer: models.Customer{Name: name, Phone: "111"},
		Slot:     "09:00",
		Day:      "01/01",
		Services: []models.Service{{Code: "corte", Description: "Corte de cabelo", Price: price}},
		Staff:    "Lucas",
		Payment:  models.PaymentPix,
	}
}

func TestTotalRevenueExcludesCancellations(t *testing.T) {
	log := NewLog()

	a := booking("Ana", 30.00)
	b := booking("Bia", 50.00)

	log.RecordBooking(a)
	log.RecordBooking(b)
	if got := log.TotalRevenue(); got != 80.00 {
		t.Fatalf("revenue before cancel = %.2f, want 80.00", got)
	}

	log.RecordCancellation(a)
	if got := log.TotalRevenue(); got != 50.00 {
		t.Fatalf("revenue after cancelling A = %.2f, want 50.00", got)
	}

	if n := len(log.Cancellations()); n != 1 {
		t.Fatalf("expected 1 cancellation, got %d", n)
	}
	if log.Cancellations()[0].Customer.Name != "Ana" {
		t.Fatalf("cancellation list holds %q, want Ana", log.Cancellations()[0].Customer.Name)
	}
}

func TestIdenticalBookingsKeepSeparateRevenue(t *testing.T) {
	log := NewLog()

	// Same customer, service and price, but two distinct bookings.
	a := booking("Ana", 30.00)
	b := booking("Ana", 30.00)

	log.RecordBooking(a)
	log.RecordBooking(b)
	log.RecordCancellation(a)

	if got := log.TotalRevenue(); got != 30.00 {
		t.Fatalf("revenue = %.2f, want 30.00 (only the cancelled booking excluded)", got)
	}
}

func TestEntriesAreSnapshots(t *testing.T) {
	log := NewLog()

	b := booking("Ana", 30.00)
	log.RecordBooking(b)

	// Mutating the caller's slice must not reach the recorded entry.
	b.Services[0].Price = 999.00

	if got := log.TotalRevenue(); got != 30.00 {
		t.Fatalf("revenue = %.2f, want 30.00 after mutating the source booking", got)
	}

	entries := log.Bookings()
	entries[0].Services[0].Price = 0
	if got := log.TotalRevenue(); got != 30.00 {
		t.Fatalf("revenue = %.2f, want 30.00 after mutating a returned copy", got)
	}
}

func TestInsertionOrder(t *testing.T) {
	log := NewLog()

	names := []string{"Ana", "Bia", "Carla"}
	for _, n := range names {
		log.RecordBooking(booking(n, 30.00))
	}

	got := log.Bookings()
	if len(got) != len(names) {
		t.Fatalf("expected %d bookings, got %d", len(names), len(got))
	}
	for i, n := range names {
		if got[i].Customer.Name != n {
			t.Fatalf("booking %d = %q, want %q", i, got[i].Customer.Name, n)
		}
	}
}
