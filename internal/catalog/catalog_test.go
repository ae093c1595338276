package catalog

import (
	"testing"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func newTestCatalog() *Catalog {
	return New(&config.Catalog{
		Services: []models.Service{
			{Code: "corte", Description: "Corte de cabelo", Price: 30.00},
			{Code: "barba", Description: "Barba", Price: 25.00},
		},
		Staff:          []models.StaffMember{"Lucas", "Julia"},
		TimeSlots:      []models.TimeSlot{"09:00", "10:00", "11:00"},
		PaymentMethods: []models.PaymentMethod{models.PaymentCash, models.PaymentPix},
	})
}

func TestFindService(t *testing.T) {
	c := newTestCatalog()

	svc, ok := c.FindService("corte")
	if !ok {
		t.Fatal("expected to find corte")
	}
	if svc.Price != 30.00 {
		t.Fatalf("price = %.2f, want 30.00", svc.Price)
	}

	if _, ok := c.FindService("massagem"); ok {
		t.Fatal("unknown code must not resolve")
	}
}

func TestIndexLookups(t *testing.T) {
	c := newTestCatalog()

	cases := []struct {
		slot models.TimeSlot
		idx  int
		ok   bool
	}{
		{"09:00", 0, true},
		{"11:00", 2, true},
		{"23:00", 0, false},
	}
	for _, tt := range cases {
		idx, ok := c.SlotIndex(tt.slot)
		if ok != tt.ok || (ok && idx != tt.idx) {
			t.Fatalf("SlotIndex(%q) = (%d, %v), want (%d, %v)", tt.slot, idx, ok, tt.idx, tt.ok)
		}
	}

	if idx, ok := c.StaffIndex("Julia"); !ok || idx != 1 {
		t.Fatalf("StaffIndex(Julia) = (%d, %v), want (1, true)", idx, ok)
	}
	if _, ok := c.StaffIndex("Pedro"); ok {
		t.Fatal("unknown staff must not resolve")
	}
}

func TestListsAreReadOnlyViews(t *testing.T) {
	c := newTestCatalog()

	// Mutating a returned slice must not leak into the catalog.
	services := c.Services()
	services[0].Price = 999.00
	if svc, _ := c.FindService("corte"); svc.Price != 30.00 {
		t.Fatalf("catalog mutated through a returned view: price = %.2f", svc.Price)
	}

	staff := c.Staff()
	staff[0] = "Hacker"
	if c.Staff()[0] != "Lucas" {
		t.Fatal("staff list mutated through a returned view")
	}
}

func TestOrderIsStable(t *testing.T) {
	c := newTestCatalog()

	first := c.TimeSlots()
	second := c.TimeSlots()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("slot order changed between calls at %d", i)
		}
	}
}
