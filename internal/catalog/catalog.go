package catalog

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Catalog holds the fixed reference data: services, staff, time slots and
// payment methods. It is built once at startup and never mutated; every
// list accessor returns a fresh copy so callers cannot change it.
type Catalog struct {
	services []models.Service
	staff    []models.StaffMember
	slots    []models.TimeSlot
	payments []models.PaymentMethod

	serviceByCode map[string]models.Service
	slotIndex     map[models.TimeSlot]int
	staffIndex    map[models.StaffMember]int
}

func New(cfg *config.Catalog) *Catalog {
	c := &Catalog{
		services:      append([]models.Service(nil), cfg.Services...),
		staff:         append([]models.StaffMember(nil), cfg.Staff...),
		slots:         append([]models.TimeSlot(nil), cfg.TimeSlots...),
		payments:      append([]models.PaymentMethod(nil), cfg.PaymentMethods...),
		serviceByCode: make(map[string]models.Service, len(cfg.Services)),
		slotIndex:     make(map[models.TimeSlot]int, len(cfg.TimeSlots)),
		staffIndex:    make(map[models.StaffMember]int, len(cfg.Staff)),
	}

	for _, s := range c.services {
		c.serviceByCode[s.Code] = s
	}
	for i, slot := range c.slots {
		c.slotIndex[slot] = i
	}
	for i, name := range c.staff {
		c.staffIndex[name] = i
	}

	return c
}

func (c *Catalog) Services() []models.Service {
	return append([]models.Service(nil), c.services...)
}

// FindService busca por código; ausência não é erro fatal.
func (c *Catalog) FindService(code string) (models.Service, bool) {
	s, ok := c.serviceByCode[code]
	return s, ok
}

func (c *Catalog) Staff() []models.StaffMember {
	return append([]models.StaffMember(nil), c.staff...)
}

func (c *Catalog) TimeSlots() []models.TimeSlot {
	return append([]models.TimeSlot(nil), c.slots...)
}

func (c *Catalog) PaymentMethods() []models.PaymentMethod {
	return append([]models.PaymentMethod(nil), c.payments...)
}

// SlotIndex resolves a slot label to its position in the fixed slot list.
func (c *Catalog) SlotIndex(slot models.TimeSlot) (int, bool) {
	i, ok := c.slotIndex[slot]
	return i, ok
}

// StaffIndex resolves a staff name to its position in the fixed staff list.
func (c *Catalog) StaffIndex(staff models.StaffMember) (int, bool) {
	i, ok := c.staffIndex[staff]
	return i, ok
}
