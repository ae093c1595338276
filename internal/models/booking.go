package models

import "github.com/google/uuid"

// Booking é o registro de um agendamento. Imutável depois de construído;
// o slice Services nunca é modificado após a criação.
type Booking struct {
	ID       uuid.UUID     `json:"id"`
	Customer Customer      `json:"customer"`
	Slot     TimeSlot      `json:"slot"`
	Day      string        `json:"day"` // texto livre, apenas informativo
	Services []Service     `json:"services"`
	Staff    StaffMember   `json:"staff"`
	Payment  PaymentMethod `json:"payment"`
}

// Total soma os preços de todos os serviços do agendamento.
func (b Booking) Total() float64 {
	var total float64
	for _, s := range b.Services {
		total += s.Price
	}
	return total
}

// Snapshot returns a copy whose Services slice is independent of the
// original, so historical records cannot be affected by later callers.
func (b Booking) Snapshot() Booking {
	cp := b
	cp.Services = make([]Service, len(b.Services))
	copy(cp.Services, b.Services)
	return cp
}
