package activity

import (
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Log acumula os agendamentos concluídos e os cancelamentos do dia. Cada
// entrada é um snapshot independente do grid: mutações posteriores no
// Ledger não alteram o histórico.
type Log struct {
	mu            sync.Mutex
	bookings      []models.Booking
	cancellations []models.Booking
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) RecordBooking(b models.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = append(l.bookings, b.Snapshot())
}

func (l *Log) RecordCancellation(b models.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancellations = append(l.cancellations, b.Snapshot())
}

// Bookings returns the completed bookings in insertion order.
func (l *Log) Bookings() []models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	return snapshots(l.bookings)
}

// Cancellations returns the cancelled bookings in insertion order.
func (l *Log) Cancellations() []models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	return snapshots(l.cancellations)
}

// snapshots copia cada entrada por completo: quem recebe a lista não pode
// alterar o histórico através dela.
func snapshots(entries []models.Booking) []models.Booking {
	out := make([]models.Booking, 0, len(entries))
	for _, b := range entries {
		out = append(out, b.Snapshot())
	}
	return out
}

// TotalRevenue soma os preços de todos os agendamentos registrados,
// excluindo os que constam na lista de cancelamentos. A exclusão é por
// identidade do agendamento: cancelar um de dois agendamentos com os
// mesmos dados não suprime a receita do outro.
func (l *Log) TotalRevenue() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	cancelled := make(map[uuid.UUID]bool, len(l.cancellations))
	for _, b := range l.cancellations {
		cancelled[b.ID] = true
	}

	var total float64
	for _, b := range l.bookings {
		if cancelled[b.ID] {
			continue
		}
		total += b.Total()
	}
	return total
}
