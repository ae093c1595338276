package activity

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	ActionBookingCreated   = "booking_created"
	ActionBookingCancelled = "booking_cancelled"
)

type Event struct {
	Action    string
	BookingID uuid.UUID
	Slot      models.TimeSlot
	Staff     models.StaffMember
	Total     float64
}

// Dispatcher publica eventos de atividade de forma assíncrona, para nunca
// segurar um agendamento por causa de logging.
type Dispatcher struct {
	logger *slog.Logger
	queue  chan Event
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.logger.Info("activity event",
			"action", ev.Action,
			"booking_id", ev.BookingID.String(),
			"slot", string(ev.Slot),
			"staff", string(ev.Staff),
			"total", ev.Total,
		)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia: descartamos o evento, nunca travamos a operação
		d.logger.Warn("activity queue full, dropping event", "action", ev.Action)
	}
}
