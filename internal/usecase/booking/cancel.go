package booking

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/activity"
	"github.com/BruksfildServices01/salon-scheduler/internal/ledger"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CancelInput struct {
	Slot  models.TimeSlot
	Day   string
	Staff models.StaffMember
}

type CancelBooking struct {
	ledger     *ledger.Ledger
	log        *activity.Log
	dispatcher *activity.Dispatcher
}

func NewCancelBooking(
	led *ledger.Ledger,
	log *activity.Log,
	dispatcher *activity.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		ledger:     led,
		log:        log,
		dispatcher: dispatcher,
	}
}

// Execute remove o agendamento da célula e o registra como cancelamento.
// O registro no Activity Log é um snapshot: o histórico sobrevive ao grid.
func (uc *CancelBooking) Execute(in CancelInput) (models.Booking, error) {
	removed, err := uc.ledger.Cancel(in.Slot, in.Day, in.Staff)
	if err != nil {
		return models.Booking{}, err
	}

	uc.log.RecordCancellation(removed)
	uc.dispatcher.Dispatch(activity.Event{
		Action:    activity.ActionBookingCancelled,
		BookingID: removed.ID,
		Slot:      removed.Slot,
		Staff:     removed.Staff,
		Total:     removed.Total(),
	})

	return removed, nil
}
