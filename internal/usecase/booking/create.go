package booking

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/activity"
	"github.com/BruksfildServices01/salon-scheduler/internal/apperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	"github.com/BruksfildServices01/salon-scheduler/internal/ledger"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/payment"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type CreateInput struct {
	CustomerName  string
	CustomerPhone string

	Slot  models.TimeSlot
	Day   string
	Staff models.StaffMember

	ServiceCodes []string

	Payment      models.PaymentMethod
	CashTendered float64 // considerado apenas quando Payment == Cash
}

type CreateResult struct {
	Booking models.Booking
	Change  float64 // troco, apenas dinheiro
	PixCode string  // código estático, apenas Pix
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	catalog    *catalog.Catalog
	ledger     *ledger.Ledger
	log        *activity.Log
	dispatcher *activity.Dispatcher
	pixCode    string
}

func NewCreateBooking(
	cat *catalog.Catalog,
	led *ledger.Ledger,
	log *activity.Log,
	dispatcher *activity.Dispatcher,
	pixCode string,
) *CreateBooking {
	return &CreateBooking{
		catalog:    cat,
		ledger:     led,
		log:        log,
		dispatcher: dispatcher,
		pixCode:    pixCode,
	}
}

// Execute valida serviços e pagamento antes de tocar o grid: qualquer falha
// deixa o Ledger e o Activity Log exatamente como estavam.
func (uc *CreateBooking) Execute(in CreateInput) (*CreateResult, error) {

	// --------------------------------------------------
	// 1. Serviços escolhidos
	// --------------------------------------------------
	if len(in.ServiceCodes) == 0 {
		return nil, apperr.ErrBusiness(apperr.CodeEmptySelection)
	}

	services := make([]models.Service, 0, len(in.ServiceCodes))
	for _, code := range in.ServiceCodes {
		svc, ok := uc.catalog.FindService(code)
		if !ok {
			return nil, apperr.ErrBusiness(apperr.CodeNotFound)
		}
		services = append(services, svc)
	}

	// --------------------------------------------------
	// 2. Método de pagamento
	// --------------------------------------------------
	valid := false
	for _, m := range uc.catalog.PaymentMethods() {
		if m == in.Payment {
			valid = true
			break
		}
	}
	if !valid {
		return nil, apperr.ErrBusiness(apperr.CodeInvalidSelection)
	}

	b := models.Booking{
		ID:       uuid.New(),
		Customer: models.Customer{Name: in.CustomerName, Phone: in.CustomerPhone},
		Slot:     in.Slot,
		Day:      in.Day,
		Services: services,
		Staff:    in.Staff,
		Payment:  in.Payment,
	}

	// --------------------------------------------------
	// 3. Dinheiro: troco calculado antes de reservar
	// --------------------------------------------------
	var change float64
	if in.Payment == models.PaymentCash {
		var err error
		change, err = payment.ChangeDue(b.Total(), in.CashTendered)
		if err != nil {
			return nil, err
		}
	}

	var pixCode string
	if in.Payment == models.PaymentPix {
		pixCode = uc.pixCode
	}

	// --------------------------------------------------
	// 4. Reserva da célula (check-and-set)
	// --------------------------------------------------
	if err := uc.ledger.Book(in.Slot, in.Day, in.Staff, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Registro de atividade
	// --------------------------------------------------
	uc.log.RecordBooking(b)
	uc.dispatcher.Dispatch(activity.Event{
		Action:    activity.ActionBookingCreated,
		BookingID: b.ID,
		Slot:      b.Slot,
		Staff:     b.Staff,
		Total:     b.Total(),
	})

	return &CreateResult{
		Booking: b,
		Change:  change,
		PixCode: pixCode,
	}, nil
}
