package report

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/activity"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Render monta o relatório do dia a partir do Activity Log: agendamentos
// concluídos, cancelamentos com os serviços de cada um e a receita total.
func Render(log *activity.Log) string {
	var sb strings.Builder

	sb.WriteString("========== RELATÓRIO DO DIA ==========\n\n")

	bookings := log.Bookings()
	sb.WriteString(fmt.Sprintf("Agendamentos (%d):\n", len(bookings)))
	if len(bookings) == 0 {
		sb.WriteString("  (nenhum)\n")
	}
	for _, b := range bookings {
		writeBooking(&sb, b)
	}

	cancellations := log.Cancellations()
	sb.WriteString(fmt.Sprintf("\nCancelamentos (%d):\n", len(cancellations)))
	if len(cancellations) == 0 {
		sb.WriteString("  (nenhum)\n")
	}
	for _, b := range cancellations {
		writeBooking(&sb, b)
	}

	sb.WriteString(fmt.Sprintf("\nReceita total: R$ %.2f\n", log.TotalRevenue()))

	return sb.String()
}

func writeBooking(sb *strings.Builder, b models.Booking) {
	sb.WriteString(fmt.Sprintf("  - %s (%s) | %s %s | %s | %s\n",
		b.Customer.Name, b.Customer.Phone, b.Day, b.Slot, b.Staff, b.Payment))
	for _, s := range b.Services {
		sb.WriteString(fmt.Sprintf("      %s: R$ %.2f\n", s.Description, s.Price))
	}
	sb.WriteString(fmt.Sprintf("      Total: R$ %.2f\n", b.Total()))
}
