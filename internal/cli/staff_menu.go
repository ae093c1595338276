package cli

import (
	"fmt"
	"io"

	"github.com/BruksfildServices01/salon-scheduler/internal/auth"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/report"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

func (a *App) staffMenu(token string) {
	if err := a.auth.VerifyRole(token, auth.RoleStaff); err != nil {
		fmt.Fprintln(a.out, "Sessão inválida.")
		return
	}

	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "----- ÁREA DA EQUIPE -----")
		fmt.Fprintln(a.out, "1 - Agendamentos ativos")
		fmt.Fprintln(a.out, "2 - Cancelar agendamento")
		fmt.Fprintln(a.out, "3 - Relatório do dia")
		fmt.Fprintln(a.out, "0 - Voltar")

		opt, ok := a.readInt("Opção: ")
		if !ok {
			return
		}

		switch opt {
		case 1:
			a.showAllBookings()
		case 2:
			if !a.cancelAnyFlow() {
				return
			}
		case 3:
			fmt.Fprint(a.out, report.Render(a.log))
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Opção inválida.")
		}
	}
}

func (a *App) showAllBookings() {
	entries := a.list.Execute()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Nenhum agendamento ativo.")
		return
	}
	for _, n := range entries {
		printEntry(a.out, n)
	}
}

func (a *App) cancelAnyFlow() bool {
	entries := a.list.Execute()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Nenhum agendamento ativo.")
		return true
	}
	for _, n := range entries {
		printEntry(a.out, n)
	}

	pos, ok := a.readInt("Número do agendamento: ")
	if !ok {
		return false
	}

	entry, err := a.list.ByPosition(pos)
	if err != nil {
		fmt.Fprintln(a.out, businessMessage(err))
		return true
	}

	a.cancelByEntry(entry.Slot, entry.Booking.Day, entry.Staff)
	return true
}

func (a *App) cancelByEntry(slot models.TimeSlot, day string, staff models.StaffMember) {
	removed, err := a.cancel.Execute(ucBooking.CancelInput{Slot: slot, Day: day, Staff: staff})
	if err != nil {
		fmt.Fprintln(a.out, businessMessage(err))
		return
	}
	fmt.Fprintf(a.out, "Cancelado: %s às %s com %s\n", removed.Customer.Name, removed.Slot, removed.Staff)
}

func printEntry(out io.Writer, n ucBooking.NumberedEntry) {
	b := n.Entry.Booking
	fmt.Fprintf(out, "%d - %s %s | %s | %s (%s) | R$ %.2f | %s\n",
		n.Position, b.Day, n.Entry.Slot, n.Entry.Staff,
		b.Customer.Name, b.Customer.Phone, b.Total(), b.Payment)
}
