package cli

import (
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/auth"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

func (a *App) clientMenu(token string) {
	if err := a.auth.VerifyRole(token, auth.RoleClient); err != nil {
		fmt.Fprintln(a.out, "Sessão inválida.")
		return
	}

	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "----- ÁREA DO CLIENTE -----")
		fmt.Fprintln(a.out, "1 - Serviços e preços")
		fmt.Fprintln(a.out, "2 - Horários disponíveis")
		fmt.Fprintln(a.out, "3 - Agendar")
		fmt.Fprintln(a.out, "4 - Meus agendamentos")
		fmt.Fprintln(a.out, "5 - Cancelar agendamento")
		fmt.Fprintln(a.out, "0 - Voltar")

		opt, ok := a.readInt("Opção: ")
		if !ok {
			return
		}

		switch opt {
		case 1:
			a.showServices()
		case 2:
			a.showAvailability()
		case 3:
			if !a.bookFlow() {
				return
			}
		case 4:
			if !a.myBookings() {
				return
			}
		case 5:
			if !a.cancelOwnFlow() {
				return
			}
		case 0:
			return
		default:
			fmt.Fprintln(a.out, "Opção inválida.")
		}
	}
}

func (a *App) showServices() {
	fmt.Fprintln(a.out, "\nServiços:")
	for i, s := range a.catalog.Services() {
		fmt.Fprintf(a.out, "%d - %s (R$ %.2f)\n", i+1, s.Description, s.Price)
	}
}

func (a *App) showAvailability() {
	staff := a.catalog.Staff()
	slots := a.catalog.TimeSlots()
	occupied := a.list.Availability()

	fmt.Fprint(a.out, "\nHorário")
	for _, name := range staff {
		fmt.Fprintf(a.out, "\t%s", name)
	}
	fmt.Fprintln(a.out)

	for si, slot := range slots {
		fmt.Fprintf(a.out, "%s", slot)
		for ti := range staff {
			mark := "livre"
			if occupied[si][ti] {
				mark = "ocupado"
			}
			fmt.Fprintf(a.out, "\t%s", mark)
		}
		fmt.Fprintln(a.out)
	}
}

// bookFlow coleta os dados e delega ao usecase. Retorna false apenas
// quando o stdin fechou.
func (a *App) bookFlow() bool {
	name, ok := a.readLine("Nome: ")
	if !ok {
		return false
	}
	phone, ok := a.readLine("Telefone: ")
	if !ok {
		return false
	}
	day, ok := a.readLine("Dia (texto livre, ex. 01/01): ")
	if !ok {
		return false
	}

	slot, ok := a.pickSlot()
	if !ok {
		return false
	}
	staff, ok := a.pickStaff()
	if !ok {
		return false
	}
	codes, ok := a.pickServices()
	if !ok {
		return false
	}
	method, ok := a.pickPayment()
	if !ok {
		return false
	}

	in := ucBooking.CreateInput{
		CustomerName:  name,
		CustomerPhone: phone,
		Slot:          slot,
		Day:           day,
		Staff:         staff,
		ServiceCodes:  codes,
		Payment:       method,
	}

	if method == models.PaymentCash {
		tendered, ok := a.readFloat("Valor entregue: R$ ")
		if !ok {
			return false
		}
		in.CashTendered = tendered
	}

	res, err := a.create.Execute(in)
	if err != nil {
		fmt.Fprintln(a.out, businessMessage(err))
		return true
	}

	fmt.Fprintf(a.out, "Agendado: %s às %s com %s (total R$ %.2f)\n",
		res.Booking.Day, res.Booking.Slot, res.Booking.Staff, res.Booking.Total())
	if method == models.PaymentCash {
		fmt.Fprintf(a.out, "Troco: R$ %.2f\n", res.Change)
	}
	if res.PixCode != "" {
		fmt.Fprintf(a.out, "Pague com o código Pix: %s\n", res.PixCode)
	}
	return true
}

func (a *App) myBookings() bool {
	phone, ok := a.readLine("Telefone: ")
	if !ok {
		return false
	}

	mine := a.list.ForCustomer(phone)
	if len(mine) == 0 {
		fmt.Fprintln(a.out, "Nenhum agendamento encontrado.")
		return true
	}
	for _, n := range mine {
		printEntry(a.out, n)
	}
	return true
}

func (a *App) cancelOwnFlow() bool {
	phone, ok := a.readLine("Telefone: ")
	if !ok {
		return false
	}

	mine := a.list.ForCustomer(phone)
	if len(mine) == 0 {
		fmt.Fprintln(a.out, "Nenhum agendamento encontrado.")
		return true
	}
	for _, n := range mine {
		printEntry(a.out, n)
	}

	pos, ok := a.readInt("Número do agendamento: ")
	if !ok {
		return false
	}

	// A posição precisa ser um dos agendamentos do próprio cliente.
	var chosen *ucBooking.NumberedEntry
	for i := range mine {
		if mine[i].Position == pos {
			chosen = &mine[i]
			break
		}
	}
	if chosen == nil {
		fmt.Fprintln(a.out, "Seleção inválida.")
		return true
	}

	a.cancelByEntry(chosen.Entry.Slot, chosen.Entry.Booking.Day, chosen.Entry.Staff)
	return true
}

func (a *App) pickSlot() (models.TimeSlot, bool) {
	slots := a.catalog.TimeSlots()
	fmt.Fprintln(a.out, "\nHorários:")
	for i, s := range slots {
		fmt.Fprintf(a.out, "%d - %s\n", i+1, s)
	}
	for {
		n, ok := a.readInt("Horário: ")
		if !ok {
			return "", false
		}
		if n < 1 || n > len(slots) {
			fmt.Fprintln(a.out, "Seleção inválida.")
			continue
		}
		return slots[n-1], true
	}
}

func (a *App) pickStaff() (models.StaffMember, bool) {
	staff := a.catalog.Staff()
	fmt.Fprintln(a.out, "\nProfissionais:")
	for i, s := range staff {
		fmt.Fprintf(a.out, "%d - %s\n", i+1, s)
	}
	for {
		n, ok := a.readInt("Profissional: ")
		if !ok {
			return "", false
		}
		if n < 1 || n > len(staff) {
			fmt.Fprintln(a.out, "Seleção inválida.")
			continue
		}
		return staff[n-1], true
	}
}

// pickServices aceita o mesmo serviço mais de uma vez; 0 encerra.
func (a *App) pickServices() ([]string, bool) {
	services := a.catalog.Services()
	fmt.Fprintln(a.out, "\nServiços (0 para concluir):")
	for i, s := range services {
		fmt.Fprintf(a.out, "%d - %s (R$ %.2f)\n", i+1, s.Description, s.Price)
	}

	var codes []string
	for {
		n, ok := a.readInt("Serviço: ")
		if !ok {
			return nil, false
		}
		if n == 0 {
			return codes, true
		}
		if n < 1 || n > len(services) {
			fmt.Fprintln(a.out, "Seleção inválida.")
			continue
		}
		codes = append(codes, services[n-1].Code)
	}
}

func (a *App) pickPayment() (models.PaymentMethod, bool) {
	methods := a.catalog.PaymentMethods()
	fmt.Fprintln(a.out, "\nPagamento:")
	for i, m := range methods {
		fmt.Fprintf(a.out, "%d - %s\n", i+1, m)
	}
	for {
		n, ok := a.readInt("Método: ")
		if !ok {
			return "", false
		}
		if n < 1 || n > len(methods) {
			fmt.Fprintln(a.out, "Seleção inválida.")
			continue
		}
		return methods[n-1], true
	}
}
