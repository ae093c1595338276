package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/activity"
	"github.com/BruksfildServices01/salon-scheduler/internal/apperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/auth"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

const maxLoginAttempts = 3

// App é a camada de interação: menus de texto sobre os usecases. Nenhuma
// regra de negócio mora aqui — toda falha vem do core como BusinessError e
// vira mensagem para o usuário.
type App struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger

	auth    *auth.Service
	catalog *catalog.Catalog
	log     *activity.Log

	create *ucBooking.CreateBooking
	cancel *ucBooking.CancelBooking
	list   *ucBooking.ListBookings
}

func New(
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
	authSvc *auth.Service,
	cat *catalog.Catalog,
	log *activity.Log,
	create *ucBooking.CreateBooking,
	cancel *ucBooking.CancelBooking,
	list *ucBooking.ListBookings,
) *App {
	return &App{
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
		auth:    authSvc,
		catalog: cat,
		log:     log,
		create:  create,
		cancel:  cancel,
		list:    list,
	}
}

// Run executa o menu principal até o usuário sair ou o stdin fechar.
func (a *App) Run() {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "===== SALÃO AGENDAMENTOS =====")
		fmt.Fprintln(a.out, "1 - Área do cliente")
		fmt.Fprintln(a.out, "2 - Área da equipe")
		fmt.Fprintln(a.out, "0 - Sair")

		opt, ok := a.readInt("Opção: ")
		if !ok {
			return
		}

		switch opt {
		case 1:
			if token, ok := a.login(auth.RoleClient); ok {
				a.clientMenu(token)
			}
		case 2:
			if token, ok := a.login(auth.RoleStaff); ok {
				a.staffMenu(token)
			}
		case 0:
			fmt.Fprintln(a.out, "Até logo!")
			return
		default:
			fmt.Fprintln(a.out, "Opção inválida.")
		}
	}
}

// login pede a senha até três vezes e devolve o token de sessão.
func (a *App) login(role string) (string, bool) {
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		secret, ok := a.readLine("Senha: ")
		if !ok {
			return "", false
		}

		token, err := a.auth.Authenticate(role, secret)
		if err == nil {
			return token, true
		}

		a.logger.Warn("failed login attempt", "role", role, "attempt", attempt)
		fmt.Fprintln(a.out, "Senha incorreta.")
	}
	fmt.Fprintln(a.out, "Tentativas esgotadas.")
	return "", false
}

// businessMessage traduz códigos de erro de negócio para o usuário.
func businessMessage(err error) string {
	switch {
	case apperr.IsBusiness(err, apperr.CodeNotFound):
		return "Horário, profissional ou serviço não encontrado."
	case apperr.IsBusiness(err, apperr.CodeSlotConflict):
		return "Esse horário já está ocupado para esse profissional."
	case apperr.IsBusiness(err, apperr.CodeEmptyCell):
		return "Não há agendamento nesse horário para cancelar."
	case apperr.IsBusiness(err, apperr.CodeInvalidSelection):
		return "Seleção inválida."
	case apperr.IsBusiness(err, apperr.CodeInsufficientPayment):
		return "Valor entregue menor que o total. Agendamento não realizado."
	case apperr.IsBusiness(err, apperr.CodeEmptySelection):
		return "Escolha pelo menos um serviço."
	default:
		return "Não foi possível concluir a operação."
	}
}
