package payment

import (
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/apperr"
)

// ChangeDue valida o pagamento em dinheiro: o valor entregue precisa cobrir
// o total. Retorna o troco; qualquer falha acontece antes de tocar o grid.
func ChangeDue(total, tendered float64) (float64, error) {
	if tendered < total {
		return 0, fmt.Errorf("tendered %.2f below total %.2f: %w",
			tendered, total, apperr.ErrBusiness(apperr.CodeInsufficientPayment))
	}
	return tendered - total, nil
}
