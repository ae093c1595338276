package apperr

import "errors"

// Códigos de erro de negócio — sempre recuperáveis pela camada de interação.
const (
	CodeNotFound            = "not_found"
	CodeSlotConflict        = "slot_conflict"
	CodeEmptyCell           = "empty_cell"
	CodeInvalidSelection    = "invalid_selection"
	CodeInsufficientPayment = "insufficient_payment"
	CodeEmptySelection      = "empty_selection"
	CodeInvalidCredentials  = "invalid_credentials"
)

// BusinessError carrega um dos códigos acima. O chamador decide pela
// condição via IsBusiness, nunca pelo texto da mensagem.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
