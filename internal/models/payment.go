package models

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCredit PaymentMethod = "Credit Card"
	PaymentDebit  PaymentMethod = "Debit Card"
	PaymentPix    PaymentMethod = "Pix"
)
