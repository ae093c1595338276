package models

// Cliente simples, sem login, criado a cada agendamento
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
