package models

// Service é um item do catálogo, imutável após o startup
type Service struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
