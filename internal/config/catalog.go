package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Catalog é a configuração estática carregada uma vez no startup
// e injetada nos construtores — sem singletons globais.
type Catalog struct {
	Services       []models.Service
	Staff          []models.StaffMember
	TimeSlots      []models.TimeSlot
	PaymentMethods []models.PaymentMethod
}

type catalogFile struct {
	Services []serviceEntry `toml:"services"`
	Staff    []string       `toml:"staff"`
	Slots    []string       `toml:"time_slots"`
	Payments []string       `toml:"payment_methods"`
}

type serviceEntry struct {
	Code        string  `toml:"code"`
	Description string  `toml:"description"`
	Price       float64 `toml:"price"`
}

// LoadCatalog reads the TOML catalog at path. A missing file is not an
// error: the built-in default catalog is returned instead.
func LoadCatalog(path string) (*Catalog, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultCatalog(), nil
	}

	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse %s: %w", path, err)
	}

	cat := &Catalog{}
	for _, s := range file.Services {
		cat.Services = append(cat.Services, models.Service{
			Code:        s.Code,
			Description: s.Description,
			Price:       s.Price,
		})
	}
	for _, name := range file.Staff {
		cat.Staff = append(cat.Staff, models.StaffMember(name))
	}
	for _, label := range file.Slots {
		cat.TimeSlots = append(cat.TimeSlots, models.TimeSlot(label))
	}
	for _, m := range file.Payments {
		cat.PaymentMethods = append(cat.PaymentMethods, models.PaymentMethod(m))
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: invalid %s: %w", path, err)
	}
	return cat, nil
}

// DefaultCatalog é o catálogo embutido usado quando não há arquivo.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Services: []models.Service{
			{Code: "corte", Description: "Corte de cabelo", Price: 30.00},
			{Code: "barba", Description: "Barba", Price: 25.00},
			{Code: "sobrancelha", Description: "Sobrancelha", Price: 15.00},
			{Code: "hidratacao", Description: "Hidratação", Price: 40.00},
			{Code: "escova", Description: "Escova", Price: 35.00},
			{Code: "luzes", Description: "Luzes", Price: 80.00},
		},
		Staff: []models.StaffMember{"Lucas", "Marcos", "Julia"},
		TimeSlots: []models.TimeSlot{
			"09:00", "10:00", "11:00", "13:00",
			"14:00", "15:00", "16:00", "17:00",
		},
		PaymentMethods: []models.PaymentMethod{
			models.PaymentCash,
			models.PaymentCredit,
			models.PaymentDebit,
			models.PaymentPix,
		},
	}
}

// Validate garante listas não vazias, códigos/nomes únicos e preços válidos.
func (c *Catalog) Validate() error {
	if len(c.Services) == 0 {
		return errors.New("no services defined")
	}
	if len(c.Staff) == 0 {
		return errors.New("no staff defined")
	}
	if len(c.TimeSlots) == 0 {
		return errors.New("no time slots defined")
	}
	if len(c.PaymentMethods) == 0 {
		return errors.New("no payment methods defined")
	}

	codes := make(map[string]bool, len(c.Services))
	for _, s := range c.Services {
		if s.Code == "" {
			return errors.New("service with empty code")
		}
		if codes[s.Code] {
			return fmt.Errorf("duplicate service code %q", s.Code)
		}
		if s.Price < 0 {
			return fmt.Errorf("service %q has negative price", s.Code)
		}
		codes[s.Code] = true
	}

	staff := make(map[models.StaffMember]bool, len(c.Staff))
	for _, name := range c.Staff {
		if staff[name] {
			return fmt.Errorf("duplicate staff member %q", name)
		}
		staff[name] = true
	}

	slots := make(map[models.TimeSlot]bool, len(c.TimeSlots))
	for _, label := range c.TimeSlots {
		if slots[label] {
			return fmt.Errorf("duplicate time slot %q", label)
		}
		slots[label] = true
	}

	return nil
}
