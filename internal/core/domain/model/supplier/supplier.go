// Package supplier holds the Supplier aggregate: the vendor a purchase order is
// placed with. Suppliers are identified by their unique name.
package supplier

import (
	"errors"
	"strings"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/pkg/errs"
)

var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")

// Supplier is a wholesale vendor. Contact fields are optional.
type Supplier struct {
	id            kernel.UUID
	name          string
	email         string
	phone         string
	isConstructed bool
}

// NewSupplier creates a supplier. The name is trimmed and must not be blank.
func NewSupplier(id kernel.UUID, name string) (*Supplier, error) {
	s := &Supplier{isConstructed: true}
	if err := errors.Join(
		s.setID(id),
		s.setName(name),
	); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreSupplier rebuilds a supplier from persisted state.
func RestoreSupplier(id kernel.UUID, name, email, phone string) (*Supplier, error) {
	s, err := NewSupplier(id, name)
	if err != nil {
		return nil, err
	}
	s.SetContact(email, phone)
	return s, nil
}

func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}
	return nil
}

func (s *Supplier) ID() kernel.UUID {
	return s.id
}

func (s *Supplier) Name() string {
	return s.name
}

func (s *Supplier) Email() string {
	return s.email
}

func (s *Supplier) Phone() string {
	return s.phone
}

// SetContact replaces the contact fields.
func (s *Supplier) SetContact(email, phone string) {
	s.email = strings.TrimSpace(email)
	s.phone = strings.TrimSpace(phone)
}

func (s *Supplier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Supplier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("supplier name")
	}
	s.name = name
	return nil
}
