package order

import (
	"errors"

	"pizzeria/internal/pkg/errs"
)

// Customer is the contact information captured with an order. Name and phone
// are always required; the address requirement depends on the order type and
// is enforced by the Order aggregate.
type Customer struct {
	name    string
	phone   string
	email   string
	address string
}

// NewCustomer creates validated customer contact information.
func NewCustomer(name, phone, email, address string) (Customer, error) {
	customer := Customer{email: email, address: address}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Name returns the customer name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the contact email, possibly empty.
func (c Customer) Email() string {
	return c.email
}

// Address returns the delivery address, possibly empty for takeaway and dine-in.
func (c Customer) Address() string {
	return c.address
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}
