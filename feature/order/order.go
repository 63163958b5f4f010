package order

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"garment-geek/core/catalog"
)

var (
	// ErrInvalidCustomer is wrapped by every customer validation failure.
	ErrInvalidCustomer = errors.New("invalid customer details")
	// ErrNoSelection is returned when an order names no garment.
	ErrNoSelection = errors.New("no garment selected")
)

// ValidationError reports a rejected order field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidCustomer }

// Customer is the person placing an order.
type Customer struct {
	Name  string `json:"name" example:"Alex Robertson"`
	Email string `json:"email" example:"geek@geekmail.com"`
}

// Validate checks that the name is a full name and the email looks like an address.
func (c Customer) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "you must enter a name to continue"}
	}
	if !strings.Contains(name, " ") || len(name) < 3 {
		return &ValidationError{Field: "name", Message: "please enter your full name in Firstname Lastname format"}
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return &ValidationError{Field: "email", Message: "you must enter your email to continue"}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Message: "please ensure your email address contains an @"}
	}
	if !strings.Contains(email, ".") {
		return &ValidationError{Field: "email", Message: "please ensure your email address is formatted properly"}
	}
	return nil
}

// Order is a placed order.
type Order struct {
	ID          string              `json:"id"`
	Customer    Customer            `json:"customer"`
	ProductCode catalog.ProductCode `json:"product_code"`
	ItemName    string              `json:"item_name"`
	Message     string              `json:"message"`
	ObjectKey   string              `json:"object_key"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Confirmation renders the order as the plain-text confirmation stored for staff.
func (o Order) Confirmation() string {
	item := catalog.Item{Code: o.ProductCode, Name: o.ItemName}
	return "Order details:\n" +
		"\tName: " + o.Customer.Name + "\n" +
		"\tEmail Address: " + o.Customer.Email + "\n" +
		"\tItem: " + item.Label() + "\n" +
		"\tMessage from geek: " + o.Message
}

// ConfirmationKey names the confirmation object, e.g. "orders/Alex_Robertson_222.txt".
func ConfirmationKey(prefix string, customer Customer, code catalog.ProductCode) string {
	name := strings.ReplaceAll(strings.TrimSpace(customer.Name), " ", "_")
	name = strings.ReplaceAll(name, "/", "_")
	return path.Join(prefix, name+"_"+code.String()+".txt")
}
