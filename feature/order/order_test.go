package order

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer_Validate(t *testing.T) {
	tests := []struct {
		name     string
		customer Customer
		field    string
	}{
		{"Valid", Customer{Name: "Alex Robertson", Email: "geek@geekmail.com"}, ""},
		{"Missing name", Customer{Email: "geek@geekmail.com"}, "name"},
		{"Single name", Customer{Name: "Alex", Email: "geek@geekmail.com"}, "name"},
		{"Too short", Customer{Name: "A ", Email: "geek@geekmail.com"}, "name"},
		{"Missing email", Customer{Name: "Alex Robertson"}, "email"},
		{"No at sign", Customer{Name: "Alex Robertson", Email: "geek.geekmail.com"}, "email"},
		{"No dot", Customer{Name: "Alex Robertson", Email: "geek@geekmail"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.True(t, errors.Is(err, ErrInvalidCustomer))
		})
	}
}

func TestOrder_Confirmation(t *testing.T) {
	o := Order{
		Customer:    Customer{Name: "Alex Robertson", Email: "geek@geekmail.com"},
		ProductCode: 222,
		ItemName:    "Geek Tee",
		Message:     "Can't wait!",
		CreatedAt:   time.Now(),
	}

	want := "Order details:\n" +
		"\tName: Alex Robertson\n" +
		"\tEmail Address: geek@geekmail.com\n" +
		"\tItem: Geek Tee (222)\n" +
		"\tMessage from geek: Can't wait!"
	assert.Equal(t, want, o.Confirmation())
}

func TestConfirmationKey(t *testing.T) {
	customer := Customer{Name: "Alex Robertson"}

	assert.Equal(t, "orders/Alex_Robertson_222.txt", ConfirmationKey("orders/", customer, 222))
	assert.Equal(t, "Alex_Robertson_222.txt", ConfirmationKey("", customer, 222))
	assert.Equal(t, "orders/A_B_C_1.txt", ConfirmationKey("orders", Customer{Name: "A B/C"}, 1))
}

func TestConfig_SessionTTL(t *testing.T) {
	assert.Equal(t, 30*time.Minute, Config{SessionTTLSeconds: 1800}.SessionTTL())
	assert.Equal(t, time.Duration(0), Config{SessionTTLSeconds: -1}.SessionTTL())
}
