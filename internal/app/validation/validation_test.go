package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bankingForm struct {
	BankName      string `json:"bank_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required,min=10"`
	IFSC          string `json:"ifsc" validate:"required,ifsc"`
}

type contactForm struct {
	Email  string `json:"email" validate:"required,email"`
	Mobile string `json:"mobile" validate:"required,mobile_in"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterOn(v))
	return v
}

func TestMobile(t *testing.T) {
	v := newValidator(t)

	for mobile, ok := range map[string]bool{
		"9876543210":  true,
		"6000000000":  true,
		"5876543210":  false,
		"987654321":   false,
		"98765432100": false,
		"98765abcde":  false,
	} {
		err := v.Struct(contactForm{Email: "a@b.in", Mobile: mobile})
		assert.Equal(t, ok, err == nil, mobile)
	}
}

func TestIFSC(t *testing.T) {
	v := newValidator(t)

	for ifsc, ok := range map[string]bool{
		"SBIN0001234": true,
		"HDFC0ABC123": true,
		"SBIN1001234": false,
		"sbin0001234": false,
		"SBI0001234":  false,
	} {
		err := v.Struct(bankingForm{BankName: "SBI", AccountNumber: "1234567890", IFSC: ifsc})
		assert.Equal(t, ok, err == nil, ifsc)
	}
}

func TestMessages(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(bankingForm{AccountNumber: "123", IFSC: "bad"})
	msgs := Messages(err)
	require.Len(t, msgs, 3)
	assert.Equal(t, FieldError{Field: "bank_name", Message: "Bank name is required"}, msgs[0])
	assert.Equal(t, FieldError{Field: "account_number", Message: "Account number must be at least 10 digits"}, msgs[1])
	assert.Equal(t, FieldError{Field: "ifsc", Message: "Invalid IFSC code"}, msgs[2])

	err = v.Struct(contactForm{Email: "nope", Mobile: "123"})
	msgs = Messages(err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Invalid email address", msgs[0].Message)
	assert.Equal(t, "Invalid mobile number (10 digits starting with 6-9)", msgs[1].Message)

	assert.Nil(t, Messages(nil))
}

func TestRegisterOnGinEngine(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}
