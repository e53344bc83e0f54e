package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	mobileRe = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	ifscRe   = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

var (
	once        sync.Once
	registerErr error
)

// FieldError - ошибка проверки одного поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Register добавляет проверки mobile_in и ifsc в валидатор gin. Повторные вызовы безопасны.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

func RegisterOn(v *validator.Validate) error {
	// в ошибках используем имена полей из json
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("mobile_in", func(fl validator.FieldLevel) bool {
		return mobileRe.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("ifsc", func(fl validator.FieldLevel) bool {
		return ifscRe.MatchString(fl.Field().String())
	})
}

// Messages переводит ошибки валидатора в сообщения для формы
func Messages(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "mobile_in":
		return "Invalid mobile number (10 digits starting with 6-9)"
	case "ifsc":
		return "Invalid IFSC code"
	case "email":
		return "Invalid email address"
	case "required":
		switch fe.Field() {
		case "bank_name":
			return "Bank name is required"
		case "packaging":
			return "Packaging option is required"
		}
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		switch fe.Field() {
		case "legal_name":
			return fmt.Sprintf("Name must be at least %s characters", fe.Param())
		case "account_number":
			return fmt.Sprintf("Account number must be at least %s digits", fe.Param())
		case "quantity":
			return fmt.Sprintf("Minimum quantity is %s", fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
