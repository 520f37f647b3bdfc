package validate

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"vacation-front/internal/domain"
)

// Límites que impone el backend; se validan acá antes de despachar cualquier
// request.
const (
	MinPrice       = 0
	MaxPrice       = 10000
	MinPasswordLen = 4
)

var (
	ErrDateOrder  = errors.New("vacation end date cannot be earlier than the start date")
	ErrPastDate   = errors.New("vacation dates cannot be in the past")
	ErrPriceRange = errors.New("price must be between 0 and 10000")
)

var validate = validator.New()

// VacationInput son los campos del formulario de alta/edición de una vacación.
// AllowPast se habilita al editar, donde las fechas existentes pueden haber
// quedado atrás.
type VacationInput struct {
	CountryID   int     `validate:"required_without=CountryName"`
	CountryName string  `validate:"required_without=CountryID"`
	Description string  `validate:"required"`
	StartDate   string  `validate:"required"`
	EndDate     string  `validate:"required"`
	Price       float64 `validate:"gte=0,lte=10000"`
	AllowPast   bool    `validate:"-"`
}

// Vacation valida el formulario completo sin tocar la red: campos requeridos,
// formato y orden de fechas, fechas pasadas y rango de precio.
func Vacation(in VacationInput) error {
	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			field := fieldErrs[0].Field()
			if field == "Price" {
				return ErrPriceRange
			}
			return fmt.Errorf("%s is required", field)
		}
		return err
	}

	start, err := time.ParseInLocation(domain.DateLayout, in.StartDate, time.Local)
	if err != nil {
		return fmt.Errorf("invalid start date %q", in.StartDate)
	}
	end, err := time.ParseInLocation(domain.DateLayout, in.EndDate, time.Local)
	if err != nil {
		return fmt.Errorf("invalid end date %q", in.EndDate)
	}
	if end.Before(start) {
		return ErrDateOrder
	}
	if !in.AllowPast {
		// Fecha calendario local, no medianoche UTC: una vacación que empieza
		// hoy es válida en cualquier huso.
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		if start.Before(today) || end.Before(today) {
			return ErrPastDate
		}
	}
	return nil
}

// RegistrationInput son los campos que exige POST /users.
type RegistrationInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=4"`
}

// Registration valida el formulario de registro antes de cualquier request.
func Registration(in RegistrationInput) error {
	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			switch {
			case fe.Field() == "Email":
				return errors.New("invalid email format")
			case fe.Field() == "Password":
				return fmt.Errorf("password needs at least %d characters", MinPasswordLen)
			default:
				return fmt.Errorf("%s is required", fe.Field())
			}
		}
		return err
	}
	return nil
}
