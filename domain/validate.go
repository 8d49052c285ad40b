package domain

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ProductForm mirrors the product form. The store performs no validation of
// its own, so every add or update must pass through here first.
type ProductForm struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	MinQuantity int     `json:"minQuantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"finite,gt=0"`
	Description string  `json:"description"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// FormFromInput builds the form for in, trimming the free-text fields.
func FormFromInput(in ProductInput) ProductForm {
	return ProductForm{
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Price:       in.Price,
		Description: strings.TrimSpace(in.Description),
	}
}

// Input converts the form back into a store payload.
func (f ProductForm) Input() ProductInput {
	return ProductInput{
		Name:        f.Name,
		Category:    f.Category,
		Quantity:    f.Quantity,
		MinQuantity: f.MinQuantity,
		Price:       f.Price,
		Description: f.Description,
	}
}

// Validate checks every field of in and returns ValidationErrors listing
// all failures, or nil.
func Validate(in ProductInput) error {
	err := validate.Struct(FormFromInput(in))
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &InvalidProductError{
			Field:  fe.Field(),
			Reason: reason(fe),
			Value:  fe.Value(),
		})
	}
	return out
}

// ValidateProduct returns the first failing field as *InvalidProductError.
func ValidateProduct(in ProductInput) error {
	var ve ValidationErrors
	if err := Validate(in); errors.As(err, &ve) {
		return ve[0]
	} else if err != nil {
		return err
	}
	return nil
}

// FieldErrors returns a field → message map suitable for form display.
func FieldErrors(in ProductInput) map[string]string {
	out := make(map[string]string)
	var ve ValidationErrors
	if errors.As(Validate(in), &ve) {
		for _, e := range ve {
			out[e.Field] = e.Reason
		}
	}
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "cannot be empty"
	case "gte":
		return "must be non-negative"
	case "gt":
		return "must be greater than 0"
	case "finite":
		return "must be a finite number"
	}
	return fe.Error()
}
