package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/sahajlabs/bahikhata/internal/core/domain"
)

// RegisterCustomValidations wires domain-aware binding validations into the
// gin validator engine. Called once at startup.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("vouchertype", func(fl validator.FieldLevel) bool {
		return domain.VoucherType(fl.Field().String()).IsValid()
	})
}
