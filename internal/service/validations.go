package service

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/nestling/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Must start with a letter
				if i == 0 && !unicode.IsLower(char) {
					return false
				}
				// Lowercase letters, digits, dash or underscore
				if !unicode.IsLower(char) && !unicode.IsDigit(char) && char != '-' && char != '_' {
					return false
				}
			}
			return true
		})
	})
}

func validateStruct(s any) error {
	InitValidator()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrValidation, err.Error())
	}
	return nil
}
