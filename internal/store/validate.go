package store

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput wraps every rejected write.
var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New()

type listInput struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=500"`
}

type configurationInput struct {
	ListID   string `validate:"required"`
	Symbol   string `validate:"required,startswith=/,endswith=/"`
	Name     string `validate:"required"`
	Language string `validate:"required,oneof=english spanish"`
	Position string `validate:"required,oneof=initial medial final"`
	Level    string `validate:"required,oneof=isolation syllable word phrase sentence"`
}

type wordInput struct {
	ConfigurationID string `validate:"required"`
	Text            string `validate:"required,max=64"`
	PhonemeIndex    int    `validate:"gte=0"`
	Position        string `validate:"required,oneof=initial medial final"`
}

// check validates v and wraps any failure in ErrInvalidInput.
func check(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalidInput, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
