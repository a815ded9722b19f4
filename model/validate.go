package model

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

type fieldSet interface {
	Columns() []Column
}

// Validate checks a field set before it reaches the store.
func Validate(f fieldSet) error {
	if len(f.Columns()) == 0 {
		return ErrNoFields
	}
	return Validator().Struct(f)
}
