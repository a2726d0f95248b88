package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

func init() {
	// Catalog entities reference each other by UUID; a zero UUID is a
	// missing reference, not a value
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})
}

// Validate checks a request struct against its validate tags. Only the
// first failure is reported; the services surface it verbatim as the
// request error.
func Validate(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.StructNamespace(), first.Tag())
}
