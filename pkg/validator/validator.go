package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	errMsgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msg := fmt.Sprintf("Field: %s, Tag: %s", e.Namespace(), e.Tag())
		if e.Param() != "" {
			msg += ", Param: " + e.Param()
		}
		errMsgs = append(errMsgs, msg)
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
