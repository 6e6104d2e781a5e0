// Package inputval validates request payloads with a shared validator
// instance and translates failures into the validation kind of the
// error taxonomy, using JSON field names in messages.
package inputval

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gatherhub/gatherhub/internal/app/system/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates v against its `validate` tags. The first failure is
// reported with the offending JSON field name.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return apperr.Newf(apperr.KindValidation, "%s is required", fe.Field())
		}
		return apperr.Newf(apperr.KindValidation, "%s is invalid", fe.Field())
	}
	return apperr.Wrap(apperr.KindValidation, "invalid request payload", err)
}
