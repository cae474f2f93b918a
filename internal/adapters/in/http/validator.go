package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cogs/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator implements echo.Validator. Field errors are reported as
// errs.ValueIsInvalidError named by their JSON path.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	joined := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause(fieldPath(fe), errors.New(validationMessage(fe))))
	}
	return errors.Join(joined...)
}

// fieldPath drops the root struct name: "NewPurchaseOrder.items[0].asin"
// becomes "items[0].asin".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	}
	return "is invalid"
}

// bindJSON decodes the request body into dest and validates it. Numbers keep
// their literal text, so monetary values are not rounded through float64.
func bindJSON(ctx echo.Context, dest any) error {
	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	return ctx.Validate(dest)
}
