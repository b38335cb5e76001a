package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	ticketvo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
	uservo "github.com/deskline-inc/deskline/internal/domain/user/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/errors"
)

var registerOnce sync.Once

// RegisterValidators installs the JSON tag name func and the custom
// validation tags on gin's binding engine. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		configure(v)
	})
}

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return uservo.DefaultPasswordPolicy().ValidatePassword(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return uservo.ValidatePhoneNumber(strings.TrimSpace(fl.Field().String())) == nil
	})
	_ = v.RegisterValidation("ticketpriority", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || ticketvo.Priority(s).IsValid()
	})
	_ = v.RegisterValidation("ticketcategory", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || ticketvo.Category(s).IsValid()
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// TranslateBindError converts gin binding failures into a validation
// AppError listing every failing field.
func TranslateBindError(err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, getFieldErrorMessage(fe))
		}
		return errors.NewValidationError("Validation failed", strings.Join(messages, "; "))
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return errors.NewValidationError("Validation failed",
			fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String()))
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) || err.Error() == "EOF" {
		return errors.NewValidationError("Invalid request body", "body must be a JSON object")
	}

	return errors.NewValidationError("Invalid request body", err.Error())
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "password":
		policy := uservo.DefaultPasswordPolicy()
		return fmt.Sprintf("%s must be %d-%d characters with upper and lower case letters, a digit and one of %s",
			field, policy.MinLength, policy.MaxLength, uservo.PasswordSpecialChars)
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number", field)
	case "ticketpriority":
		return fmt.Sprintf("%s must be a valid priority", field)
	case "ticketcategory":
		return fmt.Sprintf("%s must be a valid category", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
