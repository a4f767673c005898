package validator

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"unicode"

	"anoa.com/classsite/pkg/response"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// UploadPrefix marks values that point at locally uploaded media rather than
// an absolute URL.
var UploadPrefix = "/uploads/"

// Register installs the custom rules on gin's binding validator. Call once
// during server setup.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(jsonTagName)
	v.RegisterValidation("imageref", validImageRef)
	v.RegisterValidation("contactinfo", validContactInfo)
}

// jsonTagName makes validation errors report the field name the client sent,
// taken from the json tag, instead of the Go struct field name.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// validImageRef accepts an absolute http(s) URL or a local upload path.
func validImageRef(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if strings.HasPrefix(value, UploadPrefix) {
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// validContactInfo requires valid JSON when the value looks like JSON,
// otherwise plain text under 1000 characters.
func validContactInfo(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	if strings.HasPrefix(value, "{") || strings.HasPrefix(value, "[") {
		return json.Valid([]byte(value))
	}
	return len(value) <= 1000
}

// FormatDetails converts binding errors into one entry per failing rule.
func FormatDetails(err error) []response.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []response.FieldError{{Field: "body", Message: err.Error()}}
	}

	details := make([]response.FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, response.FieldError{
			Field:   fieldName(fieldError.Field()),
			Message: fieldMessage(fieldError),
		})
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "imageref":
		return fmt.Sprintf("%s must be a valid URL or an upload path", field)
	case "contactinfo":
		return fmt.Sprintf("%s must be valid JSON or plain text under 1000 characters", field)
	case "dive":
		return fmt.Sprintf("%s contains an invalid entry", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func fieldName(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
