package validators

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	pkgerrors "github.com/angelmondragon/salesdash-backend/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// maxQueryValueLen bounds any single query value before validation.
const maxQueryValueLen = 64

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeQuery fills the string fields of dest tagged `query:"name"` from the
// request's query string and validates them. Values the browser sends for a
// cleared input ("null", "undefined", blank) decode as empty.
func DecodeQuery(r *http.Request, dest any) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return pkgerrors.New(pkgerrors.CodeInternal, fmt.Sprintf("query destination must be a struct pointer, got %T", dest))
	}
	values := r.URL.Query()
	elem := rv.Elem()
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Type().Field(i)
		name := strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
		if name == "" || field.Type.Kind() != reflect.String || !elem.Field(i).CanSet() {
			continue
		}
		elem.Field(i).SetString(NormalizeAbsent(clean(values.Get(name), maxQueryValueLen)))
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// NormalizeAbsent maps the placeholders a client sends for "no value" to "".
func NormalizeAbsent(value string) string {
	switch strings.ToLower(value) {
	case "null", "undefined":
		return ""
	}
	return value
}

// clean trims value, drops control characters and keeps at most maxLen runes.
func clean(value string, maxLen int) string {
	value = strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value))
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		value = string([]rune(value)[:maxLen])
	}
	return value
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fields := map[string]string{}
		for _, fieldErr := range errs {
			fields[fieldErr.Field()] = validationMessage(fieldErr)
		}
		first := errs[0]
		return pkgerrors.New(pkgerrors.CodeInvalidParameter, fmt.Sprintf("%s %s", first.Field(), fields[first.Field()])).
			WithDetails(map[string]any{"field": first.Field(), "fields": fields})
	}
	return pkgerrors.Wrap(pkgerrors.CodeInvalidParameter, err, "invalid query parameters")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "number":
		return "must be a non-negative integer"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return "is invalid"
}
