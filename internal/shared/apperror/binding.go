package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Request locations used as field path prefixes.
const (
	LocBody  = "body"
	LocQuery = "query"
	LocPath  = "path"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(wireName)
	}
}

// wireName reports a struct field by its json, form or uri tag name.
func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// FromBindError converts a gin binding failure at loc into a ValidationError.
func FromBindError(loc string, err error) *ValidationError {
	var (
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		numErr    *strconv.NumError
	)
	switch {
	case errors.As(err, &fieldErrs):
		fields := make([]FieldError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, FieldError{Loc: loc + "." + fe.Field(), Msg: ruleMessage(fe)})
		}
		return NewValidation(fields...)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return NewValidation(FieldError{Loc: loc, Msg: "must be a JSON object"})
		}
		return NewValidation(FieldError{Loc: loc + "." + field, Msg: "must be of type " + jsonKind(typeErr.Type)})
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return NewValidation(FieldError{Loc: loc, Msg: "invalid JSON body"})
	case errors.As(err, &numErr):
		return NewValidation(FieldError{Loc: loc, Msg: fmt.Sprintf("value %q is not a valid integer", numErr.Num)})
	default:
		return NewValidation(FieldError{Loc: loc, Msg: "invalid request"})
	}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "must be less than or equal to " + fe.Param()
	case "dive":
		return "invalid item"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}

// PathID parses the gin path parameter param as a positive integer id.
// A failure is reported at "path.<field>".
func PathID(c *gin.Context, param, field string) (uint, error) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil {
		return 0, NewValidation(FieldError{
			Loc: LocPath + "." + field,
			Msg: fmt.Sprintf("value %q is not a valid integer", raw),
		})
	}
	return uint(id), nil
}
