package validate

import (
	"errors"
	"reflect"
	"strings"

	"restaurant_manager/result"
	"restaurant_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GeneralField keys violations that cannot be pinned to a single field,
// such as an unparseable request body.
const GeneralField = "_general"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report violations under json field names so paths match the wire shape
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phone", phoneRule); err != nil {
		panic(err)
	}
	return v
}

// phoneRule accepts 10-20 raw characters drawn from digits, spaces,
// parentheses, hyphens, dots and plus signs, carrying 10-15 digits once
// formatting is stripped.
func phoneRule(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if len(raw) < 10 || len(raw) > 20 {
		return false
	}
	digits := 0
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '(' || r == ')' || r == '-' || r == '.' || r == '+':
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 15
}

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a payload, each tagged
// with its dotted field path.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Details(), "; ")
}

func (e *ValidationError) Details() []string {
	details := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		details = append(details, v.Field+": "+v.Message)
	}
	return details
}

func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func generalError(message string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: GeneralField, Message: message}}}
}

// Payload validates a typed payload against its declared constraints and
// returns either the payload or a ValidationError carrying every
// violation. Pure: no I/O.
func Payload[T any](input T) result.Result[T] {
	if err := validate.Struct(input); err != nil {
		return result.Err[T](collect(err))
	}
	return result.Ok(input)
}

func collect(err error) *ValidationError {
	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return generalError(err.Error())
	}
	verr := &ValidationError{}
	for _, fe := range ferrs {
		verr.Violations = append(verr.Violations, FieldViolation{
			Field:   fieldPath(fe),
			Message: messageFor(fe),
		})
	}
	return verr
}

// fieldPath strips the root struct name from the namespace, leaving the
// dotted json path ("customer.phone").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return GeneralField
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	case "uuid4":
		return "must be a valid uuid"
	case "gtefield":
		return "must be greater than or equal to " + fe.Param()
	case "ltefield":
		return "must be less than or equal to " + fe.Param()
	default:
		return "is invalid"
	}
}

// body parses the request body and validates it in one step. Parse
// failures (including fractional values sent for integer fields) surface
// under the _general key.
func body[T any](c *fiber.Ctx) result.Result[T] {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return result.Err[T](generalError("unable to parse request body: " + err.Error()))
	}
	return Payload(input)
}

func invalid(c *fiber.Ctx, message string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return utils.ErrorResponseWithDetails(c, fiber.StatusBadRequest, message, err, verr.Details())
	}
	return utils.ErrorResponse(c, fiber.StatusBadRequest, message, err)
}

// GetById validates the path identifier against the canonical uuid string
// format before any lookup happens; a malformed id is a client error, not
// a not-found.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(key)
		if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id format", errors.New("id must be a uuid"))
		}
		c.Locals("inputId", id)
		return c.Next()
	}
}
