package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/bigBrother1996/devConnector/internal/dto"
	"github.com/gofiber/fiber/v2"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule checks a single request-body field. Check receives the field's value
// coerced to string ("" when absent or not a scalar).
type Rule struct {
	Field   string
	Message string
	Check   func(value string) bool
}

func NotEmpty(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		return strings.TrimSpace(v) != ""
	}}
}

func IsEmail(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		return emailRe.MatchString(v)
	}}
}

func MinLength(field, message string, min int) Rule {
	return Rule{Field: field, Message: message, Check: func(v string) bool {
		return len(v) >= min
	}}
}

// Body evaluates the declared rules against the JSON request body before the
// handler runs. Any failures short-circuit the request with a structured 400;
// the handler is never invoked.
func Body(rules ...Rule) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]interface{}
		// An unparseable body fails every rule on its own terms.
		_ = json.Unmarshal(c.Body(), &body)

		var errs []dto.FieldError
		for _, r := range rules {
			if !r.Check(fieldValue(body, r.Field)) {
				errs = append(errs, dto.FieldError{Field: r.Field, Message: r.Message})
			}
		}

		if len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
		}
		return c.Next()
	}
}

func fieldValue(body map[string]interface{}, field string) string {
	v, ok := body[field]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64, bool:
		return fmt.Sprintf("%v", t)
	default:
		return ""
	}
}
