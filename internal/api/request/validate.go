package request

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"psn-emulator/internal/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode parses an event body into dst and validates it against dst's
// schema tags. A missing body is treated as an empty object, not an error.
// Malformed JSON and schema violations both become Validation errors; the
// validator's message is passed through to the caller.
func Decode(body string, dst any) *apperr.Error {
	if body == "" {
		body = "{}"
	}
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		return apperr.NewValidation("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.NewValidation(err.Error())
	}
	return nil
}
