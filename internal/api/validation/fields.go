package validation

import "github.com/panda-project/panda/internal/domain"

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FromError converts the field failures carried by err. It reports false
// when err is not a validation failure.
func FromError(err error) ([]FieldError, bool) {
	verrs, ok := domain.AsValidation(err)
	if !ok {
		return nil, false
	}
	out := make([]FieldError, 0, len(verrs))
	for _, v := range verrs {
		out = append(out, FieldError{Field: v.Field, Message: v.Message})
	}
	return out, true
}
