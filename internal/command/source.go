// Package command implements the command ports for every entry point.
//
// Each command is a single generic type parameterized over a Source. The
// source decides nothing but how a field is named when input is rejected,
// so a web client sees "familyName" while a CLI user sees "--family-name".
// Use cases receive the commands through their port interfaces and never
// learn which entry point built them.
package command

import (
	"strings"
	"unicode"

	"github.com/panda-project/panda/internal/domain"
)

// Source names the entry point a command was built from.
type Source interface {
	// FieldName maps a logical field name (camelCase) to the name the
	// client used for it.
	FieldName(field string) string
}

// Web is the source for commands built from HTTP request bodies and paths.
type Web struct{}

func (Web) FieldName(field string) string { return field }

// CLI is the source for commands built from command-line flags.
type CLI struct{}

func (CLI) FieldName(field string) string {
	var b strings.Builder
	b.WriteString("--")
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// rename rewrites the field of every validation failure in err. value objects
// report generic field names such as "id"; field is the name this command
// reads the value from.
func rename[S Source](err error, field string) error {
	if err == nil {
		return nil
	}
	var src S
	verrs, ok := domain.AsValidation(err)
	if !ok {
		return err
	}

	out := make(domain.ValidationErrors, 0, len(verrs))
	for _, v := range verrs {
		name := v.Field
		if field != "" {
			name = field
		}
		out = append(out, domain.NewValidationError(src.FieldName(name), v.Message))
	}
	return out
}

// collect runs every check and merges their validation failures. The first
// non-validation error wins.
func collect(checks ...error) error {
	var errs domain.ValidationErrors
	for _, err := range checks {
		if !errs.Collect(err) {
			return err
		}
	}
	return errs.Err()
}

// Validator is implemented by every command in this package. Entry points call
// Validate before handing the command to a use case so that all field
// failures are reported at once.
type Validator interface {
	Validate() error
}

