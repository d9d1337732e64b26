package content

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
			return monthIndex(fl.Field().String()) >= 0
		})

		validateInst = v
	})

	return validateInst
}

// FieldError describes one invalid field of the document.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every invalid field found by Validate.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid content: " + strings.Join(parts, "; ")
}

// Validate checks the document. The returned error is a *ValidationError
// listing every problem.
func (c *SiteContent) Validate() error {
	if c == nil {
		return &ValidationError{Fields: []FieldError{{Field: "content", Message: "document is nil"}}}
	}

	var fields []FieldError
	if err := validatorInstance().Struct(c); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return fmt.Errorf("validate content: %w", err)
		}
		for _, fe := range ves {
			fields = append(fields, FieldError{
				Field:   jsonishFieldName(fe),
				Message: fmt.Sprintf("failed validation for tag '%s'", fe.Tag()),
			})
		}
	}

	seen := make(map[string]int, len(c.Galleries))
	for i, g := range c.Galleries {
		if prev, ok := seen[g.Title]; ok && g.Title != "" {
			fields = append(fields, FieldError{
				Field:   fmt.Sprintf("galleries[%d].title", i),
				Message: fmt.Sprintf("duplicate of galleries[%d]", prev),
			})
			continue
		}
		seen[g.Title] = i
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// jsonishFieldName turns "SiteContent.Club.Meetings.Day" into
// "club.meetings.day", keeping slice indexes.
func jsonishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = lowerFirst(p)
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	// Acronym fields such as URL become url.
	if strings.ToUpper(s) == s {
		return strings.ToLower(s)
	}
	if idx := strings.IndexByte(s, '['); idx > 0 && strings.ToUpper(s[:idx]) == s[:idx] {
		return strings.ToLower(s[:idx]) + s[idx:]
	}
	return strings.ToLower(s[:1]) + s[1:]
}
