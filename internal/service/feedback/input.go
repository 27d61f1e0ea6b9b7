package feedback

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reflectlabs/feedback-analyzer/internal/domain"
)

// MaxMessageLength bounds the accepted feedback message size.
const MaxMessageLength = 10000

// SubmitInput holds the parameters for submitting feedback.
type SubmitInput struct {
	Source   string
	Message  string
	Author   *string
	Metadata json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Source) == "" {
		errs = append(errs, domain.FieldError{Field: "source", Message: "required"})
	} else if !domain.Source(i.Source).IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "source",
			Message: fmt.Sprintf("must be one of: %s", validSourceList()),
		})
	}

	if strings.TrimSpace(i.Message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	} else if len(i.Message) > MaxMessageLength {
		errs = append(errs, domain.FieldError{
			Field:   "message",
			Message: fmt.Sprintf("max %d characters", MaxMessageLength),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validSourceList() string {
	sources := domain.Sources()
	parts := make([]string, len(sources))
	for i, s := range sources {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
