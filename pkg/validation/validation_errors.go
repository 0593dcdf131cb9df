package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Name":        "Display name",
	"Bio":         "Biography",
	"Skills":      "Skills",
	"Email":       "Email",
	"Title":       "Job title",
	"Description": "Job description",
	"Status":      "Job status",
}

// label resolves a field name to its user-facing label.
func label(field string) string {
	if l, ok := FieldLabels[field]; ok {
		return l
	}
	return field
}

// FormatErrors turns validator errors into a single readable message.
func FormatErrors(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return strings.Join(msgs, "; ")
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label(fe.Field()))
	case "min":
		return fmt.Sprintf("%s must have at least %s characters or items", label(fe.Field()), fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters or items", label(fe.Field()), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label(fe.Field()))
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", label(fe.Field()))
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji", label(fe.Field()))
	case "job_status":
		return fmt.Sprintf("%s must be one of: open, in-progress, completed", label(fe.Field()))
	default:
		return fmt.Sprintf("%s is invalid", label(fe.Field()))
	}
}
