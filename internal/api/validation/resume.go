package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// TemplateNamePattern restricts template names to safe tokens so they can be
// used as store keys and CSS class names without escaping
var TemplateNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{1,31}$`)

// ValidateTemplateName ensures a template name is a safe token
func ValidateTemplateName(fl validator.FieldLevel) bool {
	return TemplateNamePattern.MatchString(fl.Field().String())
}

// RegisterResumeValidators registers all resume-related custom validators
func RegisterResumeValidators(v *validator.Validate) {
	v.RegisterValidation("template_name", ValidateTemplateName)
}
