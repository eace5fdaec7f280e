package handlers

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// slugPattern matches CMS slugs: letters, digits, '-' and '_', not starting with a separator.
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// CustomValidator adapts go-playground/validator to echo.Validator and adds
// the "slug" rule.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// slugParam is the path parameter of the project detail route.
type slugParam struct {
	Slug string `param:"slug" validate:"required,max=200,slug"`
}
