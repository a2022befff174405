package validation

// ProjectValidator provides validation for project-related operations
type ProjectValidator struct {
	validator *Validator
}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{
		validator: NewValidator(),
	}
}

// ValidateProjectForCreation validates the fields of a new project
func (pv *ProjectValidator) ValidateProjectForCreation(name string) error {
	validationError := NewValidationError()

	if !pv.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError("name")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateProjectID validates a project ID
func (pv *ProjectValidator) ValidateProjectID(id string) error {
	if !pv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("id")
		return validationError
	}
	return nil
}
