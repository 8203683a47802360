package validation

import (
	"github.com/julianstephens/hrportal/internal/models"
)

// Employee form messages
const (
	MsgMandatoryFields = "Please fill in all mandatory fields."
	MsgContactDigits   = "Contact number must be exactly 10 digits."
	MsgEmailFormat     = "Please enter a valid email address with @."
	MsgAadharDigits    = "Aadhar number must be exactly 12 digits."
)

// ValidateEmployee checks the add/edit employee form. A missing mandatory
// field is reported alone; otherwise each malformed field gets its own
// conflict in contact, email, Aadhar order.
func (v *Validator) ValidateEmployee(form models.NewEmployee) ValidationResult {
	result := ValidationResult{}

	fes := v.fieldErrors(form)
	for _, fe := range fes {
		if fe.Tag() == "required" {
			result.add(ConflictMissingField, fe.Field(), "", MsgMandatoryFields)
			return result
		}
	}

	failed := make(map[string]bool, len(fes))
	for _, fe := range fes {
		failed[fe.Field()] = true
	}
	if failed["Contact"] {
		result.add(ConflictInvalidFormat, "contact", "", MsgContactDigits)
	}
	if failed["Email"] {
		result.add(ConflictInvalidFormat, "email", "", MsgEmailFormat)
	}
	if failed["Aadhar"] {
		result.add(ConflictInvalidFormat, "aadhar", "", MsgAadharDigits)
	}
	return result
}
