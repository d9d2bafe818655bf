package helpers

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// The translator is shared across controllers; only the per-instance
// registration of default messages happens on each call.
var translator ut.Translator

func init() {
	eng := en.New()
	uni := ut.New(eng, eng)
	translator, _ = uni.GetTranslator("en")
}

// GetErrorMessages flattens validator errors into the single string the 422
// responses carry, one message per failed field tag.
func GetErrorMessages(validate *validator.Validate, errs error) string {
	en_translations.RegisterDefaultTranslations(validate, translator)

	validationErrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return errs.Error()
	}

	var errorMessages []string
	for _, e := range validationErrs {
		errorMessages = append(errorMessages, e.Translate(translator))
	}
	return strings.Join(errorMessages, ", ")
}
