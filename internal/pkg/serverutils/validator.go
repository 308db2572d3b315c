package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"rag-chat-storage/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks struct tags on a request DTO and converts the first
// failure into a client-facing bad request.
func ValidateRequest(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		f := ve[0]
		return apperror.NewBadRequest(fmt.Sprintf("Field '%s' failed on the '%s' rule", strings.ToLower(f.Field()), f.Tag()))
	}
	return apperror.NewBadRequest("Invalid request payload")
}
