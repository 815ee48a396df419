package request

import (
	"log"
	"strings"

	"fieldflow/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules to gin's validator engine.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		log.Printf("[http][validation] unexpected validator engine; custom rules not registered")
		return
	}
	if err := RegisterRules(v); err != nil {
		log.Printf("[http][validation] failed to register rules err=%v", err)
	}
}

func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation("billing_type", validateBillingType)
}

func validateBillingType(fl validator.FieldLevel) bool {
	return entities.BillingType(strings.TrimSpace(fl.Field().String())).Valid()
}
