package handler

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	log "github.com/sirupsen/logrus"
)

var registerOnce sync.Once

// RegisterValidators adds custom binding tags to gin's validator:
// notblank rejects strings made only of whitespace.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Warn("gin validator engine is not go-playground/validator, custom tags disabled")
			return
		}
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			log.WithError(err).Error("failed to register notblank validator")
		}
	})
}
