package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"pesona/internal/models"
)

// locale_pair requires both locale variants of a LocalizedText. An empty
// pair passes so the tag can sit on optional fields alongside `required`.
func validLocalePair(fl validator.FieldLevel) bool {
	lt, ok := fl.Field().Interface().(models.LocalizedText)
	if !ok {
		return false
	}
	if lt.ID == "" && lt.EN == "" {
		return true
	}
	return lt.Complete()
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("locale_pair", validLocalePair)
	}
}
