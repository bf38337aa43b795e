package config

import (
	"TalonAI/pkg/handlerUtil"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	return handlerUtil.NewValidator()
}
