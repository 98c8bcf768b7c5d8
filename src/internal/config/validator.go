package config

import (
	"donation-service/src/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func NewValidator(viper *viper.Viper) *validator.Validate {
	return validation.New()
}
