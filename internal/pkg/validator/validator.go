package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/trip-planner/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Кастомное правило для режима передвижения, чтобы список
	// допустимых значений жил в одном месте (domain.TransportMode)
	_ = validate.RegisterValidation("transport_mode", func(fl validator.FieldLevel) bool {
		return domain.TransportMode(fl.Field().String()).Valid()
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
