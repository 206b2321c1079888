package validator

import "github.com/go-playground/validator/v10"

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("contact", validateContact)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateContact(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 7 || len(s) > 15 {
		return false
	}
	for i, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if i == 0 && r == '+' {
			continue
		}
		return false
	}
	return true
}
