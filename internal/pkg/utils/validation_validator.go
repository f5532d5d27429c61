package utils

import (
	"regexp"

	"schedboard-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("calendar_date", validateCalendarDate)
	validate.RegisterValidation("slot_time", validateSlotTime)
	validate.RegisterValidation("gmt_timezone", validateGMTTimezone)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(fl.Field().String())
}

func validateSlotTime(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexTimeHHMM).MatchString(fl.Field().String())
}

func validateGMTTimezone(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexGMTOffset).MatchString(fl.Field().String())
}
