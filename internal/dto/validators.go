package dto

import (
	"github.com/TalalMnd/sim_sales_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom binding validators for SIM type fields:
//   simtype    - any known SIM type, including the non-stock "issue"
//   stockedsim - SIM types that carry stock (issue excluded)
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("simtype", func(fl validator.FieldLevel) bool {
		return domain.SimType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("stockedsim", func(fl validator.FieldLevel) bool {
		return domain.SimType(fl.Field().String()).Stocked()
	})
}
