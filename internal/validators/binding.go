package validators

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/traineme-api/internal/domain/availability"
	"github.com/BruksfildServices01/traineme-api/internal/domain/booking"
	"github.com/BruksfildServices01/traineme-api/internal/domain/user"
)

var registerOnce sync.Once

// Register installs the custom binding tags on gin's validator:
// hhmm, weekday, role and booking_status.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, err := availability.ParseClock(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, err := availability.ParseDay(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			_, err := user.ParseRole(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
			_, err := booking.ParseStatus(fl.Field().String())
			return err == nil
		})
	})
}
