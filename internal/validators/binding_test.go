package validators

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type slotRequest struct {
	Day   string `binding:"required,weekday"`
	Start string `binding:"required,hhmm"`
}

type statusRequest struct {
	Role   string `binding:"required,role"`
	Status string `binding:"required,booking_status"`
}

func TestRegister(t *testing.T) {
	Register()
	Register()

	assert.NoError(t, binding.Validator.ValidateStruct(&slotRequest{Day: "monday", Start: "09:30"}))
	assert.Error(t, binding.Validator.ValidateStruct(&slotRequest{Day: "someday", Start: "09:30"}))
	assert.Error(t, binding.Validator.ValidateStruct(&slotRequest{Day: "Mon", Start: "9:30"}))

	assert.NoError(t, binding.Validator.ValidateStruct(&statusRequest{Role: "trainer", Status: "confirmed"}))
	assert.Error(t, binding.Validator.ValidateStruct(&statusRequest{Role: "admin", Status: "confirmed"}))
	assert.Error(t, binding.Validator.ValidateStruct(&statusRequest{Role: "user", Status: "archived"}))
}

func TestEmailDomainResolvable_Malformed(t *testing.T) {
	assert.False(t, EmailDomainResolvable(t.Context(), "no-at-sign"))
	assert.False(t, EmailDomainResolvable(t.Context(), "trailing@"))
}
