package audit

const (
	ActionUserRegistered = "user.registered"
	ActionUserUpdated    = "user.updated"
	ActionUserDeleted    = "user.deleted"

	ActionTrainerCreated = "trainer.created"
	ActionTrainerUpdated = "trainer.updated"
	ActionTrainerDeleted = "trainer.deleted"

	ActionSlotCreated = "availability.created"
	ActionSlotToggled = "availability.toggled"
	ActionSlotDeleted = "availability.deleted"

	ActionBookingCreated   = "booking.created"
	ActionBookingConfirmed = "booking.confirmed"
	ActionBookingCompleted = "booking.completed"
	ActionBookingCancelled = "booking.cancelled"

	ActionReviewCreated = "review.created"

	ActionImageUploaded = "media.uploaded"
)

const (
	EntityUser    = "user"
	EntityTrainer = "trainer_profile"
	EntitySlot    = "availability"
	EntityBooking = "booking"
	EntityReview  = "review"
)
