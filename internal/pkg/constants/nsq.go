package constants

// NSQ topics for the notification pipeline
const (
	TopicUserRegistered     = "user.registered"
	TopicRequestAccepted    = "request.accepted"
	TopicReservationCreated = "reservation.created"
	TopicSupportMessage     = "support.message"
)
