package constants

// Redis key formats
const (
	// Session store: value is the JTI of the live token for that user.
	KeyUserSession = "user:session:%d" // Format: user:session:{user_id}
)
