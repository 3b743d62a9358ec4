package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrUnauthorized       = Error("unauthorized")
	ErrInvalidToken       = Error("invalid token")
	ErrInvalidRequestBody = Error("invalid request body")
	ErrInvalidRequest     = Error("invalid request")
	ErrInvalidParams      = Error("invalid params")
	ErrInvalidPageOrSize  = Error("invalid page or size")

	ErrUserAlreadyExists = Error("user already exists")
	ErrUserNotFound      = Error("user not found")
	ErrWrongPassword     = Error("wrong password")
	ErrInvalidEmail      = Error("invalid email")
	ErrInvalidPassword   = Error("invalid password")
	ErrInvalidName       = Error("name is empty or too short")

	ErrReceiverRequired       = Error("receiver id is required")
	ErrSelfConversation       = Error("sender and receiver must be distinct")
	ErrMessageContentRequired = Error("message must have either text or image")
	ErrConversationNotFound   = Error("conversation not found")
	ErrImageUploadFailed      = Error("image upload failed")
)

// IsInvalidMessage reports whether err is one of the send-side validation
// errors that must be rejected before anything is persisted.
func IsInvalidMessage(err error) bool {
	switch err {
	case ErrReceiverRequired, ErrSelfConversation, ErrMessageContentRequired:
		return true
	}
	return false
}
