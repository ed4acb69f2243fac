package apperrors

var (
	// Auth surface
	ErrMissingFields      = InvalidArg("Please enter all fields.")
	ErrEmailTaken         = AlreadyExists("User with this email already exists.")
	ErrUsernameTaken      = AlreadyExists("Username is already taken.")
	ErrInvalidCredentials = InvalidArg("Invalid credentials.")
	ErrNoToken            = Unauthenticated("Access denied. No token provided.")
	ErrBadToken           = Unauthenticated("Token is not valid.")

	// Resource surface
	ErrUserNotFound    = NotFound("User not found")
	ErrNoteNotFound    = NotFound("Note not found")
	ErrNotOwner        = Forbidden("User not authorized")
	ErrCommentRequired = InvalidArg("Comment text is required")
)
