package qb

var (
	// ErrNotUTF8 ...
	ErrNotUTF8 = NewError("invalid UTF-8")
	// ErrInvalidValue is returned when a value cannot be encoded as a bind
	// argument for the active dialect.
	ErrInvalidValue = NewError("cannot encode value as a bind argument")
	// ErrTooManyParams is returned when a query exceeds the dialect's
	// bind-parameter ceiling.
	ErrTooManyParams = NewError("number of bind parameters exceeds dialect limit")
	// ErrDialectMismatch is returned when a fragment built against one
	// dialect is merged into a builder using another.
	ErrDialectMismatch = NewError("fragment was built for a different dialect")
	// ErrEmptyValues is returned when PushValues is called without rows.
	ErrEmptyValues = NewError("VALUES requires at least one row")
)

// Error are errors returned by qb.
type Error struct {
	Code    int
	Message string
}

// Error returns the enclosed error message.
func (qe *Error) Error() string {
	return qe.Message
}

// NewError creates a new qb Error.
func NewError(msg string) error {
	return &Error{Message: msg}
}
