package models

// Response status values. Every API response carries exactly one of them.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the uniform envelope wrapping every API outcome.
//
// Exactly one of Data or Errors is populated, keyed by outcome: successful
// operations carry a payload in Data, validation failures carry a field-level
// reasons map in Errors, and all other failures carry only Message.
type Response struct {
	// Status is either "success" or "error".
	Status string `json:"status"`

	// Message is a human-readable summary of the outcome.
	Message string `json:"message"`

	// Data is the operation payload, present on success only.
	Data any `json:"data,omitempty"`

	// Errors maps field names to the list of reasons the field was rejected.
	// Present on validation failures only.
	Errors map[string][]string `json:"errors,omitempty"`
}

// SuccessResponse builds a success envelope with the given payload.
func SuccessResponse(message string, data any) Response {
	return Response{Status: StatusSuccess, Message: message, Data: data}
}

// ErrorResponse builds an error envelope carrying only a message.
func ErrorResponse(message string) Response {
	return Response{Status: StatusError, Message: message}
}

// ValidationErrorResponse builds an error envelope carrying a field-level
// errors map for client-side form feedback.
func ValidationErrorResponse(message string, fieldErrors map[string][]string) Response {
	return Response{Status: StatusError, Message: message, Errors: fieldErrors}
}

// RegisteredUser is the payload returned on successful registration.
// The password is deliberately absent.
type RegisteredUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CurrentUser is the payload returned by the current-user endpoint.
// IsAdmin is computed live from the authenticated user, never cached.
type CurrentUser struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	IsAdmin     bool   `json:"is_admin"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// DeletedNote is the snapshot of a note captured before deletion, returned
// in the delete response since the record no longer exists afterwards.
type DeletedNote struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}
