// README: Typed failure returned by the ride repository.
package ride

import (
	"fmt"

	"rideapp/internal/rideapi"
)

// UserError is a failed ride api call reduced to the message shown to the user.
// Status is 0 for transport failures.
type UserError struct {
	Message string
	Status  int
	Code    string
	Detail  string
	Err     error
}

func (e *UserError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func newUserError(msg string, status int, body *rideapi.ErrorResponse) *UserError {
	e := &UserError{Message: msg, Status: status}
	if body != nil {
		e.Code = body.ErrorCode
		e.Detail = body.ErrorDescription
	}
	return e
}
