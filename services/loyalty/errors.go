package loyalty

import "errors"

// Business outcomes of an Apex sync, distinct from the gateway's transport
// error taxonomy. Handlers map these to client-facing status codes.
var (
	// ErrCardNotFound means Apex does not know the card number
	ErrCardNotFound = errors.New("card does not exist")

	// ErrCardAlreadyUsed means the card is already bound to another member
	ErrCardAlreadyUsed = errors.New("card already used")

	// ErrApexRejected means Apex answered with a business status this
	// service does not recognize
	ErrApexRejected = errors.New("unexpected apex response status")

	// ErrUserNotFound means no local user record matches the identifier
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidDate means a date filter was not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
