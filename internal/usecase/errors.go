package usecase

// ErrorKind is the closed set of business failure classes the services can
// produce. Handlers map each kind to exactly one HTTP status.
type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindUnauthorized
	KindPaymentRequired
	KindForbidden
	KindNotFound
)

// Error is a tagged business-rule failure. Every guard raises the first
// applicable one and the orchestrator stops there.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFoundError() *Error {
	return &Error{Kind: KindNotFound, Message: "Not found"}
}

// ForbiddenError takes an optional message; most rule violations stay
// deliberately undifferentiated.
func ForbiddenError(message ...string) *Error {
	msg := "Forbidden"
	if len(message) > 0 {
		msg = message[0]
	}
	return &Error{Kind: KindForbidden, Message: msg}
}

func BadRequestError(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func UnauthorizedError() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Unauthorized"}
}

func PaymentRequiredError() *Error {
	return &Error{Kind: KindPaymentRequired, Message: "Payment required"}
}
