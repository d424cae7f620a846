package ownership

// Literal client-facing messages for the two terminal failure kinds. The
// create message is kind-specific and built by NewNoOwnerError.
const (
	MsgOwnerParamRequired = "At least one of seriesId or bookId query param must be passed."
	MsgForbidden          = "Forbidden account action."
)

// ValidationError means the request itself is malformed (missing owner
// params, owner ids that resolve to nothing the caller owns). Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthorizationError means the caller is authenticated but the target
// resource is not reachable through any owner they hold. Maps to 403.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

func NewOwnerParamError() error {
	return &ValidationError{Message: MsgOwnerParamRequired}
}

func NewNoOwnerError(kind string) error {
	return &ValidationError{Message: "A " + kind + " must be created belonging to one of your series or books."}
}

func NewForbiddenError() error {
	return &AuthorizationError{Message: MsgForbidden}
}
