package apperrors

import "net/http"

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodePermissionDenied Code = "PERMISSION_DENIED"
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
	CodeInternal         Code = "INTERNAL"
)

// HTTPStatus maps a code to the status the public API promises. Duplicate
// registrations answer 400 rather than 409, and an ownership violation
// answers 401 rather than 403; both are part of the compatibility surface.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument, CodeAlreadyExists:
		return http.StatusBadRequest
	case CodeUnauthenticated, CodePermissionDenied:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
