package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Generation pipeline errors
	CodePreconditionFailed = "PRECONDITION_FAILED" // fix your request: missing PIS, empty scope, bad period
	CodeDataIntegrity      = "DATA_INTEGRITY"      // fix your data: negative minutes, NSR gap, zero instants
	CodeEncodingError      = "ENCODING_ERROR"      // content not representable in the requested encoding

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
