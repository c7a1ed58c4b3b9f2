package errors

const (
	HttpInternalError        = "internal_error"
	HttpInvalidJsonError     = "invalid_json"
	HttpInvalidRecordError   = "invalid_record"
	HttpDuplicateRecordError = "duplicate_record"
	HttpPayloadTooLargeError = "payload_too_large"
	HttpInvalidQueryError    = "invalid_query"
)

// ErrorResponse is the error body returned by every handler.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
