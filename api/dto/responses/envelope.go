// ABOUTME: Response envelope shared by every API operation
// ABOUTME: {success, error?, errorType?, ...payload} with the fixed errorType taxonomy

package responses

// Envelope is embedded in every response payload. On failure Error
// carries the message and ErrorType one of the fixed taxonomy tags.
type Envelope struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	ErrorType string `json:"errorType,omitempty"`
}

// OK is the bare success envelope.
func OK() Envelope {
	return Envelope{Success: true}
}

// Failure builds a failed envelope with an explicit error type tag.
func Failure(message, errorType string) Envelope {
	return Envelope{
		Success:   false,
		Error:     message,
		ErrorType: errorType,
	}
}
