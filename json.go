package errfactory

import (
	"encoding/json"
	"fmt"
)

const unknownCode = "UNKNOWN"

// ErrorResponse is the flat JSON shape of an error.
//
// The cause chain is never included; causes may carry internal details that
// must not reach API clients.
type ErrorResponse struct {
	// Code is the family code.
	Code string `json:"code"`

	// Name is the display name derived from the code.
	Name string `json:"name"`

	// Message is the interpolated message.
	Message string `json:"message"`

	// Status is the family status.
	Status int `json:"status"`

	// Params holds the parameters used for interpolation.
	// Omitted from JSON if empty.
	Params Params `json:"params,omitempty"`
}

// ToJSON converts any error to an ErrorResponse.
// Returns nil if err is nil.
//
// An *Error in the chain provides every field. Another coded error, as
// recognised by IsCoded, provides code and status. Anything else is reported
// with code UNKNOWN.
//
// Example:
//
//	data, _ := json.Marshal(errfactory.ToJSON(err))
//	// {"code":"UNKNOWN","name":"Unknown","message":"connection refused","status":0}
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var e *Error
	if As(err, &e) {
		return e.response()
	}

	if code, status, ok := findCoded(err); ok {
		return &ErrorResponse{
			Code:    code,
			Name:    DeriveName(code),
			Message: err.Error(),
			Status:  status,
		}
	}

	return &ErrorResponse{
		Code:    unknownCode,
		Name:    DeriveName(unknownCode),
		Message: err.Error(),
	}
}

// MarshalJSON implements json.Marshaler.
//
// Example:
//
//	data, _ := json.Marshal(NotFound.New(errfactory.Params{"id": "42"}))
//	// {"code":"NOT_FOUND","name":"NotFound","message":"item 42 not found","status":404,"params":{"id":"42"}}
func (e *Error) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.response())
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", e.code, err)
	}
	return data, nil
}

func (e *Error) response() *ErrorResponse {
	return &ErrorResponse{
		Code:    e.code,
		Name:    e.name,
		Message: e.message,
		Status:  e.status,
		Params:  e.Params(),
	}
}
