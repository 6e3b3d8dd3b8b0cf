package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// APIError mirrors the heterogeneous error envelope of the trading terminal:
// broker diagnostic codes under details, validation entry arrays, or a plain
// message/status pair.
type APIError struct {
	Status  int
	Message string
	// Details carries a broker diagnostic code such as E_SRV_NOT_FOUND.
	Details string
	// ValidationDetails is set when the terminal rejects request parameters.
	ValidationDetails []ValidationDetail
}

type ValidationDetail struct {
	Message   string `json:"message"`
	Parameter string `json:"parameter,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("terminal error %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("terminal error %d: %s", e.Status, e.Message)
}

func parseAPIError(httpStatus int, body []byte) *APIError {
	apiErr := &APIError{Status: httpStatus}

	var wire struct {
		Message string          `json:"message"`
		Status  int             `json:"status"`
		Details json.RawMessage `json:"details"`
	}
	if err := sonic.Unmarshal(body, &wire); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}

	apiErr.Message = wire.Message
	if wire.Status != 0 {
		apiErr.Status = wire.Status
	}

	// details is either a diagnostic code string or an array of validation
	// entries, depending on the failure class.
	if len(wire.Details) > 0 {
		var code string
		if err := sonic.Unmarshal(wire.Details, &code); err == nil {
			apiErr.Details = code
			return apiErr
		}
		var entries []ValidationDetail
		if err := sonic.Unmarshal(wire.Details, &entries); err == nil {
			apiErr.ValidationDetails = entries
		}
	}
	return apiErr
}
