// Package clienterr maps the unstable upstream error contract onto a small
// fixed taxonomy the HTTP edge and its callers can depend on.
package clienterr

import (
	"errors"
	"net/http"

	historysvc "trade_gateway/internal/modules/history/service"
	terminalsvc "trade_gateway/internal/modules/terminal/service"
)

type Category string

const (
	CategoryInvalidRange                  Category = "InvalidRangeError"
	CategoryBrokerServerNotFound          Category = "BrokerServerNotFound"
	CategoryBrokerAuthenticationFailed    Category = "BrokerAuthenticationFailed"
	CategoryBrokerSettingsDetectionFailed Category = "BrokerSettingsDetectionFailed"
	CategoryUpstreamValidation            Category = "UpstreamValidationError"
	CategoryGenericUpstream               Category = "GenericUpstreamError"
	CategoryUnknown                       Category = "UnknownError"
)

// Broker diagnostic codes surfaced by the terminal under details.
const (
	codeServerNotFound = "E_SRV_NOT_FOUND"
	codeAuth           = "E_AUTH"
	codeServerTimezone = "E_SERVER_TIMEZONE"
)

type Classified struct {
	Category   Category `json:"error"`
	HTTPStatus int      `json:"-"`
	Message    string   `json:"message"`
}

// Classify resolves any pipeline failure into a stable category with a
// recommended HTTP status. It never fails: anything unrecognizable lands in
// UnknownError/500.
func Classify(err error) Classified {
	if err == nil {
		return Classified{CategoryUnknown, http.StatusInternalServerError, "unknown error"}
	}

	if errors.Is(err, historysvc.ErrInvalidRange) {
		return Classified{CategoryInvalidRange, http.StatusBadRequest, "Invalid history range"}
	}

	var apiErr *terminalsvc.APIError
	if errors.As(err, &apiErr) {
		return classifyAPIError(apiErr)
	}

	// plain transport or wrapping error, no upstream envelope
	if msg := err.Error(); msg != "" {
		return Classified{CategoryGenericUpstream, http.StatusInternalServerError, msg}
	}
	return Classified{CategoryUnknown, http.StatusInternalServerError, "unknown error"}
}

func classifyAPIError(apiErr *terminalsvc.APIError) Classified {
	switch apiErr.Details {
	case codeServerNotFound:
		return Classified{CategoryBrokerServerNotFound, http.StatusNotFound, "Broker server not found"}
	case codeAuth:
		return Classified{CategoryBrokerAuthenticationFailed, http.StatusUnauthorized, "Broker authentication failed"}
	case codeServerTimezone:
		return Classified{CategoryBrokerSettingsDetectionFailed, http.StatusBadRequest, "Failed to detect broker settings"}
	}

	if msg, ok := firstValidationMessage(apiErr.ValidationDetails); ok {
		status := apiErr.Status
		if status == 0 {
			status = http.StatusBadRequest
		}
		return Classified{CategoryUpstreamValidation, status, msg}
	}

	if apiErr.Message != "" {
		status := apiErr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return Classified{CategoryGenericUpstream, status, apiErr.Message}
	}

	return Classified{CategoryUnknown, http.StatusInternalServerError, "unknown error"}
}

func firstValidationMessage(details []terminalsvc.ValidationDetail) (string, bool) {
	for _, d := range details {
		if d.Message != "" {
			return d.Message, true
		}
	}
	return "", false
}
