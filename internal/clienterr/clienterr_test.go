package clienterr

import (
	"fmt"
	"testing"

	historysvc "trade_gateway/internal/modules/history/service"
	terminalsvc "trade_gateway/internal/modules/terminal/service"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBrokerCodes(t *testing.T) {
	tests := []struct {
		details      string
		wantCategory Category
		wantStatus   int
	}{
		{"E_SRV_NOT_FOUND", CategoryBrokerServerNotFound, 404},
		{"E_AUTH", CategoryBrokerAuthenticationFailed, 401},
		{"E_SERVER_TIMEZONE", CategoryBrokerSettingsDetectionFailed, 400},
	}

	for _, tt := range tests {
		t.Run(tt.details, func(t *testing.T) {
			got := Classify(&terminalsvc.APIError{Status: 500, Details: tt.details})
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus)
		})
	}
}

func TestClassifyValidationDetails(t *testing.T) {
	got := Classify(&terminalsvc.APIError{
		Status: 422,
		ValidationDetails: []terminalsvc.ValidationDetail{
			{Message: "startTime must precede endTime", Parameter: "startTime"},
		},
	})

	assert.Equal(t, CategoryUpstreamValidation, got.Category)
	assert.Equal(t, 422, got.HTTPStatus, "upstream status passes through")
	assert.Equal(t, "startTime must precede endTime", got.Message)
}

func TestClassifyGenericUpstream(t *testing.T) {
	got := Classify(&terminalsvc.APIError{Status: 503, Message: "boom"})
	assert.Equal(t, CategoryGenericUpstream, got.Category)
	assert.Equal(t, 503, got.HTTPStatus)
	assert.Equal(t, "boom", got.Message)

	got = Classify(&terminalsvc.APIError{Message: "boom"})
	assert.Equal(t, CategoryGenericUpstream, got.Category)
	assert.Equal(t, 500, got.HTTPStatus, "missing upstream status defaults to 500")
}

func TestClassifyUnknown(t *testing.T) {
	got := Classify(&terminalsvc.APIError{})
	assert.Equal(t, CategoryUnknown, got.Category)
	assert.Equal(t, 500, got.HTTPStatus)

	got = Classify(nil)
	assert.Equal(t, CategoryUnknown, got.Category)
	assert.Equal(t, 500, got.HTTPStatus)
}

func TestClassifyInvalidRange(t *testing.T) {
	got := Classify(historysvc.ErrInvalidRange)
	assert.Equal(t, CategoryInvalidRange, got.Category)
	assert.Equal(t, 400, got.HTTPStatus)
	assert.Equal(t, "Invalid history range", got.Message)
}

func TestClassifySeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("list history orders: %w", &terminalsvc.APIError{Details: "E_AUTH"})
	got := Classify(err)
	assert.Equal(t, CategoryBrokerAuthenticationFailed, got.Category)
	assert.Equal(t, 401, got.HTTPStatus)
}

func TestClassifyPlainError(t *testing.T) {
	got := Classify(assert.AnError)
	assert.Equal(t, CategoryGenericUpstream, got.Category)
	assert.Equal(t, 500, got.HTTPStatus)
}
