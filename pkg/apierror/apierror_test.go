package apierror_test

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimyag/flowerid/pkg/apierror"
)

func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		testFunc func(*testing.T)
	}{
		{
			name: "Error_Error",
			testFunc: func(t *testing.T) {
				t.Parallel()
				err := apierror.NewError("TestError", "test message")
				assert.Equal(t, "[TestError] test message", err.Error())
			},
		},
		{
			name: "Error_Error_WithRawError",
			testFunc: func(t *testing.T) {
				t.Parallel()
				rawErr := fmt.Errorf("raw error")
				err := apierror.NewErrorWithRaw("TestError", "test message", rawErr)
				assert.Equal(t, "[TestError] test message (RawError: raw error)", err.Error())
			},
		},
		{
			name: "Error_Is_SameCode",
			testFunc: func(t *testing.T) {
				t.Parallel()
				err1 := apierror.NewError("TestError", "message 1")
				err2 := apierror.NewError("TestError", "message 2")
				assert.True(t, errors.Is(err1, err2))
			},
		},
		{
			name: "Error_Is_DifferentCode",
			testFunc: func(t *testing.T) {
				t.Parallel()
				err1 := apierror.NewError("TestError", "message")
				err2 := apierror.NewError("DifferentError", "message")
				assert.False(t, errors.Is(err1, err2))
			},
		},
		{
			name: "Error_Is_Predefined",
			testFunc: func(t *testing.T) {
				t.Parallel()
				err := apierror.WrapError(apierror.ErrStreamNotFound, "stream 'orders' not found", nil)
				assert.True(t, errors.Is(err, apierror.ErrStreamNotFound))
				assert.False(t, errors.Is(err, apierror.ErrStreamDuplicate))
			},
		},
		{
			name: "Error_Unwrap",
			testFunc: func(t *testing.T) {
				t.Parallel()
				rawErr := fmt.Errorf("raw error")
				err := apierror.NewErrorWithRaw("TestError", "test message", rawErr)
				assert.Equal(t, rawErr, errors.Unwrap(err))
			},
		},
		{
			name: "WrapError_KeepsCodeAndStatus",
			testFunc: func(t *testing.T) {
				t.Parallel()
				rawErr := fmt.Errorf("db closed")
				err := apierror.WrapError(apierror.ErrInternalError, "create stream", rawErr)
				assert.Equal(t, apierror.ErrInternalError.Code, err.Code)
				assert.Equal(t, apierror.ErrInternalError.HTTPStatus, err.HTTPStatus)
				assert.Equal(t, "create stream", err.Message)
				assert.Equal(t, rawErr, errors.Unwrap(err))
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, tt.testFunc)
	}
}

func TestPredefinedStatusCodes(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		err        *apierror.Error
		wantStatus int
	}{
		{apierror.ErrInvalidParameter, http.StatusBadRequest},
		{apierror.ErrMalformedID, http.StatusBadRequest},
		{apierror.ErrStreamNotFound, http.StatusNotFound},
		{apierror.ErrStreamDuplicate, http.StatusConflict},
		{apierror.ErrGeneratorRange, http.StatusBadRequest},
		{apierror.ErrSequenceExhausted, http.StatusTooManyRequests},
		{apierror.ErrClockSkewed, http.StatusServiceUnavailable},
		{apierror.ErrTimestampExhausted, http.StatusInternalServerError},
		{apierror.ErrInternalError, http.StatusInternalServerError},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.wantStatus, tc.err.HTTPStatus, tc.err.Code)
	}
}

func TestErrorResponse(t *testing.T) {
	t.Parallel()

	resp := apierror.NewErrorResponse("req-1", apierror.ErrStreamNotFound)
	resp.AddError(apierror.ErrInvalidParameter)

	assert.Len(t, resp.Errors, 2)
	assert.Contains(t, resp.Error(), "RequestID: req-1")
	assert.Contains(t, resp.Error(), "InvalidStream.NotFound")

	// JSON 序列化不包含 HTTPStatus 和 RawError
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"requestID":"req-1"`)
	assert.Contains(t, string(data), `"code":"InvalidStream.NotFound"`)
	assert.NotContains(t, string(data), "HTTPStatus")

	// XML 序列化使用 AWS 风格的结构
	xmlData, err := resp.ToXML()
	require.NoError(t, err)
	var decoded apierror.ErrorResponse
	require.NoError(t, xml.Unmarshal(xmlData, &decoded))
	assert.Equal(t, "req-1", decoded.RequestID)
	assert.Len(t, decoded.Errors, 2)
	assert.Equal(t, "InvalidStream.NotFound", decoded.Errors[0].Code)
}
