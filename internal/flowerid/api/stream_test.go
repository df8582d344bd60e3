package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jimyag/flowerid/internal/flowerid/entity"
	"github.com/jimyag/flowerid/pkg/apierror"
	"github.com/jimyag/flowerid/pkg/ginx"
)

// MockStreamService 是 StreamService 的 mock 实现
type MockStreamService struct {
	mock.Mock
}

func (m *MockStreamService) CreateStream(ctx context.Context, req *entity.CreateStreamRequest) (*entity.CreateStreamResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CreateStreamResponse), args.Error(1)
}

func (m *MockStreamService) DeleteStream(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockStreamService) DescribeStreams(ctx context.Context, req *entity.DescribeStreamsRequest) ([]entity.Stream, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Stream), args.Error(1)
}

func uint16Ptr(v uint16) *uint16 { return &v }

func TestStream_CreateStream(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name         string
		req          *entity.CreateStreamRequest
		mockSetup    func(*MockStreamService)
		expectStatus int
	}{
		{
			name: "successful create",
			req: &entity.CreateStreamRequest{
				Name:      "orders",
				Generator: uint16Ptr(7),
			},
			mockSetup: func(m *MockStreamService) {
				m.On("CreateStream", mock.Anything, mock.AnythingOfType("*entity.CreateStreamRequest")).
					Return(&entity.CreateStreamResponse{
						Stream: &entity.Stream{
							Name:         "orders",
							Generator:    7,
							Unit:         "millisecond",
							EpochOffset:  -1483228800,
							WaitSequence: true,
							CreatedAt:    "2026-01-01T00:00:00Z",
						},
					}, nil)
			},
			expectStatus: http.StatusOK,
		},
		{
			name: "duplicate stream",
			req: &entity.CreateStreamRequest{
				Name:      "orders",
				Generator: uint16Ptr(7),
			},
			mockSetup: func(m *MockStreamService) {
				m.On("CreateStream", mock.Anything, mock.AnythingOfType("*entity.CreateStreamRequest")).
					Return(nil, apierror.ErrStreamDuplicate)
			},
			expectStatus: http.StatusConflict,
		},
		{
			name: "missing generator",
			req: &entity.CreateStreamRequest{
				Name: "orders",
			},
			mockSetup:    func(m *MockStreamService) {},
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockService := new(MockStreamService)
			tc.mockSetup(mockService)

			streamAPI := &Stream{
				streamService: mockService,
			}

			reqBody, err := json.Marshal(tc.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/create-stream", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/api/create-stream", ginx.Handle(streamAPI.CreateStream))
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestStream_DeleteStream(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name         string
		req          *entity.DeleteStreamRequest
		mockSetup    func(*MockStreamService)
		expectStatus int
	}{
		{
			name: "successful delete",
			req:  &entity.DeleteStreamRequest{Name: "orders"},
			mockSetup: func(m *MockStreamService) {
				m.On("DeleteStream", mock.Anything, "orders").Return(nil)
			},
			expectStatus: http.StatusOK,
		},
		{
			name: "stream not found",
			req:  &entity.DeleteStreamRequest{Name: "missing"},
			mockSetup: func(m *MockStreamService) {
				m.On("DeleteStream", mock.Anything, "missing").Return(apierror.ErrStreamNotFound)
			},
			expectStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockService := new(MockStreamService)
			tc.mockSetup(mockService)

			streamAPI := &Stream{
				streamService: mockService,
			}

			reqBody, err := json.Marshal(tc.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/delete-stream", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/api/delete-stream", ginx.Handle(streamAPI.DeleteStream))
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectStatus, w.Code)
			if tc.expectStatus == http.StatusOK {
				var resp entity.DeleteStreamResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.True(t, resp.Return)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestStream_DescribeStreams(t *testing.T) {
	t.Parallel()

	mockService := new(MockStreamService)
	mockService.On("DescribeStreams", mock.Anything, mock.AnythingOfType("*entity.DescribeStreamsRequest")).
		Return([]entity.Stream{
			{Name: "alpha", Generator: 1, Unit: "millisecond"},
			{Name: "beta", Generator: 2, Unit: "second"},
		}, nil)

	streamAPI := &Stream{
		streamService: mockService,
	}

	req := httptest.NewRequest(http.MethodPost, "/api/describe-streams", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/describe-streams", ginx.Handle(streamAPI.DescribeStreams))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.DescribeStreamsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Streams, 2)
	assert.Equal(t, "alpha", resp.Streams[0].Name)
	mockService.AssertExpectations(t)
}
