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
	"github.com/jimyag/flowerid/pkg/fid"
	"github.com/jimyag/flowerid/pkg/ginx"
)

// MockIDService 是 ID 生成和解析服务的 mock 实现
type MockIDService struct {
	mock.Mock
}

func (m *MockIDService) Mint(ctx context.Context, stream string, count int) ([]fid.FID, error) {
	args := m.Called(ctx, stream, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fid.FID), args.Error(1)
}

func (m *MockIDService) Inspect(req *entity.InspectRequest) (*entity.InspectResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InspectResponse), args.Error(1)
}

func TestID_Mint(t *testing.T) {
	t.Parallel()

	goldenID, err := fid.New(3020801146913, 37, 160)
	require.NoError(t, err)

	testcases := []struct {
		name         string
		req          *entity.MintRequest
		mockSetup    func(*MockIDService)
		expectStatus int
		check        func(t *testing.T, resp *entity.MintResponse)
	}{
		{
			name: "mint one id on default stream",
			req:  &entity.MintRequest{},
			mockSetup: func(m *MockIDService) {
				m.On("Mint", mock.Anything, "", 0).
					Return([]fid.FID{goldenID}, nil)
			},
			expectStatus: http.StatusOK,
			check: func(t *testing.T, resp *entity.MintResponse) {
				assert.Equal(t, "default", resp.Stream)
				require.Len(t, resp.IDs, 1)
				assert.Equal(t, "V-q48AQglKA", resp.IDs[0].ID)
				assert.Equal(t, uint64(6335079166850929824), resp.IDs[0].Value)
			},
		},
		{
			name: "stream not found",
			req:  &entity.MintRequest{Stream: "missing", Count: 1},
			mockSetup: func(m *MockIDService) {
				m.On("Mint", mock.Anything, "missing", 1).
					Return(nil, apierror.ErrStreamNotFound)
			},
			expectStatus: http.StatusNotFound,
		},
		{
			name: "sequence exhausted",
			req:  &entity.MintRequest{Stream: "orders", Count: 10},
			mockSetup: func(m *MockIDService) {
				m.On("Mint", mock.Anything, "orders", 10).
					Return(nil, apierror.ErrSequenceExhausted)
			},
			expectStatus: http.StatusTooManyRequests,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockService := new(MockIDService)
			tc.mockSetup(mockService)

			idAPI := &ID{
				streamService: mockService,
			}

			reqBody, err := json.Marshal(tc.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/mint", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/api/mint", ginx.Handle(idAPI.Mint))
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectStatus, w.Code)
			if tc.check != nil {
				var resp entity.MintResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				tc.check(t, &resp)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestID_Inspect(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name         string
		req          *entity.InspectRequest
		mockSetup    func(*MockIDService)
		expectStatus int
	}{
		{
			name: "successful inspect",
			req:  &entity.InspectRequest{ID: "V-q48AQglKA"},
			mockSetup: func(m *MockIDService) {
				m.On("Inspect", mock.AnythingOfType("*entity.InspectRequest")).
					Return(&entity.InspectResponse{
						ID:        "V-q48AQglKA",
						Value:     6335079166850929824,
						Timestamp: 3020801146913,
						Sequence:  37,
						Generator: 160,
						Time:      "2112-09-22T23:25:46.913Z",
					}, nil)
			},
			expectStatus: http.StatusOK,
		},
		{
			name: "malformed id",
			req:  &entity.InspectRequest{ID: "not-an-id"},
			mockSetup: func(m *MockIDService) {
				m.On("Inspect", mock.AnythingOfType("*entity.InspectRequest")).
					Return(nil, apierror.ErrMalformedID)
			},
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "missing id",
			req:          &entity.InspectRequest{},
			mockSetup:    func(m *MockIDService) {},
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockService := new(MockIDService)
			tc.mockSetup(mockService)

			idAPI := &ID{
				streamService: mockService,
			}

			reqBody, err := json.Marshal(tc.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/inspect", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/api/inspect", ginx.Handle(idAPI.Inspect))
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
