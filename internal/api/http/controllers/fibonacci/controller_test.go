package fibonacci

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fibCalc/internal/domain"
	"fibCalc/internal/mocks"
	"fibCalc/internal/ports"
)

func newRouter(uc ports.IFibonacciUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	New(uc, log).RegisterRoutes(r)
	return r
}

func do(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCalculateByPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIFibonacciUseCase(ctrl)
	uc.EXPECT().Calculate(gomock.Any(), 30, "memo").Return(&domain.Calculation{
		Position: 30, Strategy: "memo", Value: 1346269, CacheHit: true, Duration: 2 * time.Millisecond,
	}, nil)

	w := do(newRouter(uc), http.MethodGet, "/api/v1/fibonacci/memo/30", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CalculationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(1346269), resp.Value)
	assert.True(t, resp.CacheHit)
	assert.Equal(t, 2.0, resp.DurationMs)
}

func TestCalculateByPath_BadPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := do(newRouter(mocks.NewMockIFibonacciUseCase(ctrl)), http.MethodGet, "/api/v1/fibonacci/memo/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "отрицательная позиция", err: &domain.InvalidPositionError{Position: -1}, want: http.StatusBadRequest},
		{name: "неизвестная стратегия", err: fmt.Errorf("%w: binet", domain.ErrUnknownStrategy), want: http.StatusBadRequest},
		{name: "слишком большая позиция", err: fmt.Errorf("%w: 93 > 92", domain.ErrPositionTooLarge), want: http.StatusBadRequest},
		{name: "ошибка БД", err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIFibonacciUseCase(ctrl)
			uc.EXPECT().Calculate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := do(newRouter(uc), http.MethodGet, "/api/v1/fibonacci/plain/-1", nil)

			assert.Equal(t, tt.want, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.err.Error(), resp.Message)
		})
	}
}

func TestCalculatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIFibonacciUseCase(ctrl)
	// позиция 0 допустима, стратегия по умолчанию memo
	uc.EXPECT().Calculate(gomock.Any(), 0, "memo").Return(&domain.Calculation{Position: 0, Strategy: "memo", Value: 1}, nil)
	uc.EXPECT().Calculate(gomock.Any(), 9, "plain").Return(&domain.Calculation{Position: 9, Strategy: "plain", Value: 55}, nil)

	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/fibonacci", []byte(`{"position":0}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"position":0,"strategy":"memo","value":1,"cache_hit":false,"duration_ms":0}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/v1/fibonacci", []byte(`{"position":9,"strategy":"plain"}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"position":9,"strategy":"plain","value":55,"cache_hit":false,"duration_ms":0}`, w.Body.String())
}

func TestCalculatePost_BadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newRouter(mocks.NewMockIFibonacciUseCase(ctrl))

	for _, body := range []string{`{}`, `{"position":"x"}`, `not json`} {
		w := do(r, http.MethodPost, "/api/v1/fibonacci", []byte(body))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestCompare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIFibonacciUseCase(ctrl)
	uc.EXPECT().Compare(gomock.Any(), 30).Return(&domain.Comparison{
		Position:      30,
		PlainValue:    1346269,
		MemoValue:     1346269,
		PlainDuration: 100 * time.Millisecond,
		MemoDuration:  time.Millisecond,
	}, nil)

	w := do(newRouter(uc), http.MethodGet, "/api/v1/compare/30", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Equal)
	assert.Equal(t, uint64(1346269), resp.Value)
	assert.Equal(t, 100.0, resp.Speedup)
}

func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	uc := mocks.NewMockIFibonacciUseCase(ctrl)
	uc.EXPECT().History(gomock.Any()).Return([]domain.Calculation{
		{ID: 1, Position: 10, Strategy: "memo", Value: 89, Timestamp: ts},
	}, nil)

	w := do(newRouter(uc), http.MethodGet, "/api/v1/history", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, uint64(89), resp.Items[0].Value)
	assert.True(t, ts.Equal(resp.Items[0].Timestamp))
}

func TestHistory_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIFibonacciUseCase(ctrl)
	uc.EXPECT().History(gomock.Any()).Return(nil, errors.New("db down"))

	w := do(newRouter(uc), http.MethodGet, "/api/v1/history", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIFibonacciUseCase(ctrl)
	uc.EXPECT().CacheStats(gomock.Any()).Return(ports.CacheStats{Entries: 31, MaxPosition: 30})

	w := do(newRouter(uc), http.MethodGet, "/api/v1/cache", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"entries":31,"max_position":30}`, w.Body.String())
}
