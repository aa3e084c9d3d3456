package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"intermarket/internal/domain"
	"intermarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fakeIntermarketService struct {
	matrix        domain.CorrelationMatrix
	matrixErr     error
	leaders       []domain.LeaderEntry
	report        *domain.SpilloverReport
	reportErr     error
	network       *domain.MarketNetwork
	networkErr    error
	analysis      *domain.RegimeAnalysis
	analysisErr   error
	commentary    string
	commentaryErr error

	gotSymbols    []string
	gotWindowDays int
	gotSymbol     string
}

func (f *fakeIntermarketService) CalculateCorrelations(ctx context.Context, symbols []string, windowDays int) (domain.CorrelationMatrix, error) {
	f.gotSymbols = symbols
	f.gotWindowDays = windowDays
	return f.matrix, f.matrixErr
}

func (f *fakeIntermarketService) FetchDailySeries(ctx context.Context, symbols []string, windowDays int) []service.SeriesResult {
	return nil
}

func (f *fakeIntermarketService) IdentifyLeaders(matrix domain.CorrelationMatrix) []domain.LeaderEntry {
	return f.leaders
}

func (f *fakeIntermarketService) DetectSpillover(ctx context.Context, symbol string, universe []string) (*domain.SpilloverReport, error) {
	f.gotSymbol = symbol
	f.gotSymbols = universe
	return f.report, f.reportErr
}

func (f *fakeIntermarketService) GetMarketNetwork(ctx context.Context, symbols []string) (*domain.MarketNetwork, error) {
	f.gotSymbols = symbols
	return f.network, f.networkErr
}

func (f *fakeIntermarketService) AnalyzeMarketRegime(ctx context.Context, symbols []string) (*domain.RegimeAnalysis, error) {
	f.gotSymbols = symbols
	return f.analysis, f.analysisErr
}

func (f *fakeIntermarketService) DescribeRegime(ctx context.Context, symbols []string) (string, error) {
	f.gotSymbols = symbols
	return f.commentary, f.commentaryErr
}

func newTestRouter(svc service.IntermarketService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := ApiHandler{IntermarketService: svc}
	return handler.InitializeRouterEngine()
}

func Test_welcome(t *testing.T) {
	router := newTestRouter(&fakeIntermarketService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))

	response := map[string]string{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Equal(t, "", cmp.Diff(
		map[string]string{"message": "welcome to intermarket"},
		response,
	))
}

func Test_calculateCorrelations(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		matrix := domain.NewCorrelationMatrix([]string{"SPY", "QQQ"})
		matrix.Set("SPY", "SPY", 1)
		matrix.Set("QQQ", "QQQ", 1)
		matrix.Set("SPY", "QQQ", 0.9)

		svc := &fakeIntermarketService{matrix: matrix}
		router := newTestRouter(svc)

		body := strings.NewReader(`{"symbols": ["SPY", "QQQ"], "windowDays": 30}`)
		req := httptest.NewRequest(http.MethodPost, "/correlations", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, []string{"SPY", "QQQ"}, svc.gotSymbols)
		require.Equal(t, 30, svc.gotWindowDays)

		response := domain.CorrelationMatrix{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(matrix, response))
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		router := newTestRouter(&fakeIntermarketService{})

		req := httptest.NewRequest(http.MethodPost, "/correlations", strings.NewReader(`{"symbols": `))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		response := map[string]string{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		require.Contains(t, response["error"], "failed to read request body")
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		svc := &fakeIntermarketService{matrixErr: errors.New("provider unavailable")}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/correlations", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)

		response := map[string]string{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		require.Equal(t, "provider unavailable", response["error"])
	})
}

func Test_detectSpillover(t *testing.T) {
	t.Run("missing symbol returns 400", func(t *testing.T) {
		router := newTestRouter(&fakeIntermarketService{})

		req := httptest.NewRequest(http.MethodPost, "/spillover", strings.NewReader(`{"symbols": ["SPY"]}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		response := map[string]string{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		require.Equal(t, "symbol is required", response["error"])
	})

	t.Run("insufficient data returns 422", func(t *testing.T) {
		svc := &fakeIntermarketService{
			reportErr: service.InsufficientDataError{
				Reason: "symbol not present in correlation matrix",
				Symbol: "ZZZ",
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/spillover", strings.NewReader(`{"symbol": "ZZZ"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "ZZZ", svc.gotSymbol)

		response := map[string]string{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		require.Contains(t, response["error"], "insufficient data for ZZZ")
	})

	t.Run("happy path", func(t *testing.T) {
		report := &domain.SpilloverReport{
			Symbol:            "^GSPC",
			SpilloverSources:  map[string]float64{"GC=F": -0.72},
			TotalCorrelations: 3,
			StrongSpillovers:  1,
			AvgCorrelation:    -0.24,
			MaxSpillover:      0.72,
			VolatilitySpillover: domain.VolatilitySpillover{
				VolatilityTransmission: 0,
				Note:                   domain.VolatilitySpilloverNote,
			},
			Timestamp: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		}
		svc := &fakeIntermarketService{report: report}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/spillover", strings.NewReader(`{"symbol": "^GSPC"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		response := domain.SpilloverReport{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(*report, response))
	})
}

func Test_describeRegime(t *testing.T) {
	svc := &fakeIntermarketService{commentary: "markets are moving together"}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/regimeCommentary", strings.NewReader(`{"symbols": ["SPY", "GC=F"]}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"SPY", "GC=F"}, svc.gotSymbols)

	response := map[string]string{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Equal(t, "markets are moving together", response["commentary"])
}
