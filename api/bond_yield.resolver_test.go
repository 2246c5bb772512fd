package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bondrisk/internal/calculator"
	"bondrisk/internal/db/models/postgres/public/model"
	"bondrisk/internal/domain"
	"bondrisk/internal/service"
	"bondrisk/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubRiskService struct {
	yield       float64
	yieldErr    error
	duration    *service.BondDurationResult
	durationErr error
	asOfSeen    time.Time
}

func (s *stubRiskService) LoadBonds(ctx context.Context, bonds []domain.Bond) ([]model.Bond, error) {
	return nil, nil
}

func (s *stubRiskService) CreatePortfolio(ctx context.Context, name string, bondIDs []uuid.UUID) (*model.Portfolio, error) {
	return nil, nil
}

func (s *stubRiskService) BondYield(ctx context.Context, bondID uuid.UUID, asOf time.Time) (float64, error) {
	s.asOfSeen = asOf
	return s.yield, s.yieldErr
}

func (s *stubRiskService) BondDuration(ctx context.Context, bondID uuid.UUID, asOf time.Time) (*service.BondDurationResult, error) {
	return s.duration, s.durationErr
}

func (s *stubRiskService) PortfolioDuration(ctx context.Context, portfolioID uuid.UUID, asOf time.Time) (*service.PortfolioDurationResult, error) {
	return nil, nil
}

func performRequest(t *testing.T, svc service.RiskService, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := ApiHandler{RiskService: svc}
	router := handler.Router()

	w := httptest.NewRecorder()
	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	return w
}

func Test_bondYield(t *testing.T) {
	bondID := uuid.New()

	t.Run("happy path with explicit asOf", func(t *testing.T) {
		svc := &stubRiskService{yield: 0.0612}

		w := performRequest(t, svc, "/bonds/"+bondID.String()+"/ytm?asOf=2025-01-01")

		require.Equal(t, 200, w.Code)
		require.Equal(t, util.NewDate(2025, 1, 1), svc.asOfSeen)

		var response bondYieldResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.InDelta(t, 0.0612, response.Yield, 1e-12)
	})

	t.Run("unknown bond returns 404", func(t *testing.T) {
		svc := &stubRiskService{yieldErr: service.ErrNotFound}

		w := performRequest(t, svc, "/bonds/"+bondID.String()+"/ytm")

		require.Equal(t, 404, w.Code)
	})

	t.Run("matured bond returns 400", func(t *testing.T) {
		svc := &stubRiskService{yieldErr: calculator.BondMaturedError{ISIN: "US0000000001"}}

		w := performRequest(t, svc, "/bonds/"+bondID.String()+"/ytm")

		require.Equal(t, 400, w.Code)
	})

	t.Run("malformed bond id returns 400", func(t *testing.T) {
		w := performRequest(t, &stubRiskService{}, "/bonds/not-a-uuid/ytm")

		require.Equal(t, 400, w.Code)
	})

	t.Run("malformed asOf returns 400", func(t *testing.T) {
		w := performRequest(t, &stubRiskService{}, "/bonds/"+bondID.String()+"/ytm?asOf=january")

		require.Equal(t, 400, w.Code)
	})
}

func Test_bondDuration(t *testing.T) {
	bondID := uuid.New()

	t.Run("returns both duration measures", func(t *testing.T) {
		svc := &stubRiskService{duration: &service.BondDurationResult{
			MacaulayDuration: 4.41,
			ModifiedDuration: 4.28,
		}}

		w := performRequest(t, svc, "/bonds/"+bondID.String()+"/duration?asOf=2025-01-01")

		require.Equal(t, 200, w.Code)

		var response bondDurationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(
			t,
			"",
			cmp.Diff(
				bondDurationResponse{
					BondID:           bondID.String(),
					MacaulayDuration: 4.41,
					ModifiedDuration: 4.28,
				},
				response,
			),
		)
	})

	t.Run("empty schedule returns 400", func(t *testing.T) {
		svc := &stubRiskService{durationErr: calculator.InvalidScheduleError{ISIN: "US0000000001"}}

		w := performRequest(t, svc, "/bonds/"+bondID.String()+"/duration")

		require.Equal(t, 400, w.Code)
	})
}
