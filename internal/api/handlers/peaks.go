package handlers

import (
	"errors"
	"net/http"

	"energy-peaks/internal/api/models"
	"energy-peaks/internal/model"
	"energy-peaks/internal/peaks"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PeakHandler serves peak usage queries from a loaded store
type PeakHandler struct {
	store  *peaks.Store
	logger *zap.Logger
}

// NewPeakHandler creates a new peak handler. A nil store makes every query
// fail with DATA_UNAVAILABLE.
func NewPeakHandler(store *peaks.Store, logger *zap.Logger) *PeakHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PeakHandler{store: store, logger: logger}
}

// GetPeaks handles GET /peaks
func (h *PeakHandler) GetPeaks(c *gin.Context) {
	var req models.PeaksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_PARAM",
				Message: "market_name query parameter is required",
			},
		})
		return
	}

	results, err := h.store.TopPeaks(req.MarketName)
	if err != nil {
		h.writeQueryError(c, req.MarketName, err)
		return
	}

	resp := make([]models.PeakResponse, len(results))
	for i, r := range results {
		resp[i] = models.PeakResponse{
			UsageKW:    r.UsageKW,
			MarketName: string(r.MarketName),
			Timestamp:  r.Timestamp,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ListMarkets handles GET /markets
func (h *PeakHandler) ListMarkets(c *gin.Context) {
	summaries, err := h.store.Markets()
	if err != nil {
		h.writeQueryError(c, "", err)
		return
	}

	markets := make([]models.MarketInfo, len(summaries))
	for i, s := range summaries {
		markets[i] = models.MarketInfo{
			Name:        string(s.Name),
			ID:          s.ID,
			RecordCount: s.RecordCount,
		}
	}
	c.JSON(http.StatusOK, models.MarketsResponse{Markets: markets, Count: len(markets)})
}

func (h *PeakHandler) writeQueryError(c *gin.Context, market string, err error) {
	_ = c.Error(err)

	var marketErr *peaks.MarketError
	switch {
	case errors.Is(err, peaks.ErrDataUnavailable):
		h.logger.Error("peak query without loaded data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_UNAVAILABLE",
				Message: err.Error(),
			},
		})
	case errors.As(err, &marketErr) && marketErr.Reason == peaks.ReasonNotFound:
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MARKET_NOT_FOUND",
				Message: err.Error(),
				Details: map[string]interface{}{"market_name": market},
			},
		})
	case errors.Is(err, peaks.ErrUnknownMarket):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_MARKET",
				Message: err.Error(),
				Details: map[string]interface{}{
					"market_name":       market,
					"supported_markets": model.AllMarkets(),
				},
			},
		})
	default:
		h.logger.Error("peak query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "An unexpected error occurred",
			},
		})
	}
}
