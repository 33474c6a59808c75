package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
	"github.com/jonesrussell/mars-explorer/internal/apod"
)

// PictureFetcher fetches the picture of the day. apod.Client implements it.
type PictureFetcher interface {
	Fetch(ctx context.Context, date string) (*apod.Picture, error)
}

// APODHandler serves the picture of the day as JSON.
type APODHandler struct {
	fetcher PictureFetcher
	now     func() time.Time
}

// NewAPODHandler creates an APODHandler. A nil clock means time.Now.
func NewAPODHandler(fetcher PictureFetcher, now func() time.Time) *APODHandler {
	if now == nil {
		now = time.Now
	}
	return &APODHandler{fetcher: fetcher, now: now}
}

// Get handles GET /api/v1/apod?date=YYYY-MM-DD. Without a date it uses the
// home page's target date. Success returns the upstream record unchanged;
// failure returns {"error": "..."} with 502.
func (h *APODHandler) Get(c *gin.Context) {
	now := h.now()
	date := apod.TargetDate(now)

	if raw := c.Query("date"); raw != "" {
		d, ok := apod.ParseDate(raw, now)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "date must be YYYY-MM-DD between " + apod.FirstDate.Format(apod.DateLayout) + " and " + date,
			})
			return
		}
		date = d.Format(apod.DateLayout)
	}

	pic, err := h.fetcher.Fetch(c.Request.Context(), date)
	if err != nil {
		logger.FromContext(c.Request.Context()).Warn("Picture of the day unavailable",
			logger.String("date", date),
			logger.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pic)
}
