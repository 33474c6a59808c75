// Package handler contains the HTTP handlers for the dashboard.
package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	infragin "github.com/jonesrussell/mars-explorer/infrastructure/gin"
	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
	"github.com/jonesrussell/mars-explorer/internal/page"
	"github.com/jonesrussell/mars-explorer/internal/render"
)

const (
	// DefaultAppTitle is the browser tab title.
	DefaultAppTitle = "Mars Explorer"

	pageUnavailableNotice = "This page is unavailable right now. Please try again later."
)

// PageHandler renders dashboard pages into the layout template.
type PageHandler struct {
	router *page.Router
	log    logger.Logger
	title  string
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(router *page.Router, log logger.Logger) *PageHandler {
	return &PageHandler{router: router, log: log, title: DefaultAppTitle}
}

// Show handles GET / and GET /pages/:page. The page comes from the path
// parameter, then ?page=, then defaults to home. Unknown pages render the
// layout with an empty body.
func (h *PageHandler) Show(c *gin.Context) {
	id := resolvePageID(c)

	doc := render.NewDocument()
	req := page.Request{Query: c.Request.URL.Query()}

	err := h.router.Dispatch(c.Request.Context(), id, doc, req)
	if err != nil {
		h.log.Error("Page render failed",
			logger.String("page", string(id)),
			logger.String(infragin.RequestIDKey, c.GetString(infragin.RequestIDKey)),
			logger.Error(err),
		)
		c.HTML(http.StatusServiceUnavailable, render.LayoutTemplate, render.View{
			AppTitle: h.title,
			Nav:      page.NavItems(id),
			Notice:   pageUnavailableNotice,
		})
		return
	}

	c.HTML(http.StatusOK, render.LayoutTemplate, render.View{
		AppTitle: h.title,
		Nav:      page.NavItems(id),
		Blocks:   doc.Blocks(),
	})
}

func resolvePageID(c *gin.Context) page.ID {
	raw := c.Param("page")
	if raw == "" {
		raw = c.Query("page")
	}
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return page.Home
	}
	return page.ID(raw)
}
