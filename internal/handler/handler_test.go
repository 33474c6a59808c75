package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	infralogger "github.com/jonesrussell/mars-explorer/infrastructure/logger"
	"github.com/jonesrussell/mars-explorer/internal/apod"
	"github.com/jonesrussell/mars-explorer/internal/handler"
	"github.com/jonesrussell/mars-explorer/internal/page"
	"github.com/jonesrussell/mars-explorer/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	pic   *apod.Picture
	err   error
	dates []string
}

func (s *stubFetcher) Fetch(_ context.Context, date string) (*apod.Picture, error) {
	s.dates = append(s.dates, date)
	return s.pic, s.err
}

func afternoon() time.Time {
	return time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)
}

func setupPageRouter(t *testing.T, pages map[page.ID]page.Page) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(render.Templates())

	home := page.Func(func(_ context.Context, s render.Surface, _ page.Request) error {
		s.Header("Welcome to Humans to Mars!")
		return nil
	})
	router := page.NewRouter(home, page.NewRegistry(pages), nil)
	h := handler.NewPageHandler(router, infralogger.NewNop())
	r.GET("/", h.Show)
	r.GET("/pages/:page", h.Show)
	return r
}

func get(t *testing.T, r http.Handler, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	r.ServeHTTP(w, req)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return w, doc
}

func TestPageHandler_DefaultsToHome(t *testing.T) {
	r := setupPageRouter(t, nil)

	w, doc := get(t, r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to Humans to Mars!", doc.Find("h1.main-header").Text())
	assert.Equal(t, len(page.Navigation), doc.Find("nav.sidebar li").Length())
	assert.Equal(t, "🏠 Home", doc.Find("nav.sidebar a.active").Text())
}

func TestPageHandler_QueryAndPathSelectPage(t *testing.T) {
	facts := page.Func(func(_ context.Context, s render.Surface, _ page.Request) error {
		s.Header("Facts")
		s.Markdown("- **Moons:** 2")
		return nil
	})
	r := setupPageRouter(t, map[page.ID]page.Page{page.Facts: facts})

	for _, target := range []string{"/?page=facts", "/pages/facts", "/?page=FACTS"} {
		w, doc := get(t, r, target)
		assert.Equal(t, http.StatusOK, w.Code, target)
		assert.Equal(t, "Facts", doc.Find("h1").Text(), target)
		assert.Equal(t, "Moons:", doc.Find(".markdown strong").Text(), target)
		assert.Equal(t, "🔴 Mars Information", doc.Find("nav.sidebar a.active").Text(), target)
	}
}

func TestPageHandler_UnknownPageRendersEmptyBody(t *testing.T) {
	r := setupPageRouter(t, nil)

	w, doc := get(t, r, "/?page=settings")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, doc.Find("main.main").Children().Length())
	assert.Equal(t, len(page.Navigation), doc.Find("nav.sidebar li").Length())
	assert.Zero(t, doc.Find("nav.sidebar a.active").Length())
}

func TestPageHandler_RenderErrorIsUnavailable(t *testing.T) {
	broken := page.Func(func(_ context.Context, s render.Surface, _ page.Request) error {
		s.Text("half drawn")
		return errors.New("template data missing")
	})
	r := setupPageRouter(t, map[page.ID]page.Page{page.Quiz: broken})

	w, doc := get(t, r, "/pages/quiz")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, doc.Find(".notice").Text(), "unavailable")
	assert.NotContains(t, w.Body.String(), "half drawn")
	assert.NotContains(t, w.Body.String(), "template data missing")
}

func TestPageHandler_HomeWithPicture(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(render.Templates())

	var pic apod.Picture
	require.NoError(t, json.Unmarshal([]byte(`{"url":"https://x/y.jpg","title":"T","explanation":"E"}`), &pic))
	fetcher := &stubFetcher{pic: &pic}

	router := page.NewRouter(page.NewHomePage(fetcher, afternoon, ""), page.NewRegistry(nil), nil)
	r.GET("/", handler.NewPageHandler(router, infralogger.NewNop()).Show)

	w, doc := get(t, r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"2024-03-10"}, fetcher.dates)

	srcs := doc.Find("figure.image img").Map(func(_ int, s *goquery.Selection) string {
		return s.AttrOr("src", "")
	})
	assert.Equal(t, []string{page.DefaultHeroImage, "https://x/y.jpg"}, srcs)
	assert.Equal(t, "T", doc.Find("figcaption").Text())
	assert.Equal(t, "About this image", doc.Find("details.expander summary").Last().Text())
}

func setupAPODRouter(t *testing.T, fetcher handler.PictureFetcher) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/apod", handler.NewAPODHandler(fetcher, afternoon).Get)
	return r
}

func TestAPODHandler_Success(t *testing.T) {
	body := `{"url":"https://x/y.jpg","title":"T","explanation":"E","service_version":"v1"}`
	var pic apod.Picture
	require.NoError(t, json.Unmarshal([]byte(body), &pic))
	fetcher := &stubFetcher{pic: &pic}
	r := setupAPODRouter(t, fetcher)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/apod?date=2020-07-30", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, body, w.Body.String())
	assert.Equal(t, []string{"2020-07-30"}, fetcher.dates)
}

func TestAPODHandler_DefaultDate(t *testing.T) {
	fetcher := &stubFetcher{pic: &apod.Picture{URL: "https://x/y.jpg"}}
	r := setupAPODRouter(t, fetcher)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/apod", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"2024-03-10"}, fetcher.dates)
}

func TestAPODHandler_InvalidDate(t *testing.T) {
	fetcher := &stubFetcher{}
	r := setupAPODRouter(t, fetcher)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/apod?date=2999-01-01", http.NoBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fetcher.dates)
}

func TestAPODHandler_Failure(t *testing.T) {
	r := setupAPODRouter(t, &stubFetcher{err: apod.ErrMissingAPIKey})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/apod", http.NoBody))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"NASA_API_KEY not set"}`, w.Body.String())
}
