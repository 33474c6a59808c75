package page

import (
	"context"
	"time"

	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
	"github.com/jonesrussell/mars-explorer/internal/apod"
	"github.com/jonesrussell/mars-explorer/internal/render"
)

const apodUnavailable = "The picture of the day is unavailable right now."

// NASAPage shows the picture of the day for a date the visitor picks.
type NASAPage struct {
	fetcher PictureFetcher
	now     Clock
}

// NewNASAPage creates the NASA data page. A nil clock means time.Now.
func NewNASAPage(fetcher PictureFetcher, now Clock) *NASAPage {
	if now == nil {
		now = time.Now
	}
	return &NASAPage{fetcher: fetcher, now: now}
}

// Render reads ?date=. A missing, malformed or out-of-range date falls back
// to the same target date the home page uses.
func (p *NASAPage) Render(ctx context.Context, s render.Surface, req Request) error {
	now := p.now()
	date := apod.TargetDate(now)
	if d, ok := apod.ParseDate(req.Query.Get("date"), now); ok {
		date = d.Format(apod.DateLayout)
	}

	s.Header("🛰️ NASA Data")
	s.Text("Browse NASA's Astronomy Picture of the Day archive.")
	s.Form(render.Form{
		Action: "/",
		Submit: "Show picture",
		Fields: []render.Field{
			{Type: render.FieldHidden, Name: "page", Value: string(NASA)},
			{
				Type:  render.FieldDate,
				Name:  "date",
				Label: "Date",
				Value: date,
				Min:   apod.FirstDate.Format(apod.DateLayout),
				Max:   apod.TargetDate(now),
			},
		},
	})

	if p.fetcher == nil {
		s.Info(apodUnavailable)
		return nil
	}

	pic, err := p.fetcher.Fetch(ctx, date)
	if err != nil || pic == nil || pic.URL == "" {
		if err != nil {
			logger.FromContext(ctx).Warn("Picture of the day unavailable",
				logger.String("date", date),
				logger.Error(err),
			)
		}
		s.Info(apodUnavailable)
		return nil
	}

	renderPicture(s, pic)
	if pic.Copyright != "" {
		s.Text("© " + pic.Copyright)
	}
	return nil
}
