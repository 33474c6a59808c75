package page

import (
	"context"
	"time"

	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
	"github.com/jonesrussell/mars-explorer/internal/apod"
	"github.com/jonesrussell/mars-explorer/internal/render"
)

// DefaultHeroImage is served from the static directory.
const DefaultHeroImage = "/static/mars.svg"

const noDescription = "No description available."

// PictureFetcher is the part of apod.Client pages use.
type PictureFetcher interface {
	Fetch(ctx context.Context, date string) (*apod.Picture, error)
}

// Clock returns the current local time.
type Clock func() time.Time

// HomePage is the landing page: fixed welcome content followed by the
// picture of the day when one is available.
type HomePage struct {
	fetcher   PictureFetcher
	now       Clock
	heroImage string
}

// NewHomePage creates the home page. A nil clock means time.Now.
func NewHomePage(fetcher PictureFetcher, now Clock, heroImage string) *HomePage {
	if now == nil {
		now = time.Now
	}
	if heroImage == "" {
		heroImage = DefaultHeroImage
	}
	return &HomePage{fetcher: fetcher, now: now, heroImage: heroImage}
}

// Render draws the welcome block, then the picture for the current target
// date. A failed fetch is logged and leaves the picture section out.
func (h *HomePage) Render(ctx context.Context, s render.Surface, _ Request) error {
	s.Header("Welcome to Humans to Mars!")
	s.Image(h.heroImage, "")
	s.SubHeader("Explore Mars through data, images, and interactive experiences.")

	s.Heading("🚀 Latest Updates")
	s.Expander("Recent Mission Highlights", func(inner render.Surface) {
		inner.Bullets(
			"Perseverance exploring Jezero Crater",
			"Ingenuity helicopter historic flights",
			"Evidence of ancient water systems",
		)
	})

	if h.fetcher == nil {
		return nil
	}

	date := apod.TargetDate(h.now())
	pic, err := h.fetcher.Fetch(ctx, date)
	if err != nil {
		logger.FromContext(ctx).Warn("Picture of the day unavailable",
			logger.String("date", date),
			logger.Error(err),
		)
		return nil
	}
	if pic == nil || pic.URL == "" {
		return nil
	}

	renderPicture(s, pic)
	return nil
}

func renderPicture(s render.Surface, pic *apod.Picture) {
	s.Subheading("🌌 NASA Astronomy Picture of the Day")
	s.Image(pic.URL, pic.Title)

	explanation := pic.Explanation
	if !pic.HasExplanation() {
		explanation = noDescription
	}
	s.Expander("About this image", func(inner render.Surface) {
		inner.Text(explanation)
	})
}
