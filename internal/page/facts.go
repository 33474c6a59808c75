package page

import (
	"context"

	"github.com/jonesrussell/mars-explorer/internal/render"
)

type factSection struct {
	title string
	body  string
}

var marsOverview = `Mars is the fourth planet from the Sun and the second smallest in the solar system.

- **Diameter:** 6,779 km, about half of Earth's
- **Day length (sol):** 24 hours 37 minutes
- **Year length:** 687 Earth days
- **Moons:** Phobos and Deimos
- **Surface gravity:** 3.71 m/s², about 38% of Earth's`

var marsSections = []factSection{
	{
		title: "Atmosphere",
		body: `The atmosphere is about 95% carbon dioxide with traces of nitrogen and argon.
Surface pressure is less than 1% of Earth's, so liquid water cannot last on the surface.`,
	},
	{
		title: "Geology",
		body: `Mars hosts **Olympus Mons**, the tallest volcano in the solar system at roughly 22 km,
and **Valles Marineris**, a canyon system over 4,000 km long.`,
	},
	{
		title: "Water",
		body: `Polar ice caps hold water ice under seasonal layers of frozen carbon dioxide.
Dry river valleys, deltas and minerals that only form in water point to a wetter past.`,
	},
	{
		title: "Exploration",
		body: `- **Viking 1 and 2** (1976): first successful landers
- **Curiosity** (2012): exploring Gale Crater
- **Perseverance** (2021): caching samples in Jezero Crater
- **Ingenuity** (2021): first powered flight on another planet`,
	},
}

// FactsPage renders static Mars facts.
type FactsPage struct{}

// NewFactsPage creates the facts page.
func NewFactsPage() *FactsPage {
	return &FactsPage{}
}

// Render draws the Mars overview and one expander per fact section.
func (FactsPage) Render(_ context.Context, s render.Surface, _ Request) error {
	s.Header("🔴 Mars Information")
	s.Markdown(marsOverview)

	for _, section := range marsSections {
		body := section.body
		s.Expander(section.title, func(inner render.Surface) {
			inner.Markdown(body)
		})
	}
	return nil
}
