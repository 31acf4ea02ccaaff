package views

import (
	"time"

	"growthlog/backend/models"
	"growthlog/backend/tracker"
)

// NavItem is one entry of the sidebar navigation.
type NavItem struct {
	Label  string
	Slug   string
	Active bool
}

// Page is the binding handed to the template engine for one render.
type Page struct {
	Title     string
	Nav       []NavItem
	Current   tracker.Page
	Outcome   tracker.Outcome
	Today     string
	Quick     models.QuickLogInput
	Full      models.FullLogInput
	Overview  *Overview
	Resources *ResourceList
}

// NewPage renders state and the outcome of the action that produced it. It
// only reads state.
func NewPage(state tracker.State, outcome tracker.Outcome, now time.Time) Page {
	p := Page{
		Title:   state.Page.String(),
		Current: state.Page,
		Outcome: outcome,
		Today:   now.Format(models.DateLayout),
	}
	for _, np := range tracker.Pages {
		p.Nav = append(p.Nav, NavItem{Label: np.String(), Slug: np.Slug(), Active: np == state.Page})
	}

	switch state.Page {
	case tracker.PageOverview:
		ov := BuildOverview(state)
		p.Overview = &ov
	case tracker.PageResources:
		res := Resources()
		p.Resources = &res
	}
	return p
}

// TemplateName is the engine template used for the page.
func (p Page) TemplateName() string {
	return p.Current.Slug()
}
