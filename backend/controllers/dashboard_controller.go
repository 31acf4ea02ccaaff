package controllers

import (
	"strconv"
	"strings"
	"time"

	"growthlog/backend/config"
	"growthlog/backend/middleware"
	"growthlog/backend/models"
	"growthlog/backend/session"
	"growthlog/backend/tracker"
	"growthlog/backend/views"

	"github.com/gofiber/fiber/v2"
)

// DashboardController serves the HTML dashboard: navigation, the sidebar
// quick log and the full log form.
type DashboardController struct {
	Sessions *session.Registry
	Cfg      *config.Config
	Now      func() time.Time
}

func NewDashboardController(sessions *session.Registry, cfg *config.Config) *DashboardController {
	return &DashboardController{Sessions: sessions, Cfg: cfg, Now: time.Now}
}

// Show renders the page picked by ?page=, or the session's current page.
func (dc *DashboardController) Show(c *fiber.Ctx) error {
	id := middleware.SessionID(c)

	var state tracker.State
	if page, ok := tracker.ParsePage(c.Query("page")); ok {
		state, _ = dc.Sessions.Dispatch(id, tracker.Navigate{Page: page})
	} else {
		state = dc.Sessions.Snapshot(id)
	}

	return dc.render(c, views.NewPage(state, tracker.Outcome{}, dc.Now()))
}

// QuickLog handles the sidebar form and re-renders the page it was sent from.
func (dc *DashboardController) QuickLog(c *fiber.Ctx) error {
	input := models.QuickLogInput{
		Date:      c.FormValue("date"),
		Focus:     c.FormValue("focus"),
		Hours:     formHours(c.FormValue("hours")),
		Learnings: c.FormValue("learnings"),
	}
	now := dc.Now()
	var action tracker.Action = tracker.SubmitQuick{Input: input, Now: now}
	if page, ok := tracker.ParsePage(c.FormValue("page")); ok {
		action = tracker.Sequence{tracker.Navigate{Page: page}, action}
	}
	state, outcome := dc.Sessions.Dispatch(middleware.SessionID(c), action)

	page := views.NewPage(state, outcome, now)
	if outcome.Invalid() {
		page.Quick = input
		c.Status(fiber.StatusUnprocessableEntity)
	}
	return dc.render(c, page)
}

// CreateEntry handles the full log form.
func (dc *DashboardController) CreateEntry(c *fiber.Ctx) error {
	input := models.FullLogInput{
		Date:       c.FormValue("date"),
		Focus:      c.FormValue("focus"),
		Hours:      formHours(c.FormValue("hours")),
		Learnings:  c.FormValue("learnings"),
		Challenges: c.FormValue("challenges"),
		Overcame:   c.FormValue("overcame"),
	}
	state, outcome := dc.Sessions.Dispatch(middleware.SessionID(c), tracker.Sequence{
		tracker.Navigate{Page: tracker.PageLogEntry},
		tracker.SubmitFull{Input: input},
	})

	page := views.NewPage(state, outcome, dc.Now())
	if outcome.Invalid() {
		page.Full = input
		c.Status(fiber.StatusUnprocessableEntity)
	}
	return dc.render(c, page)
}

func (dc *DashboardController) render(c *fiber.Ctx, page views.Page) error {
	return c.Render(page.TemplateName(), page, views.Layout)
}

// A blank or unreadable hours field counts as 0 and is rejected by validation.
func formHours(raw string) float64 {
	hours, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return hours
}
