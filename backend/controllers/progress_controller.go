package controllers

import (
	"time"

	"growthlog/backend/config"
	"growthlog/backend/middleware"
	"growthlog/backend/models"
	"growthlog/backend/session"
	"growthlog/backend/tracker"
	"growthlog/backend/utils"
	"growthlog/backend/views"

	"github.com/gofiber/fiber/v2"
)

// ProgressController exposes the same operations as the dashboard as a JSON
// API.
type ProgressController struct {
	Sessions *session.Registry
	Cfg      *config.Config
	Now      func() time.Time
}

func NewProgressController(sessions *session.Registry, cfg *config.Config) *ProgressController {
	return &ProgressController{Sessions: sessions, Cfg: cfg, Now: time.Now}
}

// GetProgress godoc
// @Summary List progress entries
// @Description Returns the session's entries, most recently logged first
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	state := pc.Sessions.Snapshot(middleware.SessionID(c))
	entries := state.Entries.All()
	return utils.Success(c, fiber.StatusOK, entries, fiber.Map{"count": len(entries)})
}

// GetProgressOverview godoc
// @Summary Get progress overview
// @Description Returns summary metrics, hours per date and the chart series
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /progress/overview [get]
func (pc *ProgressController) GetProgressOverview(c *fiber.Ctx) error {
	state := pc.Sessions.Snapshot(middleware.SessionID(c))
	ov := views.BuildOverview(state)

	data := fiber.Map{
		"empty":   ov.Empty,
		"summary": ov.Summary,
	}
	if ov.Empty {
		data["message"] = views.NoDataMessage
	} else {
		data["metrics"] = ov.Metrics
	}
	return utils.Success(c, fiber.StatusOK, data)
}

// QuickLog godoc
// @Summary Add a quick entry
// @Description Logs focus, hours and one learning point; date defaults to today
// @Tags progress
// @Accept json
// @Produce json
// @Param entry body models.QuickLogInput true "Quick log"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /progress/quick [post]
func (pc *ProgressController) QuickLog(c *fiber.Ctx) error {
	var input models.QuickLogInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	_, outcome := pc.Sessions.Dispatch(middleware.SessionID(c), tracker.SubmitQuick{Input: input, Now: pc.Now()})
	return respond(c, outcome)
}

// CreateEntry godoc
// @Summary Add a full entry
// @Description Logs a session with challenges and how they were overcome
// @Tags progress
// @Accept json
// @Produce json
// @Param entry body models.FullLogInput true "Full log"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /progress [post]
func (pc *ProgressController) CreateEntry(c *fiber.Ctx) error {
	var input models.FullLogInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	_, outcome := pc.Sessions.Dispatch(middleware.SessionID(c), tracker.SubmitFull{Input: input})
	return respond(c, outcome)
}

// GetResources returns the static reading list.
func (pc *ProgressController) GetResources(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, views.Resources())
}

// Health reports liveness and how many sessions are held.
func (pc *ProgressController) Health(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"status":   "ok",
		"sessions": pc.Sessions.Len(),
	})
}

func respond(c *fiber.Ctx, outcome tracker.Outcome) error {
	if outcome.Invalid() {
		return utils.ValidationError(c, outcome.Errors, outcome.Fields)
	}
	return utils.Created(c, outcome.Message, outcome.Entry)
}
