package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sitewise/mis-backend/internal/api/middleware"
	"github.com/sitewise/mis-backend/internal/core/ports"
)

// ActivityHandler handles project-activity CRUD. The owner is always the
// authenticated caller; ownership on single-record operations is enforced
// by the service.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type createActivityRequest struct {
	ActivityName string `json:"activityName" validate:"required"`
	Description  string `json:"description"`
	Status       string `json:"status" validate:"required,oneof=pending completed in-progress cancelled"`
	Project      string `json:"project"`
	Location     string `json:"location"`
}

type updateActivityRequest struct {
	ActivityName *string `json:"activityName" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	Status       *string `json:"status" validate:"omitempty,oneof=pending completed in-progress cancelled"`
	Project      *string `json:"project"`
	Location     *string `json:"location"`
}

// List handles GET /activities — the caller's own activities, newest first.
//
// @Summary      List own project activities
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ProjectActivity
// @Failure      401  {object}  errorResponse
// @Router       /activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)
	activities, err := h.service.ListActivities(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Get handles GET /activities/:id.
//
// @Summary      Get a project activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Activity id"
// @Success      200  {object}  domain.ProjectActivity
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /activities/{id} [get]
func (h *ActivityHandler) Get(c echo.Context) error {
	user := middleware.CurrentUser(c)
	activity, err := h.service.GetActivity(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// Create handles POST /activities.
//
// @Summary      Create a project activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createActivityRequest  true  "Activity details"
// @Success      201   {object}  domain.ProjectActivity
// @Failure      400   {object}  errorResponse
// @Router       /activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	var req createActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	activity, err := h.service.CreateActivity(c.Request().Context(), user.ID, ports.CreateActivityInput{
		ActivityName: req.ActivityName,
		Description:  req.Description,
		Status:       req.Status,
		Project:      req.Project,
		Location:     req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, activity)
}

// Update handles PUT /activities/:id. Absent fields are left unchanged.
//
// @Summary      Update a project activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Activity id"
// @Param        body  body      updateActivityRequest  true  "Fields to update"
// @Success      200   {object}  domain.ProjectActivity
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /activities/{id} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	var req updateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	activity, err := h.service.UpdateActivity(c.Request().Context(), user.ID, c.Param("id"), ports.UpdateActivityInput{
		ActivityName: req.ActivityName,
		Description:  req.Description,
		Status:       req.Status,
		Project:      req.Project,
		Location:     req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// Delete handles DELETE /activities/:id.
//
// @Summary      Delete a project activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Activity id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /activities/{id} [delete]
func (h *ActivityHandler) Delete(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if err := h.service.DeleteActivity(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "activity removed"})
}
