package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-volink-backend/internal/delivery/http/middleware"
	"go-volink-backend/internal/delivery/http/response"
	"go-volink-backend/internal/domain"
	"go-volink-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VolunteerHandler struct {
	volunteerUC domain.VolunteerUsecase
}

func NewVolunteerHandler(protected *gin.RouterGroup, volunteerUC domain.VolunteerUsecase) {
	handler := &VolunteerHandler{volunteerUC: volunteerUC}

	volunteers := protected.Group("/volunteers")
	{
		volunteers.GET("/profile", handler.GetProfile)
		volunteers.PUT("/profile", handler.UpdateProfile)
		volunteers.GET("/dashboard", handler.GetDashboard)
		volunteers.GET("/schedule", handler.GetSchedule)
		volunteers.GET("/recommendations", handler.GetRecommendations)
		volunteers.POST("/participation", handler.LogHours)
		volunteers.GET("/participation", handler.ListParticipation)
	}
}

// GetProfile godoc
// @Summary      Get volunteer profile
// @Description  Returns the caller's profile, creating an empty one on first access
// @Tags         volunteers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.VolunteerProfile}
// @Failure      401  {object}  response.Response
// @Router       /volunteers/profile [get]
// @Security     BearerAuth
func (h *VolunteerHandler) GetProfile(c *gin.Context) {
	profile, err := h.volunteerUC.GetOrCreateProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfileRequest is the profile update payload. Skills and
// interests are free text; availability maps weekday to a time window.
type UpdateProfileRequest struct {
	Skills          string            `json:"skills"`
	Interests       string            `json:"interests"`
	Availability    map[string]string `json:"availability"`
	MaxHoursPerWeek int               `json:"max_hours_per_week" binding:"gte=0"`
}

// UpdateProfile godoc
// @Summary      Update volunteer profile
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Profile data"
// @Success      200  {object}  response.Response{data=domain.VolunteerProfile}
// @Failure      400  {object}  response.Response
// @Router       /volunteers/profile [put]
// @Security     BearerAuth
func (h *VolunteerHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.VolunteerProfile{
		UserID:          middleware.CurrentUserID(c),
		Skills:          req.Skills,
		Interests:       req.Interests,
		Availability:    req.Availability,
		MaxHoursPerWeek: req.MaxHoursPerWeek,
	}
	if err := h.volunteerUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// GetDashboard godoc
// @Summary      Volunteer dashboard
// @Description  Profile, total logged hours, per-opportunity hours, recent records and active applications
// @Tags         volunteers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Dashboard}
// @Router       /volunteers/dashboard [get]
// @Security     BearerAuth
func (h *VolunteerHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.volunteerUC.GetDashboard(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard retrieved", dashboard)
}

// GetSchedule godoc
// @Summary      Volunteer schedule
// @Description  Accepted commitments with weekly hours against the caller's budget
// @Tags         volunteers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Schedule}
// @Router       /volunteers/schedule [get]
// @Security     BearerAuth
func (h *VolunteerHandler) GetSchedule(c *gin.Context) {
	schedule, err := h.volunteerUC.GetSchedule(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Schedule retrieved", schedule)
}

// GetRecommendations godoc
// @Summary      Recommended opportunities
// @Description  Open opportunities ranked by compatibility with the caller's profile, capacity-checked
// @Tags         volunteers
// @Produce      json
// @Param        limit  query     int  false  "Maximum results"
// @Success      200  {object}  response.Response{data=[]domain.Recommendation}
// @Router       /volunteers/recommendations [get]
// @Security     BearerAuth
func (h *VolunteerHandler) GetRecommendations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	recommendations, err := h.volunteerUC.GetRecommendations(c.Request.Context(), middleware.CurrentUserID(c), limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommendations retrieved", recommendations)
}

// LogHoursRequest records participation against an accepted opportunity.
type LogHoursRequest struct {
	OpportunityID int64     `json:"opportunity_id" binding:"required"`
	HoursLogged   float64   `json:"hours_logged" binding:"required,gt=0"`
	Date          time.Time `json:"date" binding:"required"`
	Notes         *string   `json:"notes"`
}

// LogHours godoc
// @Summary      Log volunteer hours
// @Description  Record hours against an opportunity the caller was accepted to
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Param        body  body      LogHoursRequest  true  "Participation record"
// @Success      201  {object}  response.Response{data=domain.ParticipationRecord}
// @Failure      400  {object}  response.Response
// @Router       /volunteers/participation [post]
// @Security     BearerAuth
func (h *VolunteerHandler) LogHours(c *gin.Context) {
	if err := requireVolunteer(c); err != nil {
		c.Error(err)
		return
	}

	var req LogHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	rec := &domain.ParticipationRecord{
		VolunteerID:   middleware.CurrentUserID(c),
		OpportunityID: req.OpportunityID,
		HoursLogged:   req.HoursLogged,
		Date:          req.Date,
		Notes:         req.Notes,
	}
	if err := h.volunteerUC.LogHours(c.Request.Context(), rec); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Hours logged", rec)
}

// ParticipationResponse pairs the history with its running total.
type ParticipationResponse struct {
	Records    []domain.ParticipationRecord `json:"records"`
	TotalHours float64                      `json:"total_hours"`
}

// ListParticipation godoc
// @Summary      Participation history
// @Tags         volunteers
// @Produce      json
// @Success      200  {object}  response.Response{data=ParticipationResponse}
// @Router       /volunteers/participation [get]
// @Security     BearerAuth
func (h *VolunteerHandler) ListParticipation(c *gin.Context) {
	records, total, err := h.volunteerUC.ListParticipation(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Participation retrieved", ParticipationResponse{
		Records:    records,
		TotalHours: total,
	})
}
