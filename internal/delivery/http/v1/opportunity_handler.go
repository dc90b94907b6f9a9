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

type OpportunityHandler struct {
	opportunityUC domain.OpportunityUsecase
}

func NewOpportunityHandler(public *gin.RouterGroup, protected *gin.RouterGroup, opportunityUC domain.OpportunityUsecase) {
	handler := &OpportunityHandler{opportunityUC: opportunityUC}

	// Public browsing
	opportunities := public.Group("/opportunities")
	{
		opportunities.GET("", handler.Browse)
		opportunities.GET("/:id", handler.GetDetails)
	}

	// Organisation management
	owned := protected.Group("/organisations/opportunities")
	{
		owned.GET("", handler.ListMine)
		owned.POST("", handler.Create)
		owned.PUT("/:id", handler.Update)
		owned.DELETE("/:id", handler.Delete)
	}
}

// Browse godoc
// @Summary      Browse opportunities
// @Description  List open opportunities, optionally filtered by category, location, remote flag and free-text search
// @Tags         opportunities
// @Produce      json
// @Param        category  query     string  false  "Category"
// @Param        location  query     string  false  "Location substring"
// @Param        remote    query     bool    false  "Remote only / on-site only"
// @Param        search    query     string  false  "Free-text search over title and description"
// @Success      200  {object}  response.Response{data=[]domain.Opportunity}
// @Router       /opportunities [get]
func (h *OpportunityHandler) Browse(c *gin.Context) {
	filter := domain.OpportunityFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
	}
	if remoteStr := c.Query("remote"); remoteStr != "" {
		remote, err := strconv.ParseBool(remoteStr)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid remote flag"))
			return
		}
		filter.IsRemote = &remote
	}

	opportunities, err := h.opportunityUC.Browse(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Opportunities retrieved", opportunities)
}

// GetDetails godoc
// @Summary      Opportunity details
// @Tags         opportunities
// @Produce      json
// @Param        id  path      int  true  "Opportunity ID"
// @Success      200  {object}  response.Response{data=domain.Opportunity}
// @Failure      404  {object}  response.Response
// @Router       /opportunities/{id} [get]
func (h *OpportunityHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid opportunity ID"))
		return
	}

	opp, err := h.opportunityUC.GetDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Opportunity retrieved", opp)
}

// OpportunityRequest is the create/update payload.
type OpportunityRequest struct {
	OrganisationID  int64     `json:"organisation_id"`
	Title           string    `json:"title" binding:"required,max=200"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Category        string    `json:"category" binding:"required"`
	RequiredSkills  string    `json:"required_skills"`
	MinHoursPerWeek int       `json:"min_hours_per_week" binding:"gte=0"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	IsRemote        bool      `json:"is_remote"`
	Status          string    `json:"status" binding:"omitempty,oneof=OPEN CLOSED"`
}

func (r *OpportunityRequest) toDomain() *domain.Opportunity {
	return &domain.Opportunity{
		OrganisationID:  r.OrganisationID,
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		Category:        r.Category,
		RequiredSkills:  r.RequiredSkills,
		MinHoursPerWeek: r.MinHoursPerWeek,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IsRemote:        r.IsRemote,
		Status:          r.Status,
	}
}

// Create godoc
// @Summary      Post an opportunity
// @Description  Create a new opportunity for one of the caller's organisations (org_admin only)
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        body  body      OpportunityRequest  true  "Opportunity data"
// @Success      201  {object}  response.Response{data=domain.Opportunity}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /organisations/opportunities [post]
// @Security     BearerAuth
func (h *OpportunityHandler) Create(c *gin.Context) {
	if err := requireOrgAdmin(c); err != nil {
		c.Error(err)
		return
	}

	var req OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	opp := req.toDomain()
	if err := h.opportunityUC.Create(c.Request.Context(), middleware.CurrentUserID(c), opp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Opportunity created", opp)
}

// Update godoc
// @Summary      Update an opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Opportunity ID"
// @Param        body  body      OpportunityRequest  true  "Opportunity data"
// @Success      200  {object}  response.Response{data=domain.Opportunity}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /organisations/opportunities/{id} [put]
// @Security     BearerAuth
func (h *OpportunityHandler) Update(c *gin.Context) {
	if err := requireOrgAdmin(c); err != nil {
		c.Error(err)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid opportunity ID"))
		return
	}

	var req OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	opp := req.toDomain()
	opp.ID = id
	if err := h.opportunityUC.Update(c.Request.Context(), middleware.CurrentUserID(c), opp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Opportunity updated", opp)
}

// Delete godoc
// @Summary      Delete an opportunity
// @Tags         opportunities
// @Produce      json
// @Param        id  path      int  true  "Opportunity ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /organisations/opportunities/{id} [delete]
// @Security     BearerAuth
func (h *OpportunityHandler) Delete(c *gin.Context) {
	if err := requireOrgAdmin(c); err != nil {
		c.Error(err)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid opportunity ID"))
		return
	}

	if err := h.opportunityUC.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Opportunity deleted", nil)
}

// ListMine godoc
// @Summary      List my organisation's opportunities
// @Description  All opportunities across the caller's organisations, any status
// @Tags         opportunities
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Opportunity}
// @Failure      404  {object}  response.Response
// @Router       /organisations/opportunities [get]
// @Security     BearerAuth
func (h *OpportunityHandler) ListMine(c *gin.Context) {
	if err := requireOrgAdmin(c); err != nil {
		c.Error(err)
		return
	}

	opportunities, err := h.opportunityUC.ListByOwner(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Opportunities retrieved", opportunities)
}

func requireOrgAdmin(c *gin.Context) error {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleOrgAdmin && role != domain.RoleAdmin {
		return apperror.Forbidden("Only organisation admins can manage opportunities")
	}
	return nil
}

func requireVolunteer(c *gin.Context) error {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleVolunteer {
		return apperror.Forbidden("Only volunteers can perform this action")
	}
	return nil
}
