package v1

import (
	"net/http"
	"strconv"

	"go-volink-backend/internal/delivery/http/middleware"
	"go-volink-backend/internal/delivery/http/response"
	"go-volink-backend/internal/domain"
	"go-volink-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type OrganisationHandler struct {
	organisationUC domain.OrganisationUsecase
}

func NewOrganisationHandler(protected *gin.RouterGroup, organisationUC domain.OrganisationUsecase) {
	handler := &OrganisationHandler{organisationUC: organisationUC}

	organisations := protected.Group("/organisations")
	{
		organisations.POST("", handler.Register)
		organisations.GET("/mine", handler.GetMine)
		organisations.GET("/summary", handler.GetSummary)
		organisations.PUT("/mine/:id", handler.Update)
	}

	// Staff admin routes
	admin := protected.Group("/admin")
	{
		admin.PATCH("/organisations/:id/verify", handler.Verify)
	}
}

// OrganisationRequest is the register/update payload.
type OrganisationRequest struct {
	Name         string  `json:"name" binding:"required,max=200"`
	Description  string  `json:"description" binding:"required"`
	ContactEmail string  `json:"contact_email" binding:"required,email"`
	Website      *string `json:"website" binding:"omitempty,url"`
}

// Register godoc
// @Summary      Register an organisation
// @Description  Create an organisation administered by the caller. Starts unverified.
// @Tags         organisations
// @Accept       json
// @Produce      json
// @Param        body  body      OrganisationRequest  true  "Organisation data"
// @Success      201  {object}  response.Response{data=domain.Organisation}
// @Failure      400  {object}  response.Response
// @Router       /organisations [post]
// @Security     BearerAuth
func (h *OrganisationHandler) Register(c *gin.Context) {
	if err := requireOrgAdmin(c); err != nil {
		c.Error(err)
		return
	}

	var req OrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	org := &domain.Organisation{
		Name:         req.Name,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		Website:      req.Website,
	}
	if err := h.organisationUC.Register(c.Request.Context(), middleware.CurrentUserID(c), org); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Organisation registered", org)
}

// GetMine godoc
// @Summary      My organisations
// @Tags         organisations
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Organisation}
// @Router       /organisations/mine [get]
// @Security     BearerAuth
func (h *OrganisationHandler) GetMine(c *gin.Context) {
	organisations, err := h.organisationUC.GetMine(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Organisations retrieved", organisations)
}

// GetSummary godoc
// @Summary      Organisation dashboard
// @Description  Per-organisation counts of open/closed opportunities and pending applications
// @Tags         organisations
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.OrganisationSummary}
// @Router       /organisations/summary [get]
// @Security     BearerAuth
func (h *OrganisationHandler) GetSummary(c *gin.Context) {
	if err := requireOrgAdmin(c); err != nil {
		c.Error(err)
		return
	}

	summaries, err := h.organisationUC.GetSummary(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Summary retrieved", summaries)
}

// Update godoc
// @Summary      Update an organisation
// @Tags         organisations
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Organisation ID"
// @Param        body  body      OrganisationRequest  true  "Organisation data"
// @Success      200  {object}  response.Response{data=domain.Organisation}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /organisations/mine/{id} [put]
// @Security     BearerAuth
func (h *OrganisationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid organisation ID"))
		return
	}

	var req OrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	org := &domain.Organisation{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		Website:      req.Website,
	}
	if err := h.organisationUC.Update(c.Request.Context(), middleware.CurrentUserID(c), org); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Organisation updated", org)
}

// VerifyRequest toggles staff verification.
type VerifyRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

// Verify godoc
// @Summary      Verify an organisation
// @Description  Set or clear the verified flag (staff admin only)
// @Tags         organisations
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Organisation ID"
// @Param        body  body      VerifyRequest  true  "Verification flag"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/organisations/{id}/verify [patch]
// @Security     BearerAuth
func (h *OrganisationHandler) Verify(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only staff admins can verify organisations"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid organisation ID"))
		return
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.organisationUC.Verify(c.Request.Context(), id, *req.Verified); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Organisation verification updated", nil)
}
