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

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Volunteer routes
	volunteers := protected.Group("/volunteers")
	{
		volunteers.POST("/opportunities/:opportunityId/apply", handler.Apply)
		volunteers.GET("/opportunities/:opportunityId/admission", handler.CheckAdmission)
		volunteers.GET("/applications", handler.GetMyApplications)
		volunteers.POST("/applications/:id/withdraw", handler.Withdraw)
	}

	// Organisation routes
	organisations := protected.Group("/organisations")
	{
		organisations.GET("/opportunities/:opportunityId/applications", handler.ListByOpportunity)
		organisations.PATCH("/applications/:id", handler.Decide)
	}
}

// Apply godoc
// @Summary      Apply to an opportunity
// @Description  Submit an application (volunteer only). Refused when the weekly hour budget would be exceeded.
// @Tags         applications
// @Produce      json
// @Param        opportunityId  path      int  true  "Opportunity ID"
// @Success      201  {object}  response.Response{data=domain.Application}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /volunteers/opportunities/{opportunityId}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	if err := requireVolunteer(c); err != nil {
		c.Error(err)
		return
	}

	opportunityID, err := strconv.ParseInt(c.Param("opportunityId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid opportunity ID"))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), middleware.CurrentUserID(c), opportunityID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// CheckAdmission godoc
// @Summary      Check capacity before applying
// @Description  Would accepting this opportunity fit within the caller's weekly hour budget?
// @Tags         applications
// @Produce      json
// @Param        opportunityId  path      int  true  "Opportunity ID"
// @Success      200  {object}  response.Response{data=domain.Admission}
// @Failure      404  {object}  response.Response
// @Router       /volunteers/opportunities/{opportunityId}/admission [get]
// @Security     BearerAuth
func (h *ApplicationHandler) CheckAdmission(c *gin.Context) {
	opportunityID, err := strconv.ParseInt(c.Param("opportunityId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid opportunity ID"))
		return
	}

	admission, err := h.applicationUC.CheckAdmission(c.Request.Context(), middleware.CurrentUserID(c), opportunityID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Admission checked", admission)
}

// GetMyApplications godoc
// @Summary      My applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Router       /volunteers/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	applications, err := h.applicationUC.GetMyApplications(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Description  Transition a pending or accepted application to WITHDRAWN
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /volunteers/applications/{id}/withdraw [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	if err := h.applicationUC.Withdraw(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}

// ListByOpportunity godoc
// @Summary      List applications for an opportunity
// @Description  All applications for one of the caller's opportunities (org_admin only)
// @Tags         applications
// @Produce      json
// @Param        opportunityId  path      int  true  "Opportunity ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /organisations/opportunities/{opportunityId}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByOpportunity(c *gin.Context) {
	if err := requireOrgAdmin(c); err != nil {
		c.Error(err)
		return
	}

	opportunityID, err := strconv.ParseInt(c.Param("opportunityId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid opportunity ID"))
		return
	}

	applications, err := h.applicationUC.ListByOpportunity(c.Request.Context(), middleware.CurrentUserID(c), opportunityID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// DecideRequest accepts or rejects a pending application.
type DecideRequest struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}

// Decide godoc
// @Summary      Decide an application
// @Description  Accept or reject a pending application (org_admin only). The volunteer is notified.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Application ID"
// @Param        body  body      DecideRequest  true  "Decision"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /organisations/applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Decide(c *gin.Context) {
	if err := requireOrgAdmin(c); err != nil {
		c.Error(err)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.Decide(c.Request.Context(), middleware.CurrentUserID(c), id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application "+req.Status, nil)
}
