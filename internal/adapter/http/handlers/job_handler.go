package handlers

import (
	"errors"
	"net/http"

	request "repairflow/internal/adapter/http/dto/request"
	response "repairflow/internal/adapter/http/dto/response"
	"repairflow/internal/domain/workflow"
	"repairflow/internal/usecase"
	"repairflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
	errUnknownEvent      = pkg.NewDomainErrorSimple("UNKNOWN_EVENT", "Unknown workflow event", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for repair orders: creation, workflow
// transitions, item mutations, status projection, the stock advisory and
// closing.

type JobHandler struct {
	workflow usecase.IJobWorkflowUseCase
	items    usecase.IJobItemsUseCase
}

func NewJobHandler(wf usecase.IJobWorkflowUseCase, items usecase.IJobItemsUseCase) *JobHandler {
	return &JobHandler{workflow: wf, items: items}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.workflow.CreateJob(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.workflow.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ProposeTransition applies one named workflow event to the job. Events the
// table rejects come back as a conflict with the job left untouched.
func (h *JobHandler) ProposeTransition(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	event, ok := workflow.ParseEvent(payload.ResolveEvent())
	if !ok {
		c.JSON(errUnknownEvent.HTTPStatus, errUnknownEvent.ToHTTPError())
		return
	}

	job, err := h.workflow.ProposeTransition(c.Request.Context(), c.Param("id"), event)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ApplyItemMutation(c *gin.Context) {
	var payload request.ItemMutationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	res, err := h.items.ApplyItemMutation(c.Request.Context(), c.Param("id"), payload.ToMutation())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItemMutation(res))
}

func (h *JobHandler) GetStatus(c *gin.Context) {
	snap, err := h.workflow.RecomputeStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func (h *JobHandler) CheckStock(c *gin.Context) {
	missing, err := h.workflow.CheckStock(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StockCheckResponse{MissingParts: missing})
}

func (h *JobHandler) CloseJob(c *gin.Context) {
	job, err := h.workflow.CloseJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ConvertToRepairOrder(c *gin.Context) {
	job, err := h.items.ConvertToRepairOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.AppError {
	var invalid *workflow.InvalidTransitionError
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidShopID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrShopNotFound):
		return pkg.NewDomainErrorSimple("SHOP_NOT_FOUND", "Shop not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobFinalized):
		return pkg.NewDomainErrorSimple("JOB_FINALIZED", "Job is finalized", http.StatusConflict)
	case errors.As(err, &invalid):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", invalid.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
