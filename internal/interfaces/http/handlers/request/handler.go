package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"upravdom/internal/application/request/usecases"
	"upravdom/internal/shared/constants"
	"upravdom/internal/shared/logger"
	"upravdom/internal/shared/utils"
)

type RequestHandler struct {
	createRequestUC usecases.CreateRequestExecutor
	updateRequestUC usecases.UpdateRequestExecutor
	getRequestUC    usecases.GetRequestExecutor
	listRequestsUC  usecases.ListRequestsExecutor
	reworkRequestUC usecases.ReworkRequestExecutor
	closeRequestUC  usecases.CloseRequestExecutor
	listIncidentsUC usecases.ListIncidentsExecutor
	submitReviewUC  usecases.SubmitReviewExecutor
	logger          logger.Interface
}

func NewRequestHandler(
	createRequestUC usecases.CreateRequestExecutor,
	updateRequestUC usecases.UpdateRequestExecutor,
	getRequestUC usecases.GetRequestExecutor,
	listRequestsUC usecases.ListRequestsExecutor,
	reworkRequestUC usecases.ReworkRequestExecutor,
	closeRequestUC usecases.CloseRequestExecutor,
	listIncidentsUC usecases.ListIncidentsExecutor,
	submitReviewUC usecases.SubmitReviewExecutor,
) *RequestHandler {
	return &RequestHandler{
		createRequestUC: createRequestUC,
		updateRequestUC: updateRequestUC,
		getRequestUC:    getRequestUC,
		listRequestsUC:  listRequestsUC,
		reworkRequestUC: reworkRequestUC,
		closeRequestUC:  closeRequestUC,
		listIncidentsUC: listIncidentsUC,
		submitReviewUC:  submitReviewUC,
		logger:          logger.NewLogger(),
	}
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)
	cmd := req.ToCommand(userID.(uint))

	result, err := h.createRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Request created successfully")
}

// GetRequest handles GET /requests/:rootId
func (h *RequestHandler) GetRequest(c *gin.Context) {
	rootID, err := utils.ParseUintParam(c, "rootId", "request root ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRequestUC.Execute(c.Request.Context(), usecases.GetRequestQuery{RootID: rootID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateRequest handles PUT /requests/:rootId
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	rootID, err := utils.ParseUintParam(c, "rootId", "request root ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)
	cmd := req.ToCommand(rootID, userID.(uint))

	result, err := h.updateRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request updated successfully", result)
}

// ListRequests handles GET /requests and the status bucket routes.
func (h *RequestHandler) ListRequests(bucket string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := h.listRequestsUC.Execute(c.Request.Context(), usecases.ListRequestsQuery{Bucket: bucket})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "", result)
	}
}

// ReworkRequest handles PATCH /requests/:rootId/rework
func (h *RequestHandler) ReworkRequest(c *gin.Context) {
	rootID, err := utils.ParseUintParam(c, "rootId", "request root ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)
	cmd := usecases.ReworkRequestCommand{
		RootID: rootID,
		UserID: userID.(uint),
	}

	result, err := h.reworkRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request sent to rework", result)
}

// CloseRequest handles POST /requests/:rootId/close
func (h *RequestHandler) CloseRequest(c *gin.Context) {
	rootID, err := utils.ParseUintParam(c, "rootId", "request root ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for close request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := c.Get(constants.ContextKeyUserID)
	cmd := req.ToCommand(rootID, userID.(uint))

	result, err := h.closeRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request closed successfully", result)
}

// SubmitReview handles POST /requests/:rootId/review
func (h *RequestHandler) SubmitReview(c *gin.Context) {
	rootID, err := utils.ParseUintParam(c, "rootId", "request root ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit review", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.submitReviewUC.Execute(c.Request.Context(), req.ToCommand(rootID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Review submitted successfully")
}

// ListIncidents handles GET /incidents
func (h *RequestHandler) ListIncidents(c *gin.Context) {
	result, err := h.listIncidentsUC.Execute(c.Request.Context(), usecases.ListIncidentsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
