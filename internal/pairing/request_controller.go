package pairing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/pkg/responses"
	"github.com/skillswap/skillswap/pkg/validator"
)

// RequestController handles API requests for the pairing-request lifecycle.
type RequestController struct {
	repo   RequestRepository
	config *config.Config
}

// NewRequestController creates a new RequestController.
func NewRequestController(repo RequestRepository, cfg *config.Config) *RequestController {
	return &RequestController{
		repo:   repo,
		config: cfg,
	}
}

// --- DTOs ---

type CreateRequestDTO struct {
	RequestedID uint   `json:"requested_id" binding:"required"`
	Skill       string `json:"skill" binding:"required,min=1,max=100"`
	Message     string `json:"message" binding:"omitempty,max=1000"`
}

// --- Handlers ---

// CreateRequest godoc
// @Summary Send a pairing request
// @Description Sends a pairing request for one skill to another user. At most one pending request per (requested user, skill) pair is allowed.
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body CreateRequestDTO true "Request payload"
// @Success 201 {object} responses.SuccessResponse{data=PairRequest}
// @Failure 400 {object} responses.ErrorResponse "Validation error or bad request"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 409 {object} responses.ErrorResponse "A pending request for this user and skill already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /requests [post]
// @Security BearerAuth
func (rc *RequestController) CreateRequest(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	var req CreateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	if req.RequestedID == userID {
		responses.SendError(c, http.StatusBadRequest, "You cannot send a pairing request to yourself", nil)
		return
	}

	exists, err := rc.repo.HasPending(userID, req.RequestedID, req.Skill)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check existing requests", err.Error())
		return
	}
	if exists {
		responses.SendError(c, http.StatusConflict, "A pending request for this user and skill already exists", nil)
		return
	}

	pairRequest := PairRequest{
		RequesterID: userID,
		RequestedID: req.RequestedID,
		Skill:       req.Skill,
		Message:     req.Message,
		Status:      StatusPending,
	}

	if err := rc.repo.Create(&pairRequest); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create pairing request", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Pairing request sent successfully", pairRequest)
}

// GetSentRequests godoc
// @Summary List pairing requests sent by the logged-in user
// @Tags Requests
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]PairRequest}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /requests/sent [get]
// @Security BearerAuth
func (rc *RequestController) GetSentRequests(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	requests, err := rc.repo.ListSent(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve sent requests", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Sent requests retrieved successfully", requests)
}

// GetReceivedRequests godoc
// @Summary List pairing requests received by the logged-in user
// @Tags Requests
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]PairRequest}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /requests/received [get]
// @Security BearerAuth
func (rc *RequestController) GetReceivedRequests(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	requests, err := rc.repo.ListReceived(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve received requests", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Received requests retrieved successfully", requests)
}

// AcceptRequest godoc
// @Summary Accept a pending pairing request
// @Description Only the requested party may accept. Scheduling the session is a separate, subsequent call.
// @Tags Requests
// @Produce json
// @Param request_id path int true "Request ID"
// @Success 200 {object} responses.SuccessResponse{data=PairRequest}
// @Failure 400 {object} responses.ErrorResponse "Invalid request ID"
// @Failure 403 {object} responses.ErrorResponse "Not the requested party"
// @Failure 404 {object} responses.ErrorResponse "Request not found"
// @Failure 409 {object} responses.ErrorResponse "Request is no longer pending"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /requests/{request_id}/accept [post]
// @Security BearerAuth
func (rc *RequestController) AcceptRequest(c *gin.Context) {
	rc.transitionRequest(c, StatusAccepted, "Pairing request accepted")
}

// DeclineRequest godoc
// @Summary Decline a pending pairing request
// @Description Only the requested party may decline
// @Tags Requests
// @Produce json
// @Param request_id path int true "Request ID"
// @Success 200 {object} responses.SuccessResponse{data=PairRequest}
// @Failure 400 {object} responses.ErrorResponse "Invalid request ID"
// @Failure 403 {object} responses.ErrorResponse "Not the requested party"
// @Failure 404 {object} responses.ErrorResponse "Request not found"
// @Failure 409 {object} responses.ErrorResponse "Request is no longer pending"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /requests/{request_id}/decline [post]
// @Security BearerAuth
func (rc *RequestController) DeclineRequest(c *gin.Context) {
	rc.transitionRequest(c, StatusDeclined, "Pairing request declined")
}

// CancelRequest godoc
// @Summary Cancel a pending pairing request
// @Description Only the requester may cancel their own pending request
// @Tags Requests
// @Produce json
// @Param request_id path int true "Request ID"
// @Success 200 {object} responses.SuccessResponse{data=PairRequest}
// @Failure 400 {object} responses.ErrorResponse "Invalid request ID"
// @Failure 403 {object} responses.ErrorResponse "Not the requester"
// @Failure 404 {object} responses.ErrorResponse "Request not found"
// @Failure 409 {object} responses.ErrorResponse "Request is no longer pending"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /requests/{request_id}/cancel [post]
// @Security BearerAuth
func (rc *RequestController) CancelRequest(c *gin.Context) {
	rc.transitionRequest(c, StatusCancelled, "Pairing request cancelled")
}

// transitionRequest loads the request, applies the lifecycle rules for the
// acting user, and persists the new status.
func (rc *RequestController) transitionRequest(c *gin.Context, to RequestStatus, successMessage string) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	requestIDStr := c.Param("request_id")
	requestID, err := strconv.ParseUint(requestIDStr, 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request ID format", nil)
		return
	}

	pairRequest, err := rc.repo.GetByID(uint(requestID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve pairing request", err.Error())
		return
	}
	if pairRequest == nil {
		responses.SendError(c, http.StatusNotFound, "Pairing request not found", nil)
		return
	}

	if err := Transition(pairRequest, to, userID); err != nil {
		switch {
		case errors.Is(err, ErrNotAuthorized):
			responses.SendError(c, http.StatusForbidden, "You are not allowed to perform this action on the request", nil)
		case errors.Is(err, ErrNotPending):
			responses.SendError(c, http.StatusConflict, "Request is no longer pending", nil)
		default:
			responses.SendError(c, http.StatusBadRequest, "Invalid transition", err.Error())
		}
		return
	}

	if err := rc.repo.UpdateStatus(pairRequest); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update pairing request", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, successMessage, pairRequest)
}
