package session

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/pairing"
	"github.com/skillswap/skillswap/pkg/responses"
	"github.com/skillswap/skillswap/pkg/validator"
)

// SessionController handles API requests for scheduled learning sessions.
type SessionController struct {
	repo     SessionRepository
	requests pairing.RequestRepository
	config   *config.Config
}

// NewSessionController creates a new SessionController.
func NewSessionController(repo SessionRepository, requests pairing.RequestRepository, cfg *config.Config) *SessionController {
	return &SessionController{
		repo:     repo,
		requests: requests,
		config:   cfg,
	}
}

// --- DTOs ---

type CreateSessionRequest struct {
	PairRequestID   uint       `json:"pair_request_id" binding:"required"`
	ScheduledAt     *time.Time `json:"scheduled_at" binding:"omitempty"`
	DurationMinutes int        `json:"duration_minutes" binding:"omitempty,min=15,max=480"`
	MeetingLink     string     `json:"meeting_link" binding:"omitempty,url|uri,max=500"`
	Notes           string     `json:"notes" binding:"omitempty,max=2000"`
}

type UpdateSessionRequest struct {
	ScheduledAt     *time.Time `json:"scheduled_at" binding:"omitempty"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty"`
	MeetingLink     *string    `json:"meeting_link" binding:"omitempty"`
	Notes           *string    `json:"notes" binding:"omitempty"`
}

type RescheduleSessionRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// --- Handlers ---

// CreateSession godoc
// @Summary Schedule a session from an accepted pairing request
// @Description Creates the session for an accepted request. Only the party who accepted (the teacher) may schedule, and each request yields at most one session.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body CreateSessionRequest true "Session payload"
// @Success 201 {object} responses.SuccessResponse{data=Session}
// @Failure 400 {object} responses.ErrorResponse "Validation error or request not accepted"
// @Failure 403 {object} responses.ErrorResponse "Not the accepting party"
// @Failure 404 {object} responses.ErrorResponse "Pairing request not found"
// @Failure 409 {object} responses.ErrorResponse "Session already exists for this request"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /sessions [post]
// @Security BearerAuth
func (sc *SessionController) CreateSession(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	pairRequest, err := sc.requests.GetByID(req.PairRequestID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve pairing request", err.Error())
		return
	}
	if pairRequest == nil {
		responses.SendError(c, http.StatusNotFound, "Pairing request not found", nil)
		return
	}
	if pairRequest.Status != pairing.StatusAccepted {
		responses.SendError(c, http.StatusBadRequest, "Only accepted pairing requests can be scheduled", nil)
		return
	}
	if userID != pairRequest.RequestedID {
		responses.SendError(c, http.StatusForbidden, "Only the party who accepted the request may schedule the session", nil)
		return
	}

	existing, err := sc.repo.GetByPairRequestID(pairRequest.ID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check existing session", err.Error())
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "A session already exists for this pairing request", nil)
		return
	}

	teacherID, learnerID := DeriveRoles(userID, pairRequest.RequesterID)
	session := Session{
		PairRequestID:   pairRequest.ID,
		TeacherID:       teacherID,
		LearnerID:       learnerID,
		Skill:           pairRequest.Skill,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		MeetingLink:     req.MeetingLink,
		RoomCode:        uuid.NewString(),
		Notes:           req.Notes,
		Status:          StatusScheduled,
	}

	if err := sc.repo.Create(&session); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create session", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Session scheduled successfully", session)
}

// GetSessions godoc
// @Summary List the logged-in user's sessions
// @Description Returns every session the user participates in. With filter=upcoming or filter=past only that display group is returned; a scheduled session whose date already passed counts as past.
// @Tags Sessions
// @Produce json
// @Param filter query string false "Display group" Enums(upcoming, past)
// @Success 200 {object} responses.SuccessResponse{data=[]Session}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /sessions [get]
// @Security BearerAuth
func (sc *SessionController) GetSessions(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	sessions, err := sc.repo.ListForUser(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve sessions", err.Error())
		return
	}

	switch c.Query("filter") {
	case "upcoming":
		upcoming, _ := Partition(sessions, time.Now())
		sessions = upcoming
	case "past":
		_, past := Partition(sessions, time.Now())
		sessions = past
	}
	if sessions == nil {
		sessions = []Session{}
	}

	responses.SendSuccess(c, http.StatusOK, "Sessions retrieved successfully", sessions)
}

// UpdateSession godoc
// @Summary Update a session's date, link or notes
// @Description Partial update by either participant. Status is never changed here; use the reschedule/complete/cancel endpoints.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path int true "Session ID"
// @Param session body UpdateSessionRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Session}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 403 {object} responses.ErrorResponse "Not a participant"
// @Failure 404 {object} responses.ErrorResponse "Session not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /sessions/{session_id} [patch]
// @Security BearerAuth
func (sc *SessionController) UpdateSession(c *gin.Context) {
	session, ok := sc.loadParticipantSession(c)
	if !ok {
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	if req.ScheduledAt != nil {
		session.ScheduledAt = req.ScheduledAt
	}
	if req.DurationMinutes != nil {
		session.DurationMinutes = *req.DurationMinutes
	}
	if req.MeetingLink != nil {
		session.MeetingLink = *req.MeetingLink
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}

	if err := sc.repo.Update(session); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update session", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Session updated successfully", session)
}

// RescheduleSession godoc
// @Summary Move a session to a new date
// @Description Sets the new date and marks the session rescheduled. Completed or cancelled sessions cannot be rescheduled.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path int true "Session ID"
// @Param session body RescheduleSessionRequest true "New date"
// @Success 200 {object} responses.SuccessResponse{data=Session}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 403 {object} responses.ErrorResponse "Not a participant"
// @Failure 404 {object} responses.ErrorResponse "Session not found"
// @Failure 409 {object} responses.ErrorResponse "Session already completed or cancelled"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /sessions/{session_id}/reschedule [post]
// @Security BearerAuth
func (sc *SessionController) RescheduleSession(c *gin.Context) {
	session, ok := sc.loadParticipantSession(c)
	if !ok {
		return
	}

	var req RescheduleSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	if session.Status == StatusCompleted || session.Status == StatusCancelled {
		responses.SendError(c, http.StatusConflict, "Completed or cancelled sessions cannot be rescheduled", nil)
		return
	}

	scheduledAt := req.ScheduledAt
	session.ScheduledAt = &scheduledAt
	session.Status = StatusRescheduled

	if err := sc.repo.Update(session); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to reschedule session", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Session rescheduled successfully", session)
}

// CompleteSession godoc
// @Summary Mark a session as completed
// @Description Either participant may complete; attendance is not verified.
// @Tags Sessions
// @Produce json
// @Param session_id path int true "Session ID"
// @Success 200 {object} responses.SuccessResponse{data=Session}
// @Failure 403 {object} responses.ErrorResponse "Not a participant"
// @Failure 404 {object} responses.ErrorResponse "Session not found"
// @Failure 409 {object} responses.ErrorResponse "Session already completed or cancelled"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /sessions/{session_id}/complete [post]
// @Security BearerAuth
func (sc *SessionController) CompleteSession(c *gin.Context) {
	sc.closeSession(c, StatusCompleted, "Session marked as completed")
}

// CancelSession godoc
// @Summary Cancel a session
// @Tags Sessions
// @Produce json
// @Param session_id path int true "Session ID"
// @Success 200 {object} responses.SuccessResponse{data=Session}
// @Failure 403 {object} responses.ErrorResponse "Not a participant"
// @Failure 404 {object} responses.ErrorResponse "Session not found"
// @Failure 409 {object} responses.ErrorResponse "Session already completed or cancelled"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /sessions/{session_id}/cancel [post]
// @Security BearerAuth
func (sc *SessionController) CancelSession(c *gin.Context) {
	sc.closeSession(c, StatusCancelled, "Session cancelled")
}

func (sc *SessionController) closeSession(c *gin.Context, to SessionStatus, successMessage string) {
	session, ok := sc.loadParticipantSession(c)
	if !ok {
		return
	}

	if session.Status == StatusCompleted || session.Status == StatusCancelled {
		responses.SendError(c, http.StatusConflict, "Session is already completed or cancelled", nil)
		return
	}

	session.Status = to
	if err := sc.repo.Update(session); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update session", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, successMessage, session)
}

// loadParticipantSession resolves the session from the path and verifies the
// acting user is the teacher or learner. It writes the error response itself
// and returns ok=false when the caller should stop.
func (sc *SessionController) loadParticipantSession(c *gin.Context) (*Session, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return nil, false
	}

	sessionIDStr := c.Param("session_id")
	sessionID, err := strconv.ParseUint(sessionIDStr, 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid session ID format", nil)
		return nil, false
	}

	session, err := sc.repo.GetByID(uint(sessionID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve session", err.Error())
		return nil, false
	}
	if session == nil {
		responses.SendError(c, http.StatusNotFound, "Session not found", nil)
		return nil, false
	}
	if !session.HasParticipant(userID) {
		responses.SendError(c, http.StatusForbidden, "Only session participants may modify a session", nil)
		return nil, false
	}

	return session, true
}
