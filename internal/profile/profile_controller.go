package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/pkg/responses"
	"github.com/skillswap/skillswap/pkg/validator"
)

// ProfileController handles API requests for the current user's profile.
type ProfileController struct {
	repo   ProfileRepository
	config *config.Config
}

// NewProfileController creates a new ProfileController.
func NewProfileController(repo ProfileRepository, cfg *config.Config) *ProfileController {
	return &ProfileController{
		repo:   repo,
		config: cfg,
	}
}

// --- DTOs ---

type SaveProfileRequest struct {
	TeachSkills []string `json:"teach_skills" binding:"max=3"`
	LearnSkills []string `json:"learn_skills" binding:"max=3"`
	Bio         string   `json:"bio" binding:"omitempty,max=2000"`
	IsPublic    *bool    `json:"is_public" binding:"omitempty"` // Pointer to distinguish between not provided and false
}

// --- Handlers ---

// GetMyProfile godoc
// @Summary Get the logged-in user's profile
// @Description Returns the current user's skill profile, or an empty data field if none was saved yet
// @Tags Profiles
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Profile}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /profiles/me [get]
// @Security BearerAuth
func (pc *ProfileController) GetMyProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	profile, err := pc.repo.GetByUserID(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve profile", err.Error())
		return
	}

	// A missing profile is a normal state for a fresh account, not a 404.
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// SaveMyProfile godoc
// @Summary Create or update the logged-in user's profile
// @Description Upserts the current user's teach/learn skills, bio and visibility. At least one skill across both lists is required.
// @Tags Profiles
// @Accept json
// @Produce json
// @Param profile body SaveProfileRequest true "Profile payload"
// @Success 200 {object} responses.SuccessResponse{data=Profile}
// @Failure 400 {object} responses.ErrorResponse "Validation error or bad request"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /profiles/me [put]
// @Security BearerAuth
func (pc *ProfileController) SaveMyProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	teach := NormalizeSkills(req.TeachSkills)
	learn := NormalizeSkills(req.LearnSkills)
	if len(teach) > MaxSkillsPerList || len(learn) > MaxSkillsPerList {
		responses.SendError(c, http.StatusBadRequest, "A profile may list at most 3 teach skills and 3 learn skills", nil)
		return
	}
	if len(teach) == 0 && len(learn) == 0 {
		responses.SendError(c, http.StatusBadRequest, "Select at least one skill to teach or to learn", nil)
		return
	}

	profile := Profile{
		UserID:      userID,
		TeachSkills: teach,
		LearnSkills: learn,
		Bio:         req.Bio,
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	} else {
		profile.IsPublic = true // Default to discoverable
	}

	if err := pc.repo.Upsert(&profile); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to save profile", err.Error())
		return
	}

	// Re-read so the response carries the stored row and user association.
	saved, err := pc.repo.GetByUserID(userID)
	if err != nil || saved == nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve profile after save", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Profile saved successfully", saved)
}
