package match

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/profile"
	"github.com/skillswap/skillswap/pkg/responses"
)

// MatchController serves ranked skill matches for the logged-in user.
type MatchController struct {
	profiles profile.ProfileRepository
	config   *config.Config
}

// NewMatchController creates a new MatchController.
func NewMatchController(profiles profile.ProfileRepository, cfg *config.Config) *MatchController {
	return &MatchController{
		profiles: profiles,
		config:   cfg,
	}
}

// GetMatches godoc
// @Summary Get ranked skill matches for the logged-in user
// @Description Scores every public profile against the current user's teach/learn skills and returns the ranked list
// @Tags Matches
// @Produce json
// @Param sort query string false "Sort mode" Enums(score, bidirectional) default(score)
// @Success 200 {object} responses.SuccessResponse{data=[]Match}
// @Failure 400 {object} responses.ErrorResponse "Profile incomplete"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches [get]
// @Security BearerAuth
func (mc *MatchController) GetMatches(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		return
	}

	myProfile, err := mc.profiles.GetByUserID(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve profile", err.Error())
		return
	}
	if myProfile == nil || !myProfile.IsComplete() {
		responses.SendError(c, http.StatusBadRequest, "Complete your profile with at least one skill before discovering matches", nil)
		return
	}

	publicProfiles, err := mc.profiles.ListPublic(userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve candidate profiles", err.Error())
		return
	}

	candidates := make([]Candidate, 0, len(publicProfiles))
	for _, p := range publicProfiles {
		candidates = append(candidates, Candidate{
			UserID:      p.UserID,
			Name:        p.User.DisplayName(),
			Email:       p.User.Email,
			AvatarURL:   p.User.AvatarURL,
			Bio:         p.Bio,
			TeachSkills: p.TeachSkills,
			LearnSkills: p.LearnSkills,
		})
	}

	matches := Compute(myProfile.TeachSkills, myProfile.LearnSkills, candidates)
	if c.DefaultQuery("sort", "score") == "bidirectional" {
		matches = SortBidirectionalFirst(matches)
	}

	responses.SendSuccess(c, http.StatusOK, "Matches retrieved successfully", matches)
}
