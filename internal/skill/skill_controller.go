package skill

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap/pkg/responses"
)

// SkillController serves the static skill catalog.
type SkillController struct{}

func NewSkillController() *SkillController {
	return &SkillController{}
}

// GetCatalog godoc
// @Summary Get the skill catalog
// @Description Returns all known skills grouped by category
// @Tags Skills
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Category}
// @Router /skills [get]
func (sc *SkillController) GetCatalog(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Skill catalog retrieved successfully", Categories())
}

// GetAllSkills godoc
// @Summary Get all skill names
// @Description Returns a flat list of every known skill name
// @Tags Skills
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]string}
// @Router /skills/all [get]
func (sc *SkillController) GetAllSkills(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Skills retrieved successfully", All())
}
