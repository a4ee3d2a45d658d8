package skill

import (
	"github.com/gin-gonic/gin"
)

func RegisterSkillRoutes(router *gin.RouterGroup) {
	controller := NewSkillController()

	skills := router.Group("/skills")
	{
		skills.GET("", controller.GetCatalog)
		skills.GET("/all", controller.GetAllSkills)
	}
}
