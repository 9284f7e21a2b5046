package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moviemind/moviemind-backend/api/controller"
	"github.com/moviemind/moviemind-backend/domain"
	"github.com/moviemind/moviemind-backend/mongo"
	"github.com/moviemind/moviemind-backend/repository"
	"github.com/moviemind/moviemind-backend/usecase"
)

func NewProfileRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	pr := repository.NewProfileRepository(db, domain.CollectionUserProfile)
	pc := controller.NewProfileController(usecase.NewProfileUsecase(pr, timeout))

	profileGroup := group.Group("/profile")
	{
		profileGroup.GET("", pc.Fetch)
		profileGroup.PUT("/tastes", pc.UpdateTastes)
	}
}
