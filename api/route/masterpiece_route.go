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

func NewMasterpieceRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	mpr := repository.NewMasterpieceRepository(db, domain.CollectionMasterpiece)
	mr := repository.NewMovieRepository(db, domain.CollectionMovie)

	mc := controller.NewMasterpieceController(usecase.NewMasterpieceUsecase(mpr, mr, timeout))

	group.POST("/movies/:id/masterpiece", mc.Register)
	group.DELETE("/movies/:id/masterpiece", mc.Unregister)
	group.GET("/masterpieces", mc.Fetch)
}
