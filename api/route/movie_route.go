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

func NewMovieRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	mr := repository.NewMovieRepository(db, domain.CollectionMovie)
	mc := controller.NewMovieController(usecase.NewMovieUsecase(mr, timeout))

	movieGroup := group.Group("/movies")
	{
		movieGroup.GET("", mc.FetchPopular)
		movieGroup.GET("/:id", mc.FetchByID)
	}
}
