package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moviemind/moviemind-backend/api/controller"
	"github.com/moviemind/moviemind-backend/bootstrap"
	"github.com/moviemind/moviemind-backend/domain"
	"github.com/moviemind/moviemind-backend/mongo"
	"github.com/moviemind/moviemind-backend/repository"
	"github.com/moviemind/moviemind-backend/usecase"
)

func NewRecommendationRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	mr := repository.NewMovieRepository(db, domain.CollectionMovie)
	rr := repository.NewReviewRepository(db, domain.CollectionReview)
	pr := repository.NewProfileRepository(db, domain.CollectionUserProfile)

	uc := usecase.NewRecommendationUsecase(mr, rr, pr, env.RecommendPageSize, env.TrendingFillerSize, timeout)
	rc := controller.NewRecommendationController(uc)

	group.GET("/recommendations", rc.Recommend)
}
