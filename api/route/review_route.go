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

func NewReviewRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, analyzer domain.ReviewAnalyzer, group *gin.RouterGroup) {
	rr := repository.NewReviewRepository(db, domain.CollectionReview)
	pr := repository.NewProfileRepository(db, domain.CollectionUserProfile)
	mr := repository.NewMovieRepository(db, domain.CollectionMovie)

	uc := usecase.NewReviewUsecase(rr, pr, mr, analyzer, env.DailyAnalysisLimit, env.MovieTagTopN, timeout)
	rc := controller.NewReviewController(uc)

	group.POST("/movies/:id/reviews", rc.Submit)
	group.GET("/movies/:id/reviews", rc.FetchByMovie)
	group.GET("/reviews", rc.FetchOwn)
}
