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

func NewLoginRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	lc := controller.LoginController{
		LoginUsecase: usecase.NewLoginUsecase(ur, timeout),
		Env:          env,
	}
	group.POST("/login", lc.Login)
}
