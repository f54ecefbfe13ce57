package setup

import (
	"github.com/threadline-dev/threadline/internal/config"
	"github.com/threadline-dev/threadline/internal/handler"
	"github.com/threadline-dev/threadline/internal/jwt"
	"github.com/threadline-dev/threadline/internal/middleware"
	"github.com/threadline-dev/threadline/internal/service"
	"github.com/threadline-dev/threadline/internal/storage/pg"
	"github.com/threadline-dev/threadline/internal/utils"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	verifier := service.NewVerifier(storage, storage, storage)

	auth := service.NewAuth(storage, jwtService, &utils.CredentialsValidator{
		MinUsernameLen: cfg.Public.MinUsernameLen,
		MaxUsernameLen: cfg.Public.MaxUsernameLen,
	}, cfg.Private.BcryptCost)
	thread := service.NewThread(storage, verifier, &utils.ThreadValidator{
		MaxTitleLen: cfg.Public.MaxTitleLen,
		MaxBodyLen:  cfg.Public.MaxContentLen,
	})
	contentValidator := &utils.ContentValidator{MaxLen: cfg.Public.MaxContentLen}
	comment := service.NewComment(storage, verifier, contentValidator)
	reply := service.NewReply(storage, verifier, contentValidator)
	like := service.NewLike(storage, verifier)

	h := handler.New(auth, thread, comment, reply, like)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            jwtService,
		AuthMiddleware: middleware.NewAuth(jwtService),
	}, nil
}
