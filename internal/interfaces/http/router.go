package http

import (
	"github.com/gin-gonic/gin"

	authusecases "quickdesk/internal/application/auth/usecases"
	categoryusecases "quickdesk/internal/application/category/usecases"
	ticketusecases "quickdesk/internal/application/ticket/usecases"
	userusecases "quickdesk/internal/application/user/usecases"
	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/infrastructure/auth"
	"quickdesk/internal/infrastructure/config"
	"quickdesk/internal/infrastructure/repository"
	"quickdesk/internal/infrastructure/state"
	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/interfaces/http/routes"
	"quickdesk/internal/shared/logger"
)

// Router assembles the HTTP surface: repositories over the state
// store, use cases, handlers, and routes.
type Router struct {
	engine     *gin.Engine
	store      *state.Store
	dispatcher events.EventDispatcher
	cfg        *config.Config
	logger     logger.Interface
}

func NewRouter(
	store *state.Store,
	dispatcher events.EventDispatcher,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	return &Router{
		engine:     gin.New(),
		store:      store,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     log,
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS([]string{"*"}))

	jwtService := auth.NewJWTService(r.cfg.Auth.JWTSecret, r.cfg.Auth.TokenExpMinutes)
	authMW := middleware.NewAuthMiddleware(jwtService, r.logger)

	userRepo := repository.NewUserRepository(r.store)
	ticketRepo := repository.NewTicketRepository(r.store)
	categoryRepo := repository.NewCategoryRepository(r.store)
	sessionRepo := repository.NewSessionRepository(r.store)

	authHandler := handlers.NewAuthHandler(
		authusecases.NewRegisterUseCase(userRepo, r.logger),
		authusecases.NewLoginUseCase(userRepo, sessionRepo, jwtService, r.logger),
		authusecases.NewLogoutUseCase(sessionRepo, r.logger),
		r.logger,
	)

	userHandler := handlers.NewUserHandler(
		userusecases.NewGetProfileUseCase(userRepo, r.logger),
		userusecases.NewUpdateProfileUseCase(userRepo, r.logger),
		userusecases.NewChangePasswordUseCase(userRepo, r.logger),
		userusecases.NewChangeRoleUseCase(userRepo, r.logger),
		userusecases.NewDeleteUserUseCase(userRepo, r.logger),
		userusecases.NewListUsersUseCase(userRepo, r.logger),
		r.logger,
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, r.dispatcher, r.logger),
		ticketusecases.NewChangeStatusUseCase(ticketRepo, userRepo, r.dispatcher, r.logger),
		ticketusecases.NewAssignTicketUseCase(ticketRepo, userRepo, r.dispatcher, r.logger),
		ticketusecases.NewAddCommentUseCase(ticketRepo, r.dispatcher, r.logger),
		ticketusecases.NewVoteUseCase(ticketRepo, r.logger),
		ticketusecases.NewListTicketsUseCase(ticketRepo, userRepo, r.logger),
		ticketusecases.NewGetTicketUseCase(ticketRepo, userRepo, r.logger),
		r.logger,
	)

	categoryHandler := handlers.NewCategoryHandler(
		categoryusecases.NewAddCategoryUseCase(categoryRepo, r.logger),
		categoryusecases.NewRemoveCategoryUseCase(categoryRepo, r.logger),
		categoryusecases.NewListCategoriesUseCase(categoryRepo, r.logger),
		r.logger,
	)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupCategoryRoutes(r.engine, &routes.CategoryRouteConfig{
		CategoryHandler: categoryHandler,
		AuthMiddleware:  authMW,
	})

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
