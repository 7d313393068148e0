package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authusecases "upravdom/internal/application/auth/usecases"
	catalogusecases "upravdom/internal/application/catalog/usecases"
	requestusecases "upravdom/internal/application/request/usecases"
	"upravdom/internal/infrastructure/auth"
	"upravdom/internal/infrastructure/config"
	"upravdom/internal/infrastructure/repository"
	"upravdom/internal/interfaces/http/handlers"
	requesthandlers "upravdom/internal/interfaces/http/handlers/request"
	"upravdom/internal/interfaces/http/middleware"
	"upravdom/internal/interfaces/http/routes"
	"upravdom/internal/shared/db"
	"upravdom/internal/shared/logger"
)

// Router wires repositories, use cases, and handlers into one gin engine.
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	requestHandler *requesthandlers.RequestHandler
	catalogHandler *handlers.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	requestRepo := repository.NewRequestRepository(database)
	closingRepo := repository.NewClosingResultRepository(database)
	refinementRepo := repository.NewRefinementRepository(database)
	defectRepo := repository.NewDefectRepository(database)
	addressRepo := repository.NewAddressRepository(database)
	workTypeRepo := repository.NewWorkPerformedTypeRepository(database)
	orgRepo := repository.NewOrganizationRepository(database)
	implOrgRepo := repository.NewImplementingOrganizationRepository(database)
	reviewRepo := repository.NewReviewRepository(database)
	refusalRepo := repository.NewRefusalReasonRepository(database)
	userRepo := repository.NewUserRepository(database)

	txManager := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	registerUC := authusecases.NewRegisterUserUseCase(userRepo, orgRepo, implOrgRepo, hasher, log)
	currentUserUC := authusecases.NewGetCurrentUserUseCase(userRepo, log)
	authHandler := handlers.NewAuthHandler(loginUC, registerUC, currentUserUC, log)

	createRequestUC := requestusecases.NewCreateRequestUseCase(requestRepo, defectRepo, txManager, log)
	updateRequestUC := requestusecases.NewUpdateRequestUseCase(requestRepo, defectRepo, txManager, log)
	getRequestUC := requestusecases.NewGetRequestUseCase(requestRepo, closingRepo, log)
	listRequestsUC := requestusecases.NewListRequestsUseCase(requestRepo, log)
	reworkRequestUC := requestusecases.NewReworkRequestUseCase(requestRepo, defectRepo, closingRepo, refinementRepo, txManager, log)
	closeRequestUC := requestusecases.NewCloseRequestUseCase(requestRepo, closingRepo, txManager, log)
	listIncidentsUC := requestusecases.NewListIncidentsUseCase(requestRepo, defectRepo, addressRepo, log)
	submitReviewUC := requestusecases.NewSubmitReviewUseCase(requestRepo, closingRepo, reviewRepo, log)

	requestHandler := requesthandlers.NewRequestHandler(
		createRequestUC,
		updateRequestUC,
		getRequestUC,
		listRequestsUC,
		reworkRequestUC,
		closeRequestUC,
		listIncidentsUC,
		submitReviewUC,
	)

	listDefectsUC := catalogusecases.NewListDefectsUseCase(defectRepo, log)
	listAddressesUC := catalogusecases.NewListAddressesUseCase(addressRepo, log)
	getAddressUC := catalogusecases.NewGetAddressUseCase(addressRepo, log)
	listImplOrgsUC := catalogusecases.NewListImplementingOrganizationsUseCase(implOrgRepo, log)
	listWorkTypesUC := catalogusecases.NewListWorkPerformedTypesUseCase(workTypeRepo, log)
	listSecurityEventsUC := catalogusecases.NewListSecurityEventsUseCase(workTypeRepo, log)
	listRefusalsUC := catalogusecases.NewListRefusalReasonsUseCase(refusalRepo, log)
	catalogHandler := handlers.NewCatalogHandler(listDefectsUC, listAddressesUC, getAddressUC, listImplOrgsUC, listWorkTypesUC, listSecurityEventsUC, listRefusalsUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	rateLimiter := middleware.NewRateLimiter(100, 1*time.Minute)

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		requestHandler: requestHandler,
		catalogHandler: catalogHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS([]string{"*"}))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupRequestRoutes(api, &routes.RequestRouteConfig{
		RequestHandler: r.requestHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupCatalogRoutes(api, &routes.CatalogRouteConfig{
		CatalogHandler: r.catalogHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
