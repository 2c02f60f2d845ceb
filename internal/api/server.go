package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/activities-api/docs"
	v1 "github.com/vietanh2810/activities-api/internal/api/handler/v1"
	"github.com/vietanh2810/activities-api/internal/api/middleware"
	"github.com/vietanh2810/activities-api/internal/config"
	"github.com/vietanh2810/activities-api/internal/domain"
	"github.com/vietanh2810/activities-api/internal/metrics"
	"github.com/vietanh2810/activities-api/internal/repository"
	"github.com/vietanh2810/activities-api/internal/repository/dao"
	"github.com/vietanh2810/activities-api/internal/service"
)

type Server struct {
	Config  *config.AppConfig
	Router  *gin.Engine
	Metrics *metrics.Manager
}

// Handlers groups every v1 handler mounted by the server.
type Handlers struct {
	Auth        *v1.AuthHandler
	Member      *v1.MemberHandler
	Activity    *v1.ActivityHandler
	Participant *v1.ParticipantHandler
	Analytics   *v1.AnalyticsHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB, manager *metrics.Manager) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:  conf,
		Router:  engine,
		Metrics: manager,
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db))

	return s
}

func (s *Server) initHandlers(db *gorm.DB) Handlers {
	tx := dao.NewTransactor(db)
	members := repository.NewMemberRepository(dao.NewMemberDAO(db))
	activities := repository.NewActivityRepository(dao.NewActivityDAO(db))
	participants := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	entries := repository.NewLedgerRepository(dao.NewLedgerDAO(db))

	ledgerSvc := service.NewLedgerService(tx, members, entries, s.Metrics)
	participationSvc := service.NewParticipationService(tx, activities, participants, ledgerSvc, s.Metrics, s.Config.Ledger.MaxConcurrency)

	return Handlers{
		Auth:        v1.NewAuthHandler(s.Config.API, service.NewAuthService(members)),
		Member:      v1.NewMemberHandler(service.NewMemberService(members), ledgerSvc),
		Activity:    v1.NewActivityHandler(service.NewActivityService(activities, s.Metrics)),
		Participant: v1.NewParticipantHandler(participationSvc),
		Analytics:   v1.NewAnalyticsHandler(service.NewAnalyticsService(members, activities, participants)),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h Handlers) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", h.Auth.HandleSignup)
		auth.POST("/auth/login", h.Auth.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())

	members := authenticated.Group("/members/:memberID")
	{
		members.GET("", h.Member.HandleGetMember)
		members.PUT("/preferences", h.Member.HandleUpdatePreferences)
		members.GET("/ledger", h.Member.HandleGetLedger)
		members.GET("/ledger/reconcile", h.Member.HandleReconcileLedger)
		members.GET("/history", h.Analytics.HandleGetHistory)
		members.GET("/analytics", h.Analytics.HandleGetAnalytics)
		members.POST("/points", middleware.RequireRole(domain.RoleAdmin), h.Member.HandleAwardPoints)
	}

	activities := authenticated.Group("/activities")
	{
		activities.GET("", h.Activity.HandleListActivities)
		activities.GET("/:activityID", h.Activity.HandleGetActivity)
		activities.GET("/:activityID/participants", h.Participant.HandleListParticipants)
	}

	admin := authenticated.Group("", middleware.RequireRole(domain.RoleAdmin))
	{
		admin.POST("/activities", h.Activity.HandleCreateActivity)
		admin.PATCH("/activities/:activityID", h.Activity.HandleUpdateActivity)
		admin.DELETE("/activities/:activityID", h.Activity.HandleDeleteActivity)
		admin.POST("/activities/:activityID/participants", h.Participant.HandleAddParticipants)
		admin.PATCH("/participants/:participantID", h.Participant.HandleUpdateParticipant)
		admin.DELETE("/participants/:participantID", h.Participant.HandleRemoveParticipant)
		admin.POST("/participants/:participantID/attendance", h.Participant.HandleMarkAttendance)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(s.Metrics.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Association activities API"
	docs.SwaggerInfo.Description = "Activities, participations, member points and attendance analytics."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
