package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/cyberduce/summit-api/docs"
	v1 "github.com/cyberduce/summit-api/internal/api/handler/v1"
	"github.com/cyberduce/summit-api/internal/api/middleware"
	"github.com/cyberduce/summit-api/internal/config"
	"github.com/cyberduce/summit-api/internal/repository"
	"github.com/cyberduce/summit-api/internal/repository/dao"
	"github.com/cyberduce/summit-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	attendeeHandler := s.initAttendeeHandler(db)
	bedspaceHandler := s.initBedspaceHandler(db)
	reportHandler := s.initReportHandler(db)
	s.MountHandlers(authHandler, attendeeHandler, bedspaceHandler, reportHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	adminDAO := dao.NewAdminDAO(db)
	repo := repository.NewAdminRepository(adminDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initAttendeeHandler(db *gorm.DB) *v1.AttendeeHandler {
	attendeeRepo := repository.NewAttendeeRepository(dao.NewAttendeeDAO(db))
	roomRepo := repository.NewRoomRepository(dao.NewRoomDAO(db))
	registration := service.NewRegistrationService(attendeeRepo, roomRepo)
	attendance := service.NewAttendanceService(attendeeRepo)
	handler := v1.NewAttendeeHandler(registration, attendance)

	return handler
}

func (s *Server) initBedspaceHandler(db *gorm.DB) *v1.BedspaceHandler {
	roomRepo := repository.NewRoomRepository(dao.NewRoomDAO(db))
	attendeeRepo := repository.NewAttendeeRepository(dao.NewAttendeeDAO(db))
	svc := service.NewBedspaceService(roomRepo, attendeeRepo)
	handler := v1.NewBedspaceHandler(svc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	attendeeRepo := repository.NewAttendeeRepository(dao.NewAttendeeDAO(db))
	roomRepo := repository.NewRoomRepository(dao.NewRoomDAO(db))
	svc := service.NewReportService(attendeeRepo, roomRepo)
	handler := v1.NewReportHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, attendeeHandler *v1.AttendeeHandler, bedspaceHandler *v1.BedspaceHandler, reportHandler *v1.ReportHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/zones", attendeeHandler.HandleListZones)
		public.GET("/zones/:zone/rooms", attendeeHandler.HandleEligibleRooms)
		public.POST("/attendees", attendeeHandler.HandleRegister)
		public.GET("/attendees/mobile/:mobile", attendeeHandler.HandleLookupAttendee)
		public.GET("/attendees/mobile/:mobile/certificate", attendeeHandler.HandleCertificate)
		public.POST("/attendees/checkin", attendeeHandler.HandleCheckin)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.GET("/auth/me", authHandler.HandleMe)

		admin.GET("/attendees", attendeeHandler.HandleListAttendees)
		admin.PATCH("/attendees/:id", attendeeHandler.HandleAmendAttendee)
		admin.DELETE("/attendees/:id", attendeeHandler.HandleDeleteAttendee)

		admin.POST("/rooms", bedspaceHandler.HandleCreateRoom)
		admin.GET("/rooms", bedspaceHandler.HandleListRooms)
		admin.DELETE("/rooms/:id", bedspaceHandler.HandleDeleteRoom)
		admin.POST("/allocations", bedspaceHandler.HandleCreateAllocation)
		admin.GET("/allocations", bedspaceHandler.HandleListAllocations)
		admin.DELETE("/allocations/:id", bedspaceHandler.HandleDeleteAllocation)
		admin.GET("/zones/stats", bedspaceHandler.HandleZoneStats)
		admin.GET("/bedspace/summary", bedspaceHandler.HandleSummary)

		admin.GET("/reports/attendance", reportHandler.HandleAttendanceReport)
		admin.GET("/reports/bedspace", reportHandler.HandleBedspaceReport)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Summit API"
	docs.SwaggerInfo.Description = "Conference registration, attendance and bedspace API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
