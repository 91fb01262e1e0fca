package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	pestRepo := repository.NewPestRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	reportSvc := services.NewReportService(reportRepo, pestRepo)
	pestSvc := services.NewPestService(pestRepo)
	messageSvc := services.NewMessageService(messageRepo, reportRepo)
	statsSvc := services.NewStatsService(reportRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	pestCtrl := controllers.NewPestController(pestSvc)
	messageCtrl := controllers.NewMessageController(messageSvc)
	statsCtrl := controllers.NewStatsController(statsSvc)

	auth := func(roles ...entity.Role) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public + admin)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/create-user", auth(entity.RoleAdmin), authCtrl.CreateUser)
	}

	// Users (admin only)
	u := r.Group("/users", auth(entity.RoleAdmin))
	{
		u.GET("", userCtrl.List)
		u.GET("/pending", userCtrl.ListPending)
		u.GET("/:userId", userCtrl.Get)
		u.PUT("/:userId/approve", userCtrl.Approve)
		u.DELETE("/:userId/reject", userCtrl.Reject)
		u.DELETE("/:userId/remove", userCtrl.Remove)
		u.PUT("/:userId/role", userCtrl.UpdateRole)
	}

	// Reports — route เฉพาะต้องมาก่อน :id
	rep := r.Group("/reports")
	{
		rep.GET("/my-reports", auth(entity.RoleFarmer), reportCtrl.ListMine)
		rep.POST("/refer-pest", auth(entity.RoleAdmin, entity.RoleAgronomist), reportCtrl.ReferPest)

		rep.GET("/:id", auth(), reportCtrl.Get)
		rep.PUT("/:id", auth(entity.RoleAdmin, entity.RoleAgronomist), reportCtrl.UpdateStatus)
		rep.DELETE("/:id", auth(entity.RoleFarmer), reportCtrl.Delete)

		rep.GET("", auth(entity.RoleAdmin, entity.RoleAgronomist), reportCtrl.ListAll)
		rep.POST("", auth(entity.RoleFarmer), reportCtrl.Create)
	}

	// Pest/Disease library — อ่าน public, เขียน admin
	p := r.Group("/pests")
	{
		p.GET("", pestCtrl.List)
		p.GET("/crop/:cropType", pestCtrl.ListByCrop)
		p.GET("/:id", pestCtrl.Get)

		p.POST("", auth(entity.RoleAdmin), pestCtrl.Create)
		p.PUT("/:id", auth(entity.RoleAdmin), pestCtrl.Update)
		p.DELETE("/:id", auth(entity.RoleAdmin), pestCtrl.Delete)
	}

	// Messages (ต้อง login ทุกเส้น)
	m := r.Group("/messages", auth())
	{
		m.GET("/report/:reportId", messageCtrl.Thread)
		m.POST("", messageCtrl.Send)
		m.GET("/unread/count", messageCtrl.UnreadCount)
		m.GET("", messageCtrl.ListMine)
		m.DELETE("/:messageId", messageCtrl.Delete)
	}

	// Dashboard stats (แยกตาม role)
	st := r.Group("/stats")
	{
		st.GET("/admin", auth(entity.RoleAdmin), statsCtrl.Admin)
		st.GET("/farmer", auth(entity.RoleFarmer), statsCtrl.Farmer)
		st.GET("/agronomist", auth(entity.RoleAgronomist), statsCtrl.Agronomist)
	}

	// WebSocket: live message thread ต่อ report
	hub := ws.NewMessageHub(messageSvc)
	go hub.Run()
	r.GET("/ws/reports/:reportId", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
