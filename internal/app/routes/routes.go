package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/NureKulabukhovaTaisiia/PyroSafe/docs"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/app/controllers"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/app/middleware"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services/container"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	api.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	api.GET("/ping", controllers.HandlePingFunc())
	api.GET("/health", controllers.HandleHealthFunc(container))

	// 认证路由
	api.POST("/auth/login", controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 当前身份
	auth.GET("/auth/me", controllers.HandleAuthFunc(container, "me"))

	// 区域路由
	zoneGroup := auth.Group("/zones")
	zoneGroup.GET("", middleware.Cache(30*time.Second), controllers.HandleZoneFunc(container, "getZones"))
	zoneGroup.GET("/:id", controllers.HandleZoneFunc(container, "getZone"))
	zoneGroup.POST("", controllers.HandleZoneFunc(container, "createZone"))
	zoneGroup.PUT("/:id", controllers.HandleZoneFunc(container, "updateZone"))
	zoneGroup.DELETE("/:id", controllers.HandleZoneFunc(container, "deleteZone"))

	// 传感器路由
	sensorGroup := auth.Group("/sensors")
	sensorGroup.GET("", middleware.Cache(30*time.Second), controllers.HandleSensorFunc(container, "getSensors"))
	sensorGroup.GET("/:id", controllers.HandleSensorFunc(container, "getSensor"))
	sensorGroup.POST("", controllers.HandleSensorFunc(container, "createSensor"))
	sensorGroup.PUT("/:id", controllers.HandleSensorFunc(container, "updateSensor"))
	sensorGroup.DELETE("/:id", controllers.HandleSensorFunc(container, "deleteSensor"))

	// 响应预案路由
	scenarioGroup := auth.Group("/scenarios")
	scenarioGroup.GET("", middleware.Cache(1*time.Minute), controllers.HandleScenarioFunc(container, "getScenarios"))
	scenarioGroup.GET("/:id", controllers.HandleScenarioFunc(container, "getScenario"))
	scenarioGroup.POST("", controllers.HandleScenarioFunc(container, "createScenario"))
	scenarioGroup.PUT("/:id", controllers.HandleScenarioFunc(container, "updateScenario"))
	scenarioGroup.DELETE("/:id", controllers.HandleScenarioFunc(container, "deleteScenario"))

	// 用户路由，用户管理仅限管理员
	userGroup := auth.Group("/users")
	userGroup.Use(middleware.AuthenticateAdmin())
	userGroup.GET("", controllers.HandleUserFunc(container, "getUsers"))
	userGroup.GET("/:id", controllers.HandleUserFunc(container, "getUser"))
	userGroup.POST("", controllers.HandleUserFunc(container, "createUser"))
	userGroup.PUT("/:id", controllers.HandleUserFunc(container, "updateUser"))
	userGroup.DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))

	// 事件路由，事件查询不做缓存，保证生命周期变化即时可见
	eventGroup := auth.Group("/events")
	eventGroup.GET("", controllers.HandleEventFunc(container, "getEvents"))
	eventGroup.GET("/:id", controllers.HandleEventFunc(container, "getEvent"))
	eventGroup.POST("", controllers.HandleEventFunc(container, "createEvent"))
	eventGroup.POST("/:id/resolve", controllers.HandleEventFunc(container, "resolveEvent"))
	eventGroup.DELETE("/:id", controllers.HandleEventFunc(container, "deleteEvent"))

	// 报告路由，生成接口按IP和路径组合限流
	reportGroup := auth.Group("/reports")
	reportGroup.POST("/weekly", middleware.CombinedRateLimiter(1, 3), controllers.HandleReportFunc(container, "generateWeeklyReport"))
	reportGroup.GET("/download/:id", controllers.HandleReportFunc(container, "downloadReport"))
}
