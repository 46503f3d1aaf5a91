package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/pkg/logger"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// MQTT事件广播服务
	mqttEventService services.InterfaceMQTTEventService

	// 业务服务
	zoneService     services.InterfaceZoneService
	sensorService   services.InterfaceSensorService
	scenarioService services.InterfaceScenarioService
	userService     services.InterfaceUserService
	eventService    services.InterfaceEventService

	// 报告相关服务
	reportService    services.InterfaceReportService
	emailService     services.InterfaceEmailService
	reportDispatcher services.InterfaceReportDispatcher

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)

	// 初始化MQTT事件广播服务并连接
	c.mqttEventService = services.NewMQTTEventService(c.config)
	if err := c.mqttEventService.Connect(); err != nil {
		logger.Warning("MQTT服务连接失败: %v", err)
	}

	// 初始化业务服务
	c.zoneService = services.NewZoneService(c.db, c.config)
	c.sensorService = services.NewSensorService(c.db, c.config)
	c.scenarioService = services.NewScenarioService(c.db, c.config)
	c.userService = services.NewUserService(c.db, c.config)
	c.eventService = services.NewEventService(c.db, c.config)

	// 初始化报告相关服务
	c.reportService = services.NewReportService(c.db, c.config)
	c.emailService = services.NewEmailService(c.config)
	c.reportDispatcher = services.NewReportDispatcher(c.db, c.config, c.emailService)
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetJWTService 获取JWT服务
func (c *ServiceContainer) GetJWTService() services.InterfaceJWTService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jwtService
}

// GetRedisService 获取Redis服务
func (c *ServiceContainer) GetRedisService() services.InterfaceRedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}

// GetMQTTEventService 获取MQTT事件广播服务
func (c *ServiceContainer) GetMQTTEventService() services.InterfaceMQTTEventService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mqttEventService
}

// GetZoneService 获取区域服务
func (c *ServiceContainer) GetZoneService() services.InterfaceZoneService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.zoneService
}

// GetSensorService 获取传感器服务
func (c *ServiceContainer) GetSensorService() services.InterfaceSensorService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sensorService
}

// GetScenarioService 获取预案服务
func (c *ServiceContainer) GetScenarioService() services.InterfaceScenarioService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scenarioService
}

// GetUserService 获取用户服务
func (c *ServiceContainer) GetUserService() services.InterfaceUserService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userService
}

// GetEventService 获取事件服务
func (c *ServiceContainer) GetEventService() services.InterfaceEventService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.eventService
}

// GetReportService 获取报告服务
func (c *ServiceContainer) GetReportService() services.InterfaceReportService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reportService
}

// GetEmailService 获取邮件服务
func (c *ServiceContainer) GetEmailService() services.InterfaceEmailService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.emailService
}

// GetReportDispatcher 获取报告投递器
func (c *ServiceContainer) GetReportDispatcher() services.InterfaceReportDispatcher {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reportDispatcher
}
