package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
)

// setupTestDB 创建一个内存数据库并迁移全部模型
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Zone{},
		&models.Sensor{},
		&models.Scenario{},
		&models.User{},
		&models.Event{},
		&models.DeliveryLog{},
	))

	return db
}

// testConfig 返回测试用的最小配置
func testConfig() *config.Config {
	return &config.Config{
		SMTPTimeout: 5 * time.Second,
		ReportTTL:   time.Hour,
	}
}

// mustCreateZone 插入一个区域
func mustCreateZone(t *testing.T, db *gorm.DB, name string, floor int, area float64) *models.Zone {
	t.Helper()

	zone := &models.Zone{ZoneName: name, Floor: floor, Area: area}
	require.NoError(t, db.Create(zone).Error)
	return zone
}

// mustCreateSensor 插入一个传感器
func mustCreateSensor(t *testing.T, db *gorm.DB, zoneID uint, name string, status models.SensorStatus) *models.Sensor {
	t.Helper()

	sensor := &models.Sensor{
		SensorName:  name,
		SensorValue: "0",
		SensorType:  "smoke",
		Status:      status,
		ZoneID:      zoneID,
	}
	require.NoError(t, db.Create(sensor).Error)
	return sensor
}

// mustCreateScenario 插入一个响应预案
func mustCreateScenario(t *testing.T, db *gorm.DB, scenarioType string) *models.Scenario {
	t.Helper()

	scenario := &models.Scenario{ScenarioType: scenarioType, Priority: "Medium", IsActive: true}
	require.NoError(t, db.Create(scenario).Error)
	return scenario
}

// mustCreateUser 插入一个用户，密码已哈希的场景下直接写入
func mustCreateUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Email: email, Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// mustCreateEventAt 插入一条指定创建时间的事件记录，
// 用于构造报告时间窗口边界和排序场景
func mustCreateEventAt(t *testing.T, db *gorm.DB, sensorID uint, description string, createdAt time.Time) *models.Event {
	t.Helper()

	ev := &models.Event{
		SensorID:    sensorID,
		Severity:    models.DefaultEventSeverity,
		Status:      models.EventStatusNew,
		Description: description,
		EventTime:   createdAt,
	}
	ev.CreatedAt = createdAt
	require.NoError(t, db.Create(ev).Error)
	return ev
}
