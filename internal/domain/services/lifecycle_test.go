package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
)

// TestFullIncidentLifecycle 串起完整的业务流：
// 建区 -> 装传感器 -> 触发事件 -> 解决 -> 出周报
func TestFullIncidentLifecycle(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	zoneSvc := NewZoneService(db, cfg)
	sensorSvc := NewSensorService(db, cfg)
	userSvc := NewUserService(db, cfg)
	eventSvc := NewEventService(db, cfg)
	reportSvc := NewReportService(db, cfg)

	zone := &models.Zone{ZoneName: "A", Floor: 1, Area: 50}
	require.NoError(t, zoneSvc.CreateZone(zone))

	sensor := &models.Sensor{SensorName: "S1", SensorValue: "0", SensorType: "smoke", ZoneID: zone.ID}
	require.NoError(t, sensorSvc.CreateSensor(sensor))

	user := &models.User{Username: "U1", Email: "u1@pyrosafe.io", Password: "secret123"}
	require.NoError(t, userSvc.CreateUser(user))

	ev, err := eventSvc.CreateEvent(&CreateEventInput{
		SensorID:    sensor.ID,
		Description: "Smoke detected",
	})
	require.NoError(t, err)

	_, err = eventSvc.ResolveEvent(ev.ID, CallerIdentity{UserID: user.ID, Username: user.Username})
	require.NoError(t, err)

	artifact, err := reportSvc.GenerateWeeklyReport(zone.ID, "", CallerIdentity{UserID: user.ID, Username: user.Username})
	require.NoError(t, err)

	text := string(artifact.Content)
	assert.Contains(t, text, "S1")
	assert.Contains(t, text, "Smoke detected")
	assert.Contains(t, text, "Resolved by U1")

	// 文件名携带区域名和当天的日期令牌
	assert.Contains(t, artifact.FileName, "A")
	assert.Contains(t, artifact.FileName, time.Now().Format("20060102"))
}

// TestDeleteZoneAfterRemovingSensor 有事件时拒绝删区，
// 事件和传感器清理后删除成功
func TestDeleteZoneAfterRemovingSensor(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	zoneSvc := NewZoneService(db, cfg)
	sensorSvc := NewSensorService(db, cfg)
	eventSvc := NewEventService(db, cfg)

	zone := mustCreateZone(t, db, "A", 1, 50)
	sensor := mustCreateSensor(t, db, zone.ID, "S1", models.SensorStatusActive)

	ev, err := eventSvc.CreateEvent(&CreateEventInput{SensorID: sensor.ID, Description: "Smoke detected"})
	require.NoError(t, err)

	assert.ErrorIs(t, zoneSvc.DeleteZone(zone.ID), ErrZoneHasDependents)

	require.NoError(t, eventSvc.DeleteEvent(ev.ID))
	require.NoError(t, sensorSvc.DeleteSensor(sensor.ID))

	assert.NoError(t, zoneSvc.DeleteZone(zone.ID))
}
