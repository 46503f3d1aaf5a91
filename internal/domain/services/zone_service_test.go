package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
)

func TestCreateZoneRequiresName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewZoneService(db, testConfig())

	err := svc.CreateZone(&models.Zone{ZoneName: "   ", Floor: 1})
	assert.ErrorIs(t, err, ErrZoneNameRequired)

	err = svc.CreateZone(&models.Zone{ZoneName: "Warehouse A", Floor: 1, Area: 120.5})
	assert.NoError(t, err)
}

func TestUpdateZoneKeepsID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewZoneService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)

	updated, err := svc.UpdateZone(zone.ID, map[string]interface{}{
		"zone_name": "Warehouse B",
		"floor":     2,
	})
	require.NoError(t, err)
	assert.Equal(t, zone.ID, updated.ID)
	assert.Equal(t, "Warehouse B", updated.ZoneName)
	assert.Equal(t, 2, updated.Floor)
}

func TestDeleteZoneBlockedByActiveSensor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewZoneService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)

	err := svc.DeleteZone(zone.ID)
	assert.ErrorIs(t, err, ErrZoneHasDependents)

	// 区域必须仍然存在
	var count int64
	db.Model(&models.Zone{}).Where("id = ?", zone.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	// 传感器转为非活跃后，且无事件，删除应当成功
	require.NoError(t, db.Model(sensor).Update("status", models.SensorStatusInactive).Error)
	assert.NoError(t, svc.DeleteZone(zone.ID))
}

func TestDeleteZoneRemovesRemainingSensors(t *testing.T) {
	db := setupTestDB(t)
	svc := NewZoneService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	other := mustCreateZone(t, db, "Warehouse B", 2, 80.0)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusInactive)
	kept := mustCreateSensor(t, db, other.ID, "Smoke-2", models.SensorStatusInactive)

	require.NoError(t, svc.DeleteZone(zone.ID))

	// 被删除区域下的传感器不得留下悬挂的 zone_id
	var count int64
	db.Model(&models.Sensor{}).Where("id = ?", sensor.ID).Count(&count)
	assert.EqualValues(t, 0, count)

	// 其他区域的传感器不受影响
	db.Model(&models.Sensor{}).Where("id = ?", kept.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteZoneBlockedByEvents(t *testing.T) {
	db := setupTestDB(t)
	svc := NewZoneService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusInactive)

	// 非活跃传感器下的事件同样阻止删除
	eventSvc := NewEventService(db, testConfig())
	_, err := eventSvc.CreateEvent(&CreateEventInput{
		SensorID:    sensor.ID,
		Description: "Smoke detected",
	})
	require.NoError(t, err)

	err = svc.DeleteZone(zone.ID)
	assert.ErrorIs(t, err, ErrZoneHasDependents)
}

func TestDeleteZoneNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewZoneService(db, testConfig())

	err := svc.DeleteZone(42)
	assert.ErrorIs(t, err, ErrZoneNotFound)
}
