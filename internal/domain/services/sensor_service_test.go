package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
)

func TestCreateSensorRequiresExistingZone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSensorService(db, testConfig())

	err := svc.CreateSensor(&models.Sensor{
		SensorName:  "Smoke-1",
		SensorValue: "0",
		SensorType:  "smoke",
		ZoneID:      999,
	})
	assert.ErrorIs(t, err, ErrSensorZoneNotFound)

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := &models.Sensor{
		SensorName:  "Smoke-1",
		SensorValue: "0",
		SensorType:  "smoke",
		ZoneID:      zone.ID,
	}
	require.NoError(t, svc.CreateSensor(sensor))

	// 未指定状态时默认 Active
	assert.Equal(t, models.SensorStatusActive, sensor.Status)
}

func TestUpdateSensorValidatesTargetZone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSensorService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)

	_, err := svc.UpdateSensor(sensor.ID, map[string]interface{}{"zone_id": uint(999)})
	assert.ErrorIs(t, err, ErrSensorZoneNotFound)

	other := mustCreateZone(t, db, "Warehouse B", 2, 80)
	updated, err := svc.UpdateSensor(sensor.ID, map[string]interface{}{"zone_id": other.ID})
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.ZoneID)
}

func TestDeleteSensorBlockedByEvents(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSensorService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)

	eventSvc := NewEventService(db, testConfig())
	ev, err := eventSvc.CreateEvent(&CreateEventInput{
		SensorID:    sensor.ID,
		Description: "Smoke detected",
	})
	require.NoError(t, err)

	// 未解决或已解决的事件都阻止删除
	err = svc.DeleteSensor(sensor.ID)
	assert.ErrorIs(t, err, ErrSensorHasEvents)

	_, err = eventSvc.ResolveEvent(ev.ID, CallerIdentity{UserID: 1, Username: "guard"})
	require.NoError(t, err)

	err = svc.DeleteSensor(sensor.ID)
	assert.ErrorIs(t, err, ErrSensorHasEvents)

	// 事件删除后传感器即可删除
	require.NoError(t, eventSvc.DeleteEvent(ev.ID))
	assert.NoError(t, svc.DeleteSensor(sensor.ID))
}
