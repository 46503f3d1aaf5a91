package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
)

func TestCreateEventValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)

	// 描述为空
	_, err := svc.CreateEvent(&CreateEventInput{SensorID: sensor.ID, Description: "  "})
	assert.ErrorIs(t, err, ErrDescriptionRequired)

	// 传感器不存在，且不留下半写入的事件
	_, err = svc.CreateEvent(&CreateEventInput{SensorID: 999, Description: "Smoke detected"})
	assert.ErrorIs(t, err, ErrEventSensorNotFound)

	var count int64
	db.Model(&models.Event{}).Count(&count)
	assert.EqualValues(t, 0, count)

	// 预案不存在
	missing := uint(999)
	_, err = svc.CreateEvent(&CreateEventInput{
		SensorID:    sensor.ID,
		ScenarioID:  &missing,
		Description: "Smoke detected",
	})
	assert.ErrorIs(t, err, ErrEventScenarioNotFound)

	db.Model(&models.Event{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateEventDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)

	ev, err := svc.CreateEvent(&CreateEventInput{SensorID: sensor.ID, Description: " Smoke detected "})
	require.NoError(t, err)

	assert.Equal(t, string(models.EventStatusNew), ev.Status)
	assert.Equal(t, models.DefaultEventSeverity, ev.Severity)
	assert.Equal(t, "Smoke detected", ev.Description)
	assert.Nil(t, ev.ResolvedAt)
	assert.Nil(t, ev.ResolvedBy)
	assert.Equal(t, "Smoke-1 (smoke)", ev.SensorName)
	assert.Equal(t, "—", ev.ScenarioName)
}

func TestGetAllEventsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)

	now := time.Now()
	mustCreateEventAt(t, db, sensor.ID, "oldest", now.Add(-2*time.Hour))
	mustCreateEventAt(t, db, sensor.ID, "newest", now)
	mustCreateEventAt(t, db, sensor.ID, "middle", now.Add(-1*time.Hour))

	events, total, err := svc.GetAllEvents(1, 20)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.EqualValues(t, 3, total)

	assert.Equal(t, "newest", events[0].Description)
	assert.Equal(t, "middle", events[1].Description)
	assert.Equal(t, "oldest", events[2].Description)
}

func TestGetAllEventsPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)

	now := time.Now()
	for i := 0; i < 5; i++ {
		mustCreateEventAt(t, db, sensor.ID, fmt.Sprintf("event-%d", i), now.Add(-time.Duration(i)*time.Hour))
	}

	// 第一页拿到最新的两条，总数不受分页影响
	page1, total, err := svc.GetAllEvents(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page1, 2)
	assert.Equal(t, "event-0", page1[0].Description)
	assert.Equal(t, "event-1", page1[1].Description)

	page2, _, err := svc.GetAllEvents(2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, "event-2", page2[0].Description)

	// 末页只剩一条
	page3, _, err := svc.GetAllEvents(3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, "event-4", page3[0].Description)
}

func TestResolveEvent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)
	user := mustCreateUser(t, db, "guard", "guard@pyrosafe.io")

	ev, err := svc.CreateEvent(&CreateEventInput{SensorID: sensor.ID, Description: "Smoke detected"})
	require.NoError(t, err)

	result, err := svc.ResolveEvent(ev.ID, CallerIdentity{UserID: user.ID, Username: user.Username})
	require.NoError(t, err)
	assert.Equal(t, ev.ID, result.EventID)
	assert.Equal(t, "guard", result.ResolverName)

	got, err := svc.GetEventByID(ev.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.EventStatusResolved), got.Status)
	require.NotNil(t, got.ResolvedBy)
	assert.Equal(t, user.ID, *got.ResolvedBy)
	assert.NotNil(t, got.ResolvedAt)
	assert.Equal(t, "guard", got.ResolvedByName)
}

func TestResolveEventTwiceKeepsFirstResolution(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)
	first := mustCreateUser(t, db, "guard", "guard@pyrosafe.io")
	second := mustCreateUser(t, db, "other", "other@pyrosafe.io")

	ev, err := svc.CreateEvent(&CreateEventInput{SensorID: sensor.ID, Description: "Smoke detected"})
	require.NoError(t, err)

	_, err = svc.ResolveEvent(ev.ID, CallerIdentity{UserID: first.ID, Username: first.Username})
	require.NoError(t, err)

	// 第二次解决被拒绝，第一次解决的记录不被覆盖
	_, err = svc.ResolveEvent(ev.ID, CallerIdentity{UserID: second.ID, Username: second.Username})
	assert.ErrorIs(t, err, ErrEventAlreadyResolved)

	got, err := svc.GetEventByID(ev.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ResolvedBy)
	assert.Equal(t, first.ID, *got.ResolvedBy)
}

func TestResolveEventNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db, testConfig())

	_, err := svc.ResolveEvent(42, CallerIdentity{UserID: 1, Username: "guard"})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventProjectionPlaceholders(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)

	ev := mustCreateEventAt(t, db, sensor.ID, "Smoke detected", time.Now())

	// 解决人不存在的已解决事件使用兜底显示名
	missingUser := uint(999)
	now := time.Now()
	require.NoError(t, db.Model(&models.Event{}).Where("id = ?", ev.ID).Updates(map[string]interface{}{
		"status":      models.EventStatusResolved,
		"resolved_at": now,
		"resolved_by": missingUser,
	}).Error)

	got, err := svc.GetEventByID(ev.ID)
	require.NoError(t, err)
	assert.Equal(t, DefaultResolverName, got.ResolvedByName)
	assert.Equal(t, "Smoke-1 (smoke)", got.SensorName)
}

func TestDeleteEventAnyStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)
	user := mustCreateUser(t, db, "guard", "guard@pyrosafe.io")

	ev, err := svc.CreateEvent(&CreateEventInput{SensorID: sensor.ID, Description: "Smoke detected"})
	require.NoError(t, err)

	_, err = svc.ResolveEvent(ev.ID, CallerIdentity{UserID: user.ID, Username: user.Username})
	require.NoError(t, err)

	// 已解决的事件同样可以删除
	assert.NoError(t, svc.DeleteEvent(ev.ID))
	assert.ErrorIs(t, svc.DeleteEvent(ev.ID), ErrEventNotFound)
}
