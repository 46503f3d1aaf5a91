package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
)

func TestWeeklyReportWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)

	now := time.Now()
	mustCreateEventAt(t, db, sensor.ID, "inside window", now.Add(-6*24*time.Hour))
	mustCreateEventAt(t, db, sensor.ID, "outside window", now.Add(-8*24*time.Hour))

	artifact, err := svc.GenerateWeeklyReport(zone.ID, "", CallerIdentity{UserID: 1, Username: "guard"})
	require.NoError(t, err)

	assert.Equal(t, 1, artifact.EventCount)

	text := string(artifact.Content)
	assert.Contains(t, text, "inside window")
	assert.NotContains(t, text, "outside window")
}

func TestWeeklyReportAllZones(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	zoneA := mustCreateZone(t, db, "Warehouse A", 1, 100)
	zoneB := mustCreateZone(t, db, "Warehouse B", 2, 50)
	sensorA := mustCreateSensor(t, db, zoneA.ID, "Smoke-1", models.SensorStatusActive)
	mustCreateSensor(t, db, zoneB.ID, "Heat-1", models.SensorStatusActive)

	mustCreateEventAt(t, db, sensorA.ID, "Smoke detected", time.Now())

	artifact, err := svc.GenerateWeeklyReport(AllZones, "", CallerIdentity{UserID: 1, Username: "guard"})
	require.NoError(t, err)

	assert.Equal(t, 2, artifact.ZoneCount)
	assert.Equal(t, 2, artifact.SensorCount)
	assert.Equal(t, 1, artifact.EventCount)

	text := string(artifact.Content)
	assert.Contains(t, text, "SUMMARY:")
	assert.Contains(t, text, "Zones: 2 | Total area: 150.0 m²")
	assert.Contains(t, text, "Zone: Warehouse A")
	assert.Contains(t, text, "Zone: Warehouse B")
	assert.Contains(t, text, "— No events this week —")
	assert.Contains(t, text, "Guard: guard")
	assert.True(t, strings.HasSuffix(artifact.FileName, ".txt"))
	assert.Contains(t, artifact.FileName, "All_Zones")
}

func TestWeeklyReportSingleZoneFileName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	zone := mustCreateZone(t, db, "Склад A/1", 1, 120.5)

	artifact, err := svc.GenerateWeeklyReport(zone.ID, "", CallerIdentity{UserID: 1, Username: "guard"})
	require.NoError(t, err)

	// 文件名只保留安全字符，非法字符替换为下划线
	assert.True(t, strings.HasPrefix(artifact.FileName, "PyroSafe_Report_"))
	assert.NotContains(t, artifact.FileName, "/")
	assert.NotContains(t, artifact.FileName, " ")
	assert.Contains(t, artifact.FileName, "A_1")
}

func TestWeeklyReportZoneNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	_, err := svc.GenerateWeeklyReport(42, "", CallerIdentity{UserID: 1, Username: "guard"})
	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestWeeklyReportGuardComment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	mustCreateZone(t, db, "Warehouse A", 1, 120.5)

	artifact, err := svc.GenerateWeeklyReport(AllZones, "  ", CallerIdentity{UserID: 1, Username: "guard"})
	require.NoError(t, err)
	assert.Contains(t, string(artifact.Content), "No comments")

	artifact, err = svc.GenerateWeeklyReport(AllZones, " All calm tonight ", CallerIdentity{UserID: 1, Username: "guard"})
	require.NoError(t, err)
	assert.Contains(t, string(artifact.Content), "All calm tonight")
	assert.NotContains(t, string(artifact.Content), "No comments")
}

func TestWeeklyReportResolutionLines(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)
	user := mustCreateUser(t, db, "guard", "guard@pyrosafe.io")

	eventSvc := NewEventService(db, testConfig())
	resolved, err := eventSvc.CreateEvent(&CreateEventInput{SensorID: sensor.ID, Description: "Handled fire"})
	require.NoError(t, err)
	_, err = eventSvc.ResolveEvent(resolved.ID, CallerIdentity{UserID: user.ID, Username: user.Username})
	require.NoError(t, err)

	_, err = eventSvc.CreateEvent(&CreateEventInput{SensorID: sensor.ID, Description: "Open fire"})
	require.NoError(t, err)

	artifact, err := svc.GenerateWeeklyReport(zone.ID, "", CallerIdentity{UserID: user.ID, Username: user.Username})
	require.NoError(t, err)

	text := string(artifact.Content)
	assert.Contains(t, text, "Resolved by guard")
	assert.Contains(t, text, "UNRESOLVED")
}

func TestWeeklyReportIsReadOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)
	ev := mustCreateEventAt(t, db, sensor.ID, "Smoke detected", time.Now())

	_, err := svc.GenerateWeeklyReport(zone.ID, "comment", CallerIdentity{UserID: 1, Username: "guard"})
	require.NoError(t, err)

	// 报告生成不改变任何事件记录
	var got models.Event
	require.NoError(t, db.First(&got, ev.ID).Error)
	assert.Equal(t, models.EventStatusNew, got.Status)
	assert.Nil(t, got.ResolvedAt)
	assert.Nil(t, got.ResolvedBy)
}
