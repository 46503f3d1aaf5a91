package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
)

func TestCreateScenarioDefaultsPriority(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScenarioService(db, testConfig())

	scenario := &models.Scenario{ScenarioType: "evacuation"}
	require.NoError(t, svc.CreateScenario(scenario))
	assert.Equal(t, "Medium", scenario.Priority)
}

func TestDeleteScenarioBlockedByEvents(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScenarioService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)
	scenario := mustCreateScenario(t, db, "evacuation")

	eventSvc := NewEventService(db, testConfig())
	ev, err := eventSvc.CreateEvent(&CreateEventInput{
		SensorID:    sensor.ID,
		ScenarioID:  &scenario.ID,
		Description: "Smoke detected",
	})
	require.NoError(t, err)

	err = svc.DeleteScenario(scenario.ID)
	assert.ErrorIs(t, err, ErrScenarioHasEvents)

	require.NoError(t, eventSvc.DeleteEvent(ev.ID))
	assert.NoError(t, svc.DeleteScenario(scenario.ID))
}

func TestDeleteScenarioNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScenarioService(db, testConfig())

	err := svc.DeleteScenario(42)
	assert.ErrorIs(t, err, ErrScenarioNotFound)
}
