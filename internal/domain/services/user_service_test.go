package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
)

func TestCreateUserUniqueness(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	require.NoError(t, svc.CreateUser(&models.User{
		Username: "guard",
		Email:    "guard@pyrosafe.io",
		Password: "secret123",
	}))

	// 用户名重复
	err := svc.CreateUser(&models.User{
		Username: "guard",
		Email:    "other@pyrosafe.io",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExist)

	// 邮箱重复
	err = svc.CreateUser(&models.User{
		Username: "other",
		Email:    "guard@pyrosafe.io",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExist)
}

func TestCreateUserHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user := &models.User{Username: "guard", Email: "guard@pyrosafe.io", Password: "secret123"}
	require.NoError(t, svc.CreateUser(user))

	// 明文不落库
	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	require.NoError(t, svc.CreateUser(&models.User{
		Username: "guard",
		Email:    "guard@pyrosafe.io",
		Password: "secret123",
	}))

	user, err := svc.Authenticate("guard@pyrosafe.io", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "guard", user.Username)

	// 密码错误和账号不存在返回同一个错误，不泄露账号是否存在
	_, err = svc.Authenticate("guard@pyrosafe.io", "wrong")
	assert.ErrorIs(t, err, ErrUserPasswordIncorrect)

	_, err = svc.Authenticate("nobody@pyrosafe.io", "secret123")
	assert.ErrorIs(t, err, ErrUserPasswordIncorrect)
}

func TestDeleteUserKeepsResolvedReference(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	zone := mustCreateZone(t, db, "Warehouse A", 1, 120.5)
	sensor := mustCreateSensor(t, db, zone.ID, "Smoke-1", models.SensorStatusActive)
	user := mustCreateUser(t, db, "guard", "guard@pyrosafe.io")

	eventSvc := NewEventService(db, testConfig())
	ev, err := eventSvc.CreateEvent(&CreateEventInput{SensorID: sensor.ID, Description: "Smoke detected"})
	require.NoError(t, err)

	_, err = eventSvc.ResolveEvent(ev.ID, CallerIdentity{UserID: user.ID, Username: user.Username})
	require.NoError(t, err)

	// 解决人删除后事件仍可读取，显示名退回兜底值
	require.NoError(t, svc.DeleteUser(user.ID))

	got, err := eventSvc.GetEventByID(ev.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.EventStatusResolved), got.Status)
	assert.Equal(t, DefaultResolverName, got.ResolvedByName)
}
