package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lgwakano/workflow-api/internals/configs"
	"github.com/lgwakano/workflow-api/internals/constants"
	"github.com/lgwakano/workflow-api/internals/features/users/model"
	"github.com/lgwakano/workflow-api/internals/features/users/service"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.UserModel{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, password, role string) model.UserModel {
	t.Helper()
	hashed, err := service.HashPassword(password)
	require.NoError(t, err)
	user := model.UserModel{Username: username, Password: hashed, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestAuthenticate(t *testing.T) {
	db := setupDB(t)
	createUser(t, db, "john_doe", "s3cret-pass", constants.RoleUser)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := service.Authenticate(db, "john_doe", "s3cret-pass")
		require.NoError(t, err)
		require.Equal(t, "john_doe", user.Username)
		require.Len(t, user.UID, 36)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Authenticate(db, "john_doe", "wrong")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := service.Authenticate(db, "nobody", "s3cret-pass")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestIssueToken(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "admin_user", "s3cret-pass", constants.RoleAdmin)

	previous := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = previous })

	signed, err := service.IssueToken(&user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, token.Method)
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, float64(user.ID), claims["user_id"])
	require.Equal(t, "admin_user", claims["username"])
	require.Equal(t, constants.RoleAdmin, claims["role"])

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	require.WithinDuration(t, time.Now().Add(service.TokenTTL), exp, time.Minute)
}

func TestIssueTokenWithoutSecret(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "mod_user", "s3cret-pass", constants.RoleModerator)

	previous := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = previous })

	_, err := service.IssueToken(&user)
	require.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hashed, err := service.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hashed)

	again, err := service.HashPassword("s3cret-pass")
	require.NoError(t, err)
	// bcrypt salts every hash.
	require.NotEqual(t, hashed, again)
}
