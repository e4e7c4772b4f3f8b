package services

import (
	"testing"
	"time"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/middleware"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, time.Hour)

	user, err := service.CreateUser(&models.UserModel{Username: "admin", Password: "testpass123"})
	require.NoError(t, err)

	assert.NotEqual(t, "testpass123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("testpass123")))
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, time.Hour)

	user, err := service.CreateUser(&models.UserModel{Username: "admin", Password: "testpass123"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser(user.Id))
	assert.ErrorIs(t, service.DeleteUser(user.Id), ErrUserNotFound)
	assert.ErrorIs(t, service.DeleteUser(99999), ErrUserNotFound)
}

func TestAuthenticateUser(t *testing.T) {
	db := setupTestDB(t)
	middleware.SetSecretKey("test-secret")
	service := NewUserService(db, time.Hour)

	created, err := service.CreateUser(&models.UserModel{Username: "admin", Password: "testpass123"})
	require.NoError(t, err)

	tokenString, err := service.AuthenticateUser("admin", "testpass123")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	// The token carries the user id and validates against the signing key
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.EqualValues(t, created.Id, claims["id"])
}

func TestAuthenticateUserBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	middleware.SetSecretKey("test-secret")
	service := NewUserService(db, time.Hour)

	_, err := service.CreateUser(&models.UserModel{Username: "admin", Password: "testpass123"})
	require.NoError(t, err)

	_, err = service.AuthenticateUser("admin", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.AuthenticateUser("nobody", "testpass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
