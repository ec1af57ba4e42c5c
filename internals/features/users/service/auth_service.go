package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/configs"
	"github.com/lgwakano/workflow-api/internals/features/users/model"
)

const TokenTTL = time.Hour

// ErrInvalidCredentials covers both unknown username and wrong password so
// the response does not reveal which one failed.
var ErrInvalidCredentials = errors.New("incorrect username or password")

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Authenticate checks the credentials and returns the user on success.
func Authenticate(db *gorm.DB, username, password string) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// IssueToken signs a one-hour HS256 bearer token for the user.
func IssueToken(user *model.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(TokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
