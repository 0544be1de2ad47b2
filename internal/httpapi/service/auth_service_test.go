package service

import (
	"context"
	"testing"
	"time"

	"mediashelf/internal/config"
	"mediashelf/internal/httpapi/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestRegister_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := authService.Register(context.Background(), "test@example.com", "password123", "Test User")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.Password) // stored hashed
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_EmailExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	existingUser := &models.User{Email: "test@example.com"}
	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(existingUser, nil)

	user, err := authService.Register(context.Background(), "test@example.com", "password123", "Test User")

	assert.Equal(t, ErrEmailInUse, err)
	assert.Nil(t, user)
	mockUserRepo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-id",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(user, nil)
	mockUserRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)
	mockRefreshTokenRepo.On("Create", mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	accessToken, refreshToken, returnedUser, err := authService.Login(context.Background(), "test@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, user.Email, returnedUser.Email)
	assert.NotNil(t, returnedUser.LastLogin)
	mockUserRepo.AssertExpectations(t)
	mockRefreshTokenRepo.AssertExpectations(t)
}

func TestLogin_InvalidPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-id",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(user, nil)

	accessToken, refreshToken, returnedUser, err := authService.Login(context.Background(), "test@example.com", "wrongpassword")

	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, accessToken)
	assert.Empty(t, refreshToken)
	assert.Nil(t, returnedUser)
}

func TestLogin_UserNotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	mockUserRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, user, err := authService.Login(context.Background(), "nobody@example.com", "password123")

	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Nil(t, user)
}

func TestLogin_DisabledAccount(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-id",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Disabled: true,
	}

	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(user, nil)

	_, _, returnedUser, err := authService.Login(context.Background(), "test@example.com", "password123")

	assert.Equal(t, ErrAccountDisabled, err)
	assert.Nil(t, returnedUser)
}

func TestValidateToken_Success(t *testing.T) {
	authService := NewAuthService(new(MockUserRepository), new(MockRefreshTokenRepository), testAuthConfig())

	claims := Claims{
		UserID: "user-id",
		Email:  "test@example.com",
		Role:   models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte("test-secret"))

	validatedClaims, err := authService.ValidateToken(tokenString)

	assert.NoError(t, err)
	assert.Equal(t, "user-id", validatedClaims.UserID)
	assert.Equal(t, models.RoleUser, validatedClaims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	authService := NewAuthService(new(MockUserRepository), new(MockRefreshTokenRepository), testAuthConfig())

	claims := Claims{
		UserID: "user-id",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte("test-secret"))

	validatedClaims, err := authService.ValidateToken(tokenString)

	assert.Error(t, err)
	assert.Nil(t, validatedClaims)
}

func TestValidateToken_Garbage(t *testing.T) {
	authService := NewAuthService(new(MockUserRepository), new(MockRefreshTokenRepository), testAuthConfig())

	validatedClaims, err := authService.ValidateToken("invalid.token.here")

	assert.Error(t, err)
	assert.Nil(t, validatedClaims)
}

func TestRefreshAccessToken_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	refreshToken := &models.RefreshToken{
		ID:        "token-id",
		UserID:    "user-id",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
	user := &models.User{ID: "user-id", Role: models.RoleUser}

	mockRefreshTokenRepo.On("FindByToken", "refresh-token").Return(refreshToken, nil)
	mockUserRepo.On("FindByID", mock.Anything, "user-id").Return(user, nil)

	newAccessToken, err := authService.RefreshAccessToken("refresh-token")

	assert.NoError(t, err)
	assert.NotEmpty(t, newAccessToken)
	mockRefreshTokenRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestRefreshAccessToken_Expired(t *testing.T) {
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(new(MockUserRepository), mockRefreshTokenRepo, testAuthConfig())

	refreshToken := &models.RefreshToken{
		ID:        "token-id",
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}

	mockRefreshTokenRepo.On("FindByToken", "expired-token").Return(refreshToken, nil)
	mockRefreshTokenRepo.On("Delete", "token-id").Return(nil)

	newAccessToken, err := authService.RefreshAccessToken("expired-token")

	assert.Error(t, err)
	assert.Empty(t, newAccessToken)
	mockRefreshTokenRepo.AssertExpectations(t)
}

func TestRefreshAccessToken_Revoked(t *testing.T) {
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(new(MockUserRepository), mockRefreshTokenRepo, testAuthConfig())

	refreshToken := &models.RefreshToken{
		ID:        "token-id",
		Token:     "revoked-token",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		Revoked:   true,
	}

	mockRefreshTokenRepo.On("FindByToken", "revoked-token").Return(refreshToken, nil)

	newAccessToken, err := authService.RefreshAccessToken("revoked-token")

	assert.Error(t, err)
	assert.Empty(t, newAccessToken)
}

func TestRefreshAccessToken_DisabledUser(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	refreshToken := &models.RefreshToken{
		ID:        "token-id",
		UserID:    "user-id",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}

	mockRefreshTokenRepo.On("FindByToken", "refresh-token").Return(refreshToken, nil)
	mockUserRepo.On("FindByID", mock.Anything, "user-id").Return(&models.User{ID: "user-id", Disabled: true}, nil)

	newAccessToken, err := authService.RefreshAccessToken("refresh-token")

	assert.Equal(t, ErrAccountDisabled, err)
	assert.Empty(t, newAccessToken)
}

func TestRevokeToken_Success(t *testing.T) {
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(new(MockUserRepository), mockRefreshTokenRepo, testAuthConfig())

	refreshToken := &models.RefreshToken{ID: "token-id", Token: "refresh-token"}

	mockRefreshTokenRepo.On("FindByToken", "refresh-token").Return(refreshToken, nil)
	mockRefreshTokenRepo.On("Revoke", "token-id").Return(nil)

	err := authService.RevokeToken("refresh-token")

	assert.NoError(t, err)
	mockRefreshTokenRepo.AssertExpectations(t)
}
