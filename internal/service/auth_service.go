package service

import (
	"context"
	"errors"
	"time"

	"recipehub/internal/config"
	"recipehub/internal/middleware/auth"
	"recipehub/internal/models"
	"recipehub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims is the decoded identity carried by a session token.
type Claims struct {
	UserID string
	Name   string
}

type AuthService interface {
	// Login authenticates a user, creating the account on first login.
	Login(ctx context.Context, name, password string) (token string, user *models.User, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiry,
	}
}

// Login looks the user up by name and verifies the password. An unknown
// name creates the account on the spot: first login is registration.
// Accounts imported by the ETL sync have an empty password hash, so they
// always fail verification and stay evaluation-only.
func (s *authService) Login(ctx context.Context, name, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.register(ctx, name, password)
	}
	if err != nil {
		return "", nil, err
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) register(ctx context.Context, name, password string) (string, *models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Name:     name,
		Password: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, _ := mapClaims["user_id"].(string)
	name, _ := mapClaims["name"].(string)
	if name == "" {
		return nil, ErrInvalidToken
	}
	return &Claims{UserID: userID, Name: name}, nil
}
