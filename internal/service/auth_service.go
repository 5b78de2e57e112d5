package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/pkg/logger"
	"memory-vault-be/internal/repository/contract"
	"memory-vault-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 7 * 24 * time.Hour

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)
	letterPattern   = regexp.MustCompile(`[A-Za-z]`)
	digitPattern    = regexp.MustCompile(`\d`)
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Signin(ctx context.Context, req *dto.SigninRequest, ipAddress string) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo  contract.UserRepository
	limiter   *memory.LoginLimiter
	jwtSecret string
	logger    logger.ILogger
}

func NewAuthService(userRepo contract.UserRepository, limiter *memory.LoginLimiter, jwtSecret string, log logger.ILogger) IAuthService {
	return &authService{
		userRepo:  userRepo,
		limiter:   limiter,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func isStrongPassword(password string) bool {
	if len(password) < 8 || len(password) > 128 {
		return false
	}
	return letterPattern.MatchString(password) && digitPattern.MatchString(password)
}

func (s *authService) issueToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"email":    user.Email,
		"user_id":  user.Id,
		"username": user.Username,
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	username := normalizeUsername(req.Username)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = username
	}

	if email == "" || req.Password == "" || username == "" {
		return nil, NewServiceError(fiber.StatusBadRequest, "Email, username, and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, NewServiceError(fiber.StatusBadRequest, "Enter a valid email address")
	}
	if !usernamePattern.MatchString(username) {
		return nil, NewServiceError(fiber.StatusBadRequest, "Username must be 3-20 characters (letters, numbers, underscore)")
	}
	if !isStrongPassword(req.Password) {
		return nil, NewServiceError(fiber.StatusBadRequest, "Password must be at least 8 characters and include letters and numbers")
	}

	if existing, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, NewServiceError(fiber.StatusBadRequest, "Email is already registered")
	}
	if existing, err := s.userRepo.FindByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, NewServiceError(fiber.StatusBadRequest, "Username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           fmt.Sprintf("%d", time.Now().UnixMilli()),
		Email:        email,
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "User signed up", map[string]interface{}{"email": email})

	return &dto.AuthResponse{
		Token: token,
		User: dto.AuthUser{
			Id:       user.Id,
			Email:    user.Email,
			Username: user.Username,
			Name:     user.Name,
		},
	}, nil
}

func (s *authService) Signin(ctx context.Context, req *dto.SigninRequest, ipAddress string) (*dto.AuthResponse, error) {
	identifier := strings.ToLower(strings.TrimSpace(req.Identifier))
	if identifier == "" || req.Password == "" {
		return nil, NewServiceError(fiber.StatusBadRequest, "Username/email and password are required")
	}

	limiterKey := ipAddress + ":" + identifier
	if blocked, _ := s.limiter.Blocked(limiterKey); blocked {
		return nil, NewServiceError(fiber.StatusTooManyRequests, "Too many failed attempts. Try again later.")
	}

	user, err := s.userRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.limiter.RecordFailure(limiterKey)
		return nil, NewServiceError(fiber.StatusUnauthorized, "Invalid username/email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.limiter.RecordFailure(limiterKey)
		return nil, NewServiceError(fiber.StatusUnauthorized, "Invalid username/email or password")
	}

	s.limiter.RecordSuccess(limiterKey)

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.AuthUser{
			Id:       user.Id,
			Email:    user.Email,
			Username: user.Username,
			Name:     user.Name,
		},
	}, nil
}
