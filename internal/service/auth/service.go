package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
	repo "github.com/cyclehub/inventoryman/internal/repository/mongodb"
)

const tokenTTL = time.Hour

// Claims are the session token claims: the username plus the role used for
// page-level authorization.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Service handles staff registration, login and session token validation.
type Service struct {
	users  repo.UserStore
	secret []byte
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new auth service instance.
func NewService(users repo.UserStore, secret string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, secret: []byte(secret), logger: logger, now: time.Now}
}

// Register creates a staff account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, password, role string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password must not be empty", apperror.ErrValidation)
	}

	// Friendly pre-check; the unique index on username is what actually
	// guarantees uniqueness under concurrent registrations.
	if _, err := s.users.FindUserByUsername(ctx, username); err == nil {
		return fmt.Errorf("%w: username %s", apperror.ErrDuplicate, username)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.InsertUser(ctx, models.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}); err != nil {
		return err
	}

	s.logger.Info("user registered", zap.String("username", username), zap.String("role", role))
	return nil
}

// Login checks the credentials and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, *models.Identity, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if errors.Is(err, apperror.ErrNotFound) {
		return "", nil, fmt.Errorf("%w: invalid credentials", apperror.ErrUnauthorized)
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", apperror.ErrUnauthorized)
	}

	token, err := s.issueToken(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user logged in", zap.String("username", username))
	return token, &models.Identity{User: user.Username, Role: user.Role}, nil
}

func (s *Service) issueToken(username, role string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   role,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Username: username,
		Role:     role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a session token and returns the identity it carries.
func (s *Service) ValidateToken(tokenString string) (*models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", apperror.ErrUnauthorized)
	}

	return &models.Identity{User: claims.Username, Role: claims.Role}, nil
}
