package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chinmayjoshi03/CivicConnect/httpx"
	"github.com/chinmayjoshi03/CivicConnect/logger"
	"github.com/chinmayjoshi03/CivicConnect/models"
	"github.com/chinmayjoshi03/CivicConnect/utils"
)

// AuthUserStore is the slice of user repository behavior AuthService needs.
type AuthUserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthService struct {
	users     AuthUserStore
	jwtSecret string
	log       *logger.Logger
}

func NewAuthService(users AuthUserStore, jwtSecret string, log *logger.Logger) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, log: log}
}

// Register creates a citizen account. Admin accounts are provisioned out of
// band; the API never accepts a role from a client.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	exists, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return httpx.Internal(err)
	}
	if exists {
		return httpx.Validation("User with this email already exists")
	}

	now := time.Now()
	user := &models.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		Role:      models.RoleCitizen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.HashPassword(); err != nil {
		return httpx.Internal(err)
	}
	if err := s.users.Create(ctx, user); err != nil {
		return httpx.Internal(err)
	}

	s.log.WithField("email", in.Email).Info("user registered")
	return nil
}

// Login verifies credentials and mints a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, httpx.Validation("Invalid credentials")
		}
		return "", nil, httpx.Internal(err)
	}

	if !user.ComparePassword(in.Password) {
		return "", nil, httpx.Validation("Invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID.Hex(), s.jwtSecret)
	if err != nil {
		return "", nil, httpx.Internal(err)
	}

	return token, user, nil
}

// Me returns the account behind a verified token.
func (s *AuthService) Me(ctx context.Context, actorID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httpx.NotFound("User not found")
		}
		return nil, httpx.Internal(err)
	}
	return user, nil
}
