package userapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogicum/internal/core/errs"
	userEntity "blogicum/internal/core/user"
	sessionPort "blogicum/internal/ports/session"
	userPort "blogicum/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService handles registration, login/logout and profile edits.
type UserService struct {
	UserRepository userPort.UserRepository
	Sessions       sessionPort.Store

	jwtKey   []byte
	validate *validator.Validate
	logger   *zap.Logger
}

func NewUserService(repo userPort.UserRepository, sessions sessionPort.Store, jwtKey []byte, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		Sessions:       sessions,
		jwtKey:         jwtKey,
		validate:       validator.New(),
		logger:         logger,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, in userPort.RegisterInput) (*userPort.UserDTO, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}

	if existing, err := s.UserRepository.FindByUsername(ctx, in.Username); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: username already taken", errs.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("username", u.Username))
	return userPort.ToDTO(u), nil
}

// Login checks the credentials and issues a signed token.
func (s *UserService) Login(ctx context.Context, in userPort.LoginInput) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	claims := &jwt.StandardClaims{
		Id:        uuid.Must(uuid.NewV4()).String(),
		Subject:   u.ID.String(),
		Issuer:    "blogicum",
		ExpiresAt: expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		s.logger.Error("signing token", zap.Error(err))
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}

// Logout revokes the presented token for the remainder of its life.
func (s *UserService) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.parse(rawToken)
	if err != nil {
		return err
	}
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		return nil
	}
	return s.Sessions.Revoke(ctx, claims.Id, ttl)
}

// VerifyToken validates a token and returns the acting user's ID. A
// revoked token is as invalid as a forged one.
func (s *UserService) VerifyToken(ctx context.Context, rawToken string) (uuid.UUID, error) {
	claims, err := s.parse(rawToken)
	if err != nil {
		return uuid.Nil, err
	}

	revoked, err := s.Sessions.IsRevoked(ctx, claims.Id)
	if err != nil {
		return uuid.Nil, err
	}
	if revoked {
		return uuid.Nil, ErrInvalidCredentials
	}

	actorID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidCredentials
	}
	return actorID, nil
}

// Get returns the account behind an ID, for the edit-profile form.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(u), nil
}

// UpdateProfile edits the actor's own account fields.
func (s *UserService) UpdateProfile(ctx context.Context, actorID uuid.UUID, in userPort.ProfileInput) (*userPort.UserDTO, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}

	u, err := s.UserRepository.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if in.Username != u.Username {
		if taken, err := s.UserRepository.FindByUsername(ctx, in.Username); err == nil && taken != nil {
			return nil, fmt.Errorf("%w: username already taken", errs.ErrConflict)
		}
	}

	u.Username = in.Username
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Email = in.Email

	updated, err := s.UserRepository.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(updated), nil
}

func (s *UserService) parse(rawToken string) (*jwt.StandardClaims, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}
