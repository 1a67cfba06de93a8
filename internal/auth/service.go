package auth

import (
	"context"
	"errors"
	"time"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/config"
	"busline/internal/shared/database/tx"
	"busline/internal/shared/session"
	"busline/internal/users"
	"busline/internal/wallets"
	"busline/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials error = apperrors.AuthorizationError{Unauthenticated: true, Msg: "Invalid email or password"}
	ErrUserNotFound       error = apperrors.NotFoundError{Resource: "user"}
	ErrUserAlreadyExists  error = apperrors.ConflictError{Resource: "user", Msg: "User with this email already exists"}
	ErrInvalidToken       error = apperrors.AuthorizationError{Unauthenticated: true, Msg: "Invalid or expired refresh token"}
)

// WalletCreator opens the zero-balance wallet of a new account
type WalletCreator interface {
	Create(ctx context.Context, wallet *wallets.Wallet) error
}

// StagingClearer drops whatever passengers a session had staged
type StagingClearer interface {
	Clear(ctx context.Context, sc session.Context) error
}

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, sc session.Context) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) error
	ValidateToken(tokenString string) (*JWTClaims, error)
}

type service struct {
	repo    Repository
	tx      tx.Transactor
	wallets WalletCreator
	staging StagingClearer
	config  *config.Config
	log     *logger.Logger
}

func NewService(repo Repository, transactor tx.Transactor, walletCreator WalletCreator, stagingClearer StagingClearer, cfg *config.Config) Service {
	return &service{
		repo:    repo,
		tx:      transactor,
		wallets: walletCreator,
		staging: stagingClearer,
		config:  cfg,
		log:     logger.GetDefault(),
	}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)

	// Check if user already exists
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Password:  string(hashedPassword),
		Role:      users.RoleUser,
	}

	// User and wallet are created together or not at all
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateUser(ctx, user); err != nil {
			return err
		}
		return s.wallets.Create(ctx, &wallets.Wallet{UserID: user.ID})
	})
	if err != nil {
		return nil, apperrors.Storage("register user", err)
	}

	resp, err := s.issue(user, uuid.NewString())
	if err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, user.ID.String(), "register")
	return resp, nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Every login starts a new staging session
	resp, err := s.issue(user, uuid.NewString())
	if err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, user.ID.String(), "password")
	return resp, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.Type != tokenTypeRefresh || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// Verify user still exists
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	tokenPair, err := s.generateTokenPair(user, claims.SessionID)
	if err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, user.ID.String(), "refresh")
	return tokenPair, nil
}

func (s *service) Logout(ctx context.Context, sc session.Context) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	return s.staging.Clear(ctx, sc)
}

func (s *service) ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	// Verify current password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return apperrors.AuthorizationError{Msg: "Current password is incorrect"}
	}

	// Hash new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdateUserPassword(ctx, userID, string(hashedPassword))
}

func (s *service) ValidateToken(tokenString string) (*JWTClaims, error) {
	return s.validateToken(tokenString)
}

func (s *service) issue(user *users.User, sessionID string) (*AuthResponse, error) {
	tokenPair, err := s.generateTokenPair(user, sessionID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:         toUserResponse(user),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

func (s *service) generateTokenPair(user *users.User, sessionID string) (*TokenPair, error) {
	now := time.Now()

	accessToken, err := s.sign(user, sessionID, tokenTypeAccess, now, s.config.JWT.JWTExpiresIn)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.sign(user, sessionID, tokenTypeRefresh, now, s.config.JWT.RefreshExpiresIn)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func (s *service) sign(user *users.User, sessionID, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := JWTClaims{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Role:      string(user.Role),
		Type:      tokenType,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "busline",
			Subject:   user.ID.String(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWT.Secret))
}

func (s *service) validateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
