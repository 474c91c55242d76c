package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bank-ledger/internal/dto"
	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"
	"bank-ledger/internal/repositories"
)

const (
	bearerTokenType = "Bearer"

	// limiterIdleTimeout is how long a username's attempt bucket is kept
	// after its last login attempt
	limiterIdleTimeout = 15 * time.Minute
)

// AuthService handles system user registration, login and sessions
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	sessionRepo     repositories.SessionRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	limiter         LoginLimiterInterface
	notifier        NotifierInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	limiter LoginLimiterInterface,
	notifier NotifierInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		limiter:         limiter,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// Register creates an active system user
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)

	_, err := s.userRepo.GetByUsername(username)
	if err == nil {
		s.recordAuthEvent(ctx, username, false, "registration_duplicate")
		return nil, ledgererrors.NewAuthenticationFailed("username is already registered")
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, ledgererrors.NewInvalidField("password", err.Error())
	}

	user, err := models.NewUser(models.UserParams{
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         models.Role(req.Role),
		Active:       true,
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ledgererrors.NewAuthenticationFailed("username is already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.recordAuthEvent(ctx, username, true, "registration")
	return user, nil
}

// Login authenticates a user and opens a session, replacing any previous one
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)

	if !s.limiter.Allow(username) {
		s.recordAuthEvent(ctx, username, false, "login_throttled")
		return nil, ledgererrors.NewTooManyAttempts(username)
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.recordAuthEvent(ctx, username, false, "login_unknown_user")
			return nil, ledgererrors.NewAuthenticationFailed("invalid username or password")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.Active {
		s.recordAuthEvent(ctx, username, false, "login_inactive_user")
		return nil, ledgererrors.NewAuthenticationFailed("user is inactive")
	}

	// Unknown users and wrong passwords share one message
	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.recordAuthEvent(ctx, username, false, "login_invalid_password")
		return nil, ledgererrors.NewAuthenticationFailed("invalid username or password")
	}

	s.limiter.Reset(username)

	loginAt := s.now()
	user.LastLoginAt = &loginAt
	if err := s.userRepo.Update(user); err != nil {
		s.logger.WarnContext(ctx, "failed to record last login",
			"error", err,
			"username", username)
	}

	response, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.recordAuthEvent(ctx, username, true, "login_success")
	return response, nil
}

// Logout ends the session bound to the token
func (s *AuthService) Logout(ctx context.Context, sessionToken string) error {
	claims, err := s.VerifySession(ctx, sessionToken)
	if err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(claims.Username); err != nil && !errors.Is(err, repositories.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.notifier.LogSessionEvent(ctx, claims.Username, "closed")
	s.recordActiveSessions()
	return nil
}

// VerifySession accepts a token only while its session is the live one
func (s *AuthService) VerifySession(ctx context.Context, sessionToken string) (*models.CustomClaims, error) {
	claims, err := s.tokenService.ValidateSessionToken(sessionToken)
	if err != nil {
		return nil, ledgererrors.NewSessionInvalid(err.Error())
	}

	session, err := s.sessionRepo.GetByUsername(claims.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ledgererrors.NewSessionInvalid("no active session")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.JTI != claims.ID {
		return nil, ledgererrors.NewSessionInvalid("session was replaced")
	}

	if session.IsExpired(s.now()) {
		return nil, ledgererrors.NewSessionInvalid("session expired")
	}

	return claims, nil
}

// RenewSession issues a fresh token with a new expiry and retires the old one
func (s *AuthService) RenewSession(ctx context.Context, sessionToken string) (*dto.TokenResponse, error) {
	claims, err := s.VerifySession(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(claims.Username)
	if err != nil {
		return nil, ledgererrors.NewSessionInvalid("user no longer exists")
	}
	if !user.Active {
		return nil, ledgererrors.NewSessionInvalid("user is inactive")
	}

	response, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.notifier.LogSessionEvent(ctx, user.Username, "renewed")
	return response, nil
}

// PurgeExpired drops every session past its expiry and forgets idle login
// attempt buckets
func (s *AuthService) PurgeExpired(ctx context.Context) (int64, error) {
	removed, err := s.sessionRepo.DeleteExpired(s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}

	forgotten := s.limiter.Cleanup(limiterIdleTimeout)
	if removed > 0 || forgotten > 0 {
		s.logger.InfoContext(ctx, "expired sessions purged",
			"count", removed,
			"idle_limiters", forgotten)
	}
	s.recordActiveSessions()
	return removed, nil
}

func (s *AuthService) openSession(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	token, claims, err := s.tokenService.GenerateSessionToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &models.Session{
		JTI:       claims.ID,
		Username:  user.Username,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := s.sessionRepo.Save(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.notifier.LogSessionEvent(ctx, user.Username, "opened")
	s.recordActiveSessions()

	return &dto.TokenResponse{
		SessionToken: token,
		TokenType:    bearerTokenType,
		ExpiresAt:    session.ExpiresAt,
		Username:     user.Username,
		Role:         string(user.Role),
	}, nil
}

func (s *AuthService) recordAuthEvent(ctx context.Context, username string, success bool, event string) {
	s.notifier.LogAuthenticationAttempt(ctx, username, success, event)
	s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": event})
}

func (s *AuthService) recordActiveSessions() {
	s.metrics.RecordGauge(MetricActiveSessions, float64(s.sessionRepo.Count()), nil)
}
