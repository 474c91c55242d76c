package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"bank-ledger/internal/config"
	"bank-ledger/internal/dto"
	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"
	"bank-ledger/internal/repositories"
	"bank-ledger/internal/repositories/repository_mocks"
	"bank-ledger/internal/services/service_mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	userRepo        *repository_mocks.MockUserRepositoryInterface
	sessionRepo     *repository_mocks.MockSessionRepositoryInterface
	passwordService *service_mocks.MockPasswordServiceInterface
	tokenService    *service_mocks.MockTokenServiceInterface
	limiter         *service_mocks.MockLoginLimiterInterface
	notifier        *service_mocks.MockNotifierInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	authService     AuthServiceInterface
	ctx             context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.sessionRepo = repository_mocks.NewMockSessionRepositoryInterface(s.ctrl)
	s.passwordService = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.tokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.limiter = service_mocks.NewMockLoginLimiterInterface(s.ctrl)
	s.notifier = service_mocks.NewMockNotifierInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.authService = NewAuthService(s.userRepo, s.sessionRepo, s.passwordService, s.tokenService, s.limiter, s.notifier, s.metrics, slog.Default())
	s.ctx = context.Background()

	s.notifier.EXPECT().LogAuthenticationAttempt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.notifier.EXPECT().LogSessionEvent(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(MetricActiveSessions, gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) expectAuthEvent(event string) {
	s.metrics.EXPECT().IncrementCounter(MetricAuthEvent, map[string]string{"event_type": event}).Times(1)
}

func (s *AuthServiceTestSuite) activeUser() *models.User {
	return &models.User{
		ID:           uuid.New(),
		Username:     "teller_01",
		PasswordHash: "hashed_password",
		Role:         models.RoleEmployee,
		Active:       true,
		CreatedAt:    time.Now(),
	}
}

func (s *AuthServiceTestSuite) TestRegister_SuccessfulRegistration() {
	req := &dto.RegisterRequest{Username: "teller_01", Password: "SecurePass123!", Role: "employee"}

	s.userRepo.EXPECT().GetByUsername("teller_01").Return(nil, repositories.ErrUserNotFound).Times(1)
	s.passwordService.EXPECT().HashPassword(req.Password).Return("hashed_password", nil).Times(1)
	s.userRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	s.expectAuthEvent("registration")

	user, err := s.authService.Register(s.ctx, req)

	s.NoError(err)
	s.Require().NotNil(user)
	s.Equal("teller_01", user.Username)
	s.Equal(models.RoleEmployee, user.Role)
	s.True(user.Active)
	s.Equal("hashed_password", user.PasswordHash)
}

func (s *AuthServiceTestSuite) TestRegister_UserAlreadyExists() {
	s.userRepo.EXPECT().GetByUsername("teller_01").Return(s.activeUser(), nil).Times(1)
	s.expectAuthEvent("registration_duplicate")

	user, err := s.authService.Register(s.ctx, &dto.RegisterRequest{Username: "teller_01", Password: "SecurePass123!", Role: "employee"})

	s.True(errors.Is(err, ledgererrors.ErrAuthenticationFailed))
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestRegister_WeakPassword() {
	s.userRepo.EXPECT().GetByUsername("teller_01").Return(nil, repositories.ErrUserNotFound).Times(1)
	s.passwordService.EXPECT().HashPassword("123").Return("", ErrPasswordTooShort).Times(1)

	_, err := s.authService.Register(s.ctx, &dto.RegisterRequest{Username: "teller_01", Password: "123", Role: "employee"})

	s.True(errors.Is(err, ledgererrors.ErrInvalidField))
}

func (s *AuthServiceTestSuite) TestRegister_InvalidUsernameAndRole() {
	s.userRepo.EXPECT().GetByUsername(gomock.Any()).Return(nil, repositories.ErrUserNotFound).Times(2)
	s.passwordService.EXPECT().HashPassword(gomock.Any()).Return("hashed_password", nil).Times(2)

	_, err := s.authService.Register(s.ctx, &dto.RegisterRequest{Username: "ab", Password: "SecurePass123!", Role: "admin"})
	s.True(errors.Is(err, ledgererrors.ErrInvalidField))

	_, err = s.authService.Register(s.ctx, &dto.RegisterRequest{Username: "teller_02", Password: "SecurePass123!", Role: "auditor"})
	s.True(errors.Is(err, ledgererrors.ErrInvalidField))
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	user := s.activeUser()
	expiresAt := time.Now().Add(30 * time.Minute)
	claims := &models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: user.Username,
	}

	s.limiter.EXPECT().Allow("teller_01").Return(true).Times(1)
	s.userRepo.EXPECT().GetByUsername("teller_01").Return(user, nil).Times(1)
	s.passwordService.EXPECT().ComparePassword("SecurePass123!", "hashed_password").Return(true).Times(1)
	s.limiter.EXPECT().Reset("teller_01").Times(1)
	s.userRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	s.tokenService.EXPECT().GenerateSessionToken(user).Return("signed-token", claims, nil).Times(1)
	s.sessionRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(session *models.Session) error {
		s.Equal("jti-1", session.JTI)
		s.Equal("teller_01", session.Username)
		return nil
	}).Times(1)
	s.sessionRepo.EXPECT().Count().Return(1).AnyTimes()
	s.expectAuthEvent("login_success")

	resp, err := s.authService.Login(s.ctx, &dto.LoginRequest{Username: " teller_01 ", Password: "SecurePass123!"})

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal("signed-token", resp.SessionToken)
	s.Equal("Bearer", resp.TokenType)
	s.Equal("employee", resp.Role)
	s.WithinDuration(expiresAt, resp.ExpiresAt, time.Second)
	s.NotNil(user.LastLoginAt)
}

func (s *AuthServiceTestSuite) TestLogin_InvalidPassword() {
	s.limiter.EXPECT().Allow("teller_01").Return(true).Times(1)
	s.userRepo.EXPECT().GetByUsername("teller_01").Return(s.activeUser(), nil).Times(1)
	s.passwordService.EXPECT().ComparePassword("wrong", "hashed_password").Return(false).Times(1)
	s.expectAuthEvent("login_invalid_password")

	resp, err := s.authService.Login(s.ctx, &dto.LoginRequest{Username: "teller_01", Password: "wrong"})

	s.True(errors.Is(err, ledgererrors.ErrAuthenticationFailed))
	s.Nil(resp)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownUser() {
	s.limiter.EXPECT().Allow("ghost").Return(true).Times(1)
	s.userRepo.EXPECT().GetByUsername("ghost").Return(nil, repositories.ErrUserNotFound).Times(1)
	s.expectAuthEvent("login_unknown_user")

	_, err := s.authService.Login(s.ctx, &dto.LoginRequest{Username: "ghost", Password: "whatever"})

	s.True(errors.Is(err, ledgererrors.ErrAuthenticationFailed))
}

func (s *AuthServiceTestSuite) TestLogin_InactiveUser() {
	user := s.activeUser()
	user.Active = false

	s.limiter.EXPECT().Allow("teller_01").Return(true).Times(1)
	s.userRepo.EXPECT().GetByUsername("teller_01").Return(user, nil).Times(1)
	s.expectAuthEvent("login_inactive_user")

	_, err := s.authService.Login(s.ctx, &dto.LoginRequest{Username: "teller_01", Password: "SecurePass123!"})

	s.True(errors.Is(err, ledgererrors.ErrAuthenticationFailed))
}

func (s *AuthServiceTestSuite) TestLogin_Throttled() {
	s.limiter.EXPECT().Allow("teller_01").Return(false).Times(1)
	s.expectAuthEvent("login_throttled")

	_, err := s.authService.Login(s.ctx, &dto.LoginRequest{Username: "teller_01", Password: "SecurePass123!"})

	s.True(errors.Is(err, ledgererrors.ErrTooManyAttempts))
}

func (s *AuthServiceTestSuite) TestVerifySession_InvalidToken() {
	s.tokenService.EXPECT().ValidateSessionToken("bad").Return(nil, ErrInvalidToken).Times(1)

	_, err := s.authService.VerifySession(s.ctx, "bad")

	s.True(errors.Is(err, ledgererrors.ErrSessionInvalid))
}

func (s *AuthServiceTestSuite) TestVerifySession_ReplacedSession() {
	claims := &models.CustomClaims{RegisteredClaims: jwt.RegisteredClaims{ID: "old"}, Username: "teller_01"}
	s.tokenService.EXPECT().ValidateSessionToken("token").Return(claims, nil).Times(1)
	s.sessionRepo.EXPECT().GetByUsername("teller_01").Return(&models.Session{
		JTI:       "new",
		Username:  "teller_01",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil).Times(1)

	_, err := s.authService.VerifySession(s.ctx, "token")

	s.True(errors.Is(err, ledgererrors.ErrSessionInvalid))
}

func (s *AuthServiceTestSuite) TestPurgeExpired() {
	s.sessionRepo.EXPECT().DeleteExpired(gomock.Any()).Return(int64(2), nil).Times(1)
	s.limiter.EXPECT().Cleanup(limiterIdleTimeout).Return(1).Times(1)
	s.sessionRepo.EXPECT().Count().Return(0).Times(1)

	removed, err := s.authService.PurgeExpired(s.ctx)

	s.NoError(err)
	s.Equal(int64(2), removed)
}

// AuthSessionLifecycleTestSuite runs the auth service against the real
// repositories, token service and limiter
type AuthSessionLifecycleTestSuite struct {
	suite.Suite
	service *AuthService
	tokens  *TokenService
	now     time.Time
	ctx     context.Context
}

func (s *AuthSessionLifecycleTestSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.now = time.Now()
	s.tokens = NewTokenService(&config.SessionConfig{
		TokenDuration: 30 * time.Minute,
		Issuer:        "bank-ledger",
		PrivateKey:    privateKey,
		PublicKey:     publicKey,
	}).(*TokenService)
	s.tokens.now = func() time.Time { return s.now }

	s.service = NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewSessionRepository(),
		NewPasswordService(testSecurityConfig()),
		s.tokens,
		NewLoginLimiter(6, 3),
		NewEventLogger(slog.Default()),
		NewPrometheusMetrics(),
		slog.Default(),
	).(*AuthService)
	s.service.now = func() time.Time { return s.now }
	s.ctx = context.Background()

	_, err = s.service.Register(s.ctx, &dto.RegisterRequest{Username: "admin", Password: "SecurePass123!", Role: "admin"})
	s.Require().NoError(err)
}

func TestAuthSessionLifecycleSuite(t *testing.T) {
	suite.Run(t, new(AuthSessionLifecycleTestSuite))
}

func (s *AuthSessionLifecycleTestSuite) login() *dto.TokenResponse {
	resp, err := s.service.Login(s.ctx, &dto.LoginRequest{Username: "admin", Password: "SecurePass123!"})
	s.Require().NoError(err)
	return resp
}

func (s *AuthSessionLifecycleTestSuite) TestLoginVerifyLogout() {
	resp := s.login()

	claims, err := s.service.VerifySession(s.ctx, resp.SessionToken)
	s.Require().NoError(err)
	s.Equal("admin", claims.Username)
	s.Equal(models.RoleAdmin, claims.Role)

	s.NoError(s.service.Logout(s.ctx, resp.SessionToken))

	_, err = s.service.VerifySession(s.ctx, resp.SessionToken)
	s.True(errors.Is(err, ledgererrors.ErrSessionInvalid))
}

func (s *AuthSessionLifecycleTestSuite) TestDeadTokenIsAuthenticationFailure() {
	resp := s.login()
	s.Require().NoError(s.service.Logout(s.ctx, resp.SessionToken))

	_, err := s.service.VerifySession(s.ctx, resp.SessionToken)
	s.True(errors.Is(err, ledgererrors.ErrAuthenticationFailed))

	err = s.service.Logout(s.ctx, resp.SessionToken)
	s.True(errors.Is(err, ledgererrors.ErrAuthenticationFailed))

	_, err = s.service.RenewSession(s.ctx, resp.SessionToken)
	s.True(errors.Is(err, ledgererrors.ErrAuthenticationFailed))

	_, err = s.service.VerifySession(s.ctx, "not-a-token")
	s.True(errors.Is(err, ledgererrors.ErrAuthenticationFailed))
}

func (s *AuthSessionLifecycleTestSuite) TestSecondLoginReplacesFirst() {
	first := s.login()
	second := s.login()

	_, err := s.service.VerifySession(s.ctx, first.SessionToken)
	s.True(errors.Is(err, ledgererrors.ErrSessionInvalid))

	_, err = s.service.VerifySession(s.ctx, second.SessionToken)
	s.NoError(err)
}

func (s *AuthSessionLifecycleTestSuite) TestRenewSessionIssuesFreshToken() {
	original := s.login()

	s.now = s.now.Add(20 * time.Minute)
	renewed, err := s.service.RenewSession(s.ctx, original.SessionToken)
	s.Require().NoError(err)
	s.NotEqual(original.SessionToken, renewed.SessionToken)
	s.True(renewed.ExpiresAt.After(original.ExpiresAt))

	_, err = s.service.VerifySession(s.ctx, original.SessionToken)
	s.True(errors.Is(err, ledgererrors.ErrSessionInvalid))

	s.now = s.now.Add(20 * time.Minute)
	_, err = s.service.VerifySession(s.ctx, renewed.SessionToken)
	s.NoError(err, "renewed session outlives the original expiry")
}

func (s *AuthSessionLifecycleTestSuite) TestExpiredSessionsArePurged() {
	resp := s.login()

	s.now = s.now.Add(31 * time.Minute)
	_, err := s.service.VerifySession(s.ctx, resp.SessionToken)
	s.True(errors.Is(err, ledgererrors.ErrSessionInvalid))

	removed, err := s.service.PurgeExpired(s.ctx)
	s.NoError(err)
	s.Equal(int64(1), removed)
}

func (s *AuthSessionLifecycleTestSuite) TestRepeatedFailuresAreThrottled() {
	for i := 0; i < 3; i++ {
		_, err := s.service.Login(s.ctx, &dto.LoginRequest{Username: "admin", Password: "wrong"})
		s.True(errors.Is(err, ledgererrors.ErrAuthenticationFailed))
	}

	_, err := s.service.Login(s.ctx, &dto.LoginRequest{Username: "admin", Password: "SecurePass123!"})
	s.True(errors.Is(err, ledgererrors.ErrTooManyAttempts))
}
