package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"happenly/internal/domain"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type authService struct {
	userRepo     domain.UserRepository
	sessionRepo  domain.AuthSessionRepository
	hasher       domain.PasswordHasher
	issuer       domain.TokenIssuer
	verifier     domain.TokenVerifier
	tokenExpiry  time.Duration
	emailService domain.EmailService
	state        domain.AuthStateNotifier
	logger       *slog.Logger

	now          func() time.Time
	newSessionID func() string
}

// NewAuthService creates an AuthService. emailService and state may be nil.
func NewAuthService(
	logger *slog.Logger,
	userRepo domain.UserRepository,
	sessionRepo domain.AuthSessionRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	verifier domain.TokenVerifier,
	tokenExpiry time.Duration,
	emailService domain.EmailService,
	state domain.AuthStateNotifier,
) domain.AuthService {
	return &authService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		issuer:       issuer,
		verifier:     verifier,
		tokenExpiry:  tokenExpiry,
		emailService: emailService,
		state:        state,
		logger:       logger,
		now:          time.Now,
		newSessionID: uuid.NewString,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password string) (*domain.Credential, error) {
	email = normalizeEmail(email)
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := domain.NewUser(email, hash, salt, now, now)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	cred, err := s.openSession(ctx, user)
	if err != nil {
		// Remove the account so the same email can sign up again.
		if delErr := s.userRepo.Delete(ctx, user.ID); delErr != nil {
			s.logger.ErrorContext(ctx, "failed to roll back user after sign-up error", "user_id", user.ID, "err", delErr)
		}
		return nil, err
	}

	if s.emailService != nil {
		data := &domain.WelcomeMessageEmailData{Email: user.Email, UserID: user.ID}
		if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "welcome email not sent", "user_id", user.ID, "err", err)
		}
	}
	s.publish(user)
	return cred, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*domain.Credential, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	cred, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.publish(user)
	return cred, nil
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	s.publish(nil)
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return "", err
	}
	active, err := s.sessionRepo.IsActive(ctx, claims.SessionID)
	if err != nil {
		return "", fmt.Errorf("failed to check session: %w", err)
	}
	if !active {
		return "", domain.ErrUnauthenticated
	}
	return claims.UserID, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) openSession(ctx context.Context, user *domain.User) (*domain.Credential, error) {
	now := s.now()
	session := &domain.AuthSession{
		ID:        s.newSessionID(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.tokenExpiry),
		CreatedAt: now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	token, err := s.issuer.Issue(user.ID, user.Email, session.ID, session.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &domain.Credential{
		User:      user,
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) publish(user *domain.User) {
	if s.state != nil {
		s.state.Publish(user)
	}
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
