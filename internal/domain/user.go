package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for identity operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("invalid or expired token")
)

// User represents a registered user
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(email, passwordHash, salt string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Credential is the result of a successful sign-in or sign-up.
// swagger:model Credential
type Credential struct {
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthSession is a server-side record of an issued token. Signing out deletes it.
type AuthSession struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TokenClaims are the verified contents of a bearer token.
type TokenClaims struct {
	UserID    string
	Email     string
	SessionID string
	ExpiresAt time.Time
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) bound to an auth session.
type TokenIssuer interface {
	Issue(userID, email, sessionID string, expiresAt time.Time) (string, error)
}

// TokenVerifier checks signature and expiry of a token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// Delete removes the user and, through the foreign key, its auth sessions.
	Delete(ctx context.Context, id string) error
}

// AuthSessionRepository stores open auth sessions.
type AuthSessionRepository interface {
	Create(ctx context.Context, s *AuthSession) error
	IsActive(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// AuthStateNotifier receives every auth transition: the signed-in user, or nil after sign-out.
type AuthStateNotifier interface {
	Publish(user *User)
}

// AuthService is the identity API.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*Credential, error)
	SignIn(ctx context.Context, email, password string) (*Credential, error)
	SignOut(ctx context.Context, token string) error
	// Authenticate returns the user id carried by a valid token whose session is still open.
	Authenticate(ctx context.Context, token string) (string, error)
	CurrentUser(ctx context.Context, userID string) (*User, error)
}
