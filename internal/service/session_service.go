package service

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"infinityqr-go/constant"
	"infinityqr-go/internal/apperrors"
	"infinityqr-go/internal/model"
	"infinityqr-go/internal/storage"
	"infinityqr-go/pkg/utils"
)

// SessionService is the single owner of session state. Sessions are a local
// mock: tokens are minted, never verified against any server, and expire only
// through logout or storage corruption. "Remember me" picks the long-lived
// store; otherwise the session lives in the process-scoped store.
type SessionService struct {
	persistent storage.Store
	ephemeral  storage.Store
	db         *gorm.DB
	secret     []byte
}

func NewSessionService(persistent, ephemeral storage.Store, db *gorm.DB, secret string) *SessionService {
	return &SessionService{
		persistent: persistent,
		ephemeral:  ephemeral,
		db:         db,
		secret:     []byte(secret),
	}
}

// Login always succeeds for a well-formed identity. Credentials are never
// verified.
func (s *SessionService) Login(identity model.Identity, rememberMe bool) (*model.Session, error) {
	if !utils.IsValidEmail(identity.Email) {
		return nil, apperrors.ValidationError("error.email_invalid")
	}

	session := &model.Session{
		User:       identity,
		Token:      s.mintToken(identity.Email),
		LoginTime:  time.Now().UTC().Format(time.RFC3339),
		RememberMe: rememberMe,
	}

	store := s.ephemeral
	if rememberMe {
		store = s.persistent
	}
	if !store.Set(constant.AuthSessionKey, session) {
		zap.L().Warn("Failed to persist session", zap.Bool("remember_me", rememberMe))
	}

	return session, nil
}

// Signup records the account locally (original behavior of the data manager)
// and then behaves exactly like Login.
func (s *SessionService) Signup(name, email, password string, rememberMe bool) (*model.Session, error) {
	if !utils.IsValidEmail(email) {
		return nil, apperrors.ValidationError("error.email_invalid")
	}
	if strength := utils.ValidatePassword(password); !strength.IsValid {
		return nil, apperrors.ValidationError("error.password_weak")
	}

	var existing model.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, apperrors.BusinessError(http.StatusConflict, "error.email_taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		zap.L().Warn("User lookup failed", zap.Error(err))
		return nil, apperrors.SystemErrorDefault()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.SystemErrorDefault()
	}
	user := &model.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.db.Create(user).Error; err != nil {
		zap.L().Warn("User creation failed", zap.Error(err))
		return nil, apperrors.SystemErrorDefault()
	}

	return s.Login(model.Identity{Name: name, Email: email}, rememberMe)
}

// Logout deletes the session from both stores unconditionally.
func (s *SessionService) Logout() {
	s.persistent.Remove(constant.AuthSessionKey)
	s.ephemeral.Remove(constant.AuthSessionKey)
}

// CurrentUser reads the long-lived store first, then the process-scoped one.
// Malformed stored data reads as no session at all.
func (s *SessionService) CurrentUser() (*model.Identity, bool) {
	for _, store := range []storage.Store{s.persistent, s.ephemeral} {
		var session model.Session
		if store.Get(constant.AuthSessionKey, &session) && session.Token != "" {
			return &session.User, true
		}
	}
	return nil, false
}

// IsAuthenticated gates dashboard access. Presence is the whole check.
func (s *SessionService) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// mintToken shapes the opaque session token as a signed JWT. Nothing ever
// validates it; it only has to be unique and opaque.
func (s *SessionService) mintToken(email string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"iat": jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		zap.L().Warn("Token signing failed", zap.Error(err))
		return "mock-token-" + time.Now().UTC().Format("20060102150405.000000000")
	}
	return signed
}
