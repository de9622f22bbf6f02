package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

// Every signup starts with the same subject list; users trim it from
// their settings page afterwards.
var defaultSubjects = []string{"Mathematics", "English", "Science"}

type AuthService struct {
	userService       ports.UserService
	userRepository    ports.UserRepository
	sessionRepository ports.SessionRepository
	sessionTTL        time.Duration
}

func NewAuthService(
	userService ports.UserService,
	userRepository ports.UserRepository,
	sessionRepository ports.SessionRepository,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		userService:       userService,
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		sessionTTL:        sessionTTL,
	}
}

// Login resolves the account by email alone. No credential is stored, so
// the password the form collects is never compared against anything.
func (s *AuthService) Login(ctx context.Context, email string) (domain.User, domain.Session, error) {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	session, err := s.startSession(ctx, user.ID)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	return user, session, nil
}

func (s *AuthService) Signup(ctx context.Context, input domain.CreateUserInput) (domain.User, domain.Session, error) {
	_, err := s.userRepository.GetByEmail(ctx, input.Email)
	if err == nil {
		return domain.User{}, domain.Session{}, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, domain.Session{}, err
	}

	if input.Subjects == nil {
		input.Subjects = defaultSubjects
	}

	user, err := s.userService.CreateUser(ctx, input)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	session, err := s.startSession(ctx, user.ID)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	return user, session, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	err := s.sessionRepository.Delete(ctx, token)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	return err
}

func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	session, err := s.sessionRepository.GetByToken(ctx, token)
	if err != nil {
		return domain.User{}, err
	}

	if session.Expired(time.Now().UTC()) {
		_ = s.sessionRepository.Delete(ctx, token)
		return domain.User{}, domain.ErrSessionNotFound
	}

	return s.userRepository.GetByID(ctx, session.UserID)
}

func (s *AuthService) startSession(ctx context.Context, userID string) (domain.Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return domain.Session{}, err
	}

	now := time.Now().UTC()
	session := domain.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessionRepository.Insert(ctx, session); err != nil {
		return domain.Session{}, err
	}

	return session, nil
}

// 32 random bytes, 64 hex characters.
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

var _ ports.AuthService = (*AuthService)(nil)
