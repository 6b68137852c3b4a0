package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/vibast-solutions/ms-go-tasks/app/dto"
	"github.com/vibast-solutions/ms-go-tasks/app/entity"
	"github.com/vibast-solutions/ms-go-tasks/app/mail"
	"github.com/vibast-solutions/ms-go-tasks/app/storage"
	"github.com/vibast-solutions/ms-go-tasks/app/token"
	"github.com/vibast-solutions/ms-go-tasks/config"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountNotConfirmed = errors.New("account not confirmed")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrPasswordMismatch    = errors.New("old password is incorrect")
	ErrTaskNotFound        = errors.New("task not found")
	ErrNotOwner            = errors.New("resource belongs to another user")
)

const (
	passwordHashCost   = 10
	emailTokenHashCost = 8
)

type userRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uint64) (*entity.User, error)
	FindByEmailToken(ctx context.Context, emailToken string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uint64) error
}

// AsyncRunner dispatches fire-and-forget work (outbound email). Tests
// replace it to run tasks inline.
type AsyncRunner func(task func())

type AuthServiceOption func(*AuthService)

type AuthService struct {
	userRepo    userRepository
	registry    storage.TokenRegistry
	mailer      mail.Mailer
	cfg         *config.Config
	asyncRunner AsyncRunner
}

func NewAuthService(
	userRepo userRepository,
	registry storage.TokenRegistry,
	mailer mail.Mailer,
	cfg *config.Config,
	opts ...AuthServiceOption,
) *AuthService {
	svc := &AuthService{
		userRepo: userRepo,
		registry: registry,
		mailer:   mailer,
		cfg:      cfg,
		asyncRunner: func(task func()) {
			go task()
		},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func WithAsyncRunner(runner AsyncRunner) AuthServiceOption {
	return func(s *AuthService) {
		if runner != nil {
			s.asyncRunner = runner
		}
	}
}

// Register creates an unconfirmed user and dispatches the confirmation
// email. Email/username uniqueness is a precondition enforced by the
// validation layer. The confirmation token is a bcrypt hash of the email
// address, matched later by exact string comparison.
func (s *AuthService) Register(ctx context.Context, name, username, email, password, gender, lang string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return err
	}

	emailToken, err := bcrypt.GenerateFromPassword([]byte(email), emailTokenHashCost)
	if err != nil {
		return err
	}

	if gender == "" {
		gender = "M"
	}

	now := time.Now()
	user := &entity.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Gender:       gender,
		Confirmed:    false,
		EmailToken:   sql.NullString{String: string(emailToken), Valid: true},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	confirmURL := fmt.Sprintf("%s/%s?token=%s",
		s.cfg.WebAppURL, s.cfg.ConfirmAccountPath, url.QueryEscape(string(emailToken)))

	s.sendMail(mail.Mail{
		To:       user.Email,
		Locale:   lang,
		Subject:  "mail.subject.confirm.account",
		Template: mail.TemplateConfirmAccount,
		Context: map[string]string{
			"url":   confirmURL,
			"name":  user.Name,
			"email": user.Email,
		},
	})

	return nil
}

// Login verifies credentials and issues an access/refresh token pair. The
// refresh token is stored in the registry keyed by user id before the
// result is returned; the overwrite invalidates any previously issued
// refresh token for the same user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// Missing user and wrong password collapse into one error so the
	// response cannot be used to probe which emails are registered.
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Confirmed {
		return nil, ErrAccountNotConfirmed
	}

	accessToken, err := token.Issue(user.ID, s.cfg.JWTSecret, s.cfg.JWTAccessTokenTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := token.Issue(user.ID, s.cfg.JWTRefreshSecret, s.cfg.JWTRefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	if err = s.registry.Set(ctx, registryKey(user.ID), refreshToken); err != nil {
		return nil, err
	}

	return &dto.LoginResult{
		AccessToken:  accessToken,
		ExpiresIn:    int64(s.cfg.JWTAccessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
	}, nil
}

// ConfirmAccount marks the user matching the confirmation token as
// confirmed and clears the token, so a second call with the same token
// fails.
func (s *AuthService) ConfirmAccount(ctx context.Context, tokenString string) error {
	user, err := s.userRepo.FindByEmailToken(ctx, tokenString)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidToken
	}

	user.Confirmed = true
	user.EmailToken = sql.NullString{}

	return s.userRepo.Update(ctx, user)
}

// ForgotPassword issues a short-lived signed reset token and mails it.
// The token is self-verifying and never persisted. A missing user is
// reported to the caller; unlike login this leaks account existence,
// which mirrors the behavior of the HTTP contract (404).
func (s *AuthService) ForgotPassword(ctx context.Context, email, lang string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	resetToken, err := token.Issue(user.ID, s.cfg.JWTResetSecret, s.cfg.JWTResetTokenTTL)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/%s?token=%s",
		s.cfg.WebAppURL, s.cfg.ResetPasswordPath, url.QueryEscape(resetToken))

	s.sendMail(mail.Mail{
		To:       user.Email,
		Locale:   lang,
		Subject:  "mail.subject.forgot.password",
		Template: mail.TemplateForgotPassword,
		Context: map[string]string{
			"url":  resetURL,
			"name": user.Name,
		},
	})

	return nil
}

// ResetPassword verifies the reset token and stores the new password
// hash. Outstanding access and refresh tokens are not revoked; they stay
// valid until their own expiry.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := token.Verify(resetToken, s.cfg.JWTResetSecret)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return ErrTokenExpired
		}
		return ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), passwordHashCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	return s.userRepo.Update(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a new access token.
// The presented token must byte-for-byte match the registry entry for
// uid, carry a valid signature, and decode to the same uid. The refresh
// token itself is not rotated; it stays valid until the next login
// overwrites it or it expires.
func (s *AuthService) RefreshToken(ctx context.Context, uid uint64, presented string) (string, error) {
	stored, err := s.registry.Get(ctx, registryKey(uid))
	if err != nil {
		return "", err
	}
	if stored == "" || stored != presented {
		return "", ErrInvalidToken
	}

	claims, err := token.Verify(presented, s.cfg.JWTRefreshSecret)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	// Guards against a validly-signed token issued for another user being
	// replayed under this uid's registry entry.
	if claims.UserID != uid {
		return "", ErrInvalidToken
	}

	return token.Issue(uid, s.cfg.JWTSecret, s.cfg.JWTAccessTokenTTL)
}

// ValidateAccessToken verifies an access token for the authorization
// middleware.
func (s *AuthService) ValidateAccessToken(tokenString string) (*token.Claims, error) {
	claims, err := token.Verify(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) sendMail(m mail.Mail) {
	s.asyncRunner(func() {
		if err := s.mailer.Send(m); err != nil {
			logrus.WithError(err).WithField("template", m.Template).Error("failed to send email")
		}
	})
}

func registryKey(userID uint64) string {
	return strconv.FormatUint(userID, 10)
}
