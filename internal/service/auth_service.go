package service

import (
	"context"
	"olympus_backend/internal/config"
	"olympus_backend/internal/model"
	"olympus_backend/internal/repository"
	"olympus_backend/internal/util"
	"olympus_backend/pkg/logger"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Sessions SessionStore
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, sessions SessionStore, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Sessions: sessions,
		Cfg:      cfg,
	}
}

type RegisterInput struct {
	Email           string `json:"email" form:"email"`
	Name            string `json:"name" form:"name"`
	Nickname        string `json:"nickname" form:"nickname"`
	MobileNumber    string `json:"mobile_number" form:"mobile_number"`
	ClassLevel      string `json:"class_level" form:"class_level"`
	SchoolName      string `json:"school_name" form:"school_name"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

func (in *RegisterInput) normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	in.Nickname = strings.TrimSpace(in.Nickname)
	in.MobileNumber = strings.TrimSpace(in.MobileNumber)
	in.ClassLevel = strings.TrimSpace(in.ClassLevel)
	in.SchoolName = strings.TrimSpace(in.SchoolName)
}

func (in *RegisterInput) validate() error {
	for _, v := range []string{in.Email, in.Name, in.MobileNumber, in.ClassLevel, in.SchoolName, in.Password} {
		if v == "" {
			return util.Validation("all required fields must be filled in")
		}
	}
	if in.Password != in.ConfirmPassword {
		return util.Validation("passwords do not match")
	}
	if len(in.Password) < util.MinPasswordLength {
		return util.Validation("password must be at least 6 characters")
	}
	return nil
}

// Session is the outcome of a successful login.
type Session struct {
	Identity  model.Identity `json:"user"`
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
}

func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// Register creates a student account.
func (s *AuthService) Register(in RegisterInput) (*model.User, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	digest, err := HashPassword(in.Password)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "hash password"))
	}

	user := &model.User{
		Email:        in.Email,
		PasswordHash: digest,
		Name:         in.Name,
		MobileNumber: in.MobileNumber,
		ClassLevel:   in.ClassLevel,
		SchoolName:   in.SchoolName,
		Role:         model.Student,
	}
	if in.Nickname != "" {
		nickname := in.Nickname
		user.Nickname = &nickname
	}

	err = s.UserRepo.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.UserRepo.WithTx(tx)
		exists, err := repo.ExistsByEmail(in.Email)
		if err != nil {
			return err
		}
		if exists {
			return util.Conflict("this email is already registered")
		}
		return repo.Create(user)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, util.Conflict("this email is already registered")
	}
	if err != nil {
		if errors.Is(err, util.ErrConflict) {
			return nil, err
		}
		return nil, util.Internal(errors.Wrap(err, "create user"))
	}

	logger.Log.Info("User registered", zap.Uint("userId", user.ID), zap.String("email", user.Email))
	return user, nil
}

// Login verifies credentials and issues a signed session token.
func (s *AuthService) Login(email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.UserRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.AuthFailed("invalid email or password")
	}
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "find user"))
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return nil, util.AuthFailed("invalid email or password")
	}

	now := time.Now()
	err = s.UserRepo.DB.Transaction(func(tx *gorm.DB) error {
		return s.UserRepo.WithTx(tx).UpdateLastLogin(user.ID, now)
	})
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "update last login"))
	}
	user.LastLogin = &now

	identity := user.Identity()
	token, claims, err := util.GenerateSessionToken(identity, s.Cfg.Session.Secret, s.Cfg.Session.ExpireTime)
	if err != nil {
		return nil, util.Internal(errors.Wrap(err, "sign session"))
	}

	return &Session{
		Identity:  identity,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Authenticate resolves a raw session token into its claims.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*util.Claims, error) {
	if token == "" {
		return nil, util.AuthRequired()
	}

	claims, err := util.ParseSessionToken(token, s.Cfg.Session.Secret)
	if err != nil {
		return nil, util.AuthRequired()
	}

	revoked, err := s.Sessions.IsRevoked(ctx, claims.RegisteredClaims.ID)
	if err != nil {
		return nil, util.Unavailable("session store unavailable", err)
	}
	if revoked {
		return nil, util.AuthRequired()
	}
	return claims, nil
}

// Logout revokes the session token. Anonymous logout is a no-op.
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.Sessions.Revoke(ctx, claims.RegisteredClaims.ID, claims.ExpiresAt.Time); err != nil {
		logger.Log.Error("Failed to revoke session", zap.Error(err), zap.Uint("userId", claims.Identity.ID))
		return util.Unavailable("session store unavailable", err)
	}
	return nil
}

// CurrentRole reads the role from storage rather than from the session.
func (s *AuthService) CurrentRole(userID uint) (model.UserRole, error) {
	role, err := s.UserRepo.FindRole(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", util.AuthRequired()
	}
	if err != nil {
		return "", util.Internal(errors.Wrap(err, "find role"))
	}
	return role, nil
}
