package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"kabstudio/internal/domain"
	"kabstudio/internal/mailer"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users  UserRepositoryInterface
	otps   OTPRepositoryInterface
	jwt    jwtService
	mailer mailer.Mailer
}

func NewService(users UserRepositoryInterface, otps OTPRepositoryInterface, jwt jwtService, m mailer.Mailer) *Service {
	return &Service{users: users, otps: otps, jwt: jwt, mailer: m}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// SendOTP generates and mails a reset code. An unknown email fails with
// ErrUserNotFound (mapped to 404 by the handler), so this endpoint does
// reveal whether an account exists.
func (s *Service) SendOTP(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.otps.DeleteByEmail(ctx, user.Email); err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	otp := &domain.OTP{
		Email:     user.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.otps.Create(ctx, otp); err != nil {
		return err
	}

	return s.mailer.SendOTP(ctx, user.Email, code)
}

// VerifyOTP checks the (email, code) pair. An expired code is deleted on
// first sight and reported as ErrOTPExpired.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) error {
	_, err := s.lookupOTP(ctx, email, code)
	return err
}

// ResetPassword verifies the code, stores the new bcrypt hash and burns
// the OTP.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	otp, err := s.lookupOTP(ctx, email, code)
	if err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	return s.otps.Delete(ctx, otp.ID)
}

func (s *Service) lookupOTP(ctx context.Context, email, code string) (*domain.OTP, error) {
	otp, err := s.otps.GetByEmailAndCode(ctx, strings.ToLower(strings.TrimSpace(email)), code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidOTP
		}
		return nil, err
	}

	if time.Now().After(otp.ExpiresAt) {
		_ = s.otps.Delete(ctx, otp.ID)
		return nil, ErrOTPExpired
	}
	return otp, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
