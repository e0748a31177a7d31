package auth

import (
	"context"
	"testing"
	"time"

	"kabstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

type mockOTPRepo struct {
	mock.Mock
}

func (m *mockOTPRepo) Create(ctx context.Context, o *domain.OTP) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOTPRepo) GetByEmailAndCode(ctx context.Context, email, code string) (*domain.OTP, error) {
	args := m.Called(ctx, email, code)
	if o := args.Get(0); o != nil {
		return o.(*domain.OTP), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOTPRepo) DeleteByEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockOTPRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendContactReply(ctx context.Context, to, subject, originalMessage, replyBody string) error {
	return m.Called(ctx, to, subject, originalMessage, replyBody).Error(0)
}

func (m *mockMailer) SendOTP(ctx context.Context, to, code string) error {
	return m.Called(ctx, to, code).Error(0)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role string) (string, error) {
	return "test-token", nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginSuccess(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		ID:           1,
		Email:        "admin@example.com",
		Role:         domain.RoleAdmin,
		PasswordHash: hashOf(t, "secret123"),
	}, nil)

	svc := NewService(users, new(mockOTPRepo), fakeJWT{}, new(mockMailer))

	res, err := svc.Login(context.Background(), LoginRequest{Email: "admin@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "test-token", res.Token)
	assert.Equal(t, int64(1), res.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		Email:        "admin@example.com",
		PasswordHash: hashOf(t, "secret123"),
	}, nil)

	svc := NewService(users, new(mockOTPRepo), fakeJWT{}, new(mockMailer))

	_, err := svc.Login(context.Background(), LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, new(mockOTPRepo), fakeJWT{}, new(mockMailer))

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSendOTPReplacesPreviousAndMails(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:    2,
		Email: "user@example.com",
	}, nil)

	otps := new(mockOTPRepo)
	otps.On("DeleteByEmail", mock.Anything, "user@example.com").Return(nil)
	otps.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.OTP) bool {
		return o.Email == "user@example.com" && len(o.Code) == 6 && time.Until(o.ExpiresAt) > 9*time.Minute
	})).Return(nil)

	m := new(mockMailer)
	m.On("SendOTP", mock.Anything, "user@example.com", mock.MatchedBy(func(code string) bool {
		return len(code) == 6
	})).Return(nil)

	svc := NewService(users, otps, fakeJWT{}, m)

	require.NoError(t, svc.SendOTP(context.Background(), "user@example.com"))
	otps.AssertExpectations(t)
	m.AssertExpectations(t)
}

func TestSendOTPUnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	m := new(mockMailer)
	svc := NewService(users, new(mockOTPRepo), fakeJWT{}, m)

	err := svc.SendOTP(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	m.AssertNotCalled(t, "SendOTP", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyOTPExpiredDeletesCode(t *testing.T) {
	otps := new(mockOTPRepo)
	otps.On("GetByEmailAndCode", mock.Anything, "user@example.com", "123456").Return(&domain.OTP{
		ID:        7,
		Email:     "user@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)
	otps.On("Delete", mock.Anything, int64(7)).Return(nil)

	svc := NewService(new(mockUserRepo), otps, fakeJWT{}, new(mockMailer))

	err := svc.VerifyOTP(context.Background(), "user@example.com", "123456")
	assert.ErrorIs(t, err, ErrOTPExpired)
	otps.AssertExpectations(t)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	otps := new(mockOTPRepo)
	otps.On("GetByEmailAndCode", mock.Anything, "user@example.com", "000000").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(new(mockUserRepo), otps, fakeJWT{}, new(mockMailer))

	err := svc.VerifyOTP(context.Background(), "user@example.com", "000000")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestResetPasswordUpdatesHashAndBurnsOTP(t *testing.T) {
	user := &domain.User{ID: 2, Email: "user@example.com", PasswordHash: hashOf(t, "oldpass")}

	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(user, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newpass1")) == nil
	})).Return(nil)

	otps := new(mockOTPRepo)
	otps.On("GetByEmailAndCode", mock.Anything, "user@example.com", "123456").Return(&domain.OTP{
		ID:        7,
		Email:     "user@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}, nil)
	otps.On("Delete", mock.Anything, int64(7)).Return(nil)

	svc := NewService(users, otps, fakeJWT{}, new(mockMailer))

	require.NoError(t, svc.ResetPassword(context.Background(), "user@example.com", "123456", "newpass1"))
	users.AssertExpectations(t)
	otps.AssertExpectations(t)
}

func TestResetPasswordRejectsInvalidOTP(t *testing.T) {
	otps := new(mockOTPRepo)
	otps.On("GetByEmailAndCode", mock.Anything, "user@example.com", "999999").Return(nil, gorm.ErrRecordNotFound)

	users := new(mockUserRepo)
	svc := NewService(users, otps, fakeJWT{}, new(mockMailer))

	err := svc.ResetPassword(context.Background(), "user@example.com", "999999", "newpass1")
	assert.ErrorIs(t, err, ErrInvalidOTP)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
