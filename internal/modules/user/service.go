package user

import (
	"context"
	"errors"
	"log"
	"strings"

	"kabstudio/internal/domain"
	"kabstudio/internal/media"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const profileFolder = "profiles"

type Service struct {
	repo  UserRepositoryInterface
	store media.Store
}

func NewService(repo UserRepositoryInterface, store media.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if req.Role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	taken, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// the ExistsByEmail check above races with concurrent creates;
		// the unique index is the real guarantee
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Email != "" && !strings.EqualFold(req.Email, u.Email) {
		taken, err := s.repo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		u.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if req.Role != "" {
		role := domain.UserRole(req.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
		u.Role = role
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SetProfileImage uploads the new image first and only then swaps the
// URL, so a failed upload leaves the current image untouched. The old
// file is deleted best-effort; a cleanup failure is logged and the
// request still succeeds.
func (s *Service) SetProfileImage(ctx context.Context, userID int64, file media.File) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.store.Upload(ctx, file.Data, file.MimeType, profileFolder)
	if err != nil {
		return nil, err
	}

	old := u.ProfileImage
	u.ProfileImage = url
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.cleanup(ctx, old)
	return u, nil
}

// RemoveProfileImage clears the URL and best-effort deletes the file.
func (s *Service) RemoveProfileImage(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	old := u.ProfileImage
	u.ProfileImage = ""
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.cleanup(ctx, old)
	return u, nil
}

func (s *Service) cleanup(ctx context.Context, url string) {
	if url == "" {
		return
	}
	id := media.DerivedID(url)
	if id == "" {
		return
	}
	if err := s.store.Delete(ctx, id); err != nil {
		log.Printf("user: failed to delete old profile image %s: %v", id, err)
	}
}
