package contact

import (
	"context"

	"kabstudio/internal/domain"
	"kabstudio/internal/mailer"
)

type Service struct {
	repo   ContactRepositoryInterface
	mailer mailer.Mailer
	hub    *Hub
}

func NewService(repo ContactRepositoryInterface, m mailer.Mailer, hub *Hub) *Service {
	return &Service{repo: repo, mailer: m, hub: hub}
}

func (s *Service) Create(ctx context.Context, req CreateContactRequest) (*domain.Contact, error) {
	contact := &domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.ContactNew,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(map[string]interface{}{
			"event":   "contact.created",
			"contact": contact,
		})
	}
	return contact, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.List(ctx)
}

// Get returns the contact and, as a side effect of an admin viewing it,
// moves status new -> read.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Contact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if contact.Status == domain.ContactNew {
		contact.Status = domain.ContactRead
		if err := s.repo.Save(ctx, contact); err != nil {
			return nil, err
		}
	}
	return contact, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Contact, error) {
	st := domain.ContactStatus(status)
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}

	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contact.Status = st
	if err := s.repo.Save(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Reply dispatches the reply email and only then, on provider success,
// marks the contact replied. A failed dispatch leaves status untouched.
func (s *Service) Reply(ctx context.Context, id int64, body string) (*domain.Contact, error) {
	if body == "" {
		return nil, ErrEmptyReply
	}

	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendContactReply(ctx, contact.Email, contact.Subject, contact.Message, body); err != nil {
		return nil, err
	}

	contact.Status = domain.ContactReplied
	if err := s.repo.Save(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
