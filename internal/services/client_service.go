package services

import (
	"context"
	"strings"

	"studio-backend/internal/models"
)

// clientStore is the slice of ClientRepository this service uses; narrow so
// the uniqueness rules are testable without Postgres.
type clientStore interface {
	Create(ctx context.Context, c *models.Client) error
	Get(ctx context.Context, id int) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
	EmailTaken(ctx context.Context, email string, excludeID int) (bool, error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id int) error
}

type ClientService struct {
	Repo clientStore
}

func NewClientService(repo clientStore) *ClientService {
	return &ClientService{Repo: repo}
}

func (s *ClientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	if req.Name == "" || req.Email == "" {
		return nil, Invalid("name and email are required")
	}

	taken, err := s.Repo.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	client := &models.Client{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Phone:    req.Phone,
		Location: req.Location,
	}
	if err := s.Repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, id int) (*models.Client, error) {
	client, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]*models.Client, error) {
	return s.Repo.List(ctx)
}

func (s *ClientService) UpdateClient(ctx context.Context, id int, req *models.UpdateClientRequest) (*models.Client, error) {
	if req.Name == "" || req.Email == "" {
		return nil, Invalid("name and email are required")
	}

	if _, err := s.Repo.Get(ctx, id); err != nil {
		return nil, ErrNotFound
	}

	// Reject moving to an email another client already owns
	taken, err := s.Repo.EmailTaken(ctx, req.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	client := &models.Client{
		ID:       id,
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Phone:    req.Phone,
		Location: req.Location,
	}
	if err := s.Repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

func (s *ClientService) DeleteClient(ctx context.Context, id int) error {
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.Repo.Delete(ctx, id)
}
