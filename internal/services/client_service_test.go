package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"studio-backend/internal/models"
)

type fakeClientStore struct {
	clients map[int]*models.Client
	nextID  int
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: map[int]*models.Client{}, nextID: 1}
}

func (f *fakeClientStore) Create(ctx context.Context, c *models.Client) error {
	c.ID = f.nextID
	f.nextID++
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientStore) Get(ctx context.Context, id int) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return c, nil
}

func (f *fakeClientStore) List(ctx context.Context) ([]*models.Client, error) {
	var out []*models.Client
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClientStore) EmailTaken(ctx context.Context, email string, excludeID int) (bool, error) {
	for _, c := range f.clients {
		if c.ID != excludeID && strings.EqualFold(c.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClientStore) Update(ctx context.Context, c *models.Client) error {
	existing, ok := f.clients[c.ID]
	if !ok {
		return errors.New("no rows")
	}
	c.CreatedAt = existing.CreatedAt
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientStore) Delete(ctx context.Context, id int) error {
	delete(f.clients, id)
	return nil
}

func TestCreateClientLowercasesEmail(t *testing.T) {
	svc := NewClientService(newFakeClientStore())

	client, err := svc.CreateClient(context.Background(), &models.CreateClientRequest{
		Name:  "Asha Verma",
		Email: "Asha@Example.COM",
	})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if client.Email != "asha@example.com" {
		t.Errorf("email: got %q want asha@example.com", client.Email)
	}
}

func TestCreateClientDuplicateEmail(t *testing.T) {
	store := newFakeClientStore()
	svc := NewClientService(store)
	ctx := context.Background()

	if _, err := svc.CreateClient(ctx, &models.CreateClientRequest{Name: "A", Email: "a@x.com"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.CreateClient(ctx, &models.CreateClientRequest{Name: "B", Email: "A@x.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("got %v, want ErrEmailTaken", err)
	}
}

func TestCreateClientValidation(t *testing.T) {
	svc := NewClientService(newFakeClientStore())

	_, err := svc.CreateClient(context.Background(), &models.CreateClientRequest{Name: "No Email"})
	if !IsValidation(err) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestUpdateClientEmailOwnership(t *testing.T) {
	store := newFakeClientStore()
	svc := NewClientService(store)
	ctx := context.Background()

	a, _ := svc.CreateClient(ctx, &models.CreateClientRequest{Name: "A", Email: "a@x.com"})
	b, _ := svc.CreateClient(ctx, &models.CreateClientRequest{Name: "B", Email: "b@x.com"})

	// Keeping your own email is not a conflict
	updated, err := svc.UpdateClient(ctx, a.ID, &models.UpdateClientRequest{
		Name:  "A Renamed",
		Email: "a@x.com",
		Phone: "9999999999",
	})
	if err != nil {
		t.Fatalf("update with own email: %v", err)
	}
	if updated.Name != "A Renamed" || updated.Phone != "9999999999" {
		t.Errorf("update not applied: %+v", updated)
	}

	// Taking another client's email is
	_, err = svc.UpdateClient(ctx, b.ID, &models.UpdateClientRequest{Name: "B", Email: "a@x.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("got %v, want ErrEmailTaken", err)
	}
}

func TestUpdateClientNotFound(t *testing.T) {
	svc := NewClientService(newFakeClientStore())

	_, err := svc.UpdateClient(context.Background(), 99, &models.UpdateClientRequest{Name: "X", Email: "x@x.com"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteClientNotFound(t *testing.T) {
	svc := NewClientService(newFakeClientStore())

	if err := svc.DeleteClient(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
