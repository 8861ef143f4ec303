package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio-backend/internal/models"
	"studio-backend/internal/services"

	"github.com/gorilla/mux"
)

type memClientStore struct {
	clients map[int]*models.Client
	nextID  int
}

func newMemClientStore() *memClientStore {
	return &memClientStore{clients: map[int]*models.Client{}, nextID: 1}
}

func (m *memClientStore) Create(ctx context.Context, c *models.Client) error {
	c.ID = m.nextID
	m.nextID++
	m.clients[c.ID] = c
	return nil
}

func (m *memClientStore) Get(ctx context.Context, id int) (*models.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return c, nil
}

func (m *memClientStore) List(ctx context.Context) ([]*models.Client, error) {
	var out []*models.Client
	for _, c := range m.clients {
		out = append(out, c)
	}
	return out, nil
}

func (m *memClientStore) EmailTaken(ctx context.Context, email string, excludeID int) (bool, error) {
	for _, c := range m.clients {
		if c.ID != excludeID && strings.EqualFold(c.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memClientStore) Update(ctx context.Context, c *models.Client) error {
	if _, ok := m.clients[c.ID]; !ok {
		return errors.New("no rows")
	}
	m.clients[c.ID] = c
	return nil
}

func (m *memClientStore) Delete(ctx context.Context, id int) error {
	delete(m.clients, id)
	return nil
}

func clientTestRouter(store *memClientStore) *mux.Router {
	h := NewClientHandler(services.NewClientService(store))
	r := mux.NewRouter()
	r.HandleFunc("/api/clients", h.CreateClient).Methods("POST")
	r.HandleFunc("/api/clients/{id}", h.GetClient).Methods("GET")
	r.HandleFunc("/api/clients/{id}", h.DeleteClient).Methods("DELETE")
	return r
}

func postJSON(t *testing.T, router *mux.Router, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreateClientEndpoint(t *testing.T) {
	router := clientTestRouter(newMemClientStore())

	rr := postJSON(t, router, "/api/clients", models.CreateClientRequest{
		Name:  "Asha Verma",
		Email: "asha@example.com",
		Phone: "9876543210",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d want 201, body %s", rr.Code, rr.Body.String())
	}

	var created models.Client
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 || created.Email != "asha@example.com" {
		t.Errorf("created: %+v", created)
	}
}

func TestCreateClientEndpointConflict(t *testing.T) {
	router := clientTestRouter(newMemClientStore())

	if rr := postJSON(t, router, "/api/clients", models.CreateClientRequest{Name: "A", Email: "a@x.com"}); rr.Code != http.StatusCreated {
		t.Fatalf("seed: got %d", rr.Code)
	}

	rr := postJSON(t, router, "/api/clients", models.CreateClientRequest{Name: "B", Email: "a@x.com"})
	if rr.Code != http.StatusConflict {
		t.Fatalf("status: got %d want 409, body %s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] == "" {
		t.Errorf("error payload missing: %s", rr.Body.String())
	}
}

func TestCreateClientEndpointValidation(t *testing.T) {
	router := clientTestRouter(newMemClientStore())

	rr := postJSON(t, router, "/api/clients", models.CreateClientRequest{Name: "No Email"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", rr.Code)
	}

	req := httptest.NewRequest("POST", "/api/clients", strings.NewReader("{not json"))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: got %d want 400", rr.Code)
	}
}

func TestGetClientEndpointNotFound(t *testing.T) {
	router := clientTestRouter(newMemClientStore())

	req := httptest.NewRequest("GET", "/api/clients/99", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d want 404", rr.Code)
	}
}

func TestDeleteClientEndpoint(t *testing.T) {
	store := newMemClientStore()
	router := clientTestRouter(store)

	if rr := postJSON(t, router, "/api/clients", models.CreateClientRequest{Name: "A", Email: "a@x.com"}); rr.Code != http.StatusCreated {
		t.Fatalf("seed: got %d", rr.Code)
	}

	req := httptest.NewRequest("DELETE", "/api/clients/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200, body %s", rr.Code, rr.Body.String())
	}
	if len(store.clients) != 0 {
		t.Errorf("client not deleted")
	}
}
