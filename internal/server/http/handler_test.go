package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/orgkeeper/internal/common"
	"github.com/dmitrijs2005/orgkeeper/internal/logging"
	"github.com/dmitrijs2005/orgkeeper/internal/server/auth"
	"github.com/dmitrijs2005/orgkeeper/internal/server/models"
	"github.com/dmitrijs2005/orgkeeper/internal/server/services"
)

const testSecret = "test-secret"

type fakeUserService struct {
	registerIn  services.RegisterInput
	registerOut *services.AuthResult
	registerErr error

	loginEmail    string
	loginPassword string
	loginOut      *services.AuthResult
	loginErr      error
}

func (f *fakeUserService) Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error) {
	f.registerIn = in
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerOut, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	f.loginEmail = email
	f.loginPassword = password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginOut, nil
}

type fakeOrganisationService struct {
	listOwner string
	listOut   []*models.Organisation
	listErr   error

	createOwner string
	createOut   *models.Organisation
	createErr   error
}

func (f *fakeOrganisationService) List(ctx context.Context, ownerID string) ([]*models.Organisation, error) {
	f.listOwner = ownerID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeOrganisationService) Create(ctx context.Context, ownerID, name, description string) (*models.Organisation, error) {
	f.createOwner = ownerID
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func newTestServer(t *testing.T, us UserService, os OrganisationService) *Server {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	return NewServer(":0", logger, us, os, testSecret)
}

func doJSON(t *testing.T, s *Server, method, target, body string, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decoding body %q: %v", raw, err)
		}
	}
	return resp, decoded
}

func johnDoeResult() *services.AuthResult {
	return &services.AuthResult{
		AccessToken: "token-abc",
		User: &models.User{
			ID:           "u-1",
			FirstName:    "John",
			LastName:     "Doe",
			Email:        "john.doe@example.com",
			PasswordHash: "$2a$10$secret-hash",
			Phone:        "1234567890",
		},
	}
}

func TestRegister_Created(t *testing.T) {
	us := &fakeUserService{registerOut: johnDoeResult()}
	s := newTestServer(t, us, &fakeOrganisationService{})

	body := `{"firstName":"John","lastName":"Doe","email":"john.doe@example.com","password":"password","phone":"1234567890"}`
	resp, payload := doJSON(t, s, http.MethodPost, "/auth/register", body, nil)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusCreated)
	}
	if payload["status"] != "success" || payload["message"] != "Registration successful" {
		t.Fatalf("unexpected envelope: %v", payload)
	}

	data := payload["data"].(map[string]any)
	if data["accessToken"] != "token-abc" {
		t.Fatalf("accessToken missing: %v", data)
	}
	user := data["user"].(map[string]any)
	if user["userId"] != "u-1" || user["email"] != "john.doe@example.com" || user["firstName"] != "John" {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("password hash must never be returned")
	}

	if us.registerIn.Phone != "1234567890" {
		t.Fatalf("phone not passed through: %+v", us.registerIn)
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	verr := &services.ValidationError{Fields: []services.FieldError{
		{Field: "firstName", Message: "First name is required"},
	}}
	us := &fakeUserService{registerErr: verr}
	s := newTestServer(t, us, &fakeOrganisationService{})

	body := `{"lastName":"Doe","email":"jane.doe@example.com","password":"password"}`
	resp, payload := doJSON(t, s, http.MethodPost, "/auth/register", body, nil)

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}
	errs := payload["errors"].([]any)
	first := errs[0].(map[string]any)
	if first["field"] != "firstName" {
		t.Fatalf("first error must name firstName, got %v", first)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	us := &fakeUserService{registerErr: common.ErrorAlreadyExists}
	s := newTestServer(t, us, &fakeOrganisationService{})

	body := `{"firstName":"Jane","lastName":"Doe","email":"john.doe@example.com","password":"password"}`
	resp, payload := doJSON(t, s, http.MethodPost, "/auth/register", body, nil)

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}
	errs := payload["errors"].([]any)
	first := errs[0].(map[string]any)
	if first["field"] != "email" || first["message"] != "Email already exists" {
		t.Fatalf("unexpected error payload: %v", first)
	}
}

func TestRegister_StorageError(t *testing.T) {
	us := &fakeUserService{registerErr: errors.New("db down")}
	s := newTestServer(t, us, &fakeOrganisationService{})

	body := `{"firstName":"John","lastName":"Doe","email":"john.doe@example.com","password":"password"}`
	resp, payload := doJSON(t, s, http.MethodPost, "/auth/register", body, nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if payload["status"] != "Bad request" || payload["message"] != "Registration unsuccessful" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if payload["statusCode"] != float64(400) {
		t.Fatalf("statusCode must be 400, got %v", payload["statusCode"])
	}
}

func TestLogin_OK(t *testing.T) {
	us := &fakeUserService{loginOut: johnDoeResult()}
	s := newTestServer(t, us, &fakeOrganisationService{})

	body := `{"email":"john.doe@example.com","password":"password"}`
	resp, payload := doJSON(t, s, http.MethodPost, "/auth/login", body, nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusOK)
	}
	if payload["message"] != "Login successful" {
		t.Fatalf("unexpected envelope: %v", payload)
	}
	data := payload["data"].(map[string]any)
	if data["accessToken"] != "token-abc" {
		t.Fatalf("accessToken missing: %v", data)
	}
	if us.loginEmail != "john.doe@example.com" || us.loginPassword != "password" {
		t.Fatalf("credentials not passed through")
	}
}

func TestLogin_FailureShapeIsUniform(t *testing.T) {
	// Unknown email and wrong password surface identically from the service;
	// the transport must render a single failure shape for both.
	us := &fakeUserService{loginErr: common.ErrorUnauthorized}
	s := newTestServer(t, us, &fakeOrganisationService{})

	body := `{"email":"ghost@example.com","password":"whatever"}`
	resp, payload := doJSON(t, s, http.MethodPost, "/auth/login", body, nil)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusUnauthorized)
	}
	if payload["status"] != "Bad request" || payload["message"] != "Authentication failed" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if payload["statusCode"] != float64(401) {
		t.Fatalf("statusCode must be 401, got %v", payload["statusCode"])
	}
}

func TestListOrganisations_ScopedToCaller(t *testing.T) {
	os := &fakeOrganisationService{listOut: []*models.Organisation{
		{ID: "o-1", Name: "John's Organisation", Description: "John's default organisation", OwnerID: "u-1"},
	}}
	s := newTestServer(t, &fakeUserService{}, os)

	token, err := auth.GenerateToken("u-1", "john.doe@example.com", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	resp, payload := doJSON(t, s, http.MethodGet, "/api/organisations", "", map[string]string{
		"Authorization": "Bearer " + token,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusOK)
	}
	if os.listOwner != "u-1" {
		t.Fatalf("listing must be scoped to the token's user, got %q", os.listOwner)
	}

	data := payload["data"].(map[string]any)
	orgs := data["organisations"].([]any)
	if len(orgs) != 1 {
		t.Fatalf("expected one organisation, got %d", len(orgs))
	}
	org := orgs[0].(map[string]any)
	if org["orgId"] != "o-1" || org["name"] != "John's Organisation" {
		t.Fatalf("unexpected organisation payload: %v", org)
	}
}

func TestListOrganisations_StorageError(t *testing.T) {
	os := &fakeOrganisationService{listErr: errors.New("db down")}
	s := newTestServer(t, &fakeUserService{}, os)

	token, err := auth.GenerateToken("u-1", "john.doe@example.com", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	resp, payload := doJSON(t, s, http.MethodGet, "/api/organisations", "", map[string]string{
		"Authorization": "Bearer " + token,
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if payload["message"] != "Error fetching organisations" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestCreateOrganisation_Created(t *testing.T) {
	os := &fakeOrganisationService{createOut: &models.Organisation{
		ID:          "o-9",
		Name:        "Side Project",
		Description: "weekend hacking",
		OwnerID:     "u-1",
	}}
	s := newTestServer(t, &fakeUserService{}, os)

	token, err := auth.GenerateToken("u-1", "john.doe@example.com", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	body := `{"name":"Side Project","description":"weekend hacking"}`
	resp, payload := doJSON(t, s, http.MethodPost, "/api/organisations", body, map[string]string{
		"Authorization": "Bearer " + token,
	})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusCreated)
	}
	if os.createOwner != "u-1" {
		t.Fatalf("owner must come from the token, got %q", os.createOwner)
	}
	data := payload["data"].(map[string]any)
	if data["orgId"] != "o-9" || data["name"] != "Side Project" || data["description"] != "weekend hacking" {
		t.Fatalf("unexpected payload: %v", data)
	}
}

func TestCreateOrganisation_EmptyName(t *testing.T) {
	verr := &services.ValidationError{Fields: []services.FieldError{
		{Field: "name", Message: "Name is required"},
	}}
	os := &fakeOrganisationService{createErr: verr}
	s := newTestServer(t, &fakeUserService{}, os)

	token, err := auth.GenerateToken("u-1", "john.doe@example.com", []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	resp, payload := doJSON(t, s, http.MethodPost, "/api/organisations", `{"description":"no name"}`, map[string]string{
		"Authorization": "Bearer " + token,
	})

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}
	errs := payload["errors"].([]any)
	first := errs[0].(map[string]any)
	if first["field"] != "name" {
		t.Fatalf("unexpected error payload: %v", first)
	}
}
