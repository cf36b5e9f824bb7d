package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atinyakov/starwars-api/internal/errs"
	"github.com/atinyakov/starwars-api/internal/models"
	"github.com/atinyakov/starwars-api/internal/repository"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakePeopleService implements PeopleService for testing.
type fakePeopleService struct {
	people    []models.Person
	person    *models.Person
	err       error
	created   *models.Person
	deletedID int64
}

func (f *fakePeopleService) List(context.Context) ([]models.Person, error) { return f.people, f.err }
func (f *fakePeopleService) Get(context.Context, int64) (*models.Person, error) {
	return f.person, f.err
}
func (f *fakePeopleService) Create(_ context.Context, p *models.Person) error {
	if f.err != nil {
		return f.err
	}
	p.ID = 1
	f.created = p
	return nil
}
func (f *fakePeopleService) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

// fakePlanetService implements PlanetService for testing.
type fakePlanetService struct {
	planet  *models.Planet
	err     error
	created *models.Planet
}

func (f *fakePlanetService) List(context.Context) ([]models.Planet, error) {
	return []models.Planet{}, f.err
}
func (f *fakePlanetService) Get(context.Context, int64) (*models.Planet, error) {
	return f.planet, f.err
}
func (f *fakePlanetService) Create(_ context.Context, p *models.Planet) error {
	f.created = p
	p.ID = 2
	return f.err
}
func (f *fakePlanetService) Delete(context.Context, int64) error { return f.err }

// fakeUserService implements UserService for testing.
type fakeUserService struct {
	favorites []models.Favorite
	err       error
	password  string
	created   *models.User
}

func (f *fakeUserService) List(context.Context) ([]models.User, error) { return nil, f.err }
func (f *fakeUserService) Favorites(context.Context, int64) ([]models.Favorite, error) {
	return f.favorites, f.err
}
func (f *fakeUserService) Create(_ context.Context, u *models.User, password string) error {
	f.password = password
	f.created = u
	return f.err
}

// fakeFavoriteService implements FavoriteService for testing.
type fakeFavoriteService struct {
	err     error
	created *models.Favorite
}

func (f *fakeFavoriteService) Create(_ context.Context, fav *models.Favorite) error {
	f.created = fav
	fav.ID = 3
	return f.err
}

type fakes struct {
	people    *fakePeopleService
	planets   *fakePlanetService
	users     *fakeUserService
	favorites *fakeFavoriteService
}

func newTestRouter(f fakes, logger *zap.Logger) http.Handler {
	if f.people == nil {
		f.people = &fakePeopleService{}
	}
	if f.planets == nil {
		f.planets = &fakePlanetService{}
	}
	if f.users == nil {
		f.users = &fakeUserService{}
	}
	if f.favorites == nil {
		f.favorites = &fakeFavoriteService{}
	}
	return NewRouter(
		&PeopleHandler{PeopleService: f.people, Logger: logger},
		&PlanetHandler{PlanetService: f.planets, Logger: logger},
		&UserHandler{UserService: f.users, Logger: logger},
		&FavoriteHandler{FavoriteService: f.favorites, Logger: logger},
		[]string{"*"},
		logger,
	)
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var e errs.HTTPError
	if err := json.NewDecoder(rec.Body).Decode(&e); err != nil {
		t.Fatalf("failed to decode error body %q: %v", rec.Body.String(), err)
	}
	return e
}

func TestPeopleHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakePeopleService
		expectedCode int
		wantFields   int
	}{
		{
			name:         "invalid JSON",
			body:         `not a json`,
			service:      &fakePeopleService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing lastname and side",
			body:         `{"name":"Luke"}`,
			service:      &fakePeopleService{},
			expectedCode: http.StatusBadRequest,
			wantFields:   2,
		},
		{
			name:         "empty name",
			body:         `{"name":"","lastname":"Skywalker","side":"light"}`,
			service:      &fakePeopleService{},
			expectedCode: http.StatusBadRequest,
			wantFields:   1,
		},
		{
			name:         "storage failure is not leaked",
			body:         `{"name":"Luke","lastname":"Skywalker","side":"light"}`,
			service:      &fakePeopleService{err: errors.New("pq: relation \"people\" does not exist")},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "created",
			body:         `{"name":"Luke","lastname":"Skywalker","side":"light"}`,
			service:      &fakePeopleService{},
			expectedCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newTestRouter(fakes{people: tt.service}, zap.NewNop()), http.MethodPost, "/newpeople", tt.body)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedCode, rec.Code, rec.Body.String())
			}
			if bytes.Contains(rec.Body.Bytes(), []byte("pq:")) {
				t.Errorf("response leaks internal error: %s", rec.Body.String())
			}
			if tt.expectedCode == http.StatusBadRequest {
				if e := decodeError(t, rec); len(e.Errors) != tt.wantFields {
					t.Errorf("field errors = %+v; want %d", e.Errors, tt.wantFields)
				}
				if tt.service.created != nil {
					t.Error("service called despite invalid request")
				}
			}
			if tt.expectedCode == http.StatusCreated {
				var payload struct {
					Message string        `json:"message"`
					Person  models.Person `json:"person"`
				}
				if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
					t.Fatalf("failed to decode JSON: %v", err)
				}
				want := models.Person{ID: 1, Name: "Luke", LastName: "Skywalker", Side: "light"}
				if payload.Person != want || payload.Message != "person created" {
					t.Errorf("payload = %+v; want person %+v", payload, want)
				}
			}
		})
	}
}

func TestPeopleHandler_GetAndDelete(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		service      *fakePeopleService
		expectedCode int
	}{
		{"get found", http.MethodGet, "/people/1", &fakePeopleService{person: &models.Person{ID: 1}}, http.StatusOK},
		{"get missing", http.MethodGet, "/people/2", &fakePeopleService{err: repository.ErrNotFound}, http.StatusNotFound},
		{"get non-numeric", http.MethodGet, "/people/abc", &fakePeopleService{}, http.StatusNotFound},
		{"delete ok", http.MethodDelete, "/deletepeople/7", &fakePeopleService{}, http.StatusOK},
		{"delete missing", http.MethodDelete, "/deletepeople/8", &fakePeopleService{err: repository.ErrNotFound}, http.StatusNotFound},
		{"list", http.MethodGet, "/people", &fakePeopleService{people: []models.Person{{ID: 1}}}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newTestRouter(fakes{people: tt.service}, zap.NewNop()), tt.method, tt.path, "")
			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
		})
	}

	svc := &fakePeopleService{}
	do(newTestRouter(fakes{people: svc}, zap.NewNop()), http.MethodDelete, "/deletepeople/7", "")
	if svc.deletedID != 7 {
		t.Errorf("deleted id = %d; want 7", svc.deletedID)
	}
}

func TestPlanetHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
	}{
		{"missing population", `{"name":"Hoth","terrain":"ice","galaxy":"Outer Rim"}`, http.StatusBadRequest},
		{"missing galaxy", `{"name":"Hoth","terrain":"ice","population":10}`, http.StatusBadRequest},
		{"missing name", `{"terrain":"ice","population":10,"galaxy":"Outer Rim"}`, http.StatusBadRequest},
		{"missing terrain", `{"name":"Hoth","population":10,"galaxy":"Outer Rim"}`, http.StatusBadRequest},
		{"population must be a number", `{"name":"Hoth","terrain":"ice","population":"many","galaxy":"Outer Rim"}`, http.StatusBadRequest},
		{"zero population is present", `{"name":"Hoth","terrain":"ice","population":0,"galaxy":"Outer Rim"}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePlanetService{}
			rec := do(newTestRouter(fakes{planets: svc}, zap.NewNop()), http.MethodPost, "/planets", tt.body)
			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedCode, rec.Code, rec.Body.String())
			}
			if tt.expectedCode == http.StatusBadRequest && svc.created != nil {
				t.Error("planet persisted despite missing field")
			}
			if tt.expectedCode == http.StatusCreated {
				var p models.Planet
				if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
					t.Fatalf("failed to decode JSON: %v", err)
				}
				if p.ID != 2 || p.Name != "Hoth" || p.Population != 0 {
					t.Errorf("planet = %+v", p)
				}
			}
		})
	}
}

func TestPlanetHandler_NotFoundMessage(t *testing.T) {
	rec := do(newTestRouter(fakes{planets: &fakePlanetService{err: repository.ErrNotFound}}, zap.NewNop()),
		http.MethodDelete, "/planets/3", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if e := decodeError(t, rec); e.Message != "planet not found" || e.Code != "NOT_FOUND" {
		t.Errorf("error = %+v", e)
	}
}

func TestUserHandler(t *testing.T) {
	t.Run("favorites of unknown user", func(t *testing.T) {
		rec := do(newTestRouter(fakes{users: &fakeUserService{err: repository.ErrNotFound}}, zap.NewNop()),
			http.MethodGet, "/users/9/favorites", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("favorites of known user", func(t *testing.T) {
		planet := int64(4)
		svc := &fakeUserService{favorites: []models.Favorite{{ID: 1, UserID: 9, PlanetID: &planet}}}
		rec := do(newTestRouter(fakes{users: svc}, zap.NewNop()), http.MethodGet, "/users/9/favorites", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var got []map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode JSON: %v", err)
		}
		if len(got) != 1 || got[0]["planet_id"] != float64(4) || got[0]["people_id"] != nil {
			t.Errorf("favorites = %+v", got)
		}
	})

	t.Run("create defaults to active", func(t *testing.T) {
		svc := &fakeUserService{}
		rec := do(newTestRouter(fakes{users: svc}, zap.NewNop()), http.MethodPost, "/users",
			`{"username":"luke","email":"luke@rebels.org","password":"xwing"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", rec.Code)
		}
		if !svc.created.IsActive || svc.password != "xwing" {
			t.Errorf("created = %+v, password %q", svc.created, svc.password)
		}
		if bytes.Contains(rec.Body.Bytes(), []byte("xwing")) {
			t.Error("password echoed in response")
		}
	})

	t.Run("create conflict", func(t *testing.T) {
		rec := do(newTestRouter(fakes{users: &fakeUserService{err: repository.ErrConflict}}, zap.NewNop()),
			http.MethodPost, "/users", `{"username":"luke","email":"luke@rebels.org","password":"xwing","is_active":false}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected status 409, got %d", rec.Code)
		}
	})

	t.Run("hello", func(t *testing.T) {
		rec := do(newTestRouter(fakes{}, zap.NewNop()), http.MethodGet, "/user", "")
		if rec.Code != http.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte("Hello, this is your GET /user response")) {
			t.Errorf("hello = %d %s", rec.Code, rec.Body.String())
		}
	})
}

func TestFavoriteHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		err          error
		expectedCode int
	}{
		{"invalid JSON", `{`, nil, http.StatusBadRequest},
		{"dangling reference", `{"user_id":1,"planet_id":99}`, repository.ErrInvalidReference, http.StatusBadRequest},
		{"constraint", `{"planet_id":1}`, repository.ErrConstraint, http.StatusBadRequest},
		{"created", `{"user_id":1,"people_id":2}`, nil, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeFavoriteService{err: tt.err}
			rec := do(newTestRouter(fakes{favorites: svc}, zap.NewNop()), http.MethodPost, "/favorites", tt.body)
			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedCode == http.StatusCreated {
				if svc.created.UserID != 1 || *svc.created.PeopleID != 2 || svc.created.PlanetID != nil {
					t.Errorf("created = %+v", svc.created)
				}
			}
		})
	}
}

func TestWriteError_LogsInternalErrors(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	rec := do(newTestRouter(fakes{planets: &fakePlanetService{err: errors.New("disk on fire")}}, zap.New(core)),
		http.MethodGet, "/planets", "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("disk on fire")) {
		t.Errorf("response leaks internal error: %s", rec.Body.String())
	}
	if logs.FilterMessage("request failed").Len() != 1 {
		t.Errorf("expected one logged failure, got %d", logs.Len())
	}
}

func TestRouter_ContentTypeAndUnknownRoutes(t *testing.T) {
	h := newTestRouter(fakes{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/planets", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("text/plain body: expected 415, got %d", rec.Code)
	}

	if rec := do(h, http.MethodGet, "/starships", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown route: expected 404, got %d", rec.Code)
	}
	if rec := do(h, http.MethodPut, "/planets/1", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("PUT planet: expected 405, got %d", rec.Code)
	}
}

func TestSitemap(t *testing.T) {
	h := newTestRouter(fakes{}, zap.NewNop())
	rec := do(h, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var payload sitemapResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	want := []Endpoint{
		{Method: http.MethodGet, Path: "/"},
		{Method: http.MethodGet, Path: "/users"},
		{Method: http.MethodGet, Path: "/users/{id}/favorites"},
		{Method: http.MethodDelete, Path: "/deletepeople/{id}"},
		{Method: http.MethodPost, Path: "/planets"},
		{Method: http.MethodPost, Path: "/favorites"},
	}
	served := make(map[Endpoint]bool, len(payload.Endpoints))
	for _, e := range payload.Endpoints {
		served[e] = true
	}
	for _, e := range want {
		if !served[e] {
			t.Errorf("sitemap missing %s %s; got %+v", e.Method, e.Path, payload.Endpoints)
		}
	}

	routes, ok := h.(chi.Routes)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}
	endpoints, err := Sitemap(routes)
	if err != nil {
		t.Fatalf("Sitemap error: %v", err)
	}
	if len(endpoints) != len(payload.Endpoints) {
		t.Errorf("Sitemap returned %d endpoints; handler served %d", len(endpoints), len(payload.Endpoints))
	}
}
