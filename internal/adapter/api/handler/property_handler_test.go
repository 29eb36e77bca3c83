package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghargpt/internal/adapter/api"
	"ghargpt/internal/domain/entity"
	"ghargpt/internal/domain/repository"
	"ghargpt/internal/usecase"
	"ghargpt/pkg/errors"
)

// stubRepo drives the handlers through a real use case without a store.
type stubRepo struct {
	properties map[string]*entity.Property
	nextID     int
	failWith   error
	listCalls  int
	writes     int
}

func newStubRepo() *stubRepo {
	return &stubRepo{properties: map[string]*entity.Property{}}
}

func (s *stubRepo) List(ctx context.Context, filter repository.PropertyFilter, skip, limit int) ([]*entity.Property, error) {
	s.listCalls++
	if s.failWith != nil {
		return nil, s.failWith
	}
	result := []*entity.Property{}
	for _, p := range s.properties {
		if filter.City != "" && p.Location.City != filter.City {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	p, ok := s.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	return p, nil
}

func (s *stubRepo) Create(ctx context.Context, property *entity.Property) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	s.nextID++
	property.ID = fmt.Sprintf("prop-%04d", s.nextID)
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now
	s.properties[property.ID] = property
	return nil
}

func (s *stubRepo) Update(ctx context.Context, id string, update *entity.PropertyUpdate) (*entity.Property, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.writes++
	p, ok := s.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}

func (s *stubRepo) Delete(ctx context.Context, id string) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.properties[id]; !ok {
		return errors.NotFound("Property", nil)
	}
	delete(s.properties, id)
	return nil
}

func newTestHandler() (*PropertyHandler, *stubRepo, *echo.Echo) {
	repo := newStubRepo()
	h := NewPropertyHandler(usecase.NewPropertyUseCase(repo))
	e := echo.New()
	e.Validator = api.NewValidator()
	return h, repo, e
}

func seedProperty(t *testing.T, repo *stubRepo, name, city string) *entity.Property {
	t.Helper()
	p := &entity.Property{
		Name:         name,
		PropertyType: entity.PropertyTypeHouse,
		Location:     entity.Location{City: city},
		Budget:       entity.Budget{Amount: 25000000, Currency: "INR"},
		Owner:        entity.Owner{Type: entity.OwnerTypeOwner, Name: "Ravi Kumar"},
		Status:       entity.StatusActive,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	repo.writes = 0
	return p
}

const createBody = `{
	"name": "Green Meadows Villa",
	"property_type": "House",
	"age": 3,
	"location": {
		"city": "Hyderabad",
		"area": "Gachibowli",
		"address": "12-34 Main Road",
		"pincode": "500032",
		"state": "Telangana",
		"country": "India",
		"coordinates": {"latitude": 17.44, "longitude": 78.35}
	},
	"budget": {"amount": 25000000, "negotiable": true},
	"specifications": {"bedrooms": 3, "bathrooms": 2, "facing": "North-East"},
	"owner": {
		"type": "Owner",
		"name": "Ravi Kumar",
		"contact": {"phone": "+919876543210", "email": "ravi@example.com"}
	},
	"slug": "green-meadows-villa-gachibowli",
	"meta": {"title": "Green Meadows Villa", "description": "3BHK villa in Gachibowli", "keywords": ["villa", "hyderabad"]}
}`

func TestListPropertiesOK(t *testing.T) {
	h, repo, e := newTestHandler()
	seedProperty(t, repo, "Hyderabad Villa", "Hyderabad")
	seedProperty(t, repo, "Mumbai Flat", "Mumbai")

	req := httptest.NewRequest(http.MethodGet, "/properties?city=Hyderabad&min_budget=20000000&max_budget=30000000", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProperties(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hyderabad Villa")
	assert.NotContains(t, rec.Body.String(), "Mumbai Flat")
}

func TestListPropertiesEmptyResult(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/properties?city=Chennai", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProperties(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListPropertiesInvertedBudgetRange(t *testing.T) {
	h, repo, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/properties?min_budget=30000000&max_budget=20000000", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProperties(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, repo.listCalls, "inverted range must never reach the store")
}

func TestListPropertiesBadPagination(t *testing.T) {
	h, _, e := newTestHandler()

	for _, target := range []string{
		"/properties?skip=-1",
		"/properties?limit=0",
		"/properties?limit=1001",
		"/properties?min_budget=-5",
		"/properties?is_verified=maybe",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.ListProperties(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestListPropertiesStoreFailure(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.failWith = fmt.Errorf("connection reset")

	req := httptest.NewRequest(http.MethodGet, "/properties", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProperties(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestGetPropertyOK(t *testing.T) {
	h, repo, e := newTestHandler()
	p := seedProperty(t, repo, "Hyderabad Villa", "Hyderabad")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues(p.ID)

	require.NoError(t, h.GetProperty(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), p.ID)
}

func TestGetPropertyNotFound(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues("665f1c2e8b3f4a0012345678")

	require.NoError(t, h.GetProperty(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePropertyCreated(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/properties", strings.NewReader(createBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateProperty(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data entity.Property `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.ID)
	assert.True(t, envelope.Data.CreatedAt.Equal(envelope.Data.UpdatedAt))
	assert.Equal(t, entity.StatusActive, envelope.Data.Status)
	assert.Equal(t, "INR", envelope.Data.Budget.Currency)
	assert.Equal(t, "Green Meadows Villa", envelope.Data.Name)
}

func TestCreatePropertyMissingName(t *testing.T) {
	h, repo, e := newTestHandler()

	body := strings.Replace(createBody, `"name": "Green Meadows Villa",`, "", 1)
	req := httptest.NewRequest(http.MethodPost, "/properties", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateProperty(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, repo.writes)
}

func TestCreatePropertyUnknownType(t *testing.T) {
	h, _, e := newTestHandler()

	body := strings.Replace(createBody, `"property_type": "House"`, `"property_type": "Castle"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/properties", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateProperty(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePropertyEmptyBody(t *testing.T) {
	h, repo, e := newTestHandler()
	p := seedProperty(t, repo, "Unchanged Villa", "Hyderabad")

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues(p.ID)

	require.NoError(t, h.UpdateProperty(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unchanged Villa")
	assert.Equal(t, 0, repo.writes, "empty payload must not write")
}

func TestUpdatePropertyPartial(t *testing.T) {
	h, repo, e := newTestHandler()
	p := seedProperty(t, repo, "Before Rename", "Hyderabad")

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"name": "After Rename"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues(p.ID)

	require.NoError(t, h.UpdateProperty(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "After Rename")
	assert.Equal(t, 1, repo.writes)
}

func TestUpdatePropertyNotFound(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"name": "Ghost"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues("665f1c2e8b3f4a0012345678")

	require.NoError(t, h.UpdateProperty(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProperty(t *testing.T) {
	h, repo, e := newTestHandler()
	p := seedProperty(t, repo, "Doomed Villa", "Hyderabad")

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues(p.ID)

	require.NoError(t, h.DeleteProperty(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// Second delete reports absence, not failure.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetPath("/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues(p.ID)

	require.NoError(t, h.DeleteProperty(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
