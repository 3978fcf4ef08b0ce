package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashishk-dev/renteasy-backend/models"
	"github.com/ashishk-dev/renteasy-backend/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOwnerStore keeps owners in a map keyed by phone.
type fakeOwnerStore struct {
	owners    map[string]models.Owner
	findErr   error
	insertErr error
}

func newFakeOwnerStore() *fakeOwnerStore {
	return &fakeOwnerStore{owners: map[string]models.Owner{}}
}

func (f *fakeOwnerStore) FindByPhone(ctx context.Context, phone string) (*models.Owner, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	owner, ok := f.owners[phone]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &owner, nil
}

func (f *fakeOwnerStore) Insert(ctx context.Context, owner *models.Owner) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.owners[owner.Phone] = *owner
	return nil
}

// fakeUserStore mirrors fakeOwnerStore for the renter collection.
type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	user, ok := f.users[phone]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &user, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) error {
	f.users[user.Phone] = *user
	return nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestOwnerSignup(t *testing.T) {
	store := newFakeOwnerStore()
	handler := OwnerSignup(store)

	rec := postJSON(t, handler, "/api/owner/signup", map[string]string{"phone": "555", "password": "a"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	_, ok := store.owners["555"]
	assert.True(t, ok, "owner should be persisted")
}

func TestOwnerSignup_MissingFields(t *testing.T) {
	store := newFakeOwnerStore()
	handler := OwnerSignup(store)

	for _, body := range []map[string]string{
		{"phone": "555"},
		{"password": "a"},
		{},
	} {
		rec := postJSON(t, handler, "/api/owner/signup", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeBody(t, rec)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Phone and password required", resp["message"])
	}
	assert.Empty(t, store.owners, "nothing should be persisted")
}

func TestOwnerSignup_DuplicatePhone(t *testing.T) {
	store := newFakeOwnerStore()
	handler := OwnerSignup(store)

	rec := postJSON(t, handler, "/api/owner/signup", map[string]string{"phone": "555", "password": "a"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler, "/api/owner/signup", map[string]string{"phone": "555", "password": "other"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Owner already exists", decodeBody(t, rec)["message"])
}

func TestOwnerLogin_Scenario(t *testing.T) {
	store := newFakeOwnerStore()

	rec := postJSON(t, OwnerSignup(store), "/api/owner/signup", map[string]string{"phone": "555", "password": "a"})
	require.Equal(t, http.StatusCreated, rec.Code)

	login := OwnerLogin(store)

	rec = postJSON(t, login, "/api/owner/login", map[string]string{"phone": "555", "password": "a"})
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	owner, ok := body["owner"].(map[string]any)
	require.True(t, ok, "response should carry the owner record")
	assert.Equal(t, "555", owner["phone"])
	// The stored record comes back whole, password included.
	assert.Equal(t, "a", owner["password"])

	rec = postJSON(t, login, "/api/owner/login", map[string]string{"phone": "555", "password": "b"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
}

func TestOwnerLogin_UnknownPhone(t *testing.T) {
	rec := postJSON(t, OwnerLogin(newFakeOwnerStore()), "/api/owner/login", map[string]string{"phone": "999", "password": "a"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Owner not found", decodeBody(t, rec)["message"])
}

func TestUserSignup_RequiresName(t *testing.T) {
	store := newFakeUserStore()
	handler := UserSignup(store)

	rec := postJSON(t, handler, "/api/user/signup", map[string]string{"phone": "555", "password": "a"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, phone and password required", decodeBody(t, rec)["message"])

	rec = postJSON(t, handler, "/api/user/signup", map[string]string{"name": "Sita", "phone": "555", "password": "a"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUserLogin(t *testing.T) {
	store := newFakeUserStore()
	rec := postJSON(t, UserSignup(store), "/api/user/signup", map[string]string{"name": "Sita", "phone": "777", "password": "pw"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, UserLogin(store), "/api/user/login", map[string]string{"phone": "777", "password": "pw"})
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Sita", user["name"])

	rec = postJSON(t, UserLogin(store), "/api/user/login", map[string]string{"phone": "000", "password": "pw"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOwnerAndUserPhonesIndependent(t *testing.T) {
	ownerStore := newFakeOwnerStore()
	userStore := newFakeUserStore()

	rec := postJSON(t, OwnerSignup(ownerStore), "/api/owner/signup", map[string]string{"phone": "555", "password": "a"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Same phone in the renter namespace does not conflict.
	rec = postJSON(t, UserSignup(userStore), "/api/user/signup", map[string]string{"name": "Ram", "phone": "555", "password": "b"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOwnerSignup_StoreFailure(t *testing.T) {
	store := newFakeOwnerStore()
	store.findErr = assert.AnError
	rec := postJSON(t, OwnerSignup(store), "/api/owner/signup", map[string]string{"phone": "555", "password": "a"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])
}
