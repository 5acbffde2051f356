package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mjtoys/models"
)

type fakeUserRepo struct {
	users map[string]*models.AppUser
}

func (f *fakeUserRepo) CreateUser(user *models.AppUser) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	if f.users == nil {
		f.users = map[string]*models.AppUser{}
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*models.AppUser, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func TestSignupAndLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	h := &UserHandler{Repo: repo}

	rec := postJSON(t, h.Signup, map[string]string{
		"name":     "Pat Clerk",
		"email":    "pat@example.com",
		"password": "s3cret",
		"role":     "staff",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("correct password", func(t *testing.T) {
		rec := postJSON(t, h.Login, map[string]string{
			"email":    "pat@example.com",
			"password": "s3cret",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postJSON(t, h.Login, map[string]string{
			"email":    "pat@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := postJSON(t, h.Login, map[string]string{
			"email":    "nobody@example.com",
			"password": "s3cret",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSignupValidation(t *testing.T) {
	h := &UserHandler{Repo: &fakeUserRepo{}}
	rec := postJSON(t, h.Signup, map[string]string{"email": "pat@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
