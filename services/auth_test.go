package services

import (
	"context"
	"testing"

	"snapill/models"
	"snapill/store"
	"snapill/util"

	"github.com/stretchr/testify/assert"
)

func useUserStore(t *testing.T, mock store.UserStore) {
	t.Helper()
	original := store.Users
	store.Users = mock
	t.Cleanup(func() { store.Users = original })
}

// inMemoryUsers wires a mockUserStore so created accounts are visible to
// later FetchByEmail calls, the way the real adapter behaves.
func inMemoryUsers(t *testing.T) *mockUserStore {
	accounts := map[string]*models.User{}
	mock := &mockUserStore{}
	mock.FetchByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		if user, ok := accounts[email]; ok {
			found := *user
			return &found, nil
		}
		return nil, nil
	}
	mock.CreateFunc = func(ctx context.Context, user *models.User) error {
		user.Code = "user-1"
		copied := *user
		accounts[user.Email] = &copied
		return nil
	}
	useUserStore(t, mock)
	return mock
}

func TestSignUpThenSignIn(t *testing.T) {
	inMemoryUsers(t)
	c := newTestContext("")

	result, err := SignUp(c, map[string]interface{}{
		"email":    "user@example.com",
		"password": "Passw0rd!",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, result["token"])
	assert.Equal(t, "user@example.com", result["user"].(map[string]interface{})["email"])

	signedIn, err := SignIn(c, map[string]interface{}{
		"email":    "user@example.com",
		"password": "Passw0rd!",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, signedIn["token"])
	assert.Equal(t, "user-1", signedIn["user"].(map[string]interface{})["code"])
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	inMemoryUsers(t)
	c := newTestContext("")

	data := map[string]interface{}{"email": "user@example.com", "password": "Passw0rd!"}
	_, err := SignUp(c, data)
	assert.NoError(t, err)

	_, err = SignUp(c, data)
	assert.EqualError(t, err, util.EMAIL_ALREADY_REGISTERED)
}

func TestSignUpValidation(t *testing.T) {
	inMemoryUsers(t)
	c := newTestContext("")

	cases := []struct {
		email    string
		password string
		message  string
	}{
		{"", "Passw0rd!", util.EMAIL_NOT_PROVIDED},
		{"not-an-email", "Passw0rd!", util.INVALID_EMAIL},
		{"user@example.com", "", util.PASSWORD_NOT_PROVIDED},
		{"user@example.com", "Sh0rt!", "password must be at least 7 characters long"},
		{"user@example.com", "passw0rd!", "password must contain at least one uppercase letter"},
		{"user@example.com", "Password!", "password must contain at least one number"},
		{"user@example.com", "Passw0rd", "password must contain at least one special character"},
	}
	for _, tc := range cases {
		_, err := SignUp(c, map[string]interface{}{"email": tc.email, "password": tc.password})
		assert.EqualError(t, err, tc.message)
	}
}

func TestSignInUnknownEmail(t *testing.T) {
	inMemoryUsers(t)

	_, err := SignIn(newTestContext(""), map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "Passw0rd!",
	})
	assert.EqualError(t, err, util.USER_NOT_FOUND)
}

func TestSignInWrongPassword(t *testing.T) {
	inMemoryUsers(t)
	c := newTestContext("")

	_, err := SignUp(c, map[string]interface{}{"email": "user@example.com", "password": "Passw0rd!"})
	assert.NoError(t, err)

	_, err = SignIn(c, map[string]interface{}{"email": "user@example.com", "password": "Wr0ngPass!"})
	assert.EqualError(t, err, util.PASSWORD_MISMATCH)
}

func TestSignUpNeverStoresPlaintextPassword(t *testing.T) {
	var created *models.User
	mock := &mockUserStore{
		CreateFunc: func(ctx context.Context, user *models.User) error {
			user.Code = "user-1"
			created = user
			return nil
		},
	}
	useUserStore(t, mock)

	_, err := SignUp(newTestContext(""), map[string]interface{}{
		"email":    "user@example.com",
		"password": "Passw0rd!",
	})
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.NotEqual(t, "Passw0rd!", created.Password)
	assert.NotEmpty(t, created.Password)
}
