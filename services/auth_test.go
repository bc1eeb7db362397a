package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityserv/cityserv/models"
	"github.com/cityserv/cityserv/utils"
)

func TestSignUp(t *testing.T) {
	db := newTestDB(t)
	svc := AuthService{DB: db}

	user, err := svc.SignUp(SignUpInput{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, utils.VerifyPassword("password123", user.Password))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := AuthService{DB: db}

	_, err := svc.SignUp(SignUpInput{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.SignUp(SignUpInput{Name: "Other Alice", Email: "alice@example.com", Password: "password456"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSignUpDuplicateEmailLosingTheRace(t *testing.T) {
	db := newTestDB(t)

	// A concurrent sign-up that slips in after the pre-check hits the
	// unique index on email; that error must map to a conflict too.
	alice := models.User{Name: "Alice", Email: "alice@example.com", Password: "irrelevant"}
	require.NoError(t, db.Create(&alice).Error)

	dup := models.User{Name: "Other Alice", Email: "alice@example.com", Password: "irrelevant"}
	err := db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))

	// Postgres shapes the same failure differently.
	pgErr := errors.New(`ERROR: duplicate key value violates unique constraint "uni_users_email" (SQLSTATE 23505)`)
	assert.True(t, isUniqueViolation(pgErr))

	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestSignUpValidation(t *testing.T) {
	db := newTestDB(t)
	svc := AuthService{DB: db}

	_, err := svc.SignUp(SignUpInput{Name: "A", Email: "not-an-email", Password: "short"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}

func TestSignIn(t *testing.T) {
	db := newTestDB(t)
	svc := AuthService{DB: db}

	created, err := svc.SignUp(SignUpInput{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	user, err := svc.SignIn(SignInInput{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// Wrong password and unknown email fail identically.
	_, err = svc.SignIn(SignInInput{Email: "alice@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(SignInInput{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUser(t *testing.T) {
	db := newTestDB(t)
	svc := AuthService{DB: db}

	created := createUser(t, db, "Alice", "alice@example.com", models.RoleCustomer)

	user, err := svc.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	_, err = svc.GetUser(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
