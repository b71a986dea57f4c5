package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
	"github.com/Abdelrhman012/parking-reservations-system/internal/dto"
	"github.com/Abdelrhman012/parking-reservations-system/internal/store"
)

func newTestAuthService(t *testing.T) *authService {
	t.Helper()
	st := store.New()
	err := st.Update(func(tx *store.Tx) error {
		tx.AddUser(&domain.User{ID: "admin_1", Username: "admin", Name: "Admin", Role: domain.RoleAdmin, Password: "adminpass"})
		tx.AddUser(&domain.User{ID: "emp_1", Username: "emp1", Name: "Employee One", Role: domain.RoleEmployee, Password: "pass1"})
		return nil
	})
	require.NoError(t, err)

	svc := NewAuthService(st, "test-secret", time.Hour, "parking-reservations").(*authService)
	svc.nowFn = func() time.Time { return testNow }
	return svc
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "adminpass"})
	require.NoError(t, err)
	assert.Equal(t, "admin_1", resp.User.ID)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)
	require.NotEmpty(t, resp.Token)

	user, err := svc.VerifyToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin_1", user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "Admin", user.Name)
	assert.Equal(t, "admin", user.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *dto.LoginRequest
	}{
		{"unknown user", &dto.LoginRequest{Username: "nope", Password: "adminpass"}},
		{"wrong password", &dto.LoginRequest{Username: "admin", Password: "wrong"}},
		{"empty password", &dto.LoginRequest{Username: "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
			assert.Equal(t, "Invalid credentials", err.Error())
		})
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.VerifyToken(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	assert.Equal(t, "Invalid token", err.Error())
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestAuthService(t)
	other := newTestAuthService(t)
	other.secret = []byte("different-secret")

	resp, err := other.Login(context.Background(), &dto.LoginRequest{Username: "emp1", Password: "pass1"})
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), resp.Token)
	require.Error(t, err)
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "emp1", Password: "pass1"})
	require.NoError(t, err)

	// still good just inside the TTL
	svc.nowFn = func() time.Time { return testNow.Add(59 * time.Minute) }
	_, err = svc.VerifyToken(ctx, resp.Token)
	require.NoError(t, err)

	svc.nowFn = func() time.Time { return testNow.Add(2 * time.Hour) }
	_, err = svc.VerifyToken(ctx, resp.Token)
	require.Error(t, err)
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	assert.Equal(t, "Invalid token", err.Error())
}
