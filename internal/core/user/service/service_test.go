package userapp_test

import (
	"context"
	"testing"

	"blogicum/internal/adapters/inmemory"
	"blogicum/internal/core/errs"
	userapp "blogicum/internal/core/user/service"
	userPort "blogicum/internal/ports/user"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService() *userapp.UserService {
	return userapp.NewUserService(
		inmemory.NewUserRepository(),
		inmemory.NewSessionStore(),
		[]byte("test-secret"),
		zap.NewNop(),
	)
}

func register(t *testing.T, svc *userapp.UserService, username string) *userPort.UserDTO {
	t.Helper()
	u, err := svc.Register(context.Background(), userPort.RegisterInput{
		Username: username,
		Password: "correct horse",
	})
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	t.Parallel()

	svc := newService()
	u := register(t, svc, "alice")
	assert.Equal(t, "alice", u.Username)

	_, err := svc.Register(context.Background(), userPort.RegisterInput{Username: "alice", Password: "something else"})
	assert.ErrorIs(t, err, errs.ErrConflict)

	_, err = svc.Register(context.Background(), userPort.RegisterInput{Username: "short", Password: "tiny"})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestLoginAndVerify(t *testing.T) {
	t.Parallel()

	svc := newService()
	u := register(t, svc, "alice")

	res, err := svc.Login(context.Background(), userPort.LoginInput{Username: "alice", Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	actorID, err := svc.VerifyToken(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, actorID.String())

	_, err = svc.Login(context.Background(), userPort.LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, userapp.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), userPort.LoginInput{Username: "nobody", Password: "correct horse"})
	assert.ErrorIs(t, err, userapp.ErrInvalidCredentials)

	_, err = svc.VerifyToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, userapp.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	t.Parallel()

	svc := newService()
	register(t, svc, "alice")

	res, err := svc.Login(context.Background(), userPort.LoginInput{Username: "alice", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), res.Token))

	_, err = svc.VerifyToken(context.Background(), res.Token)
	assert.ErrorIs(t, err, userapp.ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	svc := newService()
	alice := register(t, svc, "alice")
	register(t, svc, "bob")
	aliceID := uuid.FromStringOrNil(alice.ID)

	updated, err := svc.UpdateProfile(context.Background(), aliceID, userPort.ProfileInput{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", updated.FullName)

	// renaming onto an existing username is a conflict
	_, err = svc.UpdateProfile(context.Background(), aliceID, userPort.ProfileInput{Username: "bob"})
	assert.ErrorIs(t, err, errs.ErrConflict)

	_, err = svc.UpdateProfile(context.Background(), aliceID, userPort.ProfileInput{Username: "alice", Email: "not-an-email"})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}
