package users

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"wodtracker/internal/common"
	"wodtracker/internal/server/auth"
	"wodtracker/internal/server/config"
)

// ---- fake repository ----

type fakeRepo struct {
	CreateErr error
	GetRet    *User
	GetErr    error

	CreateCalls int
	LastCreated *User
}

func (f *fakeRepo) Create(ctx context.Context, user *User) (*User, error) {
	f.CreateCalls++
	f.LastCreated = user
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	user.ID = "user-1"
	return user, nil
}

func (f *fakeRepo) GetUserByLogin(ctx context.Context, login string) (*User, error) {
	return f.GetRet, f.GetErr
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
	}
}

// ---- TESTS ----

func TestRegister_HashesPassword(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo, testConfig())

	u, err := s.Register(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.NotEqual(t, "secret1", u.PasswordHash, "plaintext must never be stored")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
}

func TestRegister_EmptyFields(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo, testConfig())

	for _, tc := range []struct{ username, password string }{
		{"", "secret1"},
		{"alice", ""},
		{"", ""},
	} {
		_, err := s.Register(context.Background(), tc.username, tc.password)
		require.ErrorIs(t, err, common.ErrorValidation)
	}
	require.Zero(t, repo.CreateCalls, "validation failures must not reach the repository")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := &fakeRepo{CreateErr: common.ErrorAlreadyExists}
	s := NewService(repo, testConfig())

	_, err := s.Register(context.Background(), "alice", "secret1")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcryptCost)
	require.NoError(t, err)

	repo := &fakeRepo{GetRet: &User{ID: "user-1", Username: "alice", PasswordHash: string(hash)}}
	s := NewService(repo, testConfig())

	token, err := s.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(token, "."), "expected three-part signed token")

	claims, err := auth.ParseToken(token, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcryptCost)
	require.NoError(t, err)

	unknown := &fakeRepo{GetErr: common.ErrorNotFound}
	wrongPw := &fakeRepo{GetRet: &User{ID: "user-1", Username: "alice", PasswordHash: string(hash)}}

	s1 := NewService(unknown, testConfig())
	s2 := NewService(wrongPw, testConfig())

	_, err1 := s1.Login(context.Background(), "nobody", "secret1")
	_, err2 := s2.Login(context.Background(), "alice", "wrong")

	require.ErrorIs(t, err1, common.ErrorUnauthorized)
	require.ErrorIs(t, err2, common.ErrorUnauthorized)
	require.Equal(t, err1, err2, "unknown user and bad password must be indistinguishable")
}

func TestLogin_RepoFailure(t *testing.T) {
	repo := &fakeRepo{GetErr: common.ErrorInternal}
	s := NewService(repo, testConfig())

	_, err := s.Login(context.Background(), "alice", "secret1")
	require.ErrorIs(t, err, common.ErrorInternal)
}
