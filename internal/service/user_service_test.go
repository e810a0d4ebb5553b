package service

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewflow/internal/domain"
	"brewflow/pkg/logger"
)

// mockUserRepo is an in-memory UserRepository that counts mutation calls so
// tests can assert the service never reaches the repository on invalid input.
type mockUserRepo struct {
	users  []*domain.User
	nextID int64

	createCalls int
	updateCalls int
	deleteCalls int
	byRoleCalls int

	lookupErr error
}

func (m *mockUserRepo) seed(username, email, password string, roleID int64) *domain.User {
	m.nextID++
	user := &domain.User{
		ID:       m.nextID,
		Username: username,
		Email:    email,
		Password: password,
		RoleID:   roleID,
	}
	m.users = append(m.users, user)
	return user
}

func (m *mockUserRepo) Authenticate(email, password string) (*domain.User, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, u := range m.users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Create(user *domain.User) (*domain.User, error) {
	m.createCalls++
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, user)
	return user, nil
}

func (m *mockUserRepo) FindByID(id int64) (*domain.User, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByUsername(username string) (*domain.User, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Update(user *domain.User) error {
	m.updateCalls++
	for i, u := range m.users {
		if u.ID == user.ID {
			m.users[i] = user
			return nil
		}
	}
	return nil
}

func (m *mockUserRepo) Delete(id int64) (bool, error) {
	m.deleteCalls++
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) FindAll() ([]*domain.User, error) {
	return m.users, nil
}

func (m *mockUserRepo) FindByRole(roleID int64) ([]*domain.User, error) {
	m.byRoleCalls++
	result := make([]*domain.User, 0)
	for _, u := range m.users {
		if u.RoleID == roleID {
			result = append(result, u)
		}
	}
	return result, nil
}

func newTestService(repo domain.UserRepository) domain.UserService {
	return NewUserService(repo, logger.New(logger.ErrorLevel, io.Discard))
}

func TestAuthenticateNoMatchIsNotAnError(t *testing.T) {
	repo := &mockUserRepo{}
	repo.seed("ayse", "ayse@brewflow.dev", "latte123", domain.RoleBarista)
	svc := newTestService(repo)

	user, err := svc.Authenticate("ayse@brewflow.dev", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.Authenticate("nobody@brewflow.dev", "latte123")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthenticateMatch(t *testing.T) {
	repo := &mockUserRepo{}
	seeded := repo.seed("ayse", "ayse@brewflow.dev", "latte123", domain.RoleBarista)
	svc := newTestService(repo)

	user, err := svc.Authenticate("ayse@brewflow.dev", "latte123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, seeded.ID, user.ID)
}

func TestCreateUserNil(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newTestService(repo)

	created, err := svc.CreateUser(nil)
	require.ErrorIs(t, err, domain.ErrNilUser)
	assert.Nil(t, created)
	assert.Zero(t, repo.createCalls)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := &mockUserRepo{}
	repo.seed("john", "john@example.com", "pw", domain.RoleBarista)
	svc := newTestService(repo)

	created, err := svc.CreateUser(&domain.User{Username: "john", Email: "other@example.com"})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Nil(t, created)
	assert.Zero(t, repo.createCalls)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{}
	repo.seed("john", "john@example.com", "pw", domain.RoleBarista)
	svc := newTestService(repo)

	created, err := svc.CreateUser(&domain.User{Username: "johnny", Email: "john@example.com"})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Nil(t, created)
	assert.Zero(t, repo.createCalls)
}

func TestCreateUserReturnsRepositoryResult(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newTestService(repo)

	created, err := svc.CreateUser(&domain.User{Username: "john", Email: "john@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "john", created.Username)
	assert.Equal(t, 1, repo.createCalls)

	// The service must hand back exactly the repository's result
	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Same(t, stored, created)
}

func TestCreateUserLookupError(t *testing.T) {
	repo := &mockUserRepo{lookupErr: errors.New("bağlantı koptu")}
	svc := newTestService(repo)

	created, err := svc.CreateUser(&domain.User{Username: "john", Email: "john@example.com"})
	require.Error(t, err)
	assert.Nil(t, created)
	assert.Zero(t, repo.createCalls)
}

func TestDeleteUserInvalidID(t *testing.T) {
	repo := &mockUserRepo{}
	repo.seed("ayse", "ayse@brewflow.dev", "pw", domain.RoleBarista)
	svc := newTestService(repo)

	for _, id := range []int64{0, -1, -42} {
		deleted, err := svc.DeleteUser(id)
		require.ErrorIs(t, err, domain.ErrInvalidUserID, "id=%d", id)
		assert.False(t, deleted)
	}
	assert.Zero(t, repo.deleteCalls)
}

func TestDeleteUserForwardsRepositoryResult(t *testing.T) {
	repo := &mockUserRepo{}
	seeded := repo.seed("ayse", "ayse@brewflow.dev", "pw", domain.RoleBarista)
	svc := newTestService(repo)

	deleted, err := svc.DeleteUser(seeded.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteUser(seeded.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.Equal(t, 2, repo.deleteCalls)
}

func TestGetAllUsersPassthrough(t *testing.T) {
	repo := &mockUserRepo{}
	first := repo.seed("ayse", "ayse@brewflow.dev", "pw", domain.RoleBarista)
	second := repo.seed("mehmet", "mehmet@brewflow.dev", "pw", domain.RoleCashier)
	svc := newTestService(repo)

	users, err := svc.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Same(t, first, users[0])
	assert.Same(t, second, users[1])
}

func TestGetUserByIDAbsent(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newTestService(repo)

	user, err := svc.GetUserByID(99)
	require.NoError(t, err)
	assert.Nil(t, user)

	// No id validation on reads, unlike Delete
	user, err = svc.GetUserByID(-3)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateUserNotFound(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newTestService(repo)

	err := svc.UpdateUser(&domain.User{ID: 7, Username: "ghost", Email: "ghost@brewflow.dev"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateUserUsernameConflict(t *testing.T) {
	repo := &mockUserRepo{}
	repo.seed("ayse", "ayse@brewflow.dev", "pw", domain.RoleBarista)
	victim := repo.seed("mehmet", "mehmet@brewflow.dev", "pw", domain.RoleCashier)
	svc := newTestService(repo)

	err := svc.UpdateUser(&domain.User{ID: victim.ID, Username: "ayse", Email: victim.Email})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	repo := &mockUserRepo{}
	repo.seed("ayse", "ayse@brewflow.dev", "pw", domain.RoleBarista)
	victim := repo.seed("mehmet", "mehmet@brewflow.dev", "pw", domain.RoleCashier)
	svc := newTestService(repo)

	err := svc.UpdateUser(&domain.User{ID: victim.ID, Username: victim.Username, Email: "ayse@brewflow.dev"})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateUserSuccess(t *testing.T) {
	repo := &mockUserRepo{}
	seeded := repo.seed("john", "john@example.com", "pw", domain.RoleBarista)
	svc := newTestService(repo)

	err := svc.UpdateUser(&domain.User{
		ID:       seeded.ID,
		Username: "johnny",
		Email:    "johnny@example.com",
		Password: "pw",
		RoleID:   domain.RoleBarista,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)

	stored, err := repo.FindByID(seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "johnny", stored.Username)
	assert.Equal(t, "johnny@example.com", stored.Email)
}

func TestUpdateUserKeepsOwnValues(t *testing.T) {
	repo := &mockUserRepo{}
	seeded := repo.seed("ayse", "ayse@brewflow.dev", "pw", domain.RoleBarista)
	svc := newTestService(repo)

	// Username and email unchanged; the record must not collide with itself
	err := svc.UpdateUser(&domain.User{
		ID:       seeded.ID,
		Username: seeded.Username,
		Email:    seeded.Email,
		Password: "pw",
		RoleID:   domain.RoleManager,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestGetUsersByRoleNegative(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newTestService(repo)

	users, err := svc.GetUsersByRole(-1)
	require.ErrorIs(t, err, domain.ErrInvalidRoleID)
	assert.Nil(t, users)
	assert.Zero(t, repo.byRoleCalls)
}

func TestGetUsersByRoleZeroIsForwarded(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newTestService(repo)

	users, err := svc.GetUsersByRole(0)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, 1, repo.byRoleCalls)
}

func TestGetUsersByRolePreservesOrder(t *testing.T) {
	repo := &mockUserRepo{}
	first := repo.seed("ayse", "ayse@brewflow.dev", "pw", domain.RoleBarista)
	repo.seed("mehmet", "mehmet@brewflow.dev", "pw", domain.RoleManager)
	second := repo.seed("zeynep", "zeynep@brewflow.dev", "pw", domain.RoleBarista)
	third := repo.seed("emre", "emre@brewflow.dev", "pw", domain.RoleBarista)
	svc := newTestService(repo)

	users, err := svc.GetUsersByRole(domain.RoleBarista)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)
	assert.Equal(t, third.ID, users[2].ID)
}
