package credential

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"passvault/internal/crypto"
	"passvault/internal/utils/logger"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, c *Credential) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, ownerID string) ([]Item, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockRepository) GetBlob(ctx context.Context, ownerID, id string) (string, error) {
	args := m.Called(ctx, ownerID, id)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func newTestService(t *testing.T, repo Repository) (*Service, *crypto.Cipher) {
	t.Helper()
	cipher, err := crypto.New(testKey)
	require.NoError(t, err)
	return NewService(repo, cipher, logger.New("local")), cipher
}

func TestService_Add_EncryptsBeforeStore(t *testing.T) {
	mockRepo := new(MockRepository)
	service, cipher := newTestService(t, mockRepo)

	var stored *Credential
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *Credential) bool {
		stored = c
		return c.OwnerID == "u1" && c.ServiceName == "github" && c.AccountName == "octocat"
	})).Return("cred-1", nil)

	id, err := service.Add(context.Background(), "u1", "github", "octocat", "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, "cred-1", id)

	// The repository never sees the plaintext, only a decryptable blob.
	require.NotNil(t, stored)
	assert.NotContains(t, stored.EncryptedPassword, "hunter2!")

	plaintext, err := cipher.Decrypt(stored.EncryptedPassword)
	require.NoError(t, err)
	assert.Equal(t, "hunter2!", plaintext)

	mockRepo.AssertExpectations(t)
}

func TestService_Add_RejectsEmptyFields(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	tests := []struct {
		name        string
		serviceName string
		accountName string
		password    string
	}{
		{name: "empty service", serviceName: "", accountName: "octocat", password: "x"},
		{name: "empty account", serviceName: "github", accountName: "", password: "x"},
		{name: "empty password", serviceName: "github", accountName: "octocat", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Add(context.Background(), "u1", tt.serviceName, tt.accountName, tt.password)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	items := []Item{
		{ID: "cred-2", ServiceName: "github", AccountName: "octocat"},
		{ID: "cred-1", ServiceName: "mail", AccountName: "me@example.com"},
	}
	mockRepo.On("List", mock.Anything, "u1").Return(items, nil)

	got, err := service.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestService_Reveal(t *testing.T) {
	mockRepo := new(MockRepository)
	service, cipher := newTestService(t, mockRepo)

	blob, err := cipher.Encrypt("s3cret!")
	require.NoError(t, err)
	mockRepo.On("GetBlob", mock.Anything, "u1", "cred-1").Return(blob, nil)

	plaintext, err := service.Reveal(context.Background(), "u1", "cred-1")
	require.NoError(t, err)
	assert.Equal(t, "s3cret!", plaintext)
}

func TestService_Reveal_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	mockRepo.On("GetBlob", mock.Anything, "u1", "missing").Return("", ErrNotFound)

	_, err := service.Reveal(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Reveal_CorruptBlob(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	mockRepo.On("GetBlob", mock.Anything, "u1", "cred-1").Return("not-a-blob", nil)

	_, err := service.Reveal(context.Background(), "u1", "cred-1")
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	mockRepo.On("Delete", mock.Anything, "u1", "cred-1").Return(nil)

	err := service.Delete(context.Background(), "u1", "cred-1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Delete_NotOwned(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	// The repository cannot tell a foreign record from a missing one.
	mockRepo.On("Delete", mock.Anything, "u2", "cred-1").Return(ErrNotFound)

	err := service.Delete(context.Background(), "u2", "cred-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
