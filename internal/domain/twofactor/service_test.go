package twofactor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"passvault/internal/crypto"
	"passvault/internal/totp"
	"passvault/internal/utils/logger"
)

const (
	testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

	// Base32 encoding of the RFC 6238 test secret "12345678901234567890".
	rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, sec *Secret) (string, error) {
	args := m.Called(ctx, sec)
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

	var stored *Secret
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(sec *Secret) bool {
		stored = sec
		return sec.OwnerID == "u1" && sec.ServiceName == "github" && sec.AccountName == "alice"
	})).Return("tfa-1", nil)

	id, err := service.Add(context.Background(), "u1", "github", "alice", rfcSecret)
	require.NoError(t, err)
	assert.Equal(t, "tfa-1", id)

	require.NotNil(t, stored)
	assert.NotContains(t, stored.EncryptedSecret, rfcSecret)

	seed, err := cipher.Decrypt(stored.EncryptedSecret)
	require.NoError(t, err)
	assert.Equal(t, rfcSecret, seed)

	mockRepo.AssertExpectations(t)
}

func TestService_Add_RejectsInvalidSecret(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	_, err := service.Add(context.Background(), "u1", "github", "alice", "not!valid!base32")
	assert.ErrorIs(t, err, totp.ErrInvalidSecret)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Add_RejectsEmptyFields(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	_, err := service.Add(context.Background(), "u1", "", "alice", rfcSecret)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Add(context.Background(), "u1", "github", "", rfcSecret)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Add(context.Background(), "u1", "github", "alice", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	items := []Item{
		{ID: "tfa-2", ServiceName: "github"},
		{ID: "tfa-1", ServiceName: "mail"},
	}
	mockRepo.On("List", mock.Anything, "u1").Return(items, nil)

	got, err := service.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestService_Code_KnownVector(t *testing.T) {
	mockRepo := new(MockRepository)
	service, cipher := newTestService(t, mockRepo)

	blob, err := cipher.Encrypt(rfcSecret)
	require.NoError(t, err)
	mockRepo.On("GetBlob", mock.Anything, "u1", "tfa-1").Return(blob, nil)

	code, err := service.Code(context.Background(), "u1", "tfa-1", time.Unix(59, 0).UTC())
	require.NoError(t, err)
	assert.Equal(t, "287082", code)
}

func TestService_Code_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	mockRepo.On("GetBlob", mock.Anything, "u1", "missing").Return("", ErrNotFound)

	_, err := service.Code(context.Background(), "u1", "missing", time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Code_CorruptBlob(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	mockRepo.On("GetBlob", mock.Anything, "u1", "tfa-1").Return("not-a-blob", nil)

	_, err := service.Code(context.Background(), "u1", "tfa-1", time.Now())
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestService_Delete_NotOwned(t *testing.T) {
	mockRepo := new(MockRepository)
	service, _ := newTestService(t, mockRepo)

	mockRepo.On("Delete", mock.Anything, "u2", "tfa-1").Return(ErrNotFound)

	err := service.Delete(context.Background(), "u2", "tfa-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
