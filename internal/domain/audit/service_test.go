package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"passvault/internal/crypto"
	"passvault/internal/utils/logger"
)

func TestScore_ConcreteCase(t *testing.T) {
	now := time.Now()
	twoYearsAgo := now.AddDate(-2, 0, 0)

	entries := []Entry{
		{Plaintext: "abc", CreatedAt: now},
		{Plaintext: "Str0ng!Pass99", CreatedAt: now},
		{Plaintext: "Str0ng!Pass99", CreatedAt: twoYearsAgo},
	}

	report := Score(entries, now)

	// "abc" is short; "Str0ng!Pass99" is 13 chars with upper, lower,
	// digit and '!' so it passes the classifier.
	assert.Equal(t, 1, report.WeakCount)
	assert.Equal(t, 1, report.ReusedCount)
	assert.Equal(t, 1, report.OldCount)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 100-5*1-10*1-3*1, report.Score)
}

func TestScore_WeakClassifier(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		password string
		weak     bool
	}{
		{name: "eleven chars all classes", password: "Aa1!aaaaaaa", weak: true},
		{name: "twelve chars all classes", password: "Aa1!aaaaaaaa", weak: false},
		{name: "no uppercase", password: "aa1!aaaaaaaa", weak: true},
		{name: "no lowercase", password: "AA1!AAAAAAAA", weak: true},
		{name: "no digit", password: "Aab!aaaaaaaa", weak: true},
		{name: "no symbol", password: "Aa1baaaaaaaa", weak: true},
		{name: "symbol outside fixed set", password: "Aa1~aaaaaaaa", weak: true},
		{name: "underscore counts as symbol", password: "Aa1_aaaaaaaa", weak: false},
		{name: "empty", password: "", weak: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Score([]Entry{{Plaintext: tt.password, CreatedAt: now}}, now)
			if tt.weak {
				assert.Equal(t, 1, report.WeakCount)
			} else {
				assert.Zero(t, report.WeakCount)
			}
		})
	}
}

func TestScore_EachEntryCountsWeakOnce(t *testing.T) {
	now := time.Now()

	// Short, no uppercase, no digit, no symbol: one weak increment, not four.
	report := Score([]Entry{{Plaintext: "abc", CreatedAt: now}}, now)
	assert.Equal(t, 1, report.WeakCount)
	assert.Equal(t, 95, report.Score)
}

func TestScore_ReuseCountsExtraOccurrences(t *testing.T) {
	now := time.Now()
	entries := []Entry{
		{Plaintext: "Repeated!Pass1", CreatedAt: now},
		{Plaintext: "Repeated!Pass1", CreatedAt: now},
		{Plaintext: "Repeated!Pass1", CreatedAt: now},
		{Plaintext: "Another!Pass22", CreatedAt: now},
		{Plaintext: "Another!Pass22", CreatedAt: now},
	}

	report := Score(entries, now)

	// Two groups: sizes 3 and 2 -> (3-1) + (2-1) = 3.
	assert.Equal(t, 3, report.ReusedCount)
	assert.Equal(t, 5, report.Total)
}

func TestScore_OldBoundary(t *testing.T) {
	now := time.Now()

	fresh := Score([]Entry{{Plaintext: "Fresh!Pass123", CreatedAt: now.Add(-364 * 24 * time.Hour)}}, now)
	assert.Zero(t, fresh.OldCount)

	stale := Score([]Entry{{Plaintext: "Stale!Pass123", CreatedAt: now.Add(-366 * 24 * time.Hour)}}, now)
	assert.Equal(t, 1, stale.OldCount)
	assert.Equal(t, 97, stale.Score)
}

func TestScore_ClampsAtZero(t *testing.T) {
	now := time.Now()
	entries := make([]Entry, 30)
	for i := range entries {
		entries[i] = Entry{Plaintext: "same", CreatedAt: now.AddDate(-2, 0, 0)}
	}

	report := Score(entries, now)

	assert.Equal(t, 30, report.WeakCount)
	assert.Equal(t, 29, report.ReusedCount)
	assert.Equal(t, 30, report.OldCount)
	assert.Zero(t, report.Score)
}

func TestScore_Empty(t *testing.T) {
	report := Score(nil, time.Now())
	assert.Equal(t, Report{Score: 100}, report)
}

func TestScore_OrderIndependent(t *testing.T) {
	now := time.Now()
	entries := []Entry{
		{Plaintext: "abc", CreatedAt: now},
		{Plaintext: "Str0ng!Pass99", CreatedAt: now.AddDate(-2, 0, 0)},
		{Plaintext: "Str0ng!Pass99", CreatedAt: now},
	}
	reversed := []Entry{entries[2], entries[1], entries[0]}

	assert.Equal(t, Score(entries, now), Score(reversed, now))
}

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListSecrets(ctx context.Context, ownerID string) ([]Secret, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Secret), args.Error(1)
}

func TestService_Run_SkipsUndecryptable(t *testing.T) {
	cipher, err := crypto.New("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	require.NoError(t, err)

	now := time.Now()
	good1, err := cipher.Encrypt("abc")
	require.NoError(t, err)
	good2, err := cipher.Encrypt("Str0ng!Pass99")
	require.NoError(t, err)

	mockRepo := new(MockRepository)
	mockRepo.On("ListSecrets", mock.Anything, "u1").Return([]Secret{
		{Blob: good1, CreatedAt: now},
		{Blob: "corrupt-blob", CreatedAt: now},
		{Blob: good2, CreatedAt: now},
	}, nil)

	service := NewService(mockRepo, cipher, logger.New("local"))

	report, err := service.Run(context.Background(), "u1")
	require.NoError(t, err)

	// The corrupt blob is excluded from the sample entirely.
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.WeakCount)
	assert.Zero(t, report.ReusedCount)
	assert.Equal(t, 95, report.Score)

	mockRepo.AssertExpectations(t)
}

func TestService_Run_RepositoryError(t *testing.T) {
	cipher, err := crypto.New("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	require.NoError(t, err)

	mockRepo := new(MockRepository)
	mockRepo.On("ListSecrets", mock.Anything, "u1").Return(nil, assert.AnError)

	service := NewService(mockRepo, cipher, logger.New("local"))

	_, err = service.Run(context.Background(), "u1")
	assert.Error(t, err)
}
