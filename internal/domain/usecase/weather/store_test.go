package weather

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-api/internal/domain/entity"
)

func torontoData() *entity.WeatherData {
	return &entity.WeatherData{
		Location: "Toronto",
		Current:  entity.CurrentConditions{Temperature: 8.6, Condition: "Mostly Cloudy"},
	}
}

func TestStoreEmptySnapshot(t *testing.T) {
	store := NewStore(3)

	snapshot := store.Snapshot()
	assert.Nil(t, snapshot.Data)
	assert.False(t, snapshot.Status.HasData)
	assert.False(t, snapshot.Status.Loading)
	assert.Equal(t, 3, snapshot.Status.MaxAttempts)
}

func TestStoreCommitSuccess(t *testing.T) {
	store := NewStore(3)

	generation := store.BeginRefresh("geomet")
	assert.True(t, store.Snapshot().Status.Loading)

	store.SetAttempt(generation, 2)
	assert.Equal(t, 2, store.Snapshot().Status.Attempt)

	require.True(t, store.CommitSuccess(generation, torontoData()))

	snapshot := store.Snapshot()
	require.NotNil(t, snapshot.Data)
	assert.Equal(t, "Toronto", snapshot.Data.Location)
	assert.True(t, snapshot.Status.HasData)
	assert.False(t, snapshot.Status.Loading)
	assert.NotEmpty(t, snapshot.Status.LastSuccess)
}

func TestStoreFailurePreservesData(t *testing.T) {
	store := NewStore(3)

	generation := store.BeginRefresh("geomet")
	require.True(t, store.CommitSuccess(generation, torontoData()))

	generation = store.BeginRefresh("geomet")
	require.True(t, store.CommitFailure(generation, errors.New("network down")))

	snapshot := store.Snapshot()
	require.NotNil(t, snapshot.Data, "stale data outranks no data")
	assert.Equal(t, "Toronto", snapshot.Data.Location)
	assert.Equal(t, "network down", snapshot.Status.LastError)
	assert.False(t, snapshot.Status.Loading)
}

func TestStoreStaleGenerationDiscarded(t *testing.T) {
	store := NewStore(3)

	oldGeneration := store.BeginRefresh("geomet")
	newGeneration := store.BeginRefresh("geomet")

	stale := torontoData()
	stale.Location = "Stale"
	assert.False(t, store.CommitSuccess(oldGeneration, stale))
	assert.Nil(t, store.Snapshot().Data)

	assert.False(t, store.CommitFailure(oldGeneration, errors.New("late failure")))
	assert.Empty(t, store.Snapshot().Status.LastError)

	require.True(t, store.CommitSuccess(newGeneration, torontoData()))
	assert.Equal(t, "Toronto", store.Snapshot().Data.Location)
}

func TestStoreSeed(t *testing.T) {
	store := NewStore(3)

	require.True(t, store.Seed(torontoData(), "cache"))
	snapshot := store.Snapshot()
	require.NotNil(t, snapshot.Data)
	assert.Equal(t, "cache", snapshot.Status.Source)

	other := torontoData()
	other.Location = "Ottawa"
	assert.False(t, store.Seed(other, "cache"), "seed never replaces existing data")
	assert.Equal(t, "Toronto", store.Snapshot().Data.Location)

	assert.False(t, store.Seed(nil, "cache"))
}

func TestStoreSnapshotIsolation(t *testing.T) {
	store := NewStore(3)
	generation := store.BeginRefresh("geomet")
	require.True(t, store.CommitSuccess(generation, torontoData()))

	snapshot := store.Snapshot()
	snapshot.Data.Location = "mutated"

	assert.Equal(t, "Toronto", store.Snapshot().Data.Location)
}

func TestStoreSubscribe(t *testing.T) {
	store := NewStore(3)

	id, changes := store.Subscribe()
	defer store.Unsubscribe(id)

	generation := store.BeginRefresh("geomet")
	require.True(t, store.CommitSuccess(generation, torontoData()))

	// The channel holds the most recent snapshot; older ones are dropped.
	var last *entity.WeatherData
	for {
		select {
		case snapshot := <-changes:
			last = snapshot.Data
			continue
		default:
		}
		break
	}
	require.NotNil(t, last)
	assert.Equal(t, "Toronto", last.Location)
}

func TestStoreUnsubscribeClosesChannel(t *testing.T) {
	store := NewStore(3)

	id, changes := store.Subscribe()
	store.Unsubscribe(id)

	_, open := <-changes
	assert.False(t, open)

	// Commits after unsubscribe must not panic.
	generation := store.BeginRefresh("geomet")
	assert.True(t, store.CommitSuccess(generation, torontoData()))
}
