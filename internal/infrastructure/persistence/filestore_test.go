package persistence_test

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"xlookup/internal/domain/entity"
	"xlookup/internal/infrastructure/persistence"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func fixedClock(value string) func() time.Time {
	ts, _ := time.Parse("20060102_150405", value)
	return func() time.Time { return ts }
}

func TestSaveResult(t *testing.T) {
	rq := require.New(t)

	store, err := persistence.NewResultStore(t.TempDir())
	rq.NoError(err)

	store.WithClock(fixedClock("20260823_120000"))

	result := &entity.LookupResult{
		SearchedNumber: "+8801712345678",
		Name:           "Alice",
		Carrier:        "Acme",
	}

	name, err := store.SaveResult(result)
	rq.NoError(err)
	rq.Equal("_8801712345678_20260823_120000.json", name)

	data, err := store.Read(name)
	rq.NoError(err)

	var stored entity.LookupResult
	rq.NoError(json.Unmarshal(data, &stored))
	rq.Equal(*result, stored)

	// Pretty-printed on disk.
	rq.Contains(string(data), "\n  \"searched_number\"")
}

func TestSaveBatch(t *testing.T) {
	rq := require.New(t)

	store, err := persistence.NewResultStore(t.TempDir())
	rq.NoError(err)

	store.WithClock(fixedClock("20260823_120500"))

	batch := &entity.BatchResult{
		Outcomes: []entity.BatchOutcome{
			{Input: "01712345678", Result: &entity.LookupResult{SearchedNumber: "+8801712345678", Name: "Alice"}},
			{Input: "bad", Error: "empty number"},
		},
		Successful: 1,
		Failed:     1,
	}

	name, err := store.SaveBatch(batch)
	rq.NoError(err)
	rq.Equal("bulk_20260823_120500.json", name)

	data, err := store.Read(name)
	rq.NoError(err)

	var stored entity.BatchResult
	rq.NoError(json.Unmarshal(data, &stored))
	rq.Len(stored.Outcomes, 2)
	rq.Equal(1, stored.Successful)
	rq.Equal("empty number", stored.Outcomes[1].Error)
}

func TestListMostRecentFirst(t *testing.T) {
	rq := require.New(t)

	store, err := persistence.NewResultStore(t.TempDir())
	rq.NoError(err)

	result := &entity.LookupResult{SearchedNumber: "+8801712345678", Name: "Alice"}

	for _, ts := range []string{"20260821_090000", "20260823_120000", "20260822_100000"} {
		store.WithClock(fixedClock(ts))
		_, err := store.SaveResult(result)
		rq.NoError(err)
	}

	names, err := store.List()
	rq.NoError(err)

	rq.Equal([]string{
		"_8801712345678_20260823_120000.json",
		"_8801712345678_20260822_100000.json",
		"_8801712345678_20260821_090000.json",
	}, names)
}

func TestReadRejectsPathEscape(t *testing.T) {
	rq := require.New(t)

	store, err := persistence.NewResultStore(t.TempDir())
	rq.NoError(err)

	_, err = store.Read("../outside.json")
	rq.Error(err)
}
