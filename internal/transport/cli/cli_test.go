package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"xlookup/internal/domain"
	"xlookup/internal/domain/entity"
	"xlookup/internal/transport/cli"
	"xlookup/pkg/errcodes"
)

type lookupsMock struct {
	lookupFunc func(ctx context.Context, raw, countryHint string) (*entity.LookupResult, error)
	reachErr   error
}

func (m *lookupsMock) Lookup(ctx context.Context, raw, countryHint string) (*entity.LookupResult, error) {
	return m.lookupFunc(ctx, raw, countryHint)
}

func (m *lookupsMock) CheckReachability(context.Context) error {
	return m.reachErr
}

func (m *lookupsMock) DefaultCountry() string {
	return "IN"
}

type runnerMock struct {
	batch *entity.BatchResult
}

func (m *runnerMock) Run(_ context.Context, _ []string, _ string) *entity.BatchResult {
	return m.batch
}

type storeMock struct {
	saved      []string
	batchSaved int
	files      []string
}

func (m *storeMock) SaveResult(result *entity.LookupResult) (string, error) {
	m.saved = append(m.saved, result.SearchedNumber)
	return "saved.json", nil
}

func (m *storeMock) SaveBatch(*entity.BatchResult) (string, error) {
	m.batchSaved++
	return "bulk.json", nil
}

func (m *storeMock) List() ([]string, error) {
	return m.files, nil
}

func (m *storeMock) Read(string) ([]byte, error) {
	return []byte(`{"name":"Alice"}`), nil
}

func run(t *testing.T, script string, lookups *lookupsMock, runner *runnerMock, store *storeMock) string {
	t.Helper()

	color.NoColor = true

	var out bytes.Buffer

	handler := cli.NewHandler(lookups, runner, store).
		WithIO(strings.NewReader(script), &out)

	require.NoError(t, handler.Run(context.Background()))

	return out.String()
}

func TestSingleLookupFlow(t *testing.T) {
	rq := require.New(t)

	lookups := &lookupsMock{
		lookupFunc: func(_ context.Context, raw, countryHint string) (*entity.LookupResult, error) {
			rq.Equal("01712345678", raw)
			rq.Equal("BD", countryHint)
			return &entity.LookupResult{
				SearchedNumber: "+8801712345678",
				Name:           "Alice",
				Carrier:        "Acme",
				SpamScore:      12,
			}, nil
		},
	}
	store := &storeMock{}

	script := "1\n01712345678\nbd\ny\n7\n"
	out := run(t, script, lookups, &runnerMock{}, store)

	rq.Contains(out, "Name: Alice")
	rq.Contains(out, "Carrier: Acme")
	rq.Contains(out, "12 - CLEAN")
	rq.Contains(out, "Result saved to: saved.json")
	rq.Equal([]string{"+8801712345678"}, store.saved)
}

func TestSingleLookupError(t *testing.T) {
	rq := require.New(t)

	lookups := &lookupsMock{
		lookupFunc: func(context.Context, string, string) (*entity.LookupResult, error) {
			return nil, domain.NewError(errcodes.NumberNotFound, "number not found")
		},
	}

	script := "1\n+12125550123\n\n7\n"
	out := run(t, script, lookups, &runnerMock{}, &storeMock{})

	rq.Contains(out, "Number not found")
	// Menu keeps running after a failed lookup.
	rq.Contains(out, "Goodbye!")
}

func TestBulkLookupFlow(t *testing.T) {
	rq := require.New(t)

	runner := &runnerMock{
		batch: &entity.BatchResult{
			Outcomes: []entity.BatchOutcome{
				{Input: "a", Result: &entity.LookupResult{SearchedNumber: "+911111111111", Name: "One"}},
				{Input: "b", Err: domain.NewError(errcodes.InvalidInput, "empty number")},
			},
			Successful: 1,
			Failed:     1,
		},
	}
	store := &storeMock{}

	script := "2\na\nb\ndone\n\ny\n7\n"
	out := run(t, script, &lookupsMock{}, runner, store)

	rq.Contains(out, "Successful: 1")
	rq.Contains(out, "Failed: 1")
	rq.Contains(out, "Total: 2")
	rq.Contains(out, "Name: One")
	rq.Contains(out, "Invalid phone number")
	rq.Contains(out, "Results saved to: bulk.json")
	rq.Equal(1, store.batchSaved)
}

func TestViewSavedResults(t *testing.T) {
	rq := require.New(t)

	store := &storeMock{files: []string{"bulk_20260823_120000.json"}}

	script := "3\n1\n7\n"
	out := run(t, script, &lookupsMock{}, &runnerMock{}, store)

	rq.Contains(out, "SAVED RESULTS (1 files)")
	rq.Contains(out, `{"name":"Alice"}`)
}

func TestCountryCodes(t *testing.T) {
	rq := require.New(t)

	out := run(t, "4\n7\n", &lookupsMock{}, &runnerMock{}, &storeMock{})

	rq.Contains(out, "BD: Bangladesh")
	rq.Contains(out, "SG: Singapore")
}

func TestStatusCheck(t *testing.T) {
	rq := require.New(t)

	out := run(t, "5\n7\n", &lookupsMock{}, &runnerMock{}, &storeMock{})
	rq.Contains(out, "API is accessible and working")

	down := &lookupsMock{reachErr: domain.NewError(errcodes.Unreachable, "down")}
	out = run(t, "5\n7\n", down, &runnerMock{}, &storeMock{})
	rq.Contains(out, "API is not accessible")
}

func TestInvalidChoice(t *testing.T) {
	rq := require.New(t)

	out := run(t, "9\n7\n", &lookupsMock{}, &runnerMock{}, &storeMock{})
	rq.Contains(out, "Invalid choice!")
}
