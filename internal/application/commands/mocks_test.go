package commands

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"enrichio/internal/domain"
	"enrichio/internal/ports"
)

type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) ClassifyOne(ctx context.Context, rawName string) (*domain.Record, error) {
	args := m.Called(ctx, rawName)
	rec, _ := args.Get(0).(*domain.Record)
	return rec, args.Error(1)
}

func (m *mockClassifier) ClassifyBatch(ctx context.Context, rawNames []string) ([]domain.Record, error) {
	args := m.Called(ctx, rawNames)
	recs, _ := args.Get(0).([]domain.Record)
	return recs, args.Error(1)
}

// funcClassifier lets a test script ClassifyOne inline
type funcClassifier func(ctx context.Context, rawName string) (*domain.Record, error)

func (f funcClassifier) ClassifyOne(ctx context.Context, rawName string) (*domain.Record, error) {
	return f(ctx, rawName)
}

func (f funcClassifier) ClassifyBatch(ctx context.Context, rawNames []string) ([]domain.Record, error) {
	out := make([]domain.Record, 0, len(rawNames))
	for _, n := range rawNames {
		r, err := f(ctx, n)
		if err != nil {
			out = append(out, domain.NewErrorRecord(n, err))
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

type mockSectors struct {
	mock.Mock
}

func (m *mockSectors) LookupOverride(ctx context.Context, identity string) (string, bool, error) {
	args := m.Called(ctx, identity)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockSectors) OverrideSector(ctx context.Context, identity, sector string) (*ports.OverrideResult, error) {
	args := m.Called(ctx, identity, sector)
	res, _ := args.Get(0).(*ports.OverrideResult)
	return res, args.Error(1)
}

func (m *mockSectors) DeleteSector(ctx context.Context, label string) error {
	return m.Called(ctx, label).Error(0)
}

func (m *mockSectors) ListSectors(ctx context.Context) ([]string, []string, error) {
	args := m.Called(ctx)
	builtin, _ := args.Get(0).([]string)
	custom, _ := args.Get(1).([]string)
	return builtin, custom, args.Error(2)
}

func (m *mockSectors) ListOverrides(ctx context.Context) ([]ports.OverrideEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]ports.OverrideEntry)
	return entries, args.Error(1)
}

func (m *mockSectors) History(ctx context.Context, identity string) ([]ports.HistoryEntry, error) {
	args := m.Called(ctx, identity)
	entries, _ := args.Get(0).([]ports.HistoryEntry)
	return entries, args.Error(1)
}

type mockReader struct {
	mock.Mock
}

func (m *mockReader) ReadNames(filename string, data []byte) ([]string, error) {
	args := m.Called(filename, data)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type mockExporter struct {
	mock.Mock
}

func (m *mockExporter) Export(w io.Writer, format ports.ExportFormat, records []domain.Record) error {
	return m.Called(w, format, records).Error(0)
}

func found(input, sector string) *domain.Record {
	return &domain.Record{Input: input, OfficialName: input, Sector: sector}
}

var (
	_ ports.Classifier       = (*mockClassifier)(nil)
	_ ports.Classifier       = funcClassifier(nil)
	_ ports.SectorRepository = (*mockSectors)(nil)
	_ ports.NameReader       = (*mockReader)(nil)
	_ ports.Exporter         = (*mockExporter)(nil)
)
