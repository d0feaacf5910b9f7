package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/diillson/sme-health-dashboard-go/internal/domain/repository"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecordRepository struct {
	mock.Mock
}

func (m *mockRecordRepository) LoadRecords(ctx context.Context, source string) ([]entity.MonthlyRecord, error) {
	args := m.Called(ctx, source)
	records, _ := args.Get(0).([]entity.MonthlyRecord)
	return records, args.Error(1)
}

type mockExportRepository struct {
	mock.Mock
}

func (m *mockExportRepository) ExportToCSV(records []entity.MonthlyRecord, a entity.Assessment, filename, outputDir string) (string, error) {
	args := m.Called(records, a, filename, outputDir)
	return args.String(0), args.Error(1)
}

func (m *mockExportRepository) ExportToJSON(records []entity.MonthlyRecord, a entity.Assessment, filename, outputDir string) (string, error) {
	args := m.Called(records, a, filename, outputDir)
	return args.String(0), args.Error(1)
}

func (m *mockExportRepository) ExportToPDF(records []entity.MonthlyRecord, a entity.Assessment, filename, outputDir, fontPath string) (string, error) {
	args := m.Called(records, a, filename, outputDir, fontPath)
	return args.String(0), args.Error(1)
}

type mockConfigRepository struct {
	mock.Mock
}

func (m *mockConfigRepository) LoadConfigFile(filePath string) (*types.Config, error) {
	args := m.Called(filePath)
	cfg, _ := args.Get(0).(*types.Config)
	return cfg, args.Error(1)
}

// fakeConsole grava tudo o que o caso de uso escreve.
type fakeConsole struct {
	out      strings.Builder
	success  []string
	errors   []string
	warnings []string
	reports  []string
	gauge    string
	trend    []types.MonthlyPoint
	progress *fakeProgress
}

func (c *fakeConsole) Print(a ...interface{}) { fmt.Fprint(&c.out, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *fakeConsole) Println(a ...interface{}) { fmt.Fprintln(&c.out, a...) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, format+"\n", a...)
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(message string) types.StatusHandle { return fakeStatus{} }

func (c *fakeConsole) ProgressWithTotal(total int) types.ProgressHandle {
	c.progress = &fakeProgress{total: total}
	return c.progress
}

func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{} }

func (c *fakeConsole) DisplayTrendBars(points []types.MonthlyPoint) { c.trend = points }

func (c *fakeConsole) DisplayScoreGauge(score int, label string) {
	c.gauge = fmt.Sprintf("%d %s", score, label)
}

func (c *fakeConsole) DisplayReport(title, body string) {
	c.reports = append(c.reports, title+"\n"+body)
}

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop() {}

type fakeProgress struct {
	total, done int
	stopped     bool
}

func (p *fakeProgress) Increment() { p.done++ }
func (p *fakeProgress) Stop() { p.stopped = true }

type fakeTable struct {
	rows []string
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {}

func (t *fakeTable) AddRow(cells ...interface{}) {
	t.rows = append(t.rows, strings.TrimSpace(fmt.Sprintln(cells...)))
}

func (t *fakeTable) Render() string { return strings.Join(t.rows, "\n") + "\n" }

func sampleRecords() []entity.MonthlyRecord {
	return []entity.MonthlyRecord{
		{Month: "Jan", Revenue: 100000, Expenses: 70000, LoanPayment: 10000, CashInBank: 80000},
		{Month: "Feb", Revenue: 110000, Expenses: 80000, LoanPayment: 10000, CashInBank: 82000},
		{Month: "Mar", Revenue: 121000, Expenses: 80000, LoanPayment: 10000, CashInBank: 85000},
	}
}

func newUseCase() (*DashboardUseCase, *mockRecordRepository, *mockExportRepository, *fakeConsole) {
	recordRepo := &mockRecordRepository{}
	exportRepo := &mockExportRepository{}
	console := &fakeConsole{}
	factory := func(awsProfile, awsRegion string) repository.RecordRepository { return recordRepo }
	uc := NewDashboardUseCase(factory, exportRepo, &mockConfigRepository{}, console)
	return uc, recordRepo, exportRepo, console
}

func TestRunDashboard_DisplaysAssessment(t *testing.T) {
	uc, recordRepo, exportRepo, console := newUseCase()
	recordRepo.On("LoadRecords", mock.Anything, "data.csv").Return(sampleRecords(), nil)

	err := uc.RunDashboard(context.Background(), &types.CLIArgs{File: "data.csv", Trend: true})
	require.NoError(t, err)

	out := console.out.String()
	assert.Contains(t, out, "Total Revenue 331000")
	assert.Contains(t, out, "Financial Health Score 100/100")
	assert.Contains(t, out, "Estimated Next Month Revenue: 133,100")
	assert.Equal(t, "100 Low Risk", console.gauge)
	assert.Contains(t, console.success, "No major expense anomalies detected.")
	assert.Len(t, console.trend, 3)
	require.Len(t, console.reports, 2)
	assert.Contains(t, console.reports[0], "SME Financial Health AI Report")
	assert.Contains(t, console.reports[1], "அபாய நிலை")

	recordRepo.AssertExpectations(t)
	exportRepo.AssertNotCalled(t, "ExportToCSV", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunDashboard_SingleLanguage(t *testing.T) {
	uc, recordRepo, _, console := newUseCase()
	recordRepo.On("LoadRecords", mock.Anything, "data.csv").Return(sampleRecords(), nil)

	require.NoError(t, uc.RunDashboard(context.Background(), &types.CLIArgs{File: "data.csv", Language: "ta"}))

	require.Len(t, console.reports, 1)
	assert.True(t, strings.HasPrefix(console.reports[0], "AI Financial Report (Tamil)"))
	assert.Nil(t, console.trend)
}

func TestRunDashboard_Anomalies(t *testing.T) {
	uc, recordRepo, _, console := newUseCase()
	records := sampleRecords()
	records[1].Expenses = 105000
	recordRepo.On("LoadRecords", mock.Anything, "data.csv").Return(records, nil)

	require.NoError(t, uc.RunDashboard(context.Background(), &types.CLIArgs{File: "data.csv"}))

	assert.Contains(t, console.warnings, "Unusual expense spikes detected in 1 month(s)")
	assert.Contains(t, console.out.String(), "Feb 105,000.00")
}

func TestRunDashboard_Exports(t *testing.T) {
	uc, recordRepo, exportRepo, console := newUseCase()
	records := sampleRecords()
	recordRepo.On("LoadRecords", mock.Anything, "data.csv").Return(records, nil)
	exportRepo.On("ExportToCSV", records, mock.Anything, "q1", "/tmp/out").Return("/tmp/out/q1.csv", nil)
	exportRepo.On("ExportToPDF", records, mock.Anything, "q1", "/tmp/out", "/fonts/tamil.ttf").
		Return("", errors.New("disk full"))

	args := &types.CLIArgs{
		File:       "data.csv",
		ReportName: "q1",
		ReportType: []string{"csv", "pdf", "xlsx"},
		Dir:        "/tmp/out",
		PDFFont:    "/fonts/tamil.ttf",
	}
	require.NoError(t, uc.RunDashboard(context.Background(), args))

	exportRepo.AssertExpectations(t)
	assert.Contains(t, console.success, "Successfully exported to CSV: /tmp/out/q1.csv")
	require.Len(t, console.errors, 2)
	assert.Contains(t, console.errors[0], "Failed to export to PDF: disk full")
	assert.Contains(t, console.errors[1], "unsupported report type")
	assert.Equal(t, 3, console.progress.done)
	assert.True(t, console.progress.stopped)
}

func TestRunDashboard_Errors(t *testing.T) {
	t.Run("no input", func(t *testing.T) {
		uc, _, _, _ := newUseCase()
		err := uc.RunDashboard(context.Background(), &types.CLIArgs{})
		assert.ErrorIs(t, err, ErrNoInput)
	})

	t.Run("bad language", func(t *testing.T) {
		uc, _, _, _ := newUseCase()
		err := uc.RunDashboard(context.Background(), &types.CLIArgs{File: "data.csv", Language: "fr"})
		assert.ErrorIs(t, err, types.ErrUnsupportedLanguage)
	})

	t.Run("load failure", func(t *testing.T) {
		uc, recordRepo, _, _ := newUseCase()
		recordRepo.On("LoadRecords", mock.Anything, "data.csv").Return(nil, types.ErrMissingColumn)
		err := uc.RunDashboard(context.Background(), &types.CLIArgs{File: "data.csv"})
		assert.ErrorIs(t, err, types.ErrMissingColumn)
	})

	t.Run("zero revenue", func(t *testing.T) {
		uc, recordRepo, _, _ := newUseCase()
		recordRepo.On("LoadRecords", mock.Anything, "data.csv").
			Return([]entity.MonthlyRecord{{Month: "Jan", Expenses: 10}}, nil)
		err := uc.RunDashboard(context.Background(), &types.CLIArgs{File: "data.csv"})
		assert.ErrorIs(t, err, types.ErrZeroRevenue)
	})
}

func TestReportLanguages(t *testing.T) {
	both := []entity.Language{entity.LanguageEnglish, entity.LanguageTamil}

	got, err := ReportLanguages("")
	require.NoError(t, err)
	assert.Equal(t, both, got)

	got, err = ReportLanguages("BOTH")
	require.NoError(t, err)
	assert.Equal(t, both, got)

	got, err = ReportLanguages("en")
	require.NoError(t, err)
	assert.Equal(t, []entity.Language{entity.LanguageEnglish}, got)

	_, err = ReportLanguages("de")
	assert.ErrorIs(t, err, types.ErrUnsupportedLanguage)
}

func TestRunDashboard_PassesAWSOptions(t *testing.T) {
	recordRepo := &mockRecordRepository{}
	recordRepo.On("LoadRecords", mock.Anything, "s3://books/2024.csv").Return(sampleRecords(), nil)

	var gotProfile, gotRegion string
	factory := func(awsProfile, awsRegion string) repository.RecordRepository {
		gotProfile, gotRegion = awsProfile, awsRegion
		return recordRepo
	}
	uc := NewDashboardUseCase(factory, &mockExportRepository{}, &mockConfigRepository{}, &fakeConsole{})

	args := &types.CLIArgs{File: "s3://books/2024.csv", AWSProfile: "finance", AWSRegion: "ap-south-1"}
	require.NoError(t, uc.RunDashboard(context.Background(), args))

	assert.Equal(t, "finance", gotProfile)
	assert.Equal(t, "ap-south-1", gotRegion)
}

func TestLoadConfig_DelegatesToRepository(t *testing.T) {
	configRepo := &mockConfigRepository{}
	configRepo.On("LoadConfigFile", "cfg.toml").Return(&types.Config{File: "data.csv"}, nil)
	uc := NewDashboardUseCase(nil, &mockExportRepository{}, configRepo, &fakeConsole{})

	cfg, err := uc.LoadConfig("cfg.toml")
	require.NoError(t, err)
	assert.Equal(t, "data.csv", cfg.File)
}
