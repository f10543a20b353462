package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtbtransit/timeslip-backend-go/internal/config"
	"github.com/mtbtransit/timeslip-backend-go/internal/domain/employee"
	"github.com/mtbtransit/timeslip-backend-go/internal/domain/overtime"
)

type fakeRosterService struct {
	employees []employee.Employee
	err       error
}

func (f *fakeRosterService) Parse(_ context.Context, _ []byte) ([]employee.Employee, error) {
	return f.employees, f.err
}

type fakeSlipService struct {
	batch     overtime.SlipBatch
	bundle    overtime.OvertimeBundle
	err       error
	gotPeriod string
}

func (f *fakeSlipService) GenerateBlank(_ context.Context, _ []employee.Employee, payPeriodEnd string) (overtime.SlipBatch, error) {
	f.gotPeriod = payPeriodEnd
	return f.batch, f.err
}

func (f *fakeSlipService) GenerateOvertime(_ context.Context, req overtime.GenerateOvertimeRequest) (overtime.OvertimeBundle, error) {
	f.gotPeriod = req.PayPeriodEnd
	return f.bundle, f.err
}

func newTestRouter(roster employee.RosterService, slips overtime.SlipService) http.Handler {
	cfg := config.AppConfig{Env: "test", CORSOrigin: "http://localhost:3000"}
	return NewRouter(cfg, NewRosterHandler(roster), NewSlipHandler(slips))
}

func multipartRoster(t *testing.T, contents string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "roster.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestParseRoster(t *testing.T) {
	t.Parallel()

	roster := &fakeRosterService{employees: []employee.Employee{
		{Last: "Doe", First: "John", Number: "123"},
	}}
	router := newTestRouter(roster, &fakeSlipService{})

	body, contentType := multipartRoster(t, "LastName,FirstName,EmployeeNumber\nDoe,John,123\n")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/roster/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp employee.ParseRosterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "Doe", resp.Employees[0].Last)
}

func TestParseRoster_NoFile(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeRosterService{}, &fakeSlipService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/roster/parse", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseRoster_UnreadableFile(t *testing.T) {
	t.Parallel()

	roster := &fakeRosterService{err: employee.ErrUnreadableRoster}
	router := newTestRouter(roster, &fakeSlipService{})

	body, contentType := multipartRoster(t, "\x00garbage")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/roster/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateBlank_ReturnsDownload(t *testing.T) {
	t.Parallel()

	slips := &fakeSlipService{batch: overtime.SlipBatch{
		Document: []byte("%PDF-1.7 fake"),
		Filename: "Time_Exception_Slips_06-14-25.pdf",
	}}
	router := newTestRouter(&fakeRosterService{}, slips)

	payload := `{"employees":[{"last":"Doe","first":"John","emp_no":"123"}],"payPeriodEnd":"2025-06-14"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slips/blank", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Time_Exception_Slips_06-14-25.pdf")
	assert.Equal(t, "%PDF-1.7 fake", rec.Body.String())
	assert.Equal(t, "2025-06-14", slips.gotPeriod)
}

func TestGenerateBlank_DomainErrorsMapToBadRequest(t *testing.T) {
	t.Parallel()

	for _, serviceErr := range []error{
		overtime.ErrMissingEmployees,
		overtime.ErrMissingPayPeriodEnd,
		overtime.ErrEndingDateNotBoundary,
	} {
		slips := &fakeSlipService{err: serviceErr}
		router := newTestRouter(&fakeRosterService{}, slips)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/slips/blank", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "error %v", serviceErr)
	}
}

func TestGenerateBlank_NoPagesIsServerError(t *testing.T) {
	t.Parallel()

	slips := &fakeSlipService{err: overtime.ErrNoSlipsProduced}
	router := newTestRouter(&fakeRosterService{}, slips)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slips/blank", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGenerateOvertime_ReturnsBase64Bundle(t *testing.T) {
	t.Parallel()

	slips := &fakeSlipService{bundle: overtime.OvertimeBundle{
		Document:         []byte("pdf-bytes"),
		DocumentFilename: "Overtime_Slips_06-14-25.pdf",
		Report:           []byte("xlsx-bytes"),
		ReportFilename:   "Overtime_Summary_06-14-25.xlsx",
	}}
	router := newTestRouter(&fakeRosterService{}, slips)

	payload := `{"employees":[{"last":"Doe","first":"John","emp_no":"123"}],"payPeriodEnd":"2025-06-14","overtimeEntries":{"123":{"entries":[{"date":"2025-06-03","category":"ot10","hours":5}]}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slips/overtime", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp overtime.GenerateOvertimeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Overtime_Slips_06-14-25.pdf", resp.DocumentFilename)
	assert.Equal(t, "Overtime_Summary_06-14-25.xlsx", resp.ReportFilename)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("pdf-bytes")), resp.Document)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("xlsx-bytes")), resp.Report)
}

func TestGenerateOvertime_InvalidBody(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeRosterService{}, &fakeSlipService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slips/overtime", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
