package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/payroll"
)

// fakePayrollService records the last call and returns configured values.
type fakePayrollService struct {
	period     payroll.PeriodResponse
	entry      payroll.EntryResponse
	processing payroll.ProcessingResultResponse
	settings   payroll.SettingsResponse
	err        error

	lastPeriodID string
	lastEntryID  string
	lastTarget   string
}

func (f *fakePayrollService) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	return f.period, f.err
}

func (f *fakePayrollService) GetPeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	f.lastPeriodID = id
	return f.period, f.err
}

func (f *fakePayrollService) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) (payroll.ListPeriodsResponse, error) {
	return payroll.ListPeriodsResponse{Data: []payroll.PeriodResponse{f.period}, TotalCount: 1, Page: filter.Page, Limit: filter.Limit}, f.err
}

func (f *fakePayrollService) DeletePeriod(ctx context.Context, id string) error {
	f.lastPeriodID = id
	return f.err
}

func (f *fakePayrollService) ProcessPeriod(ctx context.Context, periodID string) (payroll.ProcessingResultResponse, error) {
	f.lastPeriodID = periodID
	return f.processing, f.err
}

func (f *fakePayrollService) TransitionPeriod(ctx context.Context, periodID string, target payroll.PeriodStatus) (payroll.PeriodResponse, error) {
	f.lastPeriodID = periodID
	f.lastTarget = string(target)
	return f.period, f.err
}

func (f *fakePayrollService) GetEntry(ctx context.Context, id string) (payroll.EntryResponse, error) {
	f.lastEntryID = id
	return f.entry, f.err
}

func (f *fakePayrollService) ListEntries(ctx context.Context, periodID string, filter payroll.EntryFilter) (payroll.ListEntriesResponse, error) {
	f.lastPeriodID = periodID
	return payroll.ListEntriesResponse{Data: []payroll.EntryResponse{f.entry}, TotalCount: 1, Page: filter.Page, Limit: filter.Limit}, f.err
}

func (f *fakePayrollService) RecomputeEntry(ctx context.Context, entryID string) (payroll.EntryResponse, error) {
	f.lastEntryID = entryID
	return f.entry, f.err
}

func (f *fakePayrollService) TransitionEntry(ctx context.Context, entryID string, target payroll.EntryStatus) (payroll.EntryResponse, error) {
	f.lastEntryID = entryID
	f.lastTarget = string(target)
	return f.entry, f.err
}

func (f *fakePayrollService) DeleteEntry(ctx context.Context, entryID string) error {
	f.lastEntryID = entryID
	return f.err
}

func (f *fakePayrollService) GetSettings(ctx context.Context) (payroll.SettingsResponse, error) {
	return f.settings, f.err
}

func (f *fakePayrollService) UpdateSettings(ctx context.Context, req payroll.UpdateSettingsRequest) (payroll.SettingsResponse, error) {
	return f.settings, f.err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// payrollTestRouter mounts the payroll routes without the auth stack so
// handler behavior can be exercised directly.
func payrollTestRouter(svc payroll.PayrollService) *chi.Mux {
	h := NewPayrollHandler(svc)
	r := chi.NewRouter()
	r.Route("/payroll", func(r chi.Router) {
		r.Route("/periods", func(r chi.Router) {
			r.Post("/", h.CreatePeriod)
			r.Get("/", h.ListPeriods)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetPeriod)
				r.Delete("/", h.DeletePeriod)
				r.Post("/process", h.ProcessPeriod)
				r.Patch("/status", h.TransitionPeriod)
				r.Get("/entries", h.ListEntries)
			})
		})
		r.Route("/entries/{id}", func(r chi.Router) {
			r.Get("/", h.GetEntry)
			r.Delete("/", h.DeleteEntry)
			r.Post("/recompute", h.RecomputeEntry)
			r.Patch("/status", h.TransitionEntry)
		})
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.Put("/", h.UpdateSettings)
		})
	})
	return r
}

func doRequest(t *testing.T, router *chi.Mux, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestPayrollHandler_CreatePeriod_Success(t *testing.T) {
	svc := &fakePayrollService{period: payroll.PeriodResponse{ID: "per-1", Status: "draft"}}
	router := payrollTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodPost, "/payroll/periods", payroll.CreatePeriodRequest{
		StartDate:  "2026-01-01",
		EndDate:    "2026-01-15",
		CutoffDate: "2026-01-15",
		PayDate:    "2026-01-20",
		Cycle:      "regular",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	var got payroll.PeriodResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "per-1", got.ID)
}

func TestPayrollHandler_CreatePeriod_InvalidBody(t *testing.T) {
	router := payrollTestRouter(&fakePayrollService{})

	req := httptest.NewRequest(http.MethodPost, "/payroll/periods", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayrollHandler_CreatePeriod_Overlap(t *testing.T) {
	svc := &fakePayrollService{err: payroll.ErrPeriodOverlaps}
	router := payrollTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodPost, "/payroll/periods", payroll.CreatePeriodRequest{
		StartDate:  "2026-01-01",
		EndDate:    "2026-01-15",
		CutoffDate: "2026-01-15",
		PayDate:    "2026-01-20",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestPayrollHandler_GetPeriod_NotFound(t *testing.T) {
	svc := &fakePayrollService{err: payroll.ErrPeriodNotFound}
	router := payrollTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet, "/payroll/periods/per-missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "per-missing", svc.lastPeriodID)
}

func TestPayrollHandler_ListPeriods_InvalidStatusFilter(t *testing.T) {
	router := payrollTestRouter(&fakePayrollService{})

	rec, _ := doRequest(t, router, http.MethodGet, "/payroll/periods?status=bogus", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayrollHandler_ListPeriods_Success(t *testing.T) {
	svc := &fakePayrollService{period: payroll.PeriodResponse{ID: "per-1"}}
	router := payrollTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet, "/payroll/periods?status=open&cycle=regular&page=2&limit=5", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got payroll.ListPeriodsResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 5, got.Limit)
	assert.Len(t, got.Data, 1)
}

func TestPayrollHandler_ProcessPeriod(t *testing.T) {
	svc := &fakePayrollService{processing: payroll.ProcessingResultResponse{
		PeriodID: "per-1",
		Computed: 3,
		Failed:   1,
		Failures: []payroll.FailureResponse{{EmployeeID: "emp-9", Reason: "no active compensation profile"}},
	}}
	router := payrollTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodPost, "/payroll/periods/per-1/process", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "per-1", svc.lastPeriodID)

	var got payroll.ProcessingResultResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 3, got.Computed)
	assert.Equal(t, 1, got.Failed)
	require.Len(t, got.Failures, 1)
	assert.Equal(t, "emp-9", got.Failures[0].EmployeeID)
}

func TestPayrollHandler_ProcessPeriod_AlreadyProcessing(t *testing.T) {
	svc := &fakePayrollService{err: payroll.ErrPeriodBeingProcessed}
	router := payrollTestRouter(svc)

	rec, _ := doRequest(t, router, http.MethodPost, "/payroll/periods/per-1/process", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPayrollHandler_TransitionPeriod(t *testing.T) {
	svc := &fakePayrollService{period: payroll.PeriodResponse{ID: "per-1", Status: "open"}}
	router := payrollTestRouter(svc)

	rec, _ := doRequest(t, router, http.MethodPatch, "/payroll/periods/per-1/status", payroll.TransitionRequest{Target: "open"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "open", svc.lastTarget)
}

func TestPayrollHandler_TransitionPeriod_InvalidTarget(t *testing.T) {
	router := payrollTestRouter(&fakePayrollService{})

	rec, _ := doRequest(t, router, http.MethodPatch, "/payroll/periods/per-1/status", payroll.TransitionRequest{Target: "archived"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayrollHandler_TransitionPeriod_InvalidTransition(t *testing.T) {
	svc := &fakePayrollService{err: payroll.ErrInvalidTransition}
	router := payrollTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodPatch, "/payroll/periods/per-1/status", payroll.TransitionRequest{Target: "closed"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
}

func TestPayrollHandler_TransitionPeriod_EntriesNotSettled(t *testing.T) {
	svc := &fakePayrollService{err: payroll.ErrEntriesNotSettled}
	router := payrollTestRouter(svc)

	rec, _ := doRequest(t, router, http.MethodPatch, "/payroll/periods/per-1/status", payroll.TransitionRequest{Target: "closed"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPayrollHandler_ListEntries_InvalidStatusFilter(t *testing.T) {
	router := payrollTestRouter(&fakePayrollService{})

	rec, _ := doRequest(t, router, http.MethodGet, "/payroll/periods/per-1/entries?status=bogus", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayrollHandler_ListEntries_Success(t *testing.T) {
	svc := &fakePayrollService{entry: payroll.EntryResponse{ID: "ent-1", Status: "computed"}}
	router := payrollTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet, "/payroll/periods/per-1/entries?status=computed", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "per-1", svc.lastPeriodID)

	var got payroll.ListEntriesResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Data, 1)
	assert.Equal(t, "ent-1", got.Data[0].ID)
}

func TestPayrollHandler_RecomputeEntry_NotRecomputable(t *testing.T) {
	svc := &fakePayrollService{err: payroll.ErrEntryNotRecomputable}
	router := payrollTestRouter(svc)

	rec, _ := doRequest(t, router, http.MethodPost, "/payroll/entries/ent-1/recompute", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ent-1", svc.lastEntryID)
}

func TestPayrollHandler_TransitionEntry(t *testing.T) {
	svc := &fakePayrollService{entry: payroll.EntryResponse{ID: "ent-1", Status: "reviewed"}}
	router := payrollTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodPatch, "/payroll/entries/ent-1/status", payroll.TransitionRequest{Target: "reviewed"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reviewed", svc.lastTarget)

	var got payroll.EntryResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "reviewed", got.Status)
}

func TestPayrollHandler_DeleteEntry_NotDeletable(t *testing.T) {
	svc := &fakePayrollService{err: payroll.ErrEntryNotDeletable}
	router := payrollTestRouter(svc)

	rec, _ := doRequest(t, router, http.MethodDelete, "/payroll/entries/ent-1", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPayrollHandler_UpdateSettings_InvalidBody(t *testing.T) {
	router := payrollTestRouter(&fakePayrollService{})

	req := httptest.NewRequest(http.MethodPut, "/payroll/settings", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayrollHandler_GetSettings(t *testing.T) {
	svc := &fakePayrollService{settings: payroll.SettingsResponse{CompanyID: "comp-1", NightWindowStart: "22:00", NightWindowEnd: "06:00"}}
	router := payrollTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet, "/payroll/settings", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got payroll.SettingsResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "comp-1", got.CompanyID)
	assert.Equal(t, "22:00", got.NightWindowStart)
}
