package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devservices/backend/internal/model"
	"github.com/devservices/backend/internal/repository"
)

type mockConsultationService struct {
	submitFunc func(ctx context.Context, c *model.ConsultationBooking) error
	getFunc    func(ctx context.Context, id string) (*model.ConsultationBooking, error)
	listFunc   func(ctx context.Context, opts model.ListOptions) ([]*model.ConsultationBooking, error)
	countFunc  func(ctx context.Context) (int64, error)
}

func (m *mockConsultationService) Submit(ctx context.Context, c *model.ConsultationBooking) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, c)
	}
	return nil
}

func (m *mockConsultationService) Get(ctx context.Context, id string) (*model.ConsultationBooking, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockConsultationService) List(ctx context.Context, opts model.ListOptions) ([]*model.ConsultationBooking, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockConsultationService) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func TestConsultationHandler_Submit_Success(t *testing.T) {
	var captured *model.ConsultationBooking
	mock := &mockConsultationService{
		submitFunc: func(ctx context.Context, c *model.ConsultationBooking) error {
			c.ID = "c-1"
			c.Status = model.StatusPending
			captured = c
			return nil
		},
	}
	h := NewConsultationHandler(mock, &mockStatusService{})

	body := `{"name":"Carol","email":"carol@example.com","preferred_date":"2025-03-01","preferred_time":"10:00","topic":"Cloud migration"}`
	req := httptest.NewRequest(http.MethodPost, "/api/consultations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Submit to be called")
	}
	if captured.Phone != nil || captured.Message != nil {
		t.Errorf("absent optional fields should stay nil: %+v", captured)
	}
	if captured.PreferredDate != "2025-03-01" || captured.PreferredTime != "10:00" {
		t.Errorf("date/time should be stored as sent: %+v", captured)
	}

	var got map[string]any
	_ = json.NewDecoder(rec.Body).Decode(&got)
	if got["status"] != "pending" || got["id"] != "c-1" {
		t.Errorf("unexpected response %v", got)
	}
	if _, ok := got["phone"]; !ok {
		t.Error("phone should be present as null")
	}
}

func TestConsultationHandler_Submit_MalformedEmail(t *testing.T) {
	called := false
	mock := &mockConsultationService{
		submitFunc: func(ctx context.Context, c *model.ConsultationBooking) error {
			called = true
			return nil
		},
	}
	h := NewConsultationHandler(mock, &mockStatusService{})

	body := `{"name":"Carol","email":"carol-at-example","preferred_date":"2025-03-01","preferred_time":"10:00","topic":"t"}`
	req := httptest.NewRequest(http.MethodPost, "/api/consultations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if called {
		t.Error("service must not be called for invalid input")
	}
}

func TestConsultationHandler_Submit_MissingTopic(t *testing.T) {
	h := NewConsultationHandler(&mockConsultationService{}, &mockStatusService{})

	body := `{"name":"Carol","email":"carol@example.com","preferred_date":"2025-03-01","preferred_time":"10:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/consultations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp validationResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if len(resp.Fields) != 1 || resp.Fields[0].Field != "topic" {
		t.Errorf("expected topic field error, got %+v", resp.Fields)
	}
}

func TestConsultationHandler_List_StatusFilter(t *testing.T) {
	var gotOpts model.ListOptions
	mock := &mockConsultationService{
		listFunc: func(ctx context.Context, opts model.ListOptions) ([]*model.ConsultationBooking, error) {
			gotOpts = opts
			return nil, nil
		},
	}
	h := NewConsultationHandler(mock, &mockStatusService{})

	req := httptest.NewRequest(http.MethodGet, "/api/consultations?status=pending", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotOpts.Status != model.StatusPending {
		t.Errorf("expected pending filter, got %q", gotOpts.Status)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected [], got %s", rec.Body.String())
	}
}

func TestConsultationHandler_Get_NotFound(t *testing.T) {
	h := NewConsultationHandler(&mockConsultationService{}, &mockStatusService{})

	req := httptest.NewRequest(http.MethodGet, "/api/consultations/nope", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestConsultationHandler_Count(t *testing.T) {
	mock := &mockConsultationService{
		countFunc: func(ctx context.Context) (int64, error) { return 9, nil },
	}
	h := NewConsultationHandler(mock, &mockStatusService{})

	req := httptest.NewRequest(http.MethodGet, "/api/consultations/count", nil)
	rec := httptest.NewRecorder()
	h.Count(rec, req)

	var resp map[string]int64
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["total"] != 9 {
		t.Errorf("expected total=9, got %v", resp)
	}
}

func TestConsultationHandler_UpdateStatus_UsesConsultationCollection(t *testing.T) {
	var gotColl model.Collection
	status := &mockStatusService{
		updateFunc: func(ctx context.Context, collection model.Collection, id string, st model.Status) error {
			gotColl = collection
			return nil
		},
	}
	h := NewConsultationHandler(&mockConsultationService{}, status)

	req := httptest.NewRequest(http.MethodPatch, "/api/consultations/c-1/status?status=completed", nil)
	req.SetPathValue("id", "c-1")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotColl != model.CollectionConsultations {
		t.Errorf("expected consultations collection, got %q", gotColl)
	}
}

func TestConsultationHandler_UpdateStatus_NotFound(t *testing.T) {
	status := &mockStatusService{
		updateFunc: func(ctx context.Context, collection model.Collection, id string, st model.Status) error {
			return repository.ErrNotFound
		},
	}
	h := NewConsultationHandler(&mockConsultationService{}, status)

	req := httptest.NewRequest(http.MethodPatch, "/api/consultations/missing/status?status=approved", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
