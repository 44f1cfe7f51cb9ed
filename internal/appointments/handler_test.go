package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aryanmangrule402/docassist/internal/triage"
	"github.com/aryanmangrule402/docassist/pkg/logging"
)

func newTestServer(t *testing.T) (*httptest.Server, *fixture) {
	t.Helper()
	f := newFixture(t)
	handler := NewHandler(f.service, f.appts, logging.Default())

	r := chi.NewRouter()
	r.Post("/api/book", handler.Book)
	r.Get("/api/patient/{id}/appointments", handler.PatientAppointments)
	r.Get("/api/doctor/{id}/appointments", handler.DoctorAppointments)
	r.Put("/api/appointment/{id}/approve", handler.Approve)
	r.Delete("/api/appointment/{id}", handler.Cancel)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, f
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	payload := []byte(nil)
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func TestBookEndpoint_Success(t *testing.T) {
	srv, f := newTestServer(t)
	p := f.addPatient(t, "ravi@example.com")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/book", bookingReq(p.ID, triage.UrgencyHigh))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var result BookingResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Message != "Success" || result.Status != StatusConfirmed {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.DemoCredentials.Username == "" {
		t.Error("expected demo credentials in response")
	}
}

func TestBookEndpoint_MissingPatientID(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/book", bookingReq(0, triage.UrgencyHigh))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestBookEndpoint_InvalidBody(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/book", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestPatientAppointments_NewestFirst(t *testing.T) {
	srv, f := newTestServer(t)
	p := f.addPatient(t, "ravi@example.com")

	f.service.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	if _, err := f.service.Book(context.Background(), bookingReq(p.ID, triage.UrgencyLow)); err != nil {
		t.Fatalf("book: %v", err)
	}
	f.service.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }
	if _, err := f.service.Book(context.Background(), bookingReq(p.ID, triage.UrgencyLow)); err != nil {
		t.Fatalf("book: %v", err)
	}

	resp := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/patient/%d/appointments", srv.URL, p.ID), nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var history []PatientAppointment
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(history))
	}
	if !history[0].AppointmentTime.After(history[1].AppointmentTime) {
		t.Errorf("expected newest first, got %v then %v", history[0].AppointmentTime, history[1].AppointmentTime)
	}
}

func TestDoctorAppointments_ChronologicalWithPatientName(t *testing.T) {
	srv, f := newTestServer(t)
	p := f.addPatient(t, "ravi@example.com")

	f.service.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }
	later, err := f.service.Book(context.Background(), bookingReq(p.ID, triage.UrgencyLow))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	f.service.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	if _, err := f.service.Book(context.Background(), bookingReq(p.ID, triage.UrgencyLow)); err != nil {
		t.Fatalf("book: %v", err)
	}

	resp := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/doctor/%d/appointments", srv.URL, later.DoctorID), nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var schedule []DoctorAppointment
	if err := json.NewDecoder(resp.Body).Decode(&schedule); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(schedule) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(schedule))
	}
	if !schedule[0].AppointmentTime.Before(schedule[1].AppointmentTime) {
		t.Error("expected chronological order")
	}
	if schedule[0].PatientName != "Ravi Kumar" {
		t.Errorf("expected joined patient name, got %q", schedule[0].PatientName)
	}
}

func TestApprove_IsIdempotent(t *testing.T) {
	srv, f := newTestServer(t)
	p := f.addPatient(t, "ravi@example.com")

	booked, err := f.service.Book(context.Background(), bookingReq(p.ID, triage.UrgencyLow))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	for i := 0; i < 2; i++ {
		resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/appointment/%d/approve", srv.URL, booked.ID), nil)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("approve call %d: expected %d, got %d", i+1, http.StatusOK, resp.StatusCode)
		}
	}

	history, err := f.appts.ListByPatient(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if history[0].Status != StatusConfirmed {
		t.Errorf("expected Confirmed after approve, got %s", history[0].Status)
	}
}

func TestApprove_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/appointment/999/approve", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestCancel_RemovesAppointment(t *testing.T) {
	srv, f := newTestServer(t)
	p := f.addPatient(t, "ravi@example.com")

	booked, err := f.service.Book(context.Background(), bookingReq(p.ID, triage.UrgencyLow))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	resp := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/appointment/%d", srv.URL, booked.ID), nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}

	history, err := f.appts.ListByPatient(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history after cancel, got %d", len(history))
	}
}

func TestCancel_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodDelete, srv.URL+"/api/appointment/999", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestPathID_Invalid(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodDelete, srv.URL+"/api/appointment/abc", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}
