package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rehab-center/clinic-service/internal/api/http/handlers"
	"github.com/rehab-center/clinic-service/internal/auth"
	"github.com/rehab-center/clinic-service/internal/config"
	"github.com/rehab-center/clinic-service/internal/domain"
	"github.com/rehab-center/clinic-service/internal/observability"
	"github.com/rehab-center/clinic-service/internal/service"
)

type memAppointmentRepo struct {
	appointments map[string]*domain.Appointment
	nextID       int
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{appointments: map[string]*domain.Appointment{}}
}

func (m *memAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) error {
	m.nextID++
	appt.ID = fmt.Sprintf("a-%d", m.nextID)
	clone := *appt
	m.appointments[appt.ID] = &clone
	return nil
}

func (m *memAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	appt, ok := m.appointments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *appt
	return &clone, nil
}

func (m *memAppointmentRepo) List(_ context.Context, doctorName *string) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, appt := range m.appointments {
		if doctorName != nil && appt.DoctorName != *doctorName {
			continue
		}
		out = append(out, *appt)
	}
	return out, nil
}

func (m *memAppointmentRepo) SetStatus(_ context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	appt, ok := m.appointments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	appt.Status = status
	clone := *appt
	return &clone, nil
}

func (m *memAppointmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.appointments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.appointments, id)
	return nil
}

func newBookingApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second, config.CORSConfig{})

	appointments := service.NewAppointmentService(newMemAppointmentRepo())
	patient := handlers.NewPatientHandler(appointments)
	doctor := handlers.NewDoctorHandler(appointments)

	tokens := auth.NewTokenManager("router-test-secret", time.Hour)
	authMw := auth.NewAuthMiddleware(tokens)

	app.Post("/api/patient/book", patient.Book)
	app.Get("/api/doctor/appointments",
		authMw.Handle,
		auth.RequireRoles(domain.RoleAdmin, domain.RoleDoctor, domain.RoleTherapist),
		doctor.Appointments)

	return app, tokens
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestBookWithoutDoctorDefaultsToAllDoctors(t *testing.T) {
	app, _ := newBookingApp(t)

	resp := postJSON(t, app, "/api/patient/book", fiber.Map{
		"patientName": "Sam",
		"phone":       "1234567890",
		"date":        "2025-01-10",
		"reason":      "checkup",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "Appointment booked successfully!", body["message"])

	appt, ok := body["appointment"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "All Doctors", appt["doctorName"])
	require.Equal(t, "Scheduled", appt["status"])
}

func TestBookRejectsBadPhone(t *testing.T) {
	app, _ := newBookingApp(t)

	resp := postJSON(t, app, "/api/patient/book", fiber.Map{
		"patientName": "Sam",
		"phone":       "12345",
		"date":        "2025-01-10",
		"reason":      "checkup",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "VALIDATION_FAILED", errObj["code"])
}

func TestBookRejectsMissingFields(t *testing.T) {
	app, _ := newBookingApp(t)

	resp := postJSON(t, app, "/api/patient/book", fiber.Map{"patientName": "Sam"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDoctorAppointmentsRequiresToken(t *testing.T) {
	app, _ := newBookingApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/doctor/appointments", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDoctorAppointmentsForbidsVisitors(t *testing.T) {
	app, tokens := newBookingApp(t)

	token, _, err := tokens.GenerateToken("u-1", domain.RoleVisitor)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/doctor/appointments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDoctorAppointmentsAllowsDoctors(t *testing.T) {
	app, tokens := newBookingApp(t)

	booked := postJSON(t, app, "/api/patient/book", fiber.Map{
		"patientName": "Sam",
		"phone":       "1234567890",
		"date":        "2025-01-10",
		"reason":      "checkup",
	})
	require.Equal(t, http.StatusCreated, booked.StatusCode)
	booked.Body.Close()

	token, _, err := tokens.GenerateToken("u-1", domain.RoleDoctor)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/doctor/appointments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	appts, ok := body["appointments"].([]any)
	require.True(t, ok)
	require.Len(t, appts, 1)
}
