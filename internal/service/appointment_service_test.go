package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/rehab-center/clinic-service/internal/domain"
)

type fakeAppointmentRepo struct {
	appointments map[string]*domain.Appointment
	nextID       int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[string]*domain.Appointment{}}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) error {
	f.nextID++
	appt.ID = fmt.Sprintf("a-%d", f.nextID)
	clone := *appt
	f.appointments[appt.ID] = &clone
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *appt
	return &clone, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, doctorName *string) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, appt := range f.appointments {
		if doctorName != nil && appt.DoctorName != *doctorName {
			continue
		}
		out = append(out, *appt)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) SetStatus(_ context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	appt.Status = status
	clone := *appt
	return &clone, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.appointments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.appointments, id)
	return nil
}

func TestBookDefaultsToAllDoctorsScheduled(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo())

	appt, err := svc.Book(context.Background(), BookingInput{
		PatientName: "Sam",
		Phone:       "1234567890",
		Date:        "2025-01-10",
		Reason:      "checkup",
	})
	require.NoError(t, err)
	require.Equal(t, domain.UnassignedDoctor, appt.DoctorName)
	require.Equal(t, domain.AppointmentStatusScheduled, appt.Status)
}

func TestBookTrimsDoctorName(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo())

	appt, err := svc.Book(context.Background(), BookingInput{
		DoctorName:  "  Dr. Rivera  ",
		PatientName: "Sam",
		Phone:       "1234567890",
		Date:        "2025-01-10",
		Reason:      "checkup",
	})
	require.NoError(t, err)
	require.Equal(t, "Dr. Rivera", appt.DoctorName)
}

func TestListFiltersByDoctorName(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewAppointmentService(repo)
	ctx := context.Background()

	_, err := svc.Book(ctx, BookingInput{DoctorName: "Dr. Rivera", PatientName: "A", Phone: "1234567890", Date: "2025-01-10", Reason: "x"})
	require.NoError(t, err)
	_, err = svc.Book(ctx, BookingInput{DoctorName: "Dr. Kim", PatientName: "B", Phone: "1234567890", Date: "2025-01-11", Reason: "y"})
	require.NoError(t, err)

	name := "Dr. Kim"
	appts, err := svc.List(ctx, &name)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	require.Equal(t, "B", appts[0].PatientName)
}

func TestAppointmentLifecycleStatuses(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewAppointmentService(repo)
	ctx := context.Background()

	appt, err := svc.Book(ctx, BookingInput{PatientName: "Sam", Phone: "1234567890", Date: "2025-01-10", Reason: "checkup"})
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, appt.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AppointmentStatusApproved, approved.Status)

	completed, err := svc.Complete(ctx, appt.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AppointmentStatusCompleted, completed.Status)
	require.Equal(t, "completed", string(completed.Status))

	require.NoError(t, svc.Delete(ctx, appt.ID))
	_, err = repo.GetByID(ctx, appt.ID)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestRejectUnknownAppointmentReturnsError(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo())

	_, err := svc.Reject(context.Background(), "missing")
	require.Error(t, err)
}
