package app_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medconnect/internal/app"
	"medconnect/internal/model"
)

func setupApp(t *testing.T) (*app.App, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	t.Setenv("MEDCONNECT_REDIS_ADDR", mr.Addr())
	t.Setenv("MEDCONNECT_INSTANCE", "apptest")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "production")

	a, err := app.New(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a, mr
}

// restart builds a second App over the same Redis, simulating a new
// process run.
func restart(t *testing.T) *app.App {
	t.Helper()
	a, err := app.New(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestLoginBookRestart(t *testing.T) {
	a, _ := setupApp(t)
	ctx := context.Background()

	u, err := a.Identity.Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, model.RolePatient, u.Role)

	appt, err := a.Booking.Book(ctx, u, "2", "2025-06-01", "09:00")
	require.NoError(t, err)
	assert.Equal(t, model.StatusScheduled, appt.Status)

	// a new process run sees the session and the appointment
	b := restart(t)
	got, ok := b.Identity.CurrentUser()
	require.True(t, ok, "session should rehydrate")
	assert.Equal(t, u.ID, got.ID)

	appts := b.Domain.AppointmentsForPatient(u.ID)
	require.Len(t, appts, 1)
	assert.Equal(t, appt.ID, appts[0].ID)
}

func TestAdminCatalogEditsDoNotSurviveRestart(t *testing.T) {
	a, _ := setupApp(t)
	ctx := context.Background()

	u, err := a.Identity.Login(ctx, "admin@medconnect.com", "admin123")
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, u.Role)

	added := a.Domain.AddDoctor(ctx, model.Doctor{Name: "Dr. Ephemeral", Specialization: "Radiology"})
	_, ok := a.Domain.GetDoctorByID(added.ID)
	require.True(t, ok)

	b := restart(t)
	_, ok = b.Domain.GetDoctorByID(added.ID)
	assert.False(t, ok, "catalog edits must not persist")
	assert.Len(t, b.Domain.Doctors(), 4)
}

func TestCancelledAppointmentStaysCancelledAcrossRestart(t *testing.T) {
	a, _ := setupApp(t)
	ctx := context.Background()

	u, err := a.Identity.Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)
	appt, err := a.Booking.Book(ctx, u, "1", "2025-07-01", "10:00")
	require.NoError(t, err)

	a.Booking.Cancel(ctx, appt.ID)

	b := restart(t)
	appts := b.Domain.Appointments()
	require.Len(t, appts, 1)
	assert.Equal(t, model.StatusCancelled, appts[0].Status)
}

func TestNewFailsWithoutSecret(t *testing.T) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	t.Setenv("MEDCONNECT_REDIS_ADDR", mr.Addr())
	t.Setenv("JWT_SECRET", "")

	_, err := app.New(context.Background())
	assert.Error(t, err)
}
