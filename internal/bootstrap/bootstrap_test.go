package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hackgods/clinic-scheduling/internal/appointment"
	"github.com/hackgods/clinic-scheduling/internal/clinic"
	"github.com/hackgods/clinic-scheduling/internal/config"
)

func writeProviders(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.txt")
	data := "D  ANDREW  PATEL  1/21/1989  BRIDGEWATER  FAMILY  01\n" +
		"D  DUPLICATE  DOCTOR  1/1/1980  CLARK  FAMILY  01\n" +
		"T  MONICA  ZIMNES  11/11/1989  CLARK  120\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestNew_WithoutSinks(t *testing.T) {
	cfg := config.Default()
	cfg.ProvidersFile = writeProviders(t)

	app, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.PgPool)
	assert.Nil(t, app.Redis)
	assert.Len(t, app.Service.Providers(), 2)
	assert.Len(t, app.Service.Rotation(), 1)
}

func TestNew_LogsDuplicateNPIOnce(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cfg := config.Default()
	cfg.ProvidersFile = writeProviders(t)

	app, err := New(context.Background(), cfg, zap.New(core))
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, 1, logs.FilterMessage("skipping provider").Len())
}

func TestNew_MissingProviders(t *testing.T) {
	cfg := config.Default()
	cfg.ProvidersFile = filepath.Join(t.TempDir(), "none.txt")

	app, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer app.Close()

	assert.Empty(t, app.Service.Providers())
	assert.Empty(t, app.Service.Rotation())
}

func TestNew_MalformedProvidersKeepsEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.txt")
	require.NoError(t, os.WriteFile(path, []byte("T  MONICA  ZIMNES  11/11/1989  CLARK  abc\n"), 0o644))

	cfg := config.Default()
	cfg.ProvidersFile = path

	app, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, app.Service)
	defer app.Close()

	assert.Empty(t, app.Service.Providers())

	d := nextWeekday()
	patient := clinic.NewProfile("John", "Doe", clinic.NewDate(1990, 1, 1))
	_, err = app.Service.BookOffice(context.Background(), appointment.OfficeRequest{
		Date: d, Slot: 1, Patient: patient, NPI: "01",
	})
	assert.ErrorIs(t, err, appointment.ErrProviderNotFound)

	_, err = app.Service.BookImaging(context.Background(), appointment.ImagingRequest{
		Date: d, Slot: 1, Patient: patient, Room: clinic.XRay,
	})
	assert.ErrorIs(t, err, appointment.ErrNoTechnician)
	assert.Equal(t, 0, app.Service.Len())
}

func TestNew_RedisStream(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.ProvidersFile = writeProviders(t)
	cfg.RedisAddr = mr.Addr()

	app, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer app.Close()
	require.NotNil(t, app.Redis)

	d := nextWeekday()
	_, err = app.Service.BookOffice(context.Background(), appointment.OfficeRequest{
		Date:    d,
		Slot:    1,
		Patient: clinic.NewProfile("John", "Doe", clinic.NewDate(1990, 1, 1)),
		NPI:     "01",
	})
	require.NoError(t, err)

	n, err := app.Redis.XLen(context.Background(), cfg.EventStream).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestNew_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Default()
	cfg.ProvidersFile = writeProviders(t)
	cfg.RedisAddr = addr

	_, err := New(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "redis connection")
}

// nextWeekday is the first weekday at least a week out; the clock is real here.
func nextWeekday() clinic.Date {
	day := time.Now().AddDate(0, 0, 7)
	for clinic.FromTime(day).IsWeekend() {
		day = day.AddDate(0, 0, 1)
	}
	return clinic.FromTime(day)
}
