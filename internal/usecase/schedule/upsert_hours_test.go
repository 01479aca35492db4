package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
)

func fixedNow(t *testing.T, fecha string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse(agenda.DateLayout, fecha)
	require.NoError(t, err)
	return func() time.Time { return parsed }
}

func TestUpsertHoursTwiceKeepsSingleRow(t *testing.T) {
	repo := newStubRepo()
	uc := NewUpsertHours(repo, repo, newTestDispatcher())
	uc.now = fixedNow(t, "2026-08-31")

	_, err := uc.Execute(context.Background(), "Lunes", "09:00", "18:00")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), "Lunes", "10:00", "17:00")
	require.NoError(t, err)

	// uma linha por dia, com os últimos valores
	require.Len(t, repo.horarios, 1)
	assert.Equal(t, "Lunes", repo.horarios[0].Dia)
	assert.Equal(t, "10:00", repo.horarios[0].Apertura)
	assert.Equal(t, "17:00", repo.horarios[0].Cierre)
}

func TestUpsertHoursMaterializesWeekdayWindow(t *testing.T) {
	repo := newStubRepo()
	uc := NewUpsertHours(repo, repo, newTestDispatcher())
	// 2026-08-31 é segunda-feira
	uc.now = fixedNow(t, "2026-08-31")

	_, err := uc.Execute(context.Background(), "Lunes", "09:00", "18:00")
	require.NoError(t, err)

	// 90 dias a partir de uma segunda contêm 13 segundas
	require.Len(t, repo.fechas, 13)
	assert.Equal(t, "2026-08-31", repo.fechas[0].Fecha)

	last, _ := time.Parse(agenda.DateLayout, repo.fechas[len(repo.fechas)-1].Fecha)
	start, _ := time.Parse(agenda.DateLayout, "2026-08-31")
	assert.Less(t, int(last.Sub(start).Hours()/24), LookaheadDays)

	for _, fecha := range repo.fechas {
		d, err := time.Parse(agenda.DateLayout, fecha.Fecha)
		require.NoError(t, err)
		assert.Equal(t, "Lunes", agenda.WeekdayName(d))
		assert.Equal(t, "Lunes", fecha.Dia)
	}
}

func TestUpsertHoursMaterializationIsIdempotent(t *testing.T) {
	repo := newStubRepo()
	uc := NewUpsertHours(repo, repo, newTestDispatcher())
	uc.now = fixedNow(t, "2026-08-31")

	_, err := uc.Execute(context.Background(), "Lunes", "09:00", "18:00")
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), "Lunes", "10:00", "17:00")
	require.NoError(t, err)

	assert.Len(t, repo.fechas, 13)
}

func TestUpsertHoursValidation(t *testing.T) {
	repo := newStubRepo()
	uc := NewUpsertHours(repo, repo, newTestDispatcher())
	uc.now = fixedNow(t, "2026-08-31")

	_, err := uc.Execute(context.Background(), "Funday", "09:00", "18:00")
	assert.True(t, httperr.IsBusiness(err, "dia_invalido"))

	_, err = uc.Execute(context.Background(), "Lunes", "9am", "18:00")
	assert.True(t, httperr.IsBusiness(err, "horario_invalido"))

	assert.Empty(t, repo.horarios)
	assert.Empty(t, repo.fechas)
}
