package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "bimbelku_backend/internals/helpers"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", FormatDate(d))

	_, err = ParseDate("31-08-2026")
	assert.EqualError(t, err, "format tanggal invalid, pakai YYYY-MM-DD")

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestScheduleFromCSVRow(t *testing.T) {
	index := helper.NewCSVIndex([]string{"schedule_day", "schedule_date", "schedule_class_id", "schedule_student_id", "schedule_material"})

	t.Run("baris valid", func(t *testing.T) {
		req, err := ScheduleFromCSVRow(helper.NewCSVRow(index, []string{"Senin", "2026-09-01", "2", "7", "Aljabar"}))
		require.NoError(t, err)
		assert.Equal(t, "Senin", req.ScheduleDay)
		assert.Equal(t, "2026-09-01", req.ScheduleDate)
		assert.Equal(t, uint(2), req.ScheduleClassID)
		assert.Equal(t, uint(7), req.ScheduleStudentID)
		assert.Equal(t, "Aljabar", req.ScheduleMaterial)
	})

	t.Run("tanggal invalid", func(t *testing.T) {
		_, err := ScheduleFromCSVRow(helper.NewCSVRow(index, []string{"Senin", "01/09/2026", "2", "7", "Aljabar"}))
		assert.Error(t, err)
	})

	t.Run("class id nol", func(t *testing.T) {
		_, err := ScheduleFromCSVRow(helper.NewCSVRow(index, []string{"Senin", "2026-09-01", "0", "7", "Aljabar"}))
		assert.Error(t, err)
	})
}
