package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "bimbelku_backend/internals/helpers"
)

func TestStudentFromCSVRow(t *testing.T) {
	index := helper.NewCSVIndex([]string{"student_name", "student_class_id", "student_level"})

	req, err := StudentFromCSVRow(helper.NewCSVRow(index, []string{"Ayu Lestari", "2", "SMA"}))
	require.NoError(t, err)
	assert.Equal(t, "Ayu Lestari", req.StudentName)
	assert.Equal(t, uint(2), req.StudentClassID)
	assert.Equal(t, "SMA", req.StudentLevel)

	_, err = StudentFromCSVRow(helper.NewCSVRow(index, []string{"", "2", "SMA"}))
	assert.Error(t, err)

	_, err = StudentFromCSVRow(helper.NewCSVRow(index, []string{"Budi", "bukan-angka", "SMA"}))
	assert.Error(t, err)
}

// Impor best effort: satu baris rusak di tengah tidak menghentikan sisanya.
func TestStudentImportBestEffort(t *testing.T) {
	index := helper.NewCSVIndex([]string{"student_name", "student_class_id", "student_level"})
	records := [][]string{
		{"Ayu Lestari", "1", "SMA"},
		{"Budi", "0", "SMP"}, // class id nol → skip
		{"Citra Dewi", "2", "SD"},
	}

	result := helper.ImportResult{}
	for i, record := range records {
		if _, err := StudentFromCSVRow(helper.NewCSVRow(index, record)); err != nil {
			result.Skip(i+1, err.Error())
			continue
		}
		result.Imported++
	}

	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 2, result.Skipped[0].Row)
	assert.Equal(t, "student_class_id invalid", result.Skipped[0].Reason)
}
