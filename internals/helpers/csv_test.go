package helper

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRowGet(t *testing.T) {
	index := NewCSVIndex([]string{"Student_Name", " student_level ", "student_class_id"})

	row := NewCSVRow(index, []string{" Ayu Lestari ", "SMA"})
	assert.Equal(t, "Ayu Lestari", row.Get("student_name"))
	assert.Equal(t, "SMA", row.Get("student_level"))
	// kolom ada di header tapi baris lebih pendek
	assert.Equal(t, "", row.Get("student_class_id"))
	// kolom tidak ada sama sekali
	assert.Equal(t, "", row.Get("tidak_ada"))
}

func TestImportResultSkip(t *testing.T) {
	res := ImportResult{}
	res.Imported = 2
	res.Skip(3, "format tanggal invalid, pakai YYYY-MM-DD")
	res.Skip(5, "gagal menyimpan")

	require.Len(t, res.Skipped, 2)
	assert.Equal(t, 3, res.Skipped[0].Row)
	assert.Equal(t, "format tanggal invalid, pakai YYYY-MM-DD", res.Skipped[0].Reason)
	assert.Equal(t, 5, res.Skipped[1].Row)
	assert.Equal(t, 2, res.Imported)
}

func TestSendCSV(t *testing.T) {
	app := fiber.New()
	app.Get("/export", func(c *fiber.Ctx) error {
		return SendCSV(c, "siswa.csv",
			[]string{"student_id", "student_name"},
			[][]string{{"1", "Ayu Lestari"}, {"2", "Budi, Jr."}},
		)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/export", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename=siswa.csv`, resp.Header.Get(fiber.HeaderContentDisposition))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// koma di dalam nilai harus di-quote oleh encoder
	assert.Equal(t, "student_id,student_name\n1,Ayu Lestari\n2,\"Budi, Jr.\"\n", string(body))
}
