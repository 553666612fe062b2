// file: internals/helpers/csv.go
package helper

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SendCSV menulis satu tabel penuh sebagai attachment CSV.
func SendCSV(c *fiber.Ctx, filename string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%s`, filename))
	return c.Send(buf.Bytes())
}

// ReadCSVUpload membaca file upload (multipart field) dan mengembalikan header + baris data.
func ReadCSVUpload(c *fiber.Ctx, field string) ([]string, [][]string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil, fmt.Errorf("file tidak ditemukan di form field %q", field)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // kolom opsional boleh hilang
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("file CSV kosong")
	}
	return records[0], records[1:], nil
}

/* ===============================
   Row accessor (kolom by name)
=================================*/

type CSVRow struct {
	index map[string]int
	cols  []string
}

func NewCSVIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return idx
}

func NewCSVRow(index map[string]int, cols []string) CSVRow {
	return CSVRow{index: index, cols: cols}
}

// Get mengambil nilai kolom; string kosong bila kolom tidak ada di file.
func (r CSVRow) Get(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.cols) {
		return ""
	}
	return strings.TrimSpace(r.cols[i])
}

/* ===============================
   Import result (best-effort batch)
=================================*/

type SkippedRow struct {
	Row    int    `json:"row"` // 1-based, tidak termasuk header
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped"`
}

func (res *ImportResult) Skip(row int, reason string) {
	res.Skipped = append(res.Skipped, SkippedRow{Row: row, Reason: reason})
}
