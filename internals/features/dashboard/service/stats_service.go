package service

import "time"

// ============================
// 📊 Statistik murni untuk dashboard
// ============================

// ScheduleRevenue adalah satu sesi terjadwal beserta tarif kelasnya.
// Sesi tanpa kelas dihitung tarif 0.
type ScheduleRevenue struct {
	Date time.Time
	Fee  float64
}

// AttendancePercentage menghitung persen kehadiran terhadap total sesi
// terjadwal. Hasil selalu di rentang [0, 100]; total 0 berarti 0.
func AttendancePercentage(presentCount, totalScheduled int) float64 {
	if totalScheduled <= 0 {
		return 0
	}
	pct := float64(presentCount) / float64(totalScheduled) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// MonthlyRevenue menjumlahkan tarif semua sesi yang jatuh pada bulan & tahun
// yang diminta. Sesi di luar bulan tersebut diabaikan.
func MonthlyRevenue(items []ScheduleRevenue, month time.Month, year int) float64 {
	total := 0.0
	for _, item := range items {
		if item.Date.Month() == month && item.Date.Year() == year {
			total += item.Fee
		}
	}
	return total
}

// AverageCompletion merata-ratakan persentase penyelesaian materi.
// Slice kosong berarti 0.
func AverageCompletion(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
