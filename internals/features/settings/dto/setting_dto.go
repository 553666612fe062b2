package dto

import (
	"fmt"
	"strconv"

	"bimbelku_backend/internals/features/settings/model"
	helper "bimbelku_backend/internals/helpers"
)

// ============================
// Response DTO
// ============================

type SettingDTO struct {
	SettingID    uint   `json:"setting_id"`
	SettingKey   string `json:"setting_key"`
	SettingValue string `json:"setting_value"`
}

// ============================
// Request DTO
// ============================

type UpsertSettingRequest struct {
	SettingKey   string `json:"setting_key" validate:"required,min=1,max=50"`
	SettingValue string `json:"setting_value" validate:"required,max=255"`
}

// ============================
// Converter
// ============================

func ToSettingDTO(s model.SettingModel) SettingDTO {
	return SettingDTO{
		SettingID:    s.SettingID,
		SettingKey:   s.SettingKey,
		SettingValue: s.SettingValue,
	}
}

// ============================
// CSV codec
// ============================

var SettingCSVHeader = []string{"setting_id", "setting_key", "setting_value"}

func SettingToCSVRecord(s model.SettingModel) []string {
	return []string{
		strconv.FormatUint(uint64(s.SettingID), 10),
		s.SettingKey,
		s.SettingValue,
	}
}

func SettingFromCSVRow(row helper.CSVRow) (UpsertSettingRequest, error) {
	key := row.Get("setting_key")
	if key == "" {
		return UpsertSettingRequest{}, fmt.Errorf("setting_key wajib diisi")
	}
	value := row.Get("setting_value")
	if value == "" {
		return UpsertSettingRequest{}, fmt.Errorf("setting_value wajib diisi")
	}
	return UpsertSettingRequest{SettingKey: key, SettingValue: value}, nil
}
