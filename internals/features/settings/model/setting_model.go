package model

type SettingModel struct {
	SettingID    uint   `gorm:"column:setting_id;primaryKey;autoIncrement" json:"setting_id"`
	SettingKey   string `gorm:"column:setting_key;type:varchar(50);uniqueIndex;not null" json:"setting_key"`
	SettingValue string `gorm:"column:setting_value;type:varchar(255);not null" json:"setting_value"`
}

// TableName sets the name of the table
func (SettingModel) TableName() string {
	return "settings"
}
