package model

type AdminModel struct {
	AdminID           uint   `gorm:"column:admin_id;primaryKey;autoIncrement" json:"admin_id"`
	AdminUsername     string `gorm:"column:admin_username;type:varchar(80);uniqueIndex;not null" json:"admin_username"`
	AdminPasswordHash string `gorm:"column:admin_password_hash;type:varchar(120);not null" json:"-"`
}

// TableName sets the name of the table
func (AdminModel) TableName() string {
	return "admins"
}
