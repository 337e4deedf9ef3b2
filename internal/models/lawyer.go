package models

// Lawyer is a directory entry for a practicing lawyer
type Lawyer struct {
	ID             int64    `json:"id" gorm:"primaryKey"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Specialization string   `json:"specialization"`
	Location       string   `json:"location"`
	CalURL         string   `json:"calUrl" gorm:"column:cal_url;type:text"`
	ProfilePic     string   `json:"profilePic" gorm:"column:profile_pic;type:text"`
	Rating         *float32 `json:"rating"`
}

// TableName table name override
func (Lawyer) TableName() string {
	return "lawyers"
}
