package entity

import (
	"gorm.io/gorm"
)

type PestType string

const (
	TypePest    PestType = "Pest"
	TypeDisease PestType = "Disease"
)

func (t PestType) Valid() bool {
	return t == TypePest || t == TypeDisease
}

// PestDisease = library entry ที่ admin ดูแล ใช้เป็น reference ตอน identify report
type PestDisease struct {
	gorm.Model
	Name        string   `gorm:"not null" json:"name"`
	Type        PestType `gorm:"not null" json:"type"`
	CropType    CropType `gorm:"not null" json:"cropType"`
	Description string   `gorm:"not null" json:"description"`
	Symptoms    string   `gorm:"not null" json:"symptoms"`
	Treatment   string   `gorm:"not null" json:"treatment"`
	Prevention  string   `json:"prevention"`
	ImagePath   string   `gorm:"not null" json:"imagePath"`

	// ยังไม่มี path ที่ increment ค่านี้ ใช้แค่เรียง candidate
	CommonOccurrences int `gorm:"not null;default:0" json:"commonOccurrences"`

	CreatedByID uint `json:"createdById"`
	CreatedBy   User `gorm:"foreignKey:CreatedByID" json:"-"`
}
