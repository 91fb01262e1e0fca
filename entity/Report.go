package entity

import (
	"gorm.io/gorm"
)

type Report struct {
	gorm.Model
	CropType    CropType     `gorm:"not null" json:"cropType"`
	ImagePath   string       `gorm:"not null" json:"imagePath"`
	Description string       `gorm:"not null" json:"description"`
	Location    string       `gorm:"not null" json:"location"`
	Status      ReportStatus `gorm:"not null;default:Pending" json:"status"`
	Treatment   string       `json:"treatment"`
	Feedback    string       `json:"feedback"`

	FarmerID uint `json:"farmerId"`
	Farmer   User `gorm:"foreignKey:FarmerID" json:"farmer"`

	// nil = ยังไม่ refer หรือ mark ว่าไม่อยู่ใน library
	ReferredPestID *uint        `json:"referredPestId"`
	ReferredPest   *PestDisease `gorm:"foreignKey:ReferredPestID" json:"referredPest,omitempty"`
}
