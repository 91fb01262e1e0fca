package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // ปลอดภัย
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Role     Role   `gorm:"not null;default:farmer" json:"role"`

	// farmer สมัครเอง = false จนกว่า admin อนุมัติ; admin สร้างให้ = true ทันที
	Approved bool `gorm:"not null;default:false" json:"approved"`

	// Relations — preload เฉพาะตอนจำเป็น
	Reports          []Report  `gorm:"foreignKey:FarmerID" json:"-"`
	MessagesSent     []Message `gorm:"foreignKey:SenderID" json:"-"`
	MessagesReceived []Message `gorm:"foreignKey:ReceiverID" json:"-"`
}
