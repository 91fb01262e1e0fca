package entity

import (
	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	Body       string `gorm:"not null" json:"body"`
	SenderRole Role   `json:"senderRole"`
	IsRead     bool   `gorm:"not null;default:false" json:"isRead"`

	ReportID uint   `json:"reportId"`
	Report   Report `json:"-"` // ซ่อนเพื่อเลี่ยง loop

	SenderID uint `json:"senderId"`
	Sender   User `gorm:"foreignKey:SenderID" json:"-"`

	ReceiverID uint `json:"receiverId"`
	Receiver   User `gorm:"foreignKey:ReceiverID" json:"-"`
}
