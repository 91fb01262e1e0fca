package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(msg *entity.Message) error {
	return r.db.Create(msg).Error
}

func (r *MessageRepository) FindByID(id uint) (*entity.Message, error) {
	var msg entity.Message
	if err := r.db.First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ข้อความใน thread ของ report เรียงเก่าไปใหม่
func (r *MessageRepository) FindByReport(reportID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.
		Preload("Sender").
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// mark ข้อความขาเข้าที่ยังไม่อ่านเป็นอ่านแล้ว ตอนผู้รับเปิด thread
func (r *MessageRepository) MarkRead(reportID, receiverID uint) error {
	return r.db.Model(&entity.Message{}).
		Where("report_id = ? AND receiver_id = ? AND is_read = ?", reportID, receiverID, false).
		Update("is_read", true).Error
}

func (r *MessageRepository) CountUnread(receiverID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entity.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&n).Error
	return n, err
}

// ทุกข้อความที่ user เกี่ยวข้อง (ส่งหรือรับ) ใหม่สุดก่อน
func (r *MessageRepository) FindMine(userID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.
		Preload("Sender").
		Preload("Receiver").
		Preload("Report").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&msgs).Error
	return msgs, err
}

func (r *MessageRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Message{}, id).Error
}
