package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type MessageService struct {
	repo       *repository.MessageRepository
	reportRepo *repository.ReportRepository
}

func NewMessageService(repo *repository.MessageRepository, reportRepo *repository.ReportRepository) *MessageService {
	return &MessageService{repo: repo, reportRepo: reportRepo}
}

// AccessReport เช็คว่า caller มีสิทธิ์ใน thread ของ report นี้ไหม
// (เจ้าของ report หรือ staff) — ใช้ทั้ง REST และ WS
func (s *MessageService) AccessReport(reportID, callerID uint, role entity.Role) (*entity.Report, error) {
	report, err := s.reportRepo.FindByID(reportID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !role.IsStaff() && report.FarmerID != callerID {
		return nil, ErrForbidden
	}
	return report, nil
}

// Thread ดึงข้อความทั้ง thread แล้ว mark ขาเข้าของ caller เป็นอ่านแล้ว
func (s *MessageService) Thread(reportID, callerID uint, role entity.Role) ([]entity.Message, error) {
	if _, err := s.AccessReport(reportID, callerID, role); err != nil {
		return nil, err
	}

	msgs, err := s.repo.FindByReport(reportID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MarkRead(reportID, callerID); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Send ส่งข้อความเข้า thread
// ผู้รับ: staff ส่ง → farmer เจ้าของ report; farmer ส่ง → ยังไม่รู้ admin ปลายทาง
// fallback เป็นเจ้าของ report ตาม flow เดิม ให้ staff ไปอ่านจากหน้า report
func (s *MessageService) Send(reportID, senderID uint, role entity.Role, body string) (*entity.Message, error) {
	if body == "" {
		return nil, validation("report ID and message are required")
	}

	report, err := s.AccessReport(reportID, senderID, role)
	if err != nil {
		return nil, err
	}

	receiverID := report.FarmerID

	msg := &entity.Message{
		ReportID:   reportID,
		SenderID:   senderID,
		SenderRole: role,
		ReceiverID: receiverID,
		Body:       body,
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) UnreadCount(userID uint) (int64, error) {
	return s.repo.CountUnread(userID)
}

func (s *MessageService) ListMine(userID uint) ([]entity.Message, error) {
	return s.repo.FindMine(userID)
}

// Delete ลบได้เฉพาะผู้ส่งหรือผู้รับ
func (s *MessageService) Delete(msgID, callerID uint) error {
	msg, err := s.repo.FindByID(msgID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if msg.SenderID != callerID && msg.ReceiverID != callerID {
		return ErrForbidden
	}
	return s.repo.Delete(msgID)
}
