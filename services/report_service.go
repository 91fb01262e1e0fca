package services

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// ค่า sentinel จากหน้า identify = ปัญหานี้ไม่อยู่ใน library
const NotInLibrary = "not_in_library"

type ReportService struct {
	repo     *repository.ReportRepository
	pestRepo *repository.PestRepository
}

func NewReportService(repo *repository.ReportRepository, pestRepo *repository.PestRepository) *ReportService {
	return &ReportService{repo: repo, pestRepo: pestRepo}
}

// Submit สร้าง report สถานะ Pending — ทุก field บังคับรวมรูป
func (s *ReportService) Submit(farmerID uint, crop entity.CropType, description, location, imagePath string) (*entity.Report, error) {
	if crop == "" || description == "" || location == "" {
		return nil, validation("please provide all required fields")
	}
	if !crop.ValidForReport() {
		return nil, validation("invalid crop type: must be Tomato or Cucumber")
	}
	if imagePath == "" {
		return nil, validation("please upload an image")
	}

	report := &entity.Report{
		FarmerID:    farmerID,
		CropType:    crop,
		ImagePath:   imagePath,
		Description: description,
		Location:    location,
		Status:      entity.StatusPending,
	}
	if err := s.repo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

// GetByID — อ่านได้เฉพาะเจ้าของ report หรือ staff
func (s *ReportService) GetByID(id, callerID uint, role entity.Role) (*entity.Report, error) {
	report, err := s.repo.FindByID(id)
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

func (s *ReportService) ListMine(farmerID uint) ([]entity.Report, error) {
	return s.repo.FindAllByFarmer(farmerID)
}

func (s *ReportService) ListAll() ([]entity.Report, error) {
	return s.repo.FindAll()
}

// UpdateStatus: status ต้องอยู่ใน enum ไม่งั้น ErrInvalidStatus
// ไม่บังคับ transition graph — set จากสถานะไหนไปไหนก็ได้
// treatment/feedback ทับเฉพาะตอนส่งมาไม่ว่าง (empty string = ไม่แตะ)
func (s *ReportService) UpdateStatus(id uint, status entity.ReportStatus, treatment, feedback string) (*entity.Report, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	report, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	report.Status = status
	if treatment != "" {
		report.Treatment = treatment
	}
	if feedback != "" {
		report.Feedback = feedback
	}

	if err := s.repo.Save(report); err != nil {
		return nil, err
	}
	return report, nil
}

// Delete — เจ้าของเท่านั้น ลบของคนอื่นได้ not found เหมือนไม่มีอยู่
func (s *ReportService) Delete(id, farmerID uint) error {
	affected, err := s.repo.DeleteOwned(id, farmerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReferPest ผูก report กับ library entry หรือ mark ว่าไม่อยู่ใน library
// หมายเหตุ: ไม่ increment commonOccurrences ที่นี่ (trigger ที่ตั้งใจยังไม่ชัด)
func (s *ReportService) ReferPest(reportID uint, pestRef string) (*entity.Report, error) {
	var pestID *uint

	if pestRef != NotInLibrary {
		id64, err := strconv.ParseUint(pestRef, 10, 32)
		if err != nil {
			return nil, validation("invalid pest id")
		}
		id := uint(id64)
		if _, err := s.pestRepo.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		pestID = &id
	}

	affected, err := s.repo.SetReferredPest(reportID, pestID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// อาจเป็น report ไม่มีอยู่ หรือค่าเดิมเท่ากับค่าใหม่ — เช็คให้ชัด
		if _, err := s.repo.FindByID(reportID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
	}

	return s.repo.FindByID(reportID)
}
