package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// UserService = workflow อนุมัติ/จัดการ user ฝั่ง admin
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ListAll() ([]entity.User, error) {
	return s.repo.FindAll()
}

func (s *UserService) ListPending() ([]entity.User, error) {
	return s.repo.FindPending()
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	user, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// Approve พลิก approved เป็น true ครั้งเดียว (approve ซ้ำ = no-op)
// ไม่มีทางย้อนกลับ — de-approval ไม่มีในระบบ
func (s *UserService) Approve(id uint) (*entity.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if user.Approved {
		return user, nil
	}
	if err := s.repo.SetApproved(id, true); err != nil {
		return nil, err
	}
	user.Approved = true
	return user, nil
}

// Reject = ลบ user ที่ยังรออนุมัติทิ้ง
func (s *UserService) Reject(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	if user.Approved {
		return validation("cannot reject an approved user")
	}
	return s.repo.Delete(id)
}

// Remove ลบ user คนไหนก็ได้ (explicit admin removal)
func (s *UserService) Remove(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *UserService) UpdateRole(id uint, role entity.Role) (*entity.User, error) {
	if !role.Valid() {
		return nil, validation("invalid role: must be farmer, agronomist, or admin")
	}
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetRole(id, role); err != nil {
		return nil, err
	}
	user.Role = role
	return user, nil
}
