package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

// UserRepository รับผิดชอบการคุยกับตาราง users ใน DB เท่านั้น
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// หาผู้ใช้จาก email
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// นับจำนวน user ที่มี email ซ้ำ
func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// สร้าง user ใหม่
func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// โหลด user ตาม ID
func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("id DESC").Find(&users).Error
	return users, err
}

// user ที่รออนุมัติ
func (r *UserRepository) FindPending() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("approved = ?", false).Order("id DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) SetApproved(id uint, approved bool) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("approved", approved).Error
}

func (r *UserRepository) SetRole(id uint, role entity.Role) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("role", role).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}
