package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type PestRepository struct {
	db *gorm.DB
}

func NewPestRepository(db *gorm.DB) *PestRepository {
	return &PestRepository{db: db}
}

func (r *PestRepository) Create(pest *entity.PestDisease) error {
	return r.db.Create(pest).Error
}

func (r *PestRepository) FindAll() ([]entity.PestDisease, error) {
	var pests []entity.PestDisease
	err := r.db.Order("name ASC").Find(&pests).Error
	return pests, err
}

// entry ของพืชนั้นรวม Both เรียงตามที่เจอบ่อย — เอาตัวที่น่าจะใช่ขึ้นก่อน
func (r *PestRepository) FindByCrop(crop entity.CropType) ([]entity.PestDisease, error) {
	var pests []entity.PestDisease
	err := r.db.
		Where("crop_type IN ?", []entity.CropType{crop, entity.CropBoth}).
		Order("common_occurrences DESC").
		Find(&pests).Error
	return pests, err
}

func (r *PestRepository) FindByID(id uint) (*entity.PestDisease, error) {
	var pest entity.PestDisease
	if err := r.db.First(&pest, id).Error; err != nil {
		return nil, err
	}
	return &pest, nil
}

func (r *PestRepository) Save(pest *entity.PestDisease) error {
	return r.db.Save(pest).Error
}

func (r *PestRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&entity.PestDisease{}, id)
	return res.RowsAffected, res.Error
}
