package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(report *entity.Report) error {
	return r.db.Create(report).Error
}

func (r *ReportRepository) FindByID(id uint) (*entity.Report, error) {
	var report entity.Report
	if err := r.db.
		Preload("Farmer").
		Preload("ReferredPest").
		First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// report ของ farmer คนเดียว ใหม่สุดก่อน
func (r *ReportRepository) FindAllByFarmer(farmerID uint) ([]entity.Report, error) {
	var reports []entity.Report
	err := r.db.
		Preload("ReferredPest").
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// ทุก report (ฝั่ง staff) ใหม่สุดก่อน
func (r *ReportRepository) FindAll() ([]entity.Report, error) {
	var reports []entity.Report
	err := r.db.
		Preload("Farmer").
		Preload("ReferredPest").
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) Save(report *entity.Report) error {
	return r.db.Save(report).Error
}

// ลบเฉพาะ report ของตัวเอง คืนจำนวน row ที่โดนลบ
func (r *ReportRepository) DeleteOwned(id, farmerID uint) (int64, error) {
	res := r.db.Where("id = ? AND farmer_id = ?", id, farmerID).Delete(&entity.Report{})
	return res.RowsAffected, res.Error
}

func (r *ReportRepository) SetReferredPest(id uint, pestID *uint) (int64, error) {
	res := r.db.Model(&entity.Report{}).Where("id = ?", id).Update("referred_pest_id", pestID)
	return res.RowsAffected, res.Error
}

// ---------- stats queries (farmerID = 0 หมายถึงทั้งระบบ) ----------

func (r *ReportRepository) scoped(farmerID uint) *gorm.DB {
	q := r.db.Model(&entity.Report{})
	if farmerID != 0 {
		q = q.Where("farmer_id = ?", farmerID)
	}
	return q
}

func (r *ReportRepository) Count(farmerID uint) (int64, error) {
	var n int64
	err := r.scoped(farmerID).Count(&n).Error
	return n, err
}

func (r *ReportRepository) CountByStatus(farmerID uint, status entity.ReportStatus) (int64, error) {
	var n int64
	err := r.scoped(farmerID).Where("status = ?", status).Count(&n).Error
	return n, err
}

type CropCount struct {
	CropType entity.CropType `json:"cropType"`
	Count    int64           `json:"count"`
}

func (r *ReportRepository) CountByCrop(farmerID uint) ([]CropCount, error) {
	var rows []CropCount
	err := r.scoped(farmerID).
		Select("crop_type, count(*) as count").
		Group("crop_type").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}

func (r *ReportRepository) Recent(farmerID uint, limit int) ([]entity.Report, error) {
	var reports []entity.Report
	q := r.db.Preload("Farmer").Preload("ReferredPest")
	if farmerID != 0 {
		q = q.Where("farmer_id = ?", farmerID)
	}
	err := q.Order("created_at DESC").Limit(limit).Find(&reports).Error
	return reports, err
}

type PestCount struct {
	PestID uint               `json:"pestId"`
	Count  int64              `json:"count"`
	Pest   entity.PestDisease `gorm:"-" json:"pest"`
}

// pest ที่ถูก refer บ่อยสุด (join count)
func (r *ReportRepository) TopReferredPests(limit int) ([]PestCount, error) {
	var rows []PestCount
	if err := r.db.Model(&entity.Report{}).
		Select("referred_pest_id as pest_id, count(*) as count").
		Where("referred_pest_id IS NOT NULL").
		Group("referred_pest_id").
		Order("count DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		var pest entity.PestDisease
		if err := r.db.First(&pest, rows[i].PestID).Error; err == nil {
			rows[i].Pest = pest
		}
	}
	return rows, nil
}
