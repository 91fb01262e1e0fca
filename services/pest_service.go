package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type PestService struct {
	repo *repository.PestRepository
}

func NewPestService(repo *repository.PestRepository) *PestService {
	return &PestService{repo: repo}
}

func (s *PestService) ListAll() ([]entity.PestDisease, error) {
	return s.repo.FindAll()
}

// ListCandidates คืน entry ของพืชนั้น + Both เรียง commonOccurrences มากไปน้อย
func (s *PestService) ListCandidates(crop entity.CropType) ([]entity.PestDisease, error) {
	if !crop.ValidForReport() {
		return nil, validation("invalid crop type: must be Tomato or Cucumber")
	}
	return s.repo.FindByCrop(crop)
}

func (s *PestService) Get(id uint) (*entity.PestDisease, error) {
	pest, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return pest, err
}

type PestInput struct {
	Name        string
	Type        entity.PestType
	CropType    entity.CropType
	Description string
	Symptoms    string
	Treatment   string
	Prevention  string
	ImagePath   string
}

// Create — admin เท่านั้น รูปบังคับตอนสร้าง
func (s *PestService) Create(in PestInput, createdByID uint) (*entity.PestDisease, error) {
	if in.Name == "" || in.Description == "" || in.Symptoms == "" || in.Treatment == "" {
		return nil, validation("please provide all required fields")
	}
	if !in.Type.Valid() {
		return nil, validation("invalid type: must be Pest or Disease")
	}
	if !in.CropType.ValidForLibrary() {
		return nil, validation("invalid crop type: must be Tomato, Cucumber, or Both")
	}
	if in.ImagePath == "" {
		return nil, validation("image is required")
	}

	pest := &entity.PestDisease{
		Name:        in.Name,
		Type:        in.Type,
		CropType:    in.CropType,
		Description: in.Description,
		Symptoms:    in.Symptoms,
		Treatment:   in.Treatment,
		Prevention:  in.Prevention,
		ImagePath:   in.ImagePath,
		CreatedByID: createdByID,
	}
	if err := s.repo.Create(pest); err != nil {
		return nil, err
	}
	return pest, nil
}

// Update ทับเฉพาะ field ที่ส่งมาไม่ว่าง รูปเดิมอยู่ถ้าไม่อัปโหลดใหม่
func (s *PestService) Update(id uint, in PestInput) (*entity.PestDisease, error) {
	pest, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		pest.Name = in.Name
	}
	if in.Type != "" {
		if !in.Type.Valid() {
			return nil, validation("invalid type: must be Pest or Disease")
		}
		pest.Type = in.Type
	}
	if in.CropType != "" {
		if !in.CropType.ValidForLibrary() {
			return nil, validation("invalid crop type: must be Tomato, Cucumber, or Both")
		}
		pest.CropType = in.CropType
	}
	if in.Description != "" {
		pest.Description = in.Description
	}
	if in.Symptoms != "" {
		pest.Symptoms = in.Symptoms
	}
	if in.Treatment != "" {
		pest.Treatment = in.Treatment
	}
	if in.Prevention != "" {
		pest.Prevention = in.Prevention
	}
	if in.ImagePath != "" {
		pest.ImagePath = in.ImagePath
	}

	if err := s.repo.Save(pest); err != nil {
		return nil, err
	}
	return pest, nil
}

func (s *PestService) Delete(id uint) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
