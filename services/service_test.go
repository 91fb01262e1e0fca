package services

import (
	"fmt"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// in-memory DB แยกต่อ test (จำกัด 1 connection ไม่งั้น pool ได้คนละ memory DB)
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.PestDisease{},
		&entity.Report{},
		&entity.Message{},
	))
	return db
}

func mkUser(t *testing.T, db *gorm.DB, email string, role entity.Role, approved bool) *entity.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	u := &entity.User{
		Name:     "Test " + string(role),
		Email:    email,
		Password: string(hash),
		Phone:    "0812345678",
		Role:     role,
		Approved: approved,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func mkReport(t *testing.T, db *gorm.DB, farmerID uint, crop entity.CropType, status entity.ReportStatus) *entity.Report {
	t.Helper()
	r := &entity.Report{
		FarmerID:    farmerID,
		CropType:    crop,
		ImagePath:   "/uploads/test.jpg",
		Description: "spots on leaves",
		Location:    "plot 4",
		Status:      status,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func mkPest(t *testing.T, db *gorm.DB, name string, crop entity.CropType, occurrences int, createdBy uint) *entity.PestDisease {
	t.Helper()
	p := &entity.PestDisease{
		Name:              name,
		Type:              entity.TypePest,
		CropType:          crop,
		Description:       "desc",
		Symptoms:          "symptoms",
		Treatment:         "treatment",
		ImagePath:         "/uploads/pest.jpg",
		CommonOccurrences: occurrences,
		CreatedByID:       createdBy,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func newReportService(db *gorm.DB) *ReportService {
	return NewReportService(repository.NewReportRepository(db), repository.NewPestRepository(db))
}
