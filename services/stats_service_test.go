package services

import (
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatsService(db *gorm.DB) *StatsService {
	return NewStatsService(repository.NewReportRepository(db))
}

func TestResolutionRateZeroWhenEmpty(t *testing.T) {
	db := setupDB(t)
	svc := newStatsService(db)

	stats, err := svc.Admin()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalReports)
	assert.Zero(t, stats.ResolutionRate) // ห้าม NaN
}

func TestResolutionRateRounding(t *testing.T) {
	assert.Equal(t, 0.0, resolutionRate(0, 0))
	assert.Equal(t, 33.3, resolutionRate(1, 3))
	assert.Equal(t, 66.7, resolutionRate(2, 3))
	assert.Equal(t, 50.0, resolutionRate(1, 2))
	assert.Equal(t, 100.0, resolutionRate(7, 7))
	assert.Equal(t, 16.7, resolutionRate(1, 6))
}

func TestFarmerStatsScopedToOwnReports(t *testing.T) {
	db := setupDB(t)
	svc := newStatsService(db)
	f1 := mkUser(t, db, "f1@test.com", entity.RoleFarmer, true)
	f2 := mkUser(t, db, "f2@test.com", entity.RoleFarmer, true)

	mkReport(t, db, f1.ID, entity.CropTomato, entity.StatusPending)
	mkReport(t, db, f1.ID, entity.CropTomato, entity.StatusResolved)
	mkReport(t, db, f2.ID, entity.CropCucumber, entity.StatusResolved)

	stats, err := svc.Farmer(f1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalReports)
	assert.EqualValues(t, 1, stats.PendingReports)
	assert.EqualValues(t, 1, stats.ResolvedReports)
	assert.Equal(t, 50.0, stats.ResolutionRate)
	assert.Nil(t, stats.ReviewedReports)
	assert.Empty(t, stats.MostCommonPests)
}

func TestAgronomistStatsIncludeReviewedBucket(t *testing.T) {
	db := setupDB(t)
	svc := newStatsService(db)
	f := mkUser(t, db, "f@test.com", entity.RoleFarmer, true)

	mkReport(t, db, f.ID, entity.CropTomato, entity.StatusPending)
	mkReport(t, db, f.ID, entity.CropTomato, entity.StatusReviewed)
	mkReport(t, db, f.ID, entity.CropCucumber, entity.StatusReviewed)
	mkReport(t, db, f.ID, entity.CropCucumber, entity.StatusResolved)

	stats, err := svc.Agronomist()
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalReports)
	require.NotNil(t, stats.ReviewedReports)
	assert.EqualValues(t, 2, *stats.ReviewedReports)
	assert.Equal(t, 25.0, stats.ResolutionRate)
}

func TestAdminStatsTopPestsAndByCrop(t *testing.T) {
	db := setupDB(t)
	svc := newStatsService(db)
	f := mkUser(t, db, "f@test.com", entity.RoleFarmer, true)
	admin := mkUser(t, db, "a@test.com", entity.RoleAdmin, true)

	blight := mkPest(t, db, "Early Blight", entity.CropTomato, 5, admin.ID)
	aphids := mkPest(t, db, "Aphids", entity.CropBoth, 9, admin.ID)

	for i := 0; i < 3; i++ {
		r := mkReport(t, db, f.ID, entity.CropTomato, entity.StatusIdentified)
		require.NoError(t, db.Model(r).Update("referred_pest_id", blight.ID).Error)
	}
	r := mkReport(t, db, f.ID, entity.CropCucumber, entity.StatusIdentified)
	require.NoError(t, db.Model(r).Update("referred_pest_id", aphids.ID).Error)
	mkReport(t, db, f.ID, entity.CropCucumber, entity.StatusPending) // ไม่ refer

	stats, err := svc.Admin()
	require.NoError(t, err)

	require.Len(t, stats.MostCommonPests, 2)
	assert.Equal(t, blight.ID, stats.MostCommonPests[0].PestID)
	assert.EqualValues(t, 3, stats.MostCommonPests[0].Count)
	assert.Equal(t, "Early Blight", stats.MostCommonPests[0].Pest.Name)

	require.Len(t, stats.ReportsByCrop, 2)
	assert.Equal(t, entity.CropTomato, stats.ReportsByCrop[0].CropType)
	assert.EqualValues(t, 3, stats.ReportsByCrop[0].Count)
}

func TestRecentReportsBounded(t *testing.T) {
	db := setupDB(t)
	svc := newStatsService(db)
	f := mkUser(t, db, "f@test.com", entity.RoleFarmer, true)

	for i := 0; i < 12; i++ {
		mkReport(t, db, f.ID, entity.CropTomato, entity.StatusPending)
	}

	adminStats, err := svc.Admin()
	require.NoError(t, err)
	assert.Len(t, adminStats.RecentReports, 10)

	farmerStats, err := svc.Farmer(f.ID)
	require.NoError(t, err)
	assert.Len(t, farmerStats.RecentReports, 5)
}
