package services

import (
	"math"

	"backend/entity"
	"backend/repository"
)

// StatsService อ่านอย่างเดียว คำนวณสดทุกครั้ง — ไม่มี cache เพราะ read ต่ำ
type StatsService struct {
	repo *repository.ReportRepository
}

func NewStatsService(repo *repository.ReportRepository) *StatsService {
	return &StatsService{repo: repo}
}

type Dashboard struct {
	TotalReports      int64                  `json:"totalReports"`
	PendingReports    int64                  `json:"pendingReports"`
	IdentifiedReports int64                  `json:"identifiedReports"`
	ReviewedReports   *int64                 `json:"reviewedReports,omitempty"`
	ResolvedReports   int64                  `json:"resolvedReports"`
	ResolutionRate    float64                `json:"resolutionRate"`
	MostCommonPests   []repository.PestCount `json:"mostCommonPests,omitempty"`
	ReportsByCrop     []repository.CropCount `json:"reportsByCrop"`
	RecentReports     []entity.Report        `json:"recentReports"`
}

// resolved/total*100 ปัดทศนิยม 1 ตำแหน่ง, total=0 ต้องเป็น 0 ไม่ใช่ NaN
func resolutionRate(resolved, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(resolved)/float64(total)*1000) / 10
}

// scope รวมทุก report (farmerID=0) หรือเฉพาะของ farmer คนเดียว
func (s *StatsService) dashboard(farmerID uint, recentN int, withReviewed bool) (*Dashboard, error) {
	total, err := s.repo.Count(farmerID)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountByStatus(farmerID, entity.StatusPending)
	if err != nil {
		return nil, err
	}
	identified, err := s.repo.CountByStatus(farmerID, entity.StatusIdentified)
	if err != nil {
		return nil, err
	}
	resolved, err := s.repo.CountByStatus(farmerID, entity.StatusResolved)
	if err != nil {
		return nil, err
	}

	byCrop, err := s.repo.CountByCrop(farmerID)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.Recent(farmerID, recentN)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		TotalReports:      total,
		PendingReports:    pending,
		IdentifiedReports: identified,
		ResolvedReports:   resolved,
		ResolutionRate:    resolutionRate(resolved, total),
		ReportsByCrop:     byCrop,
		RecentReports:     recent,
	}

	if withReviewed {
		reviewed, err := s.repo.CountByStatus(farmerID, entity.StatusReviewed)
		if err != nil {
			return nil, err
		}
		d.ReviewedReports = &reviewed
	}

	return d, nil
}

// Admin: ทั้งระบบ + top-5 pest ที่ถูก refer บ่อยสุด + recent 10
func (s *StatsService) Admin() (*Dashboard, error) {
	d, err := s.dashboard(0, 10, false)
	if err != nil {
		return nil, err
	}
	pests, err := s.repo.TopReferredPests(5)
	if err != nil {
		return nil, err
	}
	d.MostCommonPests = pests
	return d, nil
}

// Farmer: เฉพาะ report ตัวเอง recent 5
func (s *StatsService) Farmer(farmerID uint) (*Dashboard, error) {
	return s.dashboard(farmerID, 5, false)
}

// Agronomist: ทั้งระบบเหมือน admin แต่แตก bucket Reviewed ด้วย
func (s *StatsService) Agronomist() (*Dashboard, error) {
	return s.dashboard(0, 10, true)
}
