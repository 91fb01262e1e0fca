package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	service *services.StatsService
}

func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{service: service}
}

// GET /stats/admin
func (sc *StatsController) Admin(c *gin.Context) {
	stats, err := sc.service.Admin()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"stats": stats})
}

// GET /stats/farmer — เฉพาะ report ของตัวเอง
func (sc *StatsController) Farmer(c *gin.Context) {
	stats, err := sc.service.Farmer(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"stats": stats})
}

// GET /stats/agronomist — ทั้งระบบ + bucket Reviewed
func (sc *StatsController) Agronomist(c *gin.Context) {
	stats, err := sc.service.Agronomist()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"stats": stats})
}
