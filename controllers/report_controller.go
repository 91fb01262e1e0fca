package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// POST /reports (farmer, multipart)
func (rc *ReportController) Create(c *gin.Context) {
	var req struct {
		CropType    string `form:"cropType" binding:"required"`
		Description string `form:"description" binding:"required"`
		Location    string `form:"location" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, "please provide all required fields")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "please upload an image")
		return
	}
	imagePath, err := utils.SaveUploadedImage(c, file)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	report, err := rc.service.Submit(
		utils.CurrentUserID(c),
		entity.CropType(req.CropType),
		req.Description,
		req.Location,
		imagePath,
	)
	if err != nil {
		fail(c, err)
		return
	}

	resp.Created(c, "Report created successfully", gin.H{"report": report})
}

// GET /reports/my-reports (farmer)
func (rc *ReportController) ListMine(c *gin.Context) {
	reports, err := rc.service.ListMine(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(reports), "reports": reports})
}

// GET /reports (admin/agronomist)
func (rc *ReportController) ListAll(c *gin.Context) {
	reports, err := rc.service.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(reports), "reports": reports})
}

// GET /reports/:id — เจ้าของหรือ staff เท่านั้น
func (rc *ReportController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	report, err := rc.service.GetByID(id, utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"report": report})
}

type UpdateStatusRequest struct {
	Status    string `json:"status" binding:"required"`
	Treatment string `json:"treatment"`
	Feedback  string `json:"feedback"`
}

// PUT /reports/:id (admin/agronomist)
func (rc *ReportController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	report, err := rc.service.UpdateStatus(id, entity.ReportStatus(req.Status), req.Treatment, req.Feedback)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Report updated successfully", "report": report})
}

// DELETE /reports/:id (farmer เจ้าของ)
func (rc *ReportController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := rc.service.Delete(id, utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Report deleted successfully"})
}

type ReferPestRequest struct {
	ReportID uint   `json:"reportId" binding:"required"`
	PestID   string `json:"pestId" binding:"required"` // id หรือ "not_in_library"
}

// POST /reports/refer-pest (admin/agronomist)
func (rc *ReportController) ReferPest(c *gin.Context) {
	var req ReferPestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "please provide report ID and pest ID")
		return
	}

	report, err := rc.service.ReferPest(req.ReportID, req.PestID)
	if err != nil {
		fail(c, err)
		return
	}

	msg := "Pest reference added to report successfully"
	if report.ReferredPestID == nil {
		msg = "Report marked as not in library"
	}
	resp.OK(c, gin.H{"message": msg, "report": report})
}
