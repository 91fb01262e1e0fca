package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type PestController struct {
	service *services.PestService
}

func NewPestController(service *services.PestService) *PestController {
	return &PestController{service: service}
}

// GET /pests (public)
func (pc *PestController) List(c *gin.Context) {
	pests, err := pc.service.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"pests": pests})
}

// GET /pests/crop/:cropType (public) — candidate เรียงตามที่เจอบ่อย
func (pc *PestController) ListByCrop(c *gin.Context) {
	pests, err := pc.service.ListCandidates(entity.CropType(c.Param("cropType")))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"pests": pests})
}

// GET /pests/:id (public)
func (pc *PestController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	pest, err := pc.service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"pest": pest})
}

type pestForm struct {
	Name        string `form:"name"`
	Type        string `form:"type"`
	CropType    string `form:"cropType"`
	Description string `form:"description"`
	Symptoms    string `form:"symptoms"`
	Treatment   string `form:"treatment"`
	Prevention  string `form:"prevention"`
}

func (f pestForm) input(imagePath string) services.PestInput {
	return services.PestInput{
		Name:        f.Name,
		Type:        entity.PestType(f.Type),
		CropType:    entity.CropType(f.CropType),
		Description: f.Description,
		Symptoms:    f.Symptoms,
		Treatment:   f.Treatment,
		Prevention:  f.Prevention,
		ImagePath:   imagePath,
	}
}

// POST /pests (admin, multipart) — รูปบังคับ
func (pc *PestController) Create(c *gin.Context) {
	var req pestForm
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image is required")
		return
	}
	imagePath, err := utils.SaveUploadedImage(c, file)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	pest, err := pc.service.Create(req.input(imagePath), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, "Pest/Disease created successfully", gin.H{"pest": pest})
}

// PUT /pests/:id (admin, multipart) — รูปใหม่ optional
func (pc *PestController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req pestForm
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		imagePath, err = utils.SaveUploadedImage(c, file)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
	}

	pest, err := pc.service.Update(id, req.input(imagePath))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Pest/Disease updated successfully", "pest": pest})
}

// DELETE /pests/:id (admin)
func (pc *PestController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := pc.service.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Pest/Disease deleted successfully"})
}
