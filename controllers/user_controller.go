package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// GET /users (admin)
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.service.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(users), "users": users})
}

// GET /users/pending (admin)
func (uc *UserController) ListPending(c *gin.Context) {
	users, err := uc.service.ListPending()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(users), "users": users})
}

// GET /users/:userId (admin)
func (uc *UserController) Get(c *gin.Context) {
	id, ok := paramID(c, "userId")
	if !ok {
		return
	}
	user, err := uc.service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"user": user})
}

// PUT /users/:userId/approve (admin)
func (uc *UserController) Approve(c *gin.Context) {
	id, ok := paramID(c, "userId")
	if !ok {
		return
	}
	user, err := uc.service.Approve(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User approved successfully", "user": user})
}

// DELETE /users/:userId/reject (admin) — ลบ user ที่ค้างอนุมัติ
func (uc *UserController) Reject(c *gin.Context) {
	id, ok := paramID(c, "userId")
	if !ok {
		return
	}
	if err := uc.service.Reject(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User rejected and removed"})
}

// DELETE /users/:userId/remove (admin)
func (uc *UserController) Remove(c *gin.Context) {
	id, ok := paramID(c, "userId")
	if !ok {
		return
	}
	if err := uc.service.Remove(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User removed successfully"})
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// PUT /users/:userId/role (admin)
func (uc *UserController) UpdateRole(c *gin.Context) {
	id, ok := paramID(c, "userId")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := uc.service.UpdateRole(id, entity.Role(req.Role))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Role updated successfully", "user": user})
}
