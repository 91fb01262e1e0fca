package controllers

import (
	"net/http"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Location string `json:"location"`
	Role     string `json:"role"` // ถ้าส่งมาแล้วไม่ใช่ farmer โดน reject
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Location string `json:"location"`
	Role     string `json:"role" binding:"required"`
}

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.service.Register(req.Name, req.Email, req.Password, req.Phone, req.Location, entity.Role(req.Role))
	if err != nil {
		fail(c, err)
		return
	}

	resp.Created(c, "User registered successfully. Awaiting admin approval.", gin.H{
		"user": gin.H{
			"id": user.ID, "name": user.Name, "email": user.Email,
			"role": user.Role, "approved": user.Approved,
		},
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.service.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role,
		},
	})
}

// POST /auth/create-user (admin)
func (a *AuthController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.service.CreateByAdmin(req.Name, req.Email, req.Password, req.Phone, req.Location, entity.Role(req.Role))
	if err != nil {
		fail(c, err)
		return
	}

	resp.Created(c, "User created successfully", gin.H{
		"user": gin.H{
			"id": user.ID, "name": user.Name, "email": user.Email, "phone": user.Phone,
			"role": user.Role, "location": user.Location, "approved": user.Approved,
		},
	})
}
