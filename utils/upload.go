package utils

import (
	"mime/multipart"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaveUploadedImage เซฟไฟล์ลง uploads/ ตั้งชื่อด้วย uuid กันชนกัน
// คืน path แบบที่เก็บลง DB (เสิร์ฟผ่าน r.Static("/uploads", ...))
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	filename := uuid.New().String() + filepath.Ext(file.Filename)
	savePath := filepath.Join("uploads", filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}
