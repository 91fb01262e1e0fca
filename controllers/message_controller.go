package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	service *services.MessageService
}

func NewMessageController(service *services.MessageService) *MessageController {
	return &MessageController{service: service}
}

// GET /messages/report/:reportId — ดึง thread แล้ว mark read
func (mc *MessageController) Thread(c *gin.Context) {
	reportID, ok := paramID(c, "reportId")
	if !ok {
		return
	}

	msgs, err := mc.service.Thread(reportID, utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(msgs), "messages": msgs})
}

type SendMessageRequest struct {
	ReportID uint   `json:"reportId" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// POST /messages
func (mc *MessageController) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "report ID and message are required")
		return
	}

	msg, err := mc.service.Send(req.ReportID, utils.CurrentUserID(c), utils.CurrentRole(c), req.Message)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, "Message sent successfully", gin.H{"data": msg})
}

// GET /messages/unread/count
func (mc *MessageController) UnreadCount(c *gin.Context) {
	count, err := mc.service.UnreadCount(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"unreadCount": count})
}

// GET /messages — ทุกข้อความที่เกี่ยวกับเรา
func (mc *MessageController) ListMine(c *gin.Context) {
	msgs, err := mc.service.ListMine(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(msgs), "messages": msgs})
}

// DELETE /messages/:messageId — ผู้ส่งหรือผู้รับเท่านั้น
func (mc *MessageController) Delete(c *gin.Context) {
	id, ok := paramID(c, "messageId")
	if !ok {
		return
	}
	if err := mc.service.Delete(id, utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Message deleted successfully"})
}
