package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"backend/entity"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// MessageHub กระจายข้อความใหม่ใน thread ของ report ให้ client ที่เปิดหน้านั้นอยู่
type MessageHub struct {
	clients    map[uint]map[*websocket.Conn]bool // reportID -> set of clients
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	service    *services.MessageService
}

// Subscription = 1 connection ต่อ 1 report thread
type Subscription struct {
	Conn     *websocket.Conn
	ReportID uint
	UserID   uint
}

type BroadcastMessage struct {
	ReportID uint
	Message  *entity.Message
}

func NewMessageHub(service *services.MessageService) *MessageHub {
	return &MessageHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastMessage),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		service:    service,
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *MessageHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.ReportID] == nil {
				h.clients[sub.ReportID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.ReportID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.ReportID][sub.Conn]; ok {
				delete(h.clients[sub.ReportID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.ReportID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.ReportID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/reports/:reportId
func (h *MessageHub) HandleWebSocket(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("reportId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid report id"})
		return
	}
	reportID := uint(id64)

	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	// เจ้าของ report หรือ staff เท่านั้น
	if _, err := h.service.AccessReport(reportID, userID, role); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, ReportID: reportID, UserID: userID}
	h.register <- sub

	go h.listenMessages(sub, role)
}

// listenMessages ฟังข้อความใหม่จาก client ทาง WS เซฟลง DB แล้วกระจายเข้าห้อง
func (h *MessageHub) listenMessages(sub Subscription, role entity.Role) {
	defer func() { h.unregister <- sub }()

	for {
		_, msgData, err := sub.Conn.ReadMessage()
		if err != nil {
			break
		}

		var payload struct {
			Body string `json:"body"`
		}
		if err := json.Unmarshal(msgData, &payload); err != nil {
			log.Printf("invalid payload: %v", err)
			continue
		}

		// ใช้ user จาก JWT ไม่ใช่ FE
		msg, err := h.service.Send(sub.ReportID, sub.UserID, role, payload.Body)
		if err != nil {
			log.Printf("save msg error: %v", err)
			continue
		}

		h.broadcast <- BroadcastMessage{ReportID: sub.ReportID, Message: msg}
	}
}
