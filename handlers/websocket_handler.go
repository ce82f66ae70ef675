package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/LinQu/SOGSCup/brackets"
	"github.com/LinQu/SOGSCup/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// В продакшене здесь должна быть проверка Origin,
		// чтобы разрешать подключения только с доверенных доменов.
		return true
	},
}

type WebSocketHandler struct {
	hub          *brackets.Hub
	matchService services.MatchService
}

func NewWebSocketHandler(hub *brackets.Hub, matchService services.MatchService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:          hub,
		matchService: matchService,
	}
}

// ServeWs подключает зрителя к live-комнате матча: /ws/matches/{id}.
// Дальше клиент только слушает, все события приходят из MatchService.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	matchID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid match id", http.StatusBadRequest)
		return
	}

	// Комнату открываем только для существующего матча.
	match, err := h.matchService.GetMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader.Upgrade сам отправляет HTTP ошибку клиенту, так что здесь просто логируем.
		log.Printf("Failed to upgrade connection for match %d: %v", matchID, err)
		return
	}

	roomID := brackets.MatchRoom(matchID)

	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: roomID,
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	// Новому зрителю сразу отдаём текущее состояние матча, чтобы табло не
	// пустовало до первого события.
	snapshot := brackets.WebSocketMessage{
		Type:    brackets.EventScoreUpdated,
		Payload: match,
		RoomID:  roomID,
	}
	if messageBytes, err := json.Marshal(snapshot); err == nil {
		client.Send <- messageBytes
	}
}
