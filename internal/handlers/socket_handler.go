package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"pairchat/internal/enums"
	"pairchat/internal/errs"
	"pairchat/internal/hub"
	"pairchat/internal/models"
	socketModels "pairchat/internal/models/socket"
	"pairchat/internal/msgs"
	"pairchat/internal/services"
	"pairchat/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// SocketHandler is the connection gateway: it authenticates the handshake,
// binds the connection to a user and drives presence updates over the
// connection lifecycle.
type SocketHandler struct {
	upgrader        websocket.Upgrader
	presenceService *services.PresenceService
	chatService     *services.ChatService
	deliveryService *services.DeliveryService
}

func NewSocketHandler(
	presenceService *services.PresenceService,
	chatService *services.ChatService,
	deliveryService *services.DeliveryService,
) *SocketHandler {
	return &SocketHandler{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		presenceService: presenceService,
		chatService:     chatService,
		deliveryService: deliveryService,
	}
}

// HandleSocketRoute verifies the token before any upgrade or registration;
// a missing or invalid credential rejects the attempt with no state mutated.
func (sh *SocketHandler) HandleSocketRoute(ctx *gin.Context) {
	jwtToken := ctx.Query("token")
	if jwtToken == "" {
		jwtToken = ctx.GetHeader("Authorization")
	}
	if jwtToken == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	userInfo, err := utils.VerifyToken(jwtToken, utils.GetJwtKey())
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	ws, err := sh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	if userInfo.ID == 0 {
		log.Printf("Invalid user id in token claims")
		if err := ws.Close(); err != nil {
			log.Printf("Error closing connection: %v", err)
		}
		return
	}

	sh.handleConnection(ws, userInfo)
}

func (sh *SocketHandler) handleConnection(ws *websocket.Conn, userInfo *models.Claims) {
	client := hub.NewClient(userInfo.ID, ws)

	if err := sh.presenceService.Connect(userInfo.ID, client); err != nil {
		// The mapping stays registered; the durable flag may lag behind.
		log.Printf("Failed to persist online status of user %v: %v", userInfo.ID, err)
	}

	defer func() {
		sh.presenceService.Disconnect(userInfo.ID, client)
		if err := ws.Close(); err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}()

	sh.readLoop(ws, client, userInfo)
}

func (sh *SocketHandler) readLoop(ws *websocket.Conn, client *hub.Client, userInfo *models.Claims) {
	for {
		var event socketModels.SocketEvent
		if err := ws.ReadJSON(&event); err != nil {
			log.Printf("Connection of user %v closed: %v", userInfo.ID, err)
			return
		}

		switch event.Event {
		case enums.SOCKET_EVENT_JOIN_ROOM:
			sh.handleJoinRoom(client, userInfo.ID, event.Payload)
		case enums.SOCKET_EVENT_LEAVE_ROOM:
			sh.handleLeaveRoom(client, event.Payload)
		case enums.SOCKET_EVENT_TYPING:
			sh.handleTyping(client, userInfo.ID, event.Payload, true)
		case enums.SOCKET_EVENT_STOP_TYPING:
			sh.handleTyping(client, userInfo.ID, event.Payload, false)
		case enums.SOCKET_EVENT_REQUEST_ONLINE_USERS:
			sh.handleRequestOnlineUsers(client, userInfo.ID)
		case enums.SOCKET_EVENT_MESSAGE_RECEIVED:
			sh.handleMessageReceived(client, userInfo.ID, event.Payload)
		default:
			log.Printf("Unknown event from user %v: %v", userInfo.ID, event.Event)
		}
	}
}

func (sh *SocketHandler) handleJoinRoom(client *hub.Client, userID uint, payload json.RawMessage) {
	var roomPayload socketModels.RoomPayload
	if err := json.Unmarshal(payload, &roomPayload); err != nil || roomPayload.ConversationID == 0 {
		log.Printf("Invalid joinRoom payload from user %v", userID)
		return
	}
	// Only participants of the conversation may join its room.
	if !sh.chatService.CheckUserInConversation(userID, roomPayload.ConversationID) {
		log.Printf("User %v is not part of conversation %v", userID, roomPayload.ConversationID)
		return
	}
	sh.presenceService.JoinRoom(client, roomPayload.ConversationID)
}

func (sh *SocketHandler) handleLeaveRoom(client *hub.Client, payload json.RawMessage) {
	var roomPayload socketModels.RoomPayload
	if err := json.Unmarshal(payload, &roomPayload); err != nil || roomPayload.ConversationID == 0 {
		return
	}
	sh.presenceService.LeaveRoom(client, roomPayload.ConversationID)
}

func (sh *SocketHandler) handleTyping(client *hub.Client, userID uint, payload json.RawMessage, typing bool) {
	var roomPayload socketModels.RoomPayload
	if err := json.Unmarshal(payload, &roomPayload); err != nil || roomPayload.ConversationID == 0 {
		return
	}
	userIDStr := strconv.FormatUint(uint64(userID), 10)
	if typing {
		sh.deliveryService.RelayTyping(roomPayload.ConversationID, userIDStr, client)
	} else {
		sh.deliveryService.RelayStopTyping(roomPayload.ConversationID, userIDStr, client)
	}
}

func (sh *SocketHandler) handleRequestOnlineUsers(client *hub.Client, userID uint) {
	if err := client.Send(enums.SOCKET_EVENT_ONLINE_USERS, socketModels.OnlineUsersPayload{
		Users: sh.presenceService.OnlineUsers(),
	}); err != nil {
		log.Printf("Error sending online users to user %v: %v", userID, err)
	}
}

func (sh *SocketHandler) handleMessageReceived(client *hub.Client, userID uint, payload json.RawMessage) {
	var receipt socketModels.ReceiptPayload
	if err := json.Unmarshal(payload, &receipt); err != nil || receipt.ConversationID == 0 {
		return
	}
	sh.deliveryService.RelayReceipt(
		receipt.ConversationID,
		receipt.MessageID,
		strconv.FormatUint(uint64(userID), 10),
		client,
	)
}
