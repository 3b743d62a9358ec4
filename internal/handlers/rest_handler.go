package handlers

import (
	"log"
	"net/http"
	"strconv"

	"pairchat/internal/errs"
	"pairchat/internal/models"
	"pairchat/internal/msgs"
	"pairchat/internal/services"
	"pairchat/internal/utils"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	authService     *services.AuthenticationService
	chatService     *services.ChatService
	presenceService *services.PresenceService
	deliveryService *services.DeliveryService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	chatService *services.ChatService,
	presenceService *services.PresenceService,
	deliveryService *services.DeliveryService,
) *RestHandler {
	return &RestHandler{
		authService:     authService,
		chatService:     chatService,
		presenceService: presenceService,
		deliveryService: deliveryService,
	}
}

// Register godoc
// @Summary      Register a new account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /auth/register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var user models.User
	if err := ctx.BindJSON(&user); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	created, registerErrs := rh.authService.Register(&user)
	if len(registerErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  registerErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
		Data:    created.ToUserResponse(),
	})
}

// Login godoc
// @Summary      Login to an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /auth/login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var loginData models.LoginRequestBody
	if err := ctx.BindJSON(&loginData); err != nil {
		log.Println("Error login data json binding:", err)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  loginErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

// SendMessage godoc
// @Summary      Send a message to a user
// @Description  Persists the message, then fans it out to live connections
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        receiverId  path  int  true  "Receiver ID"
// @Success      201  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      500  {object}  models.Response
// @Router       /messages/{receiverId} [post]
func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	senderID := utils.GetUserIdFromContext(ctx)
	if senderID == 0 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	receiverID := parseIDParam(ctx, "receiverId")

	var body models.SendMessageRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	message, err := rh.chatService.SendMessage(senderID, receiverID, body.Text, body.Image)
	if err != nil {
		status := http.StatusInternalServerError
		if errs.IsInvalidMessage(err) || err == errs.ErrImageUploadFailed {
			status = http.StatusBadRequest
		}
		ctx.AbortWithStatusJSON(status, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	// Persistence strictly precedes emission; delivery is fire and forget.
	rh.deliveryService.Dispatch(message)

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgMessageSentSuccessfully,
		Data:    gin.H{"message": message},
	})
}

// GetMessages godoc
// @Summary      Message history with a user
// @Tags         messages
// @Produce      json
// @Param        receiverId  path  int  true  "Peer ID"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /messages/{receiverId} [get]
func (rh *RestHandler) GetMessages(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	peerID := parseIDParam(ctx, "receiverId")
	if peerID == 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrReceiverRequired},
		})
		return
	}

	messages, err := rh.chatService.GetMessagesBetween(userID, peerID)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    models.MessageListResponse{Messages: messages},
	})
}

// GetUserConversations godoc
// @Summary      List the caller's conversations
// @Tags         conversations
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /conversations [get]
func (rh *RestHandler) GetUserConversations(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	page, size := paginationParams(ctx)

	conversations, err := rh.chatService.GetUserConversations(userID, page, size)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    conversations,
	})
}

// GetAllUsersWithPagination godoc
// @Summary      List users
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /users [get]
func (rh *RestHandler) GetAllUsersWithPagination(ctx *gin.Context) {
	page, size := paginationParams(ctx)

	response, getUsersErrs := rh.authService.GetAllUsersWithPagination(page, size)
	if len(getUsersErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  getUsersErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

// GetOnlineUsers godoc
// @Summary      Currently online user ids
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /users/online [get]
func (rh *RestHandler) GetOnlineUsers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    gin.H{"users": rh.presenceService.OnlineUsers()},
	})
}

func parseIDParam(ctx *gin.Context, name string) uint {
	idInt, err := strconv.Atoi(ctx.Param(name))
	if err != nil || idInt < 1 {
		return 0
	}
	return uint(idInt)
}

func paginationParams(ctx *gin.Context) (int, int) {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(ctx.Query("size"))
	if err != nil || size < 1 {
		size = 10
	}
	return page, size
}
