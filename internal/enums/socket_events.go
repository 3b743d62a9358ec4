package enums

// Inbound events read from a client connection.
const (
	SOCKET_EVENT_JOIN_ROOM            = "joinRoom"
	SOCKET_EVENT_LEAVE_ROOM           = "leaveRoom"
	SOCKET_EVENT_TYPING               = "typing"
	SOCKET_EVENT_STOP_TYPING          = "stopTyping"
	SOCKET_EVENT_REQUEST_ONLINE_USERS = "requestOnlineUsers"
	SOCKET_EVENT_MESSAGE_RECEIVED     = "messageReceived"
)

// Outbound events written to client connections.
const (
	SOCKET_EVENT_ONLINE_USERS        = "onlineUsers"
	SOCKET_EVENT_USER_ONLINE         = "userOnline"
	SOCKET_EVENT_USER_OFFLINE        = "userOffline"
	SOCKET_EVENT_USER_TYPING         = "userTyping"
	SOCKET_EVENT_USER_STOPPED_TYPING = "userStoppedTyping"
	SOCKET_EVENT_NEW_MESSAGE         = "newMessage"
	SOCKET_EVENT_MESSAGE_SENT        = "messageSent"
	SOCKET_EVENT_MESSAGE_DELIVERED   = "messageDelivered"
)
