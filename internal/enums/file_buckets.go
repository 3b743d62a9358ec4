package enums

const (
	FILE_BUCKET_CHAT_IMAGES  = "chat-images"
	FILE_BUCKET_USER_AVATARS = "user-avatars"
)
