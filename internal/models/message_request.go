package models

// SendMessageRequestBody carries the message content; Image is either empty
// or a base64/data-URI payload to be uploaded before persistence.
type SendMessageRequestBody struct {
	Text  string `json:"text"`
	Image string `json:"img"`
}

type MessageListResponse struct {
	Messages []Message `json:"messages"`
}
