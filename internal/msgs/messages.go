package msgs

const (
	MsgOperationFailed         = "operation failed"
	MsgOperationSuccessful     = "operation successful"
	MsgUserCreatedSuccessfully = "user created successfully"
	MsgMessageSentSuccessfully = "message sent successfully"
	MsgYouMustLoginFirst       = "you must login first"
)
