package shared

const (
	TypeSendEmail = "email:send"

	QueueDefault = "default"
)

// SendEmailPayload is the asynq payload for TypeSendEmail
type SendEmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
