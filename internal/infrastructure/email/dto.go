package email

// Message is a plain text email
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Bytes renders the message as an RFC 5322 payload
func (m Message) Bytes() []byte {
	return []byte(
		"From: " + m.From + "\r\n" +
			"To: " + m.To + "\r\n" +
			"Subject: " + m.Subject + "\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" + m.Body,
	)
}
