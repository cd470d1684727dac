package entity

// Email is a fully composed outbound message, ready for the relay.
type Email struct {
	SenderName    string `json:"sender_name"`
	SenderAddress string `json:"sender_address"`
	Recipient     string `json:"recipient"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
}

// SendEmailRequest is the inbound payload of POST /send-email.
type SendEmailRequest struct {
	Recipient string           `json:"recipient" binding:"required"`
	Subject   string           `json:"subject" binding:"required"`
	BodyText  string           `json:"body_text" binding:"required"`
	Reminder  *ReminderRequest `json:"reminder,omitempty"`
}

// ReminderRequest asks for a second copy of the message on a future
// calendar date. ReminderDate is "YYYY-MM-DD".
type ReminderRequest struct {
	Send         bool   `json:"send"`
	ReminderDate string `json:"reminderDate"`
}

// ChatbotRequest is the inbound payload of POST /generate-chatbot-response.
// Both fields are required; the handler reports each omission separately.
type ChatbotRequest struct {
	UserText      string `json:"userText"`
	SystemMessage string `json:"systemMessage"`
}

type ChatbotResponse struct {
	Response string `json:"response"`
}
