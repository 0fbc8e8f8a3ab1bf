package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects a renderer in the worker; Data feeds the template.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}

// TemplateWelcome is sent once after a successful signup.
const TemplateWelcome = "welcome"
