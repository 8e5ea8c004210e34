package requests

type EmailPayload struct {
	Subject     string            `json:"subject"`
	From        string            `json:"from"`
	To          []string          `json:"to"`
	HTMLCode    string            `json:"html_code"`
	Encoded     bool              `json:"encoded"`
	Attachments []EmailAttachment `json:"attachments,omitempty"`
}

type EmailAttachment struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}
