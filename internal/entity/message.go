package entity

// GeneratedMessage is one drafted LinkedIn message. It lives only for
// the duration of a submission: shown to the user, written into the
// CRM contact's custom fields, then discarded.
type GeneratedMessage struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Model   string `json:"model"`
}

func (m *GeneratedMessage) Empty() bool {
	return m.Subject == "" || m.Body == ""
}
