package domain

// Tag is a provider-side label attached to an outbound message.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// OutboundEmail is a single message handed to the delivery gateway. The json
// tags match the provider wire format; optional fields are omitted from the
// payload when unset.
type OutboundEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
	CC      []string `json:"cc,omitempty"`
	BCC     []string `json:"bcc,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Tags    []Tag    `json:"tags,omitempty"`
}
