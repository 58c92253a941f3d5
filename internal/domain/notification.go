package domain

// Notification is the record the account system writes under a user. The
// dispatcher reads it once on creation and never mutates it. Data is a
// free-form payload; the well-known keys (amount, balance, description,
// transactionId, reference, dateTime, logoUrl) feed the debit-alert mapping.
type Notification struct {
	ID        string         `json:"id,omitempty" dynamodbav:"notification_id"`
	UserID    string         `json:"userId,omitempty" dynamodbav:"user_id"`
	Type      string         `json:"type,omitempty" dynamodbav:"type,omitempty"`
	Title     string         `json:"title,omitempty" dynamodbav:"title,omitempty"`
	Body      string         `json:"body,omitempty" dynamodbav:"body,omitempty"`
	LogoURL   string         `json:"logoUrl,omitempty" dynamodbav:"logo_url,omitempty"`
	CreatedAt string         `json:"createdAt,omitempty" dynamodbav:"created_at,omitempty"`
	Data      map[string]any `json:"data,omitempty" dynamodbav:"data,omitempty"`
}
