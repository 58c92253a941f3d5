package domain

// User is the account record the account system writes. The mailer reads it
// to resolve recipients and alert fields; the only attributes it owns are
// is_verified and the verification token pair.
type User struct {
	UserID     string `json:"id" dynamodbav:"user_id"`
	Email      string `json:"email,omitempty" dynamodbav:"email,omitempty"`
	IsVerified bool   `json:"isVerified,omitempty" dynamodbav:"is_verified"`

	// Verification state. Kept as top-level attributes so a token can be
	// resolved by equality through the sparse verification_token-index GSI.
	// Never read from trigger payloads.
	VerificationToken   string `json:"-" dynamodbav:"verification_token,omitempty"`
	VerificationExpires string `json:"-" dynamodbav:"verification_expires,omitempty"`

	FirstName      string `json:"firstName,omitempty" dynamodbav:"first_name,omitempty"`
	Name           string `json:"name,omitempty" dynamodbav:"name,omitempty"`
	AccountNumber  string `json:"accountNumber,omitempty" dynamodbav:"account_number,omitempty"`
	AccountNo      string `json:"accountNo,omitempty" dynamodbav:"account_no,omitempty"`
	AccountBalance any    `json:"accountBalance,omitempty" dynamodbav:"account_balance,omitempty"`
	BankName       string `json:"bankName,omitempty" dynamodbav:"bank_name,omitempty"`
	LogoURL        string `json:"logoUrl,omitempty" dynamodbav:"logo_url,omitempty"`

	// SMS alert opt-in.
	Phone     string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	SMSAlerts bool   `json:"smsAlerts,omitempty" dynamodbav:"sms_alerts,omitempty"`

	Profile *Profile `json:"profile,omitempty" dynamodbav:"profile,omitempty"`

	CreatedAt string `json:"createdAt,omitempty" dynamodbav:"created_at,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" dynamodbav:"updated_at,omitempty"`
}

// Profile is the nested profile blob. Only the email fallback matters here.
type Profile struct {
	Email string `json:"email,omitempty" dynamodbav:"email,omitempty"`
}

// ContactEmail resolves the recipient address: top-level email first, then
// the nested profile email. Empty when neither is set.
func (u *User) ContactEmail() string {
	if u.Email != "" {
		return u.Email
	}
	if u.Profile != nil {
		return u.Profile.Email
	}
	return ""
}
