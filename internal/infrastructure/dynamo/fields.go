package dynamo

// DynamoDB attribute names used in update expressions across the repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldIsVerified          = "is_verified"
	fieldVerificationToken   = "verification_token"
	fieldVerificationExpires = "verification_expires"
	fieldUpdatedAt           = "updated_at"
)
