package http

import (
	"github.com/finsync/mailer/internal/infrastructure/dynamo"
	jwtinfra "github.com/finsync/mailer/internal/infrastructure/jwt"
	"github.com/finsync/mailer/internal/infrastructure/resend"
	s3infra "github.com/finsync/mailer/internal/infrastructure/s3"
	"github.com/finsync/mailer/internal/infrastructure/sns"
)

// Deps holds the infrastructure the router assembles services from. Assets,
// SMSSender and TriggerVerifier are optional: a nil value disables s3:// logo
// resolution, the SMS copy and webhook auth respectively, and main logs a
// warning for each at startup.
type Deps struct {
	UserRepo         *dynamo.UserRepo
	NotificationRepo *dynamo.NotificationRepo
	Mailer           resend.Mailer
	Assets           *s3infra.Assets
	SMSSender        sns.SMSSender
	TriggerVerifier  *jwtinfra.Verifier
}
