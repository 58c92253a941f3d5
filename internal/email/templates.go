package email

import "html/template"

// All messages share the same chrome: a dark header carrying the brand (logo
// image when one resolves, wordmark placeholder otherwise), a white content
// card and a support footer.

var informativeTmpl = template.Must(template.New("informative").Parse(`<!DOCTYPE html>
<html>
  <body style="margin:0;padding:0;background-color:#f4f5f7;font-family:Arial,Helvetica,sans-serif;">
    <div style="max-width:600px;margin:0 auto;padding:24px;">
      <div style="background:#ffffff;border-radius:8px;overflow:hidden;">
        <div style="background:#0b1437;padding:20px 24px;">
          {{if .LogoURL}}<img src="{{.LogoURL}}" alt="Finsync" style="height:40px;display:block;"/>{{else}}<span style="color:#ffffff;font-size:20px;font-weight:bold;letter-spacing:1px;">Finsync</span>{{end}}
        </div>
        <div style="padding:28px 24px;color:#1f2430;">
          <h2 style="margin:0 0 16px;font-size:20px;">{{.Subject}}</h2>
          <p style="margin:0 0 16px;font-size:14px;">Hi {{.Name}},</p>
          <div style="font-size:14px;line-height:1.6;">{{.Body}}</div>
        </div>
        <div style="padding:20px 24px;border-top:1px solid #e6e8ee;color:#6b7280;font-size:12px;">
          <p style="margin:0 0 6px;">Need help? Contact us at <a href="mailto:support@finsyncdigitalservice.com" style="color:#2457f5;">support@finsyncdigitalservice.com</a>.</p>
          <p style="margin:0;">&copy; {{.Year}} Finsync Digital Service. All rights reserved.</p>
        </div>
      </div>
    </div>
  </body>
</html>`))

var debitAlertTmpl = template.Must(template.New("debit_alert").Parse(`<!DOCTYPE html>
<html>
  <body style="margin:0;padding:0;background-color:#f4f5f7;font-family:Arial,Helvetica,sans-serif;">
    <div style="max-width:600px;margin:0 auto;padding:24px;">
      <div style="background:#ffffff;border-radius:8px;overflow:hidden;">
        <div style="background:#0b1437;padding:20px 24px;">
          {{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.BankName}}" style="height:40px;display:block;"/>{{else}}<span style="color:#ffffff;font-size:20px;font-weight:bold;letter-spacing:1px;">{{.BankName}}</span>{{end}}
        </div>
        <div style="padding:28px 24px;color:#1f2430;">
          <p style="margin:0 0 8px;font-size:14px;">Hi {{.FirstName}},</p>
          <p style="margin:0 0 20px;font-size:14px;">A debit transaction occurred on your account.</p>
          <div style="background:#fbecec;border-radius:6px;padding:16px 20px;margin-bottom:20px;">
            <span style="display:block;color:#6b7280;font-size:12px;text-transform:uppercase;letter-spacing:1px;">Amount</span>
            <span style="display:block;color:#c0392b;font-size:26px;font-weight:bold;">{{.Amount}}</span>
          </div>
          <table style="width:100%;border-collapse:collapse;font-size:14px;">
            <tr><td style="padding:8px 0;color:#6b7280;">Date / Time</td><td style="padding:8px 0;text-align:right;">{{.DateTime}}</td></tr>
            <tr><td style="padding:8px 0;color:#6b7280;">Narration</td><td style="padding:8px 0;text-align:right;">{{.Narration}}</td></tr>
            <tr><td style="padding:8px 0;color:#6b7280;">Reference</td><td style="padding:8px 0;text-align:right;">{{.Reference}}</td></tr>
            <tr><td style="padding:8px 0;color:#6b7280;">Account Number</td><td style="padding:8px 0;text-align:right;">{{.AccountNumber}}</td></tr>
            <tr><td style="padding:8px 0;color:#6b7280;">Available Balance</td><td style="padding:8px 0;text-align:right;">{{.Balance}}</td></tr>
            <tr><td style="padding:8px 0;color:#6b7280;">Bank</td><td style="padding:8px 0;text-align:right;">{{.BankName}}</td></tr>
          </table>
        </div>
        <div style="padding:20px 24px;border-top:1px solid #e6e8ee;color:#6b7280;font-size:12px;">
          <p style="margin:0 0 6px;">If you do not recognise this transaction, contact <a href="mailto:support@finsyncdigitalservice.com" style="color:#2457f5;">support@finsyncdigitalservice.com</a> immediately.</p>
          <p style="margin:0;">&copy; {{.Year}} Finsync Digital Service. All rights reserved.</p>
        </div>
      </div>
    </div>
  </body>
</html>`))

var verificationTmpl = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
  <body style="margin:0;padding:0;background-color:#f4f5f7;font-family:Arial,Helvetica,sans-serif;">
    <div style="max-width:600px;margin:0 auto;padding:24px;">
      <div style="background:#ffffff;border-radius:8px;padding:32px 28px;color:#1f2430;">
        <h1 style="margin:0 0 16px;font-size:22px;">Welcome to Finsync!</h1>
        <p style="margin:0 0 20px;font-size:14px;line-height:1.6;">Tap the button below to verify your email address and activate your account.</p>
        <p style="margin:0 0 24px;">
          <a href="{{.URL}}" style="display:inline-block;background:#2457f5;color:#ffffff;text-decoration:none;padding:12px 28px;border-radius:6px;font-size:14px;font-weight:bold;">Verify Email</a>
        </p>
        <p style="margin:0 0 8px;font-size:13px;color:#6b7280;">Or copy and paste this link into your browser:</p>
        <p style="margin:0 0 24px;font-size:13px;word-break:break-all;"><a href="{{.URL}}" style="color:#2457f5;">{{.URL}}</a></p>
        <p style="margin:0;font-size:12px;color:#6b7280;">This link expires in 1 hour. If you did not create a Finsync account, you can safely ignore this email.</p>
      </div>
    </div>
  </body>
</html>`))

var verificationSuccessTmpl = template.Must(template.New("verification_success").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Email Verified</title>
  </head>
  <body style="margin:0;padding:0;background-color:#f4f5f7;font-family:Arial,Helvetica,sans-serif;">
    <div style="max-width:480px;margin:80px auto;padding:0 24px;">
      <div style="background:#ffffff;border-radius:8px;padding:40px 32px;text-align:center;color:#1f2430;">
        <div style="font-size:44px;line-height:1;">&#10003;</div>
        <h1 style="margin:16px 0 12px;font-size:22px;">Email verified</h1>
        <p style="margin:0;font-size:14px;line-height:1.6;color:#6b7280;">Your email address has been confirmed. You can return to the Finsync app and continue.</p>
      </div>
    </div>
  </body>
</html>`))
