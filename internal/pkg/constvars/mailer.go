package constvars

const (
	EmailBookingConfirmationSubject = "Confirmation de réservation - TutoratRéussite"
)

const (
	EmailSendHTMLFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"

	// name, grade, date and time, duration, location, price, phone
	EmailBookingConfirmationHTMLFormat = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: linear-gradient(135deg, #4A90E2 0%%, #FF8C42 100%%); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
.content { background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; }
.detail-row { margin: 15px 0; padding: 15px; background: white; border-radius: 6px; }
.label { font-weight: bold; color: #4A90E2; }
.price { font-size: 24px; font-weight: bold; color: #22C55E; text-align: center; margin: 20px 0; }
.footer { text-align: center; margin-top: 30px; color: #666; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>TutoratRéussite</h1><p>Confirmation de réservation</p></div>
<div class="content">
<p>Bonjour %s,</p>
<p>Merci d'avoir réservé un cours avec TutoratRéussite. Voici les détails de votre réservation :</p>
<div class="detail-row"><div class="label">Niveau scolaire</div><div>%s</div></div>
<div class="detail-row"><div class="label">Date et heure</div><div>%s</div></div>
<div class="detail-row"><div class="label">Durée</div><div>%s</div></div>
<div class="detail-row"><div class="label">Lieu</div><div>%s</div></div>
<div class="price">Prix total : %d $</div>
<p>Nous vous contacterons prochainement au %s pour confirmer tous les détails.</p>
<div class="footer"><p><strong>TutoratRéussite</strong></p><p>info@tutoratreussite.ca</p></div>
</div>
</div>
</body>
</html>`
)

var EmailLocationLabels = map[string]string{
	LocationTeacher: "Chez le professeur",
	LocationHome:    "À domicile",
	LocationOnline:  "En ligne",
}

const (
	MailerMessageTypeJSON       = "JSON"
	MailerRequeueStrategyDrop   = "DROP"
	MailerDefaultPrefetchCount  = 8
	MailerDefaultSendsPerSecond = 2
)
