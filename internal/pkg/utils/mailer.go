package utils

import (
	"fmt"
	"html"
	"strings"
	"time"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/dto/requests"
)

var (
	frenchWeekdays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}
	frenchMonths   = [...]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"}
)

// FormatFrenchDateTime renders t like "mercredi 15 janvier 2025 à 09 h 00".
func FormatFrenchDateTime(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d à %02d h %02d",
		frenchWeekdays[t.Weekday()], t.Day(), frenchMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// FormatGradeLabel turns "secondaire-3" into "Secondaire 3".
func FormatGradeLabel(gradeLevel string) string {
	label := strings.Replace(gradeLevel, "-", " ", 1)
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func BuildBookingConfirmationEmailPayload(fromEmail string, message *requests.BookingConfirmationMessage, location *time.Location) *requests.EmailPayload {
	locationLabel, ok := constvars.EmailLocationLabels[message.Location]
	if !ok {
		locationLabel = message.Location
	}
	locationLabel = html.EscapeString(locationLabel)
	if message.Address != "" {
		locationLabel += "<br>" + html.EscapeString(message.Address)
	}

	htmlCode := fmt.Sprintf(constvars.EmailBookingConfirmationHTMLFormat,
		html.EscapeString(message.FullName),
		html.EscapeString(FormatGradeLabel(message.GradeLevel)),
		FormatFrenchDateTime(message.StartTime.In(location)),
		html.EscapeString(message.Duration),
		locationLabel,
		message.Price,
		html.EscapeString(message.Phone),
	)

	return &requests.EmailPayload{
		Subject:  constvars.EmailBookingConfirmationSubject,
		From:     fromEmail,
		To:       []string{message.Email},
		HTMLCode: htmlCode,
	}
}
