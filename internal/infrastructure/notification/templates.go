package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"arborlove_quote/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	clientTemplate = "client_confirmation.html"
	adminTemplate  = "admin_notification.html"
)

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"yesNo": yesNo,
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"inc":   func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html"),
)

type emailView struct {
	QuoteID     string
	Client      entities.ClientDetails
	Services    []entities.ServiceRequest
	Amount      float64
	DateCreated string
}

func newEmailView(q entities.Quote) emailView {
	return emailView{
		QuoteID:     q.ID,
		Client:      q.ClientDetails,
		Services:    q.Services,
		Amount:      q.Amount,
		DateCreated: q.DateCreated.UTC().Format(time.RFC1123),
	}
}

func render(name string, q entities.Quote) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, newEmailView(q)); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
