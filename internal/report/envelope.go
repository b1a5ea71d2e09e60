package report

import (
	"fmt"
	"strings"
	"time"
)

// Subject of every report email.
const Subject = "Planif-Tchop - Mise à jour"

// Sections selects which report sections to include.
type Sections struct {
	Planning     bool `json:"planning"`
	Stock        bool `json:"stock"`
	ShoppingList bool `json:"shopping_list"`
}

// Email is a fully assembled report, ready for a Notifier.
type Email struct {
	Subject string
	Text    string
	HTML    string
}

// SectionBodies carries the already-formatted section contents, text and HTML
// variants side by side.
type SectionBodies struct {
	PlanningText     string
	PlanningHTML     string
	StockText        string
	StockHTML        string
	ShoppingListText string
	ShoppingListHTML string
}

// section titles
const (
	titlePlanning = "Planning des Repas"
	titleStock    = "État du Stock"
	titleShopping = "Liste de Courses"
)

// BuildEmail wraps the selected sections in the Planif-Tchop envelope.
// The footer year is the only clock read in the whole report pipeline.
func BuildEmail(bodies SectionBodies, include Sections, now time.Time) Email {
	return Email{
		Subject: Subject,
		Text:    buildText(bodies, include),
		HTML:    buildHTML(bodies, include, now.Year()),
	}
}

func textSection(b *strings.Builder, title, body string) {
	b.WriteString(strings.ToUpper(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len([]rune(title))))
	b.WriteString("\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func buildText(bodies SectionBodies, include Sections) string {
	var b strings.Builder
	b.WriteString("Planif-Tchop - Mise à jour\n")
	b.WriteString("=========================\n\n")
	b.WriteString("Bonjour,\n\n")
	b.WriteString("Voici les dernières informations de votre application Planif-Tchop :\n\n")

	if include.Planning {
		textSection(&b, titlePlanning, bodies.PlanningText)
	}
	if include.Stock {
		textSection(&b, titleStock, bodies.StockText)
	}
	if include.ShoppingList {
		textSection(&b, titleShopping, bodies.ShoppingListText)
	}

	b.WriteString("Cordialement,\n")
	b.WriteString("L'équipe Planif-Tchop\n")
	return b.String()
}

func htmlSection(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "<h2>%s</h2>\n%s\n", title, body)
}

func buildHTML(bodies SectionBodies, include Sections, year int) string {
	var b strings.Builder
	b.WriteString(htmlHead)
	b.WriteString("<body>\n<div class=\"container\">\n")
	b.WriteString("<div class=\"header\"><h1>Planif-Tchop</h1></div>\n")
	b.WriteString("<div class=\"content\">\n")
	b.WriteString("<p>Bonjour,</p>\n")
	b.WriteString("<p>Voici les dernières informations de votre application Planif-Tchop :</p>\n")

	if include.Planning {
		htmlSection(&b, titlePlanning, bodies.PlanningHTML)
	}
	if include.Stock {
		htmlSection(&b, titleStock, bodies.StockHTML)
	}
	if include.ShoppingList {
		htmlSection(&b, titleShopping, bodies.ShoppingListHTML)
	}

	b.WriteString("<p style=\"margin-top:30px;\">Cordialement,</p>\n")
	b.WriteString("<p>L'équipe Planif-Tchop</p>\n")
	b.WriteString("</div>\n")
	fmt.Fprintf(&b, "<div class=\"footer\"><p>&copy; %d Planif-Tchop. Tous droits réservés.</p></div>\n", year)
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

const htmlHead = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Planif-Tchop - Mise à jour</title>
<style>
  body { margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4; color: #333333; }
  .container { max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; }
  .header { background-color: #007A5E; color: #ffffff; padding: 25px 20px; text-align: center; }
  .header h1 { margin: 0; font-size: 28px; font-weight: bold; }
  .content { padding: 25px 30px; }
  .content h2 { color: #007A5E; font-size: 22px; border-bottom: 2px solid #eeeeee; padding-bottom: 10px; }
  .content h3 { color: #333333; font-size: 18px; margin-top: 25px; margin-bottom: 10px; }
  ul { list-style-type: none; padding-left: 0; }
  li { padding: 8px 0; border-bottom: 1px solid #f0f0f0; }
  li:last-child { border-bottom: none; }
  .status-epuise { color: #CE1126; font-weight: bold; }
  .status-stock-bas { color: #FCD116; font-weight: bold; }
  .footer { background-color: #eeeeee; color: #777777; padding: 20px; text-align: center; font-size: 12px; }
</style>
</head>
`
