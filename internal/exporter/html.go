package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/bizbook/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/bizbook-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("bizbook-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the address book as an HTML contact sheet: one table
// row per person, then the saved folders and feature declarations. Tags
// travel in data-tags attributes so the sheet can be imported again.
func ExportHTML(book *model.AddressBook) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<title>Address Book</title>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<h1>Address Book</h1>\n")

	writePersons(&b, book.Persons)
	writeFolders(&b, book.Folders)
	writeFeatures(&b, book.Features)

	b.WriteString("</body>\n</html>\n")

	return b.String()
}

func writePersons(b *strings.Builder, persons []model.Person) {
	b.WriteString("<table class=\"persons\">\n")
	b.WriteString("    <tr><th>Name</th><th>Phone</th><th>Email</th><th>Address</th><th>Tags</th></tr>\n")
	for _, p := range persons {
		fmt.Fprintf(b, "    <tr data-tags=\"%s\">", html.EscapeString(tagNames(p.Tags)))
		writeCell(b, "name", string(p.Name))
		writeCell(b, "phone", string(p.Phone))
		writeCell(b, "email", string(p.Email))
		writeCell(b, "address", string(p.Address))
		writeCell(b, "tags", tagNames(p.Tags))
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
}

func writeCell(b *strings.Builder, class, value string) {
	fmt.Fprintf(b, "<td class=\"%s\">%s</td>", class, html.EscapeString(value))
}

func writeFolders(b *strings.Builder, folders []model.SavedFolder) {
	if len(folders) == 0 {
		return
	}
	b.WriteString("<h2>Folders</h2>\n")
	b.WriteString("<ul class=\"folders\">\n")
	for _, f := range folders {
		fmt.Fprintf(b, "    <li data-tags=\"%s\">%s</li>\n",
			html.EscapeString(strings.Join(f.QueryTags, " ")),
			html.EscapeString(f.DisplayName),
		)
	}
	b.WriteString("</ul>\n")
}

func writeFeatures(b *strings.Builder, features []model.Feature) {
	if len(features) == 0 {
		return
	}
	b.WriteString("<h2>Business features</h2>\n")
	b.WriteString("<ul class=\"features\">\n")
	for _, f := range features {
		fmt.Fprintf(b, "    <li data-name=\"%s\" data-tags=\"%s\">%s</li>\n",
			html.EscapeString(f.Name),
			html.EscapeString(tagNames(f.Tags)),
			html.EscapeString(f.String()),
		)
	}
	b.WriteString("</ul>\n")
}

func tagNames(tags []model.Tag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return strings.Join(names, " ")
}
