package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/bizbook/internal/model"
)

// Sheet is the content read from an HTML contact sheet.
type Sheet struct {
	Persons  []model.Person
	Folders  []model.SavedFolder
	Features []model.Feature
	// Invalid counts person rows and feature entries that failed validation.
	Invalid int
}

// Summary reports what a merge changed.
type Summary struct {
	Added    int
	Skipped  int
	Invalid  int
	Folders  int
	Features int
}

// ParseHTMLContacts parses an HTML contact sheet as written by the exporter.
// Person rows are table rows whose cells carry name, phone, email and
// address classes; tags come from the row's data-tags attribute. Rows that
// fail validation are counted and dropped.
func ParseHTMLContacts(r io.Reader) (Sheet, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Sheet{}, err
	}

	var sheet Sheet
	var list string // class of the enclosing ul

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "tr":
				cells := rowCells(n)
				if len(cells) == 0 {
					return // header row
				}
				p, err := toPerson(cells, getAttr(n, "data-tags"))
				if err != nil {
					sheet.Invalid++
					return
				}
				sheet.Persons = append(sheet.Persons, p)
				return

			case "ul":
				outer := list
				list = getAttr(n, "class")
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}
				list = outer
				return

			case "li":
				switch list {
				case "folders":
					sheet.Folders = append(sheet.Folders, model.SavedFolder{
						DisplayName: getTextContent(n),
						QueryTags:   strings.Fields(getAttr(n, "data-tags")),
					})
				case "features":
					f, err := toFeature(getAttr(n, "data-name"), getAttr(n, "data-tags"))
					if err != nil {
						sheet.Invalid++
						return
					}
					sheet.Features = append(sheet.Features, f)
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return sheet, nil
}

// Merge adds the sheet's content to book. Persons that duplicate an existing
// or earlier imported person are skipped, as are folders and features that
// are already declared.
func Merge(book *model.AddressBook, sheet Sheet) Summary {
	added, skipped := book.ImportMerge(sheet.Persons)
	return Summary{
		Added:    added,
		Skipped:  skipped,
		Invalid:  sheet.Invalid,
		Folders:  book.MergeFolders(sheet.Folders),
		Features: book.MergeFeatures(sheet.Features),
	}
}

// rowCells returns the text of each td in the row keyed by its class.
func rowCells(tr *html.Node) map[string]string {
	cells := make(map[string]string)
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || strings.ToLower(c.Data) != "td" {
			continue
		}
		if class := getAttr(c, "class"); class != "" {
			cells[class] = getTextContent(c)
		}
	}
	return cells
}

func toPerson(cells map[string]string, tags string) (model.Person, error) {
	name, err := model.ParseName(cells["name"])
	if err != nil {
		return model.Person{}, err
	}
	phone, err := model.ParsePhone(cells["phone"])
	if err != nil {
		return model.Person{}, err
	}
	email, err := model.ParseEmail(cells["email"])
	if err != nil {
		return model.Person{}, err
	}
	address, err := model.ParseAddress(cells["address"])
	if err != nil {
		return model.Person{}, err
	}
	parsed, err := model.ParseTags(strings.Fields(tags))
	if err != nil {
		return model.Person{}, err
	}
	return model.NewPerson(model.NewPersonParams{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    parsed,
	}), nil
}

func toFeature(name, tags string) (model.Feature, error) {
	name, err := model.ParseFeatureName(name)
	if err != nil {
		return model.Feature{}, err
	}
	parsed, err := model.ParseTags(strings.Fields(tags))
	if err != nil {
		return model.Feature{}, err
	}
	return model.NewFeature(name, parsed), nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
