package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/seb0305/aenigma-verborum/internal/models"
)

var errNoOverview = errors.New("no Kurzübersicht table")

var overviewColumns = map[string]string{
	"Latein":      "latin",
	"Typ":         "type",
	"Flexionsart": "flexion_type",
	"Form":        "form",
	"Deutsch":     "german",
}

// FragCaesarAPI scrapes the overview table of the frag-caesar.de dictionary.
type FragCaesarAPI struct {
	baseURL string
	client  *http.Client
}

func NewFragCaesarAPI(baseURL string, client *http.Client) *FragCaesarAPI {
	return &FragCaesarAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Overview returns the rows of the headword's Kurzübersicht table.
func (f *FragCaesarAPI) Overview(ctx context.Context, headword string) ([]models.LookupEntry, error) {
	endpoint := fmt.Sprintf("%s/lateinwoerterbuch/%s-uebersetzung.html", f.baseURL, url.PathEscape(headword))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	return parseOverview(doc, headword)
}

func parseOverview(doc *goquery.Document, headword string) ([]models.LookupEntry, error) {
	table := overviewTable(doc)
	if table == nil {
		return nil, errNoOverview
	}

	rows := table.Find("tr")
	if rows.Length() < 2 {
		return nil, errNoOverview
	}

	var header []string
	rows.First().Find("th, td").Each(func(_ int, s *goquery.Selection) {
		header = append(header, strings.TrimSpace(s.Text()))
	})

	var entries []models.LookupEntry
	rows.Slice(1, rows.Length()).Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() != len(header) {
			return
		}

		fields := make(map[string]string, len(header))
		cells.Each(func(i int, td *goquery.Selection) {
			key, ok := overviewColumns[header[i]]
			if !ok {
				key = header[i]
			}
			fields[key] = cellText(td)
		})

		entries = append(entries, models.LookupEntry{
			Latin:       headword,
			Type:        fields["type"],
			FlexionType: fields["flexion_type"],
			Form:        fields["form"],
			German:      fields["german"],
		})
	})

	if len(entries) == 0 {
		return nil, errNoOverview
	}
	return entries, nil
}

// overviewTable finds the first table following the "Kurz..." heading.
func overviewTable(doc *goquery.Document) *goquery.Selection {
	var (
		table   *goquery.Selection
		heading bool
	)
	doc.Find("h2, table").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) == "h2" {
			if !heading && strings.Contains(s.Text(), "Kurz") {
				heading = true
			}
			return true
		}
		if heading {
			table = s
			return false
		}
		return true
	})
	return table
}

// cellText joins the trimmed text fragments of a cell, so <br> becomes a space.
func cellText(s *goquery.Selection) string {
	var parts []string
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) == "#text" {
				if t := strings.TrimSpace(c.Text()); t != "" {
					parts = append(parts, t)
				}
				return
			}
			walk(c)
		})
	}
	walk(s)
	return strings.Join(parts, " ")
}

func (f *FragCaesarAPI) first(ctx context.Context, op, headword string) (models.LookupEntry, error) {
	entries, err := f.Overview(ctx, headword)
	if err != nil {
		return models.LookupEntry{}, &models.LookupError{Op: op, Headword: headword, Err: err}
	}
	return entries[0], nil
}

// Classify maps the first overview row onto a category and inflection class.
func (f *FragCaesarAPI) Classify(ctx context.Context, headword string) (models.Classification, error) {
	entry, err := f.first(ctx, "classify", headword)
	if err != nil {
		return models.Classification{}, err
	}

	class := models.Classification{Category: models.ParseCategory(entry.Type)}
	if class.Category.Inflected() {
		class.Inflection = entry.FlexionType
	}
	return class, nil
}

// AlternateMeanings returns the whole German cell of the first row plus its
// comma or semicolon separated parts.
func (f *FragCaesarAPI) AlternateMeanings(ctx context.Context, headword string) ([]string, error) {
	entry, err := f.first(ctx, "meanings", headword)
	if err != nil {
		return nil, err
	}
	return splitMeanings(entry.German), nil
}

func splitMeanings(german string) []string {
	german = strings.TrimSpace(german)
	if german == "" {
		return nil
	}

	meanings := []string{german}
	parts := strings.FieldsFunc(german, func(r rune) bool { return r == ',' || r == ';' })
	if len(parts) < 2 {
		return meanings
	}
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			meanings = append(meanings, p)
		}
	}
	return meanings
}
