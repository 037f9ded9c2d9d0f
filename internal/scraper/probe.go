package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Probe is one selector configuration for a result list. Item selects the candidates;
// the other selectors are looked up inside each item.
type Probe struct {
	Name     string   `yaml:"name"`
	Item     string   `yaml:"item"`
	Heading  string   `yaml:"heading"`
	Phone    []string `yaml:"phone"`
	Category string   `yaml:"category"`
	Rating   string   `yaml:"rating"`
	Reviews  string   `yaml:"reviews"`
	Link     string   `yaml:"link"`
	Services string   `yaml:"services"`
	Tenure   string   `yaml:"tenure"`
}

// Candidate is the raw material of a record, before any field strategy runs.
type Candidate struct {
	Text     string
	Heading  string
	Contacts []string
	Category string
	Rating   string
	Reviews  string
	Link     string
	Services string
	Tenure   string
}

var contactAttrs = []string{"href", "aria-label", "data-tooltip", "data-item-id", "data-phone-number"}

// FirstMatch runs probes in order and returns the candidates of the first one
// that matches anything. Results of different probes are never merged.
func FirstMatch(doc *goquery.Document, probes []Probe) (Probe, []Candidate) {
	for _, p := range probes {
		items := doc.Find(p.Item)
		if items.Length() == 0 {
			continue
		}

		candidates := make([]Candidate, 0, items.Length())
		items.Each(func(_ int, item *goquery.Selection) {
			candidates = append(candidates, p.candidate(item))
		})
		return p, candidates
	}
	return Probe{}, nil
}

func (p Probe) candidate(item *goquery.Selection) Candidate {
	c := Candidate{
		Text:     strings.Join(textLines(item), "\n"),
		Heading:  p.text(item, p.Heading),
		Category: p.text(item, p.Category),
		Rating:   p.text(item, p.Rating),
		Reviews:  p.text(item, p.Reviews),
		Services: p.text(item, p.Services),
		Tenure:   p.text(item, p.Tenure),
	}

	if p.Link != "" {
		if href, ok := item.Find(p.Link).First().Attr("href"); ok {
			c.Link = strings.TrimSpace(href)
		}
	}

	for _, sel := range p.Phone {
		item.Find(sel).Each(func(_ int, el *goquery.Selection) {
			for _, attr := range contactAttrs {
				if v, ok := el.Attr(attr); ok && strings.TrimSpace(v) != "" {
					c.Contacts = append(c.Contacts, v)
				}
			}
			if t := strings.TrimSpace(el.Text()); t != "" {
				c.Contacts = append(c.Contacts, t)
			}
		})
	}
	return c
}

// text returns the first match's text, or its aria-label for icon-only elements.
func (p Probe) text(item *goquery.Selection, sel string) string {
	if sel == "" {
		return ""
	}
	el := item.Find(sel).First()
	if t := strings.TrimSpace(el.Text()); t != "" {
		return t
	}
	return strings.TrimSpace(el.AttrOr("aria-label", ""))
}

func textLines(s *goquery.Selection) []string {
	var out []string
	s.Contents().Each(func(_ int, n *goquery.Selection) {
		switch goquery.NodeName(n) {
		case "#text":
			if t := strings.TrimSpace(n.Text()); t != "" {
				out = append(out, t)
			}
		case "script", "style", "#comment":
		default:
			out = append(out, textLines(n)...)
		}
	})
	return out
}
