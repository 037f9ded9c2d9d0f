package scraper

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/JulianoL13/guincho-scraper/internal/professional"
)

const (
	CategoryTow      = "Guincho e Reboque"
	CategoryAllHours = "Guincho 24h"
)

var (
	phonePattern   = regexp.MustCompile(`(?:\+?55[\s-]?)?\(?\d{2}\)?[\s-]?\d{4,5}[\s.-]?\d{4}`)
	allHours       = regexp.MustCompile(`(?i)\b24\s*(?:h|hs|hrs|horas)?\b`)
	decimalPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	countPattern   = regexp.MustCompile(`\d{1,3}(?:\.\d{3})+|\d+`)
)

// NameOf prefers the heading and falls back to the first line of the item text.
func NameOf(c Candidate) string {
	if c.Heading != "" {
		return c.Heading
	}
	for _, line := range strings.Split(c.Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// PhoneOf looks at contact attributes first, then at the item text.
func PhoneOf(c Candidate) string {
	for _, contact := range c.Contacts {
		contact = strings.TrimPrefix(strings.TrimSpace(contact), "tel:")
		if p := phoneIn(contact); p != "" {
			return p
		}
		if p := professional.NormalizePhone(contact); p != "" {
			return p
		}
	}
	return phoneIn(c.Text)
}

func phoneIn(s string) string {
	for _, m := range phonePattern.FindAllString(s, -1) {
		if p := professional.NormalizePhone(m); p != "" {
			return p
		}
	}
	return ""
}

// CategoryOf uses the category element when present, otherwise classifies by keyword.
func CategoryOf(c Candidate) string {
	if c.Category != "" {
		return c.Category
	}

	text := strings.ToLower(c.Heading + "\n" + c.Text)
	if strings.Contains(text, "reboque") {
		return CategoryTow
	}
	// phone digits would otherwise read as "24" hits
	if allHours.MatchString(phonePattern.ReplaceAllString(text, " ")) {
		return CategoryAllHours
	}
	return professional.DefaultCategory
}

// RatingOf parses "4,7" or "4.7". Values outside [0, 5] are dropped.
func RatingOf(c Candidate) *float64 {
	m := decimalPattern.FindString(c.Rating)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	if err != nil || v < 0 || v > 5 {
		return nil
	}
	return &v
}

func ReviewsOf(c Candidate) int {
	return countOf(c.Reviews)
}

func ServicesOf(c Candidate) int {
	return countOf(c.Services)
}

// countOf reads "1.234" as 1234.
func countOf(s string) int {
	m := countPattern.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ".", ""))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func TenureOf(c Candidate) string {
	if c.Tenure == "" {
		return professional.DefaultTenure
	}
	return c.Tenure
}

// ProfileURLOf resolves the candidate link against the page it came from.
func ProfileURLOf(c Candidate, pageURL string) string {
	if c.Link == "" {
		return pageURL
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return c.Link
	}
	ref, err := url.Parse(c.Link)
	if err != nil {
		return pageURL
	}
	return base.ResolveReference(ref).String()
}
