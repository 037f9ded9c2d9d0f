package professional

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

const (
	DefaultName     = "Nome não disponível"
	DefaultCategory = "Guincho"
	DefaultTenure   = "N/A"

	// DateLayout is the format of data_coleta.
	DateLayout = "2006-01-02"
)

// Record is one towing professional as written to the run artifact.
type Record struct {
	Name        string   `json:"nome"`
	Phone       string   `json:"telefone"`
	City        string   `json:"cidade"`
	State       string   `json:"estado"`
	Category    string   `json:"categoria"`
	Rating      *float64 `json:"avaliacao_nota"`
	Reviews     int      `json:"avaliacao_total"`
	Services    int      `json:"servicos_negociados"`
	Tenure      string   `json:"tempo_getninjas"`
	ProfileURL  string   `json:"url_perfil"`
	CollectedOn string   `json:"data_coleta"`
}

// DefaultRequiredFields are the artifact field names a record must carry.
var DefaultRequiredFields = []string{"nome", "telefone"}

const phoneField = "telefone"

var fieldNames = map[string]bool{
	"nome": true, "telefone": true, "cidade": true, "estado": true, "categoria": true,
	"avaliacao_nota": true, "avaliacao_total": true, "servicos_negociados": true,
	"tempo_getninjas": true, "url_perfil": true, "data_coleta": true,
}

// CheckFieldNames reports the first name that is not an artifact field.
func CheckFieldNames(names []string) error {
	for _, n := range names {
		if !fieldNames[n] {
			return fmt.Errorf("%w: %q", ErrUnknownField, n)
		}
	}
	return nil
}

// RequiredFields returns fields with telefone always present. An empty set
// falls back to DefaultRequiredFields.
func RequiredFields(fields []string) []string {
	if len(fields) == 0 {
		return DefaultRequiredFields
	}
	if slices.Contains(fields, phoneField) {
		return fields
	}
	out := make([]string, 0, len(fields)+1)
	out = append(out, fields...)
	return append(out, phoneField)
}

// Field returns the value of the artifact field named by its JSON key.
// Unknown names return "".
func (r Record) Field(name string) string {
	switch name {
	case "nome":
		return r.Name
	case "telefone":
		return r.Phone
	case "cidade":
		return r.City
	case "estado":
		return r.State
	case "categoria":
		return r.Category
	case "avaliacao_nota":
		if r.Rating == nil {
			return ""
		}
		return strconv.FormatFloat(*r.Rating, 'f', -1, 64)
	case "avaliacao_total":
		return strconv.Itoa(r.Reviews)
	case "servicos_negociados":
		return strconv.Itoa(r.Services)
	case "tempo_getninjas":
		return r.Tenure
	case "url_perfil":
		return r.ProfileURL
	case "data_coleta":
		return r.CollectedOn
	default:
		return ""
	}
}

// CheckRequired returns a *ValidationError naming the first empty required field.
func CheckRequired(r Record, required []string) error {
	for _, f := range required {
		if strings.TrimSpace(r.Field(f)) == "" {
			return &ValidationError{Field: f, Name: r.Name}
		}
	}
	return nil
}

// NormalizePhone keeps the digits of s and drops a leading 55 country code.
// Only 10 or 11 digit numbers are accepted, anything else returns "".
func NormalizePhone(s string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, s)

	if (len(digits) == 12 || len(digits) == 13) && strings.HasPrefix(digits, "55") {
		digits = digits[2:]
	}
	if len(digits) != 10 && len(digits) != 11 {
		return ""
	}
	return digits
}
