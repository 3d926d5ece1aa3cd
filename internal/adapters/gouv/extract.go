package gouv

import (
	"regexp"
	"strings"
)

var personalDomains = map[string]bool{
	"gmail":   true,
	"outlook": true,
	"hotmail": true,
	"yahoo":   true,
	"wanadoo": true,
	"icloud":  true,
	"laposte": true,
}

var gluedSuffix = regexp.MustCompile(`(?i)(\S)(group|france|partners|holdings|corp|inc|ltd)$`)

// ExtractCompany turns a raw input into a searchable company name.
// An email address yields the first label of its domain; personal mail
// providers are reported as ignored.
func ExtractCompany(raw string) (name string, ignored bool) {
	raw = strings.TrimSpace(raw)
	company := raw

	if strings.Contains(raw, "@") && !strings.HasPrefix(strings.ToLower(raw), "http") {
		_, domainPart, _ := strings.Cut(raw, "@")
		if label, _, ok := strings.Cut(domainPart, "."); ok {
			if personalDomains[strings.ToLower(label)] {
				return raw, true
			}
			company = label
		}
	}

	company = strings.NewReplacer("-", " ", ".", " ").Replace(company)
	company = gluedSuffix.ReplaceAllString(company, "${1} ${2}")
	return strings.Join(strings.Fields(company), " "), false
}
