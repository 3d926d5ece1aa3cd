package gouv

import (
	"strings"

	"enrichio/internal/domain"
)

// KnownCompany is a well-known group whose sector is fixed regardless of
// what the directory reports
type KnownCompany struct {
	Name      string
	Sector    string
	Address   string
	Region    string
	Headcount string
	Siren     string
}

const (
	tech     = "Tech / Software"
	telecom  = "Communication / Media & Entertainment / Telecom"
	luxury   = "Luxury"
	industry = "Manufacturing / Industry"
	retail   = "Retail"
	food     = "Food / Beverages"
	advisory = "Consulting / IT Services"

	world = "Monde"
	idf   = "Île-de-France"
	big   = "10 000+ salariés"
)

var knownCompanies = map[string]KnownCompany{
	"APPLE":     {"APPLE INC.", tech, "Cupertino, CA (USA)", world, big, ""},
	"TESLA":     {"TESLA INC.", industry, "Austin, TX (USA)", world, big, ""},
	"GOOGLE":    {"ALPHABET INC.", tech, "Mountain View, CA (USA)", world, big, ""},
	"MICROSOFT": {"MICROSOFT CORP", tech, "Redmond, WA (USA)", world, big, ""},
	"AMAZON":    {"AMAZON.COM INC", tech, "Seattle, WA (USA)", world, big, ""},
	"META":      {"META PLATFORMS", tech, "Menlo Park, CA (USA)", world, big, ""},
	"FACEBOOK":  {"META PLATFORMS", tech, "Menlo Park, CA (USA)", world, big, ""},

	"LVMH":                {"LVMH MOET HENNESSY", luxury, "Paris (France)", idf, big, ""},
	"CHRISTIAN DIOR":      {"CHRISTIAN DIOR SE", luxury, "Paris (France)", idf, big, ""},
	"LOUIS VUITTON":       {"LOUIS VUITTON MALLETIER", luxury, "Paris (France)", idf, big, ""},
	"CHRISTIAN LOUBOUTIN": {"CHRISTIAN LOUBOUTIN", luxury, "Paris (France)", idf, "1 000+ salariés", ""},
	"CHANEL":              {"CHANEL SAS", luxury, "Neuilly-sur-Seine (France)", idf, big, ""},
	"HERMES":              {"HERMES INTERNATIONAL", luxury, "Paris (France)", idf, big, ""},
	"GUCCI":               {"GUCCI", luxury, "Florence (Italy)", world, big, ""},
	"PRADA":               {"PRADA SPA", luxury, "Milan (Italy)", world, big, ""},
	"LONGCHAMP":           {"LONGCHAMP SAS", luxury, "Paris (France)", idf, "1 000+ salariés", ""},

	"ORANGE":           {"ORANGE SA", telecom, "Issy-les-Moulineaux (France)", idf, big, ""},
	"SFR":              {"SFR", telecom, "Paris (France)", idf, big, ""},
	"FREE":             {"ILIAD (FREE)", telecom, "Paris (France)", idf, big, ""},
	"ILIAD":            {"ILIAD (FREE)", telecom, "Paris (France)", idf, big, ""},
	"BOUYGUES":         {"BOUYGUES SA", "Construction", "Paris (France)", idf, big, ""},
	"BOUYGUES TELECOM": {"BOUYGUES TELECOM", telecom, "Paris (France)", idf, big, ""},
	"NETFLIX":          {"NETFLIX INC.", telecom, "Los Gatos, CA (USA)", world, big, ""},
	"DISNEY":           {"THE WALT DISNEY COMPANY", telecom, "Burbank, CA (USA)", world, big, ""},
	"NINTENDO":         {"NINTENDO CO., LTD", telecom, "Kyoto (Japan)", world, "5 000+ salariés", ""},
	"TDF":              {"TDF", telecom, "Montrouge (France)", idf, "1 000+ salariés", ""},

	"CAPGEMINI": {"CAPGEMINI SE", advisory, "Paris (France)", idf, big, ""},
	"KPMG":      {"KPMG S.A", advisory, "Paris La Défense (France)", idf, big, ""},
	"DELOITTE":  {"DELOITTE SAS", advisory, "Paris La Défense (France)", idf, big, ""},
	"EY":        {"ERNST & YOUNG", advisory, "Paris La Défense (France)", idf, big, ""},
	"PWC":       {"PWC FRANCE", advisory, "Neuilly-sur-Seine (France)", idf, big, ""},
	"ACCENTURE": {"ACCENTURE", advisory, "Paris (France)", idf, big, ""},

	"SPOTIFY":    {"SPOTIFY TECHNOLOGY", tech, "Stockholm (Sweden)", world, "5 000+ salariés", ""},
	"UBER":       {"UBER TECHNOLOGIES", tech, "San Francisco, CA (USA)", world, big, ""},
	"AIRBNB":     {"AIRBNB INC.", tech, "San Francisco, CA (USA)", world, "5 000+ salariés", ""},
	"AIR BNB":    {"AIRBNB INC.", tech, "San Francisco, CA (USA)", world, "5 000+ salariés", ""},
	"NVIDIA":     {"NVIDIA CORP", tech, "Santa Clara, CA (USA)", world, big, ""},
	"SAMSUNG":    {"SAMSUNG ELECTRONICS", tech, "Suwon (South Korea)", world, big, ""},
	"XIAOMI":     {"XIAOMI CORP", tech, "Beijing (China)", world, big, ""},
	"OPPO":       {"OPPO ELECTRONICS", tech, "Dongguan (China)", world, big, ""},
	"HUAWEI":     {"HUAWEI TECHNOLOGIES", tech, "Shenzhen (China)", world, big, ""},
	"ONEPLUS":    {"ONEPLUS TECHNOLOGY", tech, "Shenzhen (China)", world, "5 000+ salariés", ""},
	"ADOBE":      {"ADOBE INC.", tech, "San Jose, CA (USA)", world, big, ""},
	"SALESFORCE": {"SALESFORCE", tech, "San Francisco, CA (USA)", world, big, ""},
	"ZOOM":       {"ZOOM VIDEO COMMUNICATIONS", tech, "San Jose, CA (USA)", world, "5 000+ salariés", ""},
	"SLACK":      {"SALESFORCE (SLACK)", tech, "San Francisco, CA (USA)", world, "1 000+ salariés", ""},
	"VISIATIV":   {"VISIATIV", tech, "Charbonnières-les-Bains (France)", "Auvergne-Rhône-Alpes", "1 000+ salariés", ""},

	"BMW":                  {"BMW AG", industry, "Munich (Germany)", world, big, ""},
	"MERCEDES":             {"MERCEDES-BENZ GROUP", industry, "Stuttgart (Germany)", world, big, ""},
	"TOYOTA":               {"TOYOTA MOTOR CORP", industry, "Toyota City (Japan)", world, big, ""},
	"VOLKSWAGEN":           {"VOLKSWAGEN AG", industry, "Wolfsburg (Germany)", world, big, ""},
	"PHILIPS":              {"KONINKLIJKE PHILIPS", industry, "Amsterdam (Netherlands)", world, big, ""},
	"SAFRAN":               {"SAFRAN SA", industry, "Paris (France)", idf, big, ""},
	"SAFRAN AERO BOOSTERS": {"SAFRAN AERO BOOSTERS", industry, "Herstal (Belgium)", world, "1 000+ salariés", ""},
	"SYMBIO":               {"SYMBIO", industry, "Vénissieux (France)", "Auvergne-Rhône-Alpes", "500+ salariés", ""},

	"COCA COLA":     {"THE COCA-COLA COMPANY", food, "Atlanta, GA (USA)", world, big, ""},
	"DANONE":        {"DANONE", food, "Paris (France)", idf, big, "552032534"},
	"PEPSI":         {"PEPSICO INC.", food, "Harrison, NY (USA)", world, big, ""},
	"PERNOD RICARD": {"PERNOD RICARD", food, "Paris (France)", idf, big, ""},

	"NIKE":               {"NIKE INC.", retail, "Beaverton, OR (USA)", world, big, ""},
	"GALERIES LAFAYETTE": {"GALERIES LAFAYETTE", retail, "Paris (France)", idf, big, ""},
	"PRINTEMPS":          {"PRINTEMPS", retail, "Paris (France)", idf, big, ""},
	"CARREFOUR":          {"CARREFOUR SA", retail, "Massy (France)", idf, big, ""},
	"AUCHAN":             {"AUCHAN RETAIL", retail, "Croix (France)", "Hauts-de-France", big, ""},
	"LECLERC":            {"E.LECLERC", retail, "Ivry-sur-Seine (France)", idf, big, ""},
	"INTERMARCHE":        {"ITM ENTREPRISES", retail, "Paris (France)", idf, big, ""},
	"LIDL":               {"LIDL STIFTUNG", retail, "Neckarsulm (Germany)", world, big, ""},
	"ALDI":               {"ALDI EINKAUF", retail, "Essen (Germany)", world, big, ""},
	"NETTO":              {"NETTO MARKEN-DISCOUNT", retail, "Germany", world, "5 000+ salariés", ""},
	"ACTION":             {"ACTION B.V.", retail, "Zwaagdijk (Netherlands)", world, big, ""},
	"DECATHLON":          {"DECATHLON SE", retail, "Villeneuve-d'Ascq (France)", "Hauts-de-France", big, ""},
	"MONOPRIX":           {"MONOPRIX", retail, "Clichy (France)", idf, big, ""},

	"SERFI GROUP":         {"SERFI INTERNATIONAL", retail, "Nice (France)", "Provence-Alpes-Côte d'Azur", "20-49 salariés", ""},
	"SERFI INTERNATIONAL": {"SERFI INTERNATIONAL", retail, "Nice (France)", "Provence-Alpes-Côte d'Azur", "20-49 salariés", ""},

	"PFIZER":          {"PFIZER INC.", "Pharmaceutics", "New York, NY (USA)", world, big, ""},
	"LA POSTE":        {"LA POSTE", "Transportation, Logistics & Storage", "Issy-les-Moulineaux (France)", idf, big, ""},
	"GROUPE LA POSTE": {"LA POSTE", "Transportation, Logistics & Storage", "Issy-les-Moulineaux (France)", idf, big, ""},
	"APRIL":           {"APRIL", "Insurance / Mutual Health Insurance", "Lyon (France)", "Auvergne-Rhône-Alpes", "1 000+ salariés", ""},
	"AMOOBI":          {"AMOOBI", tech, "N/A (International)", world, "10-50 salariés", ""},
}

// foldedKnown indexes the table by folded key, so "Société" matches "SOCIETE"
var foldedKnown = func() map[string]string {
	m := make(map[string]string, len(knownCompanies))
	for key := range knownCompanies {
		m[knownKey(key)] = key
	}
	return m
}()

// compactKnown maps "COCACOLA" to "COCA COLA"
var compactKnown = func() map[string]string {
	m := make(map[string]string, len(knownCompanies))
	for key := range knownCompanies {
		m[compactKey(knownKey(key))] = key
	}
	return m
}()

// knownKey upper-cases name after stripping accents and extra spaces
func knownKey(name string) string {
	return strings.ToUpper(domain.FoldText(name))
}

func compactKey(s string) string {
	return strings.NewReplacer(" ", "", ".", "", "-", "").Replace(s)
}

// LookupKnown finds name in the well-known table, first as written
// (folded and upper-cased) then with spaces, dots and dashes removed
func LookupKnown(name string) (KnownCompany, bool) {
	folded := knownKey(name)
	if key, ok := foldedKnown[folded]; ok {
		return knownCompanies[key], true
	}
	if key, ok := compactKnown[compactKey(folded)]; ok {
		return knownCompanies[key], true
	}
	return KnownCompany{}, false
}

// Link returns the directory page of the company, or a search link when
// its SIREN is unknown
func (k KnownCompany) Link() string {
	if k.Siren != "" {
		return EntrepriseURL(k.Siren)
	}
	return SearchURL(k.Name)
}
