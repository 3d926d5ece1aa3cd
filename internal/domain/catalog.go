package domain

import (
	"slices"
	"strings"
)

// SectorDefinition describes a built-in sector and the signals that map to it
type SectorDefinition struct {
	Label       string
	NAFPrefixes []string
	Keywords    []string
}

// NAFBlacklist holds holding-company activity codes that say nothing about the sector
var NAFBlacklist = []string{"7010Z", "6420Z"}

var builtinSectors = []SectorDefinition{
	{
		Label:       "Agriculture / Livestock / Seafood",
		NAFPrefixes: []string{"01", "02", "03"},
		Keywords:    []string{"agriculture", "élevage", "pêche", "agricole", "ferme", "bio", "tracteur", "champs", "vigne", "viticulture", "horticulture", "maraichage", "bétail", "aquaculture", "farming", "livestock", "seafood", "crops"},
	},
	{
		Label:       "Banking",
		NAFPrefixes: []string{"641"},
		Keywords:    []string{"banque", "crédit", "bancaire", "compte", "livret", "bank", "banking", "loan", "credit", "bnp", "société générale", "crédit agricole", "bpce"},
	},
	{
		Label:       "Chemicals",
		NAFPrefixes: []string{"20"},
		Keywords:    []string{"chimie", "molécules", "réactif", "polymère", "plastique", "chimique", "petrochemical", "chemicals", "chemistry", "solvay", "arkema", "air liquide"},
	},
	{
		Label:       "Communication / Media & Entertainment / Telecom",
		NAFPrefixes: []string{"59", "60", "61", "63"},
		Keywords:    []string{"télécom", "média", "publicité", "fibre", "internet", "presse", "journal", "tv", "radio", "marketing", "agence", "communication", "entertainment", "telecom", "broadcasting", "advertising", "media", "publicis", "havas"},
	},
	{
		Label:       "Construction",
		NAFPrefixes: []string{"41", "42", "43"},
		Keywords:    []string{"btp", "construction", "bâtiment", "génie civil", "infrastructure", "travaux", "architecture", "maçonnerie", "plomberie", "architect", "builder", "contractor", "renovation", "vinci", "eiffage"},
	},
	{
		Label:       "Consulting / IT Services",
		NAFPrefixes: []string{"62", "631", "582", "702", "692", "7112", "712", "732", "74"},
		Keywords:    []string{"conseil", "consulting", "esn", "stratégie", "audit", "expertise", "ingénierie", "management", "digital", "transformation", "it services", "data", "advisory", "capgemini", "deloitte", "kpmg", "pwc", "mckinsey", "accenture", "sopra", "wavestone"},
	},
	{
		Label:       "CPG (Consumer Packaged Goods)",
		NAFPrefixes: []string{"204"},
		Keywords:    []string{"fmcg", "biens de consommation", "hygiène", "produits ménagers", "cosmétique", "beauté", "parfum", "cpg", "consumer goods", "l'oréal", "procter", "unilever", "henkel"},
	},
	{
		Label:       "Education",
		NAFPrefixes: []string{"85"},
		Keywords:    []string{"éducation", "formation", "école", "université", "training", "learning", "elearning", "edtech", "campus", "school", "university", "academy", "college"},
	},
	{
		Label:       "Energy / Utilities",
		NAFPrefixes: []string{"35", "36", "37", "38", "39"},
		Keywords:    []string{"énergie", "électricité", "gaz", "eau", "déchets", "environnement", "recyclage", "solaire", "éolien", "nucléaire", "oil", "petrol", "renewables", "hydrogen", "edf", "engie", "veolia", "suez"},
	},
	{
		Label:       "Finance / Real Estate",
		NAFPrefixes: []string{"64", "66", "68"},
		Keywords:    []string{"finance", "immobilier", "investissement", "gestion d'actifs", "courtier", "syndic", "promoteur", "real estate", "realty", "property", "immo", "wealth", "fintech", "payment", "trading", "private equity", "fund", "foncia", "nexity"},
	},
	{
		Label:       "Food / Beverages",
		NAFPrefixes: []string{"10", "11"},
		Keywords:    []string{"agroalimentaire", "aliments", "boissons", "food", "beverage", "vin", "spiritueux", "bière", "champagne", "nutrition", "snack", "dairy", "laitier", "viande", "boulangerie", "traiteur"},
	},
	{
		Label:       "Healthcare / Medical Services",
		NAFPrefixes: []string{"86", "87", "88"},
		Keywords:    []string{"santé", "clinique", "hôpital", "soins", "médecin", "ehpad", "médical", "healthcare", "medical", "hospital", "clinic", "care", "diagnostic", "radiologie", "dentaire"},
	},
	{
		Label:       "Hotels / Restaurants",
		NAFPrefixes: []string{"55", "56"},
		Keywords:    []string{"hôtel", "restaurant", "tourisme", "hébergement", "camping", "voyage", "brasserie", "hotel", "hospitality", "tourism", "catering", "accor", "sodexo", "elior"},
	},
	{
		Label:       "Insurance / Mutual Health Insurance",
		NAFPrefixes: []string{"65"},
		Keywords:    []string{"assurance", "assurances", "mutuelle", "courtage", "assureur", "prévoyance", "insurance", "underwriting", "axa", "allianz", "generali", "maif", "macif", "groupama", "malakoff"},
	},
	{
		Label:       "Luxury",
		NAFPrefixes: []string{"141", "142", "151", "152"},
		Keywords:    []string{"luxe", "prestige", "haute couture", "joaillerie", "maroquinerie", "luxury", "fashion", "jewelry", "premium", "mode", "apparel", "lvmh", "kering", "hermès", "chanel", "dior", "vuitton"},
	},
	{
		Label:       "Manufacturing / Industry",
		NAFPrefixes: []string{"13", "14", "15", "16", "17", "22", "23", "24", "25", "26", "27", "28", "29", "30", "31", "32", "33"},
		Keywords:    []string{"industrie", "usine", "fabrication", "mécanique", "métallurgie", "plasturgie", "assemblage", "machine", "industriel", "manufacturing", "industry", "factory", "metal", "machinery", "automotive", "aéronautique", "aerospace", "textile", "packaging", "michelin"},
	},
	{
		Label:       "Not For Profit",
		NAFPrefixes: []string{"94", "91"},
		Keywords:    []string{"association", "fondation", "ong", "non-profit", "charity", "bénévole", "humanitaire", "syndicat"},
	},
	{
		Label:       "Pharmaceutics",
		NAFPrefixes: []string{"21"},
		Keywords:    []string{"pharmacie", "médicament", "biotech", "vaccin", "thérapie", "pharmaceutical", "pharma", "drug", "biotechnology", "lifescience", "sanofi", "servier", "pfizer"},
	},
	{
		Label:       "Public administration & government",
		NAFPrefixes: []string{"84"},
		Keywords:    []string{"mairie", "préfecture", "ministère", "collectivité", "government", "administration", "urssaf", "france travail", "ambassade", "consulat"},
	},
	{
		Label:       "Retail",
		NAFPrefixes: []string{"45", "46", "47"},
		Keywords:    []string{"commerce", "magasin", "boutique", "supermarché", "distribution", "retail", "store", "shop", "e-commerce", "marketplace", "grossiste", "outlet", "franchise", "carrefour", "auchan", "leclerc", "decathlon", "fnac"},
	},
	{
		Label:       "Tech / Software",
		NAFPrefixes: []string{"582", "6201", "6312", "262"},
		Keywords:    []string{"logiciel", "saas", "tech", "software", "cloud", "développement", "web", "app", "cybersecurity", "platform", "technology", "developer", "electronics", "computer", "start-up"},
	},
	{
		Label:       "Transportation, Logistics & Storage",
		NAFPrefixes: []string{"49", "50", "51", "52", "53"},
		Keywords:    []string{"transport", "transports", "logistique", "fret", "livraison", "messagerie", "entrepôt", "supply chain", "shipping", "transit", "airline", "aérien", "rail", "ferroviaire", "maritime", "sncf", "maersk", "dhl", "fedex"},
	},
}

// BuiltinSectors returns the built-in sector catalogue
func BuiltinSectors() []SectorDefinition {
	out := make([]SectorDefinition, len(builtinSectors))
	copy(out, builtinSectors)
	return out
}

// BuiltinLabels returns the labels of the built-in catalogue
func BuiltinLabels() []string {
	labels := make([]string, len(builtinSectors))
	for i, s := range builtinSectors {
		labels[i] = s.Label
	}
	return labels
}

// SectorFromNAF returns the sector whose NAF prefix is the longest match for
// code, or "" when nothing matches or the code is blacklisted.
func SectorFromNAF(code string) string {
	code = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(code), ".", ""))
	if code == "" {
		return ""
	}
	for _, b := range NAFBlacklist {
		if code == b {
			return ""
		}
	}

	best, bestLen := "", 0
	for _, s := range builtinSectors {
		for _, prefix := range s.NAFPrefixes {
			if strings.HasPrefix(code, prefix) && len(prefix) > bestLen {
				best, bestLen = s.Label, len(prefix)
			}
		}
	}
	return best
}

// SectorFromKeywords scores text against every sector's keywords on word
// boundaries and returns the best sector with its score. Ties keep the
// sector listed first.
func SectorFromKeywords(text string) (string, int) {
	words := tokenize(FoldText(text))
	if len(words) == 0 {
		return "", 0
	}

	best, bestScore := "", 0
	for _, s := range builtinSectors {
		score := 0
		for _, kw := range s.Keywords {
			score += countPhrase(words, tokenize(FoldText(kw)))
		}
		if score > bestScore {
			best, bestScore = s.Label, score
		}
	}
	return best, bestScore
}

func countPhrase(words, phrase []string) int {
	if len(phrase) == 0 {
		return 0
	}
	n := 0
	for i := 0; i+len(phrase) <= len(words); i++ {
		if slices.Equal(words[i:i+len(phrase)], phrase) {
			n++
		}
	}
	return n
}

// tokenize splits on anything that is not a letter, digit or apostrophe
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !(r == '\'' || r == '-' || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') || r > 127)
	})
}
