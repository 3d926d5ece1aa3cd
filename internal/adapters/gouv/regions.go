package gouv

import "enrichio/internal/domain"

var deptToRegion = map[string]string{
	"01": "Auvergne-Rhône-Alpes", "03": "Auvergne-Rhône-Alpes", "07": "Auvergne-Rhône-Alpes",
	"15": "Auvergne-Rhône-Alpes", "26": "Auvergne-Rhône-Alpes", "38": "Auvergne-Rhône-Alpes",
	"42": "Auvergne-Rhône-Alpes", "43": "Auvergne-Rhône-Alpes", "63": "Auvergne-Rhône-Alpes",
	"69": "Auvergne-Rhône-Alpes", "73": "Auvergne-Rhône-Alpes", "74": "Auvergne-Rhône-Alpes",

	"02": "Hauts-de-France", "59": "Hauts-de-France", "60": "Hauts-de-France",
	"62": "Hauts-de-France", "80": "Hauts-de-France",

	"04": "Provence-Alpes-Côte d'Azur", "05": "Provence-Alpes-Côte d'Azur", "06": "Provence-Alpes-Côte d'Azur",
	"13": "Provence-Alpes-Côte d'Azur", "83": "Provence-Alpes-Côte d'Azur", "84": "Provence-Alpes-Côte d'Azur",

	"08": "Grand Est", "10": "Grand Est", "51": "Grand Est", "52": "Grand Est", "54": "Grand Est",
	"55": "Grand Est", "57": "Grand Est", "67": "Grand Est", "68": "Grand Est", "88": "Grand Est",

	"09": "Occitanie", "11": "Occitanie", "12": "Occitanie", "30": "Occitanie", "31": "Occitanie",
	"32": "Occitanie", "34": "Occitanie", "46": "Occitanie", "48": "Occitanie", "65": "Occitanie",
	"66": "Occitanie", "81": "Occitanie", "82": "Occitanie",

	"14": "Normandie", "27": "Normandie", "50": "Normandie", "61": "Normandie", "76": "Normandie",

	"16": "Nouvelle-Aquitaine", "17": "Nouvelle-Aquitaine", "19": "Nouvelle-Aquitaine",
	"23": "Nouvelle-Aquitaine", "24": "Nouvelle-Aquitaine", "33": "Nouvelle-Aquitaine",
	"40": "Nouvelle-Aquitaine", "47": "Nouvelle-Aquitaine", "64": "Nouvelle-Aquitaine",
	"79": "Nouvelle-Aquitaine", "86": "Nouvelle-Aquitaine", "87": "Nouvelle-Aquitaine",

	"18": "Centre-Val de Loire", "28": "Centre-Val de Loire", "36": "Centre-Val de Loire",
	"37": "Centre-Val de Loire", "41": "Centre-Val de Loire", "45": "Centre-Val de Loire",

	"21": "Bourgogne-Franche-Comté", "25": "Bourgogne-Franche-Comté", "39": "Bourgogne-Franche-Comté",
	"58": "Bourgogne-Franche-Comté", "70": "Bourgogne-Franche-Comté", "71": "Bourgogne-Franche-Comté",
	"89": "Bourgogne-Franche-Comté", "90": "Bourgogne-Franche-Comté",

	"22": "Bretagne", "29": "Bretagne", "35": "Bretagne", "56": "Bretagne",

	"2A": "Corse", "2B": "Corse",

	"44": "Pays de la Loire", "49": "Pays de la Loire", "53": "Pays de la Loire",
	"72": "Pays de la Loire", "85": "Pays de la Loire",

	"75": "Île-de-France", "77": "Île-de-France", "78": "Île-de-France", "91": "Île-de-France",
	"92": "Île-de-France", "93": "Île-de-France", "94": "Île-de-France", "95": "Île-de-France",

	"971": "Guadeloupe",
	"972": "Martinique",
	"973": "Guyane",
	"974": "La Réunion",
	"976": "Mayotte",
}

// RegionFromPostalCode maps a postal code to its region through the
// department number. Overseas departments use three digits.
func RegionFromPostalCode(zip string) string {
	if len(zip) < 2 {
		return "Autre"
	}
	dept := zip[:2]
	if (dept == "97" || dept == "98") && len(zip) >= 3 {
		dept = zip[:3]
	}
	if region, ok := deptToRegion[dept]; ok {
		return region
	}
	return "France (" + dept + ")"
}

var headcountBands = map[string]string{
	"NN": domain.NotProvided,
	"00": "0 salarié",
	"01": "1 ou 2 salariés",
	"02": "3 à 5 salariés",
	"03": "6 à 9 salariés",
	"11": "10 à 19 salariés",
	"12": "20 à 49 salariés",
	"21": "50 à 99 salariés",
	"22": "100 à 199 salariés",
	"31": "200 à 249 salariés",
	"32": "250 à 499 salariés",
	"41": "500 à 999 salariés",
	"42": "1 000 à 1 999 salariés",
	"51": "2 000 à 4 999 salariés",
	"52": "5 000 à 9 999 salariés",
	"53": "10 000 salariés et plus",
}

// HeadcountLabel translates a staff-size band code. Unknown codes are not provided.
func HeadcountLabel(band string) string {
	if label, ok := headcountBands[band]; ok {
		return label
	}
	return domain.NotProvided
}
