package lookup

import "strings"

// -----------------------------------------------------------------------------
// NAICS reference data. Sector (2-digit) titles plus the six-digit codes that
// dominate federal awards. Read-only after init.
// -----------------------------------------------------------------------------

var naicsTitles = map[string]string{
	"11": "Agriculture, Forestry, Fishing and Hunting",
	"21": "Mining, Quarrying, and Oil and Gas Extraction",
	"22": "Utilities",
	"23": "Construction",
	"31": "Manufacturing",
	"32": "Manufacturing",
	"33": "Manufacturing",
	"42": "Wholesale Trade",
	"44": "Retail Trade",
	"45": "Retail Trade",
	"48": "Transportation and Warehousing",
	"49": "Transportation and Warehousing",
	"51": "Information",
	"52": "Finance and Insurance",
	"53": "Real Estate and Rental and Leasing",
	"54": "Professional, Scientific, and Technical Services",
	"55": "Management of Companies and Enterprises",
	"56": "Administrative and Support and Waste Management and Remediation Services",
	"61": "Educational Services",
	"62": "Health Care and Social Assistance",
	"71": "Arts, Entertainment, and Recreation",
	"72": "Accommodation and Food Services",
	"81": "Other Services (except Public Administration)",
	"92": "Public Administration",

	"236220": "Commercial and Institutional Building Construction",
	"336411": "Aircraft Manufacturing",
	"541330": "Engineering Services",
	"541511": "Custom Computer Programming Services",
	"541512": "Computer Systems Design Services",
	"541519": "Other Computer Related Services",
	"561210": "Facilities Support Services",
	"561612": "Security Guards and Patrol Services",
	"621111": "Offices of Physicians (except Mental Health Specialists)",
}

// -----------------------------------------------------------------------------

// NaicsTitle resolves a NAICS code to its title. Exact match first, then the
// longest known prefix (hierarchical codes), or "" when nothing matches.
func NaicsTitle(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	if title, ok := naicsTitles[code]; ok {
		return title
	}
	for end := len(code) - 1; end >= 2; end-- {
		if title, ok := naicsTitles[code[:end]]; ok {
			return title
		}
	}
	return ""
}
