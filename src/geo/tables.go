package geo

import "contract-observer/src/models"

// -----------------------------------------------------------------------------
// Bundled coordinate tables. This is deliberately a coarse approximation, not
// a geocoder: roughly twenty major-city points, with state centroids as the
// fallback for everything else. Read-only after init.
// -----------------------------------------------------------------------------

var cityCoordinates = map[string]models.MGeoPoint{
	"NEW YORK,NY":     {Latitude: 40.7128, Longitude: -74.0060},
	"LOS ANGELES,CA":  {Latitude: 34.0522, Longitude: -118.2437},
	"CHICAGO,IL":      {Latitude: 41.8781, Longitude: -87.6298},
	"HOUSTON,TX":      {Latitude: 29.7604, Longitude: -95.3698},
	"PHOENIX,AZ":      {Latitude: 33.4484, Longitude: -112.0740},
	"PHILADELPHIA,PA": {Latitude: 39.9526, Longitude: -75.1652},
	"SAN ANTONIO,TX":  {Latitude: 29.4241, Longitude: -98.4936},
	"SAN DIEGO,CA":    {Latitude: 32.7157, Longitude: -117.1611},
	"DALLAS,TX":       {Latitude: 32.7767, Longitude: -96.7970},
	"SAN JOSE,CA":     {Latitude: 37.3382, Longitude: -121.8863},
	"WASHINGTON,DC":   {Latitude: 38.9072, Longitude: -77.0369},
	"BOSTON,MA":       {Latitude: 42.3601, Longitude: -71.0589},
	"SEATTLE,WA":      {Latitude: 47.6062, Longitude: -122.3321},
	"DENVER,CO":       {Latitude: 39.7392, Longitude: -104.9903},
	"MIAMI,FL":        {Latitude: 25.7617, Longitude: -80.1918},
	"ATLANTA,GA":      {Latitude: 33.7490, Longitude: -84.3880},
	"AUSTIN,TX":       {Latitude: 30.2672, Longitude: -97.7431},
	"DETROIT,MI":      {Latitude: 42.3314, Longitude: -83.0458},
	"MINNEAPOLIS,MN":  {Latitude: 44.9778, Longitude: -93.2650},
	"PORTLAND,OR":     {Latitude: 45.5152, Longitude: -122.6784},
}

var stateCoordinates = map[string]models.MGeoPoint{
	"AL": {Latitude: 32.3182, Longitude: -86.9023},
	"AK": {Latitude: 64.0685, Longitude: -152.2782},
	"AZ": {Latitude: 34.0489, Longitude: -111.0937},
	"AR": {Latitude: 34.7465, Longitude: -92.2896},
	"CA": {Latitude: 36.7783, Longitude: -119.4179},
	"CO": {Latitude: 39.5501, Longitude: -105.7821},
	"CT": {Latitude: 41.6032, Longitude: -73.0877},
	"DE": {Latitude: 38.9108, Longitude: -75.5277},
	"DC": {Latitude: 38.9072, Longitude: -77.0369},
	"FL": {Latitude: 27.6648, Longitude: -81.5158},
	"GA": {Latitude: 32.1656, Longitude: -82.9001},
	"HI": {Latitude: 19.8968, Longitude: -155.5828},
	"ID": {Latitude: 44.0682, Longitude: -114.7420},
	"IL": {Latitude: 40.6331, Longitude: -89.3985},
	"IN": {Latitude: 40.2672, Longitude: -86.1349},
	"IA": {Latitude: 41.8780, Longitude: -93.0977},
	"KS": {Latitude: 39.0119, Longitude: -98.4842},
	"KY": {Latitude: 37.8393, Longitude: -84.2700},
	"LA": {Latitude: 30.9843, Longitude: -91.9623},
	"ME": {Latitude: 45.2538, Longitude: -69.4455},
	"MD": {Latitude: 39.0458, Longitude: -76.6413},
	"MA": {Latitude: 42.4072, Longitude: -71.3824},
	"MI": {Latitude: 44.3148, Longitude: -85.6024},
	"MN": {Latitude: 46.7296, Longitude: -94.6859},
	"MS": {Latitude: 32.3547, Longitude: -89.3985},
	"MO": {Latitude: 37.9643, Longitude: -91.8318},
	"MT": {Latitude: 46.8797, Longitude: -110.3626},
	"NE": {Latitude: 41.4925, Longitude: -99.9018},
	"NV": {Latitude: 38.8026, Longitude: -116.4194},
	"NH": {Latitude: 43.1939, Longitude: -71.5724},
	"NJ": {Latitude: 40.0583, Longitude: -74.4057},
	"NM": {Latitude: 34.5199, Longitude: -105.8701},
	"NY": {Latitude: 40.7128, Longitude: -74.0060},
	"NC": {Latitude: 35.7596, Longitude: -79.0193},
	"ND": {Latitude: 47.5515, Longitude: -101.0020},
	"OH": {Latitude: 40.4173, Longitude: -82.9071},
	"OK": {Latitude: 35.0078, Longitude: -97.0929},
	"OR": {Latitude: 43.8041, Longitude: -120.5542},
	"PA": {Latitude: 41.2033, Longitude: -77.1945},
	"PR": {Latitude: 18.2208, Longitude: -66.5901},
	"RI": {Latitude: 41.5801, Longitude: -71.4774},
	"SC": {Latitude: 33.8361, Longitude: -81.1637},
	"SD": {Latitude: 43.9695, Longitude: -99.9018},
	"TN": {Latitude: 35.5175, Longitude: -86.5804},
	"TX": {Latitude: 31.9686, Longitude: -99.9018},
	"UT": {Latitude: 39.3210, Longitude: -111.0937},
	"VT": {Latitude: 44.5588, Longitude: -72.5778},
	"VA": {Latitude: 37.4316, Longitude: -78.6569},
	"WA": {Latitude: 47.7511, Longitude: -120.7401},
	"WV": {Latitude: 38.5976, Longitude: -80.4549},
	"WI": {Latitude: 43.7844, Longitude: -88.7879},
	"WY": {Latitude: 43.0760, Longitude: -107.2903},
}
