// Package airports holds the static airport lookup tables used to turn raw
// route codes into display names and map coordinates.
package airports

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// airportNames maps IATA codes to city names for route display.
var airportNames = map[string]string{
	"ADL": "Adelaide",
	"AKL": "Auckland",
	"BKI": "Kota Kinabalu",
	"BKK": "Bangkok",
	"BOM": "Mumbai",
	"CAN": "Guangzhou",
	"CGK": "Jakarta",
	"CMB": "Colombo",
	"CNS": "Cairns",
	"COK": "Kochi",
	"CTU": "Chengdu",
	"DAC": "Dhaka",
	"DEL": "Delhi",
	"DMK": "Bangkok Don Mueang",
	"DPS": "Denpasar",
	"HKG": "Hong Kong",
	"HND": "Tokyo Haneda",
	"ICN": "Seoul",
	"KCH": "Kuching",
	"KTM": "Kathmandu",
	"KUL": "Kuala Lumpur",
	"MAA": "Chennai",
	"MEL": "Melbourne",
	"MNL": "Manila",
	"NRT": "Tokyo Narita",
	"OOL": "Gold Coast",
	"PEK": "Beijing",
	"PEN": "Penang",
	"PER": "Perth",
	"PNH": "Phnom Penh",
	"RGN": "Yangon",
	"SGN": "Ho Chi Minh City",
	"SIN": "Singapore",
	"SYD": "Sydney",
	"TPE": "Taipei",
	"TRZ": "Tiruchirappalli",
}

// airportCoords maps IATA codes to coordinates for the route map.
var airportCoords = map[string]Coordinate{
	"ADL": {Lat: -34.945, Lon: 138.531},
	"AKL": {Lat: -37.008, Lon: 174.792},
	"BKI": {Lat: 5.937, Lon: 116.051},
	"BKK": {Lat: 13.690, Lon: 100.750},
	"BOM": {Lat: 19.089, Lon: 72.866},
	"CAN": {Lat: 23.392, Lon: 113.299},
	"CGK": {Lat: -6.126, Lon: 106.656},
	"CMB": {Lat: 7.181, Lon: 79.884},
	"CNS": {Lat: -16.886, Lon: 145.755},
	"COK": {Lat: 10.152, Lon: 76.402},
	"CTU": {Lat: 30.578, Lon: 103.947},
	"DAC": {Lat: 23.843, Lon: 90.398},
	"DEL": {Lat: 28.557, Lon: 77.100},
	"DMK": {Lat: 13.913, Lon: 100.607},
	"DPS": {Lat: -8.748, Lon: 115.167},
	"HKG": {Lat: 22.308, Lon: 113.918},
	"HND": {Lat: 35.549, Lon: 139.780},
	"ICN": {Lat: 37.469, Lon: 126.451},
	"KCH": {Lat: 1.485, Lon: 110.347},
	"KTM": {Lat: 27.697, Lon: 85.359},
	"KUL": {Lat: 2.746, Lon: 101.710},
	"MAA": {Lat: 12.990, Lon: 80.169},
	"MEL": {Lat: -37.673, Lon: 144.843},
	"MNL": {Lat: 14.509, Lon: 121.020},
	"NRT": {Lat: 35.772, Lon: 140.393},
	"OOL": {Lat: -28.164, Lon: 153.505},
	"PEK": {Lat: 40.080, Lon: 116.585},
	"PEN": {Lat: 5.297, Lon: 100.277},
	"PER": {Lat: -31.940, Lon: 115.967},
	"PNH": {Lat: 11.547, Lon: 104.844},
	"RGN": {Lat: 16.907, Lon: 96.133},
	"SGN": {Lat: 10.819, Lon: 106.652},
	"SIN": {Lat: 1.364, Lon: 103.991},
	"SYD": {Lat: -33.946, Lon: 151.177},
	"TPE": {Lat: 25.080, Lon: 121.234},
	"TRZ": {Lat: 10.765, Lon: 78.710},
}

// Name returns the city name for an IATA code, and whether it is known.
func Name(code string) (string, bool) {
	name, ok := airportNames[code]
	return name, ok
}

// Coords returns the coordinates for an IATA code, and whether it is known.
func Coords(code string) (Coordinate, bool) {
	c, ok := airportCoords[code]
	return c, ok
}

// RouteDisplayName resolves a six-character route code ("AKLDEL") to a
// human-readable "Auckland → Delhi". Codes that are not six characters, or
// whose halves are not both known airports, pass through unchanged.
func RouteDisplayName(code string) string {
	if len(code) != 6 {
		return code
	}

	origin, ok := airportNames[code[:3]]
	if !ok {
		return code
	}
	dest, ok := airportNames[code[3:]]
	if !ok {
		return code
	}

	return origin + " → " + dest
}
