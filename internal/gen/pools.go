package gen

import "strconv"

// Finite word pools for index-derived fields. Lookups cycle through the pools
// with modular arithmetic, so combined pools yield |a|*|b|*|c| distinct values
// before repeating and an index is always valid.

var companyPrefixes = []string{
	"Tata", "Reliance", "Infosys", "Bharti", "HDFC", "Wipro", "Mahindra", "Birla",
	"Adani", "JSW", "Godrej", "L&T", "ICICI", "SBI", "TCS", "Bajaj", "HCL",
	"Hindustan", "Indian", "Tech",
}

var companyMids = []string{
	"Tech", "Info", "Auto", "Fin", "Power", "Steel", "Textiles", "Pharma",
	"Healthcare", "Retail", "Media", "Telecom", "Software", "Hardware", "Food",
	"Agro", "Resources", "Chemicals", "Logistics", "Infrastructure",
}

var companySuffixes = []string{
	"Limited", "Enterprises", "Solutions", "Corporation", "Industries",
	"Technologies", "Group", "Services", "Pvt Ltd", "Global", "Systems",
	"Ventures", "Partners", "Associates", "Consultancy", "Networks", "Retail",
	"Motors", "Financials", "Energy",
}

var firstNames = []string{
	"Raj", "Amit", "Vijay", "Sunil", "Anil", "Rahul", "Sanjay", "Rakesh",
	"Rajesh", "Ashok", "Priya", "Neha", "Pooja", "Rani", "Sunita", "Anita",
	"Meena", "Kavita", "Shalini", "Geeta",
}

var lastNames = []string{
	"Sharma", "Patel", "Singh", "Kumar", "Verma", "Gupta", "Mishra", "Joshi",
	"Shah", "Agarwal", "Mehta", "Reddy", "Chopra", "Malhotra", "Nair", "Rao",
	"Iyer", "Banerjee", "Chatterjee", "Kapoor",
}

var cities = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata", "Pune",
	"Ahmedabad", "Jaipur", "Lucknow", "Chandigarh", "Indore", "Kochi", "Nagpur",
	"Bhopal", "Surat", "Vadodara", "Coimbatore", "Visakhapatnam", "Guwahati",
}

// states is indexed in lockstep with cities: city i sits in state i.
var states = []string{
	"Maharashtra", "Delhi", "Karnataka", "Telangana", "Tamil Nadu", "West Bengal",
	"Maharashtra", "Gujarat", "Rajasthan", "Uttar Pradesh", "Punjab",
	"Madhya Pradesh", "Kerala", "Maharashtra", "Madhya Pradesh", "Gujarat",
	"Gujarat", "Tamil Nadu", "Andhra Pradesh", "Assam",
}

var streets = []string{
	"MG Road", "Gandhi Nagar", "Nehru Place", "Connaught Place", "Brigade Road",
	"Park Street", "Commercial Street", "Linking Road", "Jubilee Hills",
	"Civil Lines", "Sector 17", "Main Road", "Church Street", "Marine Drive",
	"Race Course Road", "Paldi", "Ring Road", "Tech Park", "Anna Salai", "GS Road",
}

var industrySectors = []string{
	"Manufacturing", "IT Services", "Banking & Finance", "Pharmaceuticals",
	"Retail", "Real Estate", "Telecommunications", "Healthcare", "Automotive",
	"Energy", "Hospitality", "Education", "Media & Entertainment", "FMCG",
	"Agriculture", "Construction",
}

// gstStateCodes maps Indian state names to their GST state code prefix.
var gstStateCodes = map[string]string{
	"Maharashtra":    "27",
	"Delhi":          "07",
	"Karnataka":      "29",
	"Telangana":      "36",
	"Tamil Nadu":     "33",
	"West Bengal":    "19",
	"Gujarat":        "24",
	"Rajasthan":      "08",
	"Uttar Pradesh":  "09",
	"Punjab":         "03",
	"Madhya Pradesh": "23",
	"Kerala":         "32",
	"Andhra Pradesh": "37",
	"Assam":          "18",
}

// gstFallbackStateCode is used for states with no registered GST code.
const gstFallbackStateCode = "99"

// CompanyName derives the Nth company name from the prefix/mid/suffix pools.
func CompanyName(index int) string {
	prefix := companyPrefixes[index%len(companyPrefixes)]
	mid := companyMids[(index/len(companyPrefixes))%len(companyMids)]
	suffix := companySuffixes[(index/(len(companyPrefixes)*len(companyMids)))%len(companySuffixes)]
	return prefix + " " + mid + " " + suffix
}

// PersonName derives the Nth person name from the first/last name pools.
func PersonName(index int) string {
	first := firstNames[index%len(firstNames)]
	last := lastNames[(index/len(firstNames))%len(lastNames)]
	return first + " " + last
}

// IndustrySector derives the Nth industry sector.
func IndustrySector(index int) string {
	return industrySectors[index%len(industrySectors)]
}

// address holds the index-derived location of a customer. Street number and
// PIN code are random; everything else cycles with the index.
type address struct {
	Street  string
	City    string
	State   string
	PINCode string
}

func newAddress(index int, src *Source) address {
	cityIndex := index % len(cities)
	streetIndex := (index / len(cities)) % len(streets)
	return address{
		Street:  strconv.Itoa(src.IntBetween(1, 100)) + ", " + streets[streetIndex],
		City:    cities[cityIndex],
		State:   states[cityIndex],
		PINCode: strconv.Itoa(400000 + src.IntN(100000)),
	}
}

// gstNumber builds a GST identification number for a state. Unknown states
// degrade to the "99" sentinel code rather than failing.
func gstNumber(state string, index int) string {
	code, ok := gstStateCodes[state]
	if !ok {
		code = gstFallbackStateCode
	}
	pan := "ABCDE" + FormatID("", index%1000, 3)
	return code + pan + "1" + "Z" + "Z"
}
