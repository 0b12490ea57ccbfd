package rates

var knownSymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"RUB": "₽",
	"TRY": "₺",
	"BRL": "R$",
	"AUD": "A$",
	"CAD": "C$",
	"NZD": "NZ$",
	"SGD": "S$",
	"HKD": "HK$",
	"CHF": "CHF",
	"ZAR": "R",
	"MXN": "MX$",
	"AED": "د.إ",
	"THB": "฿",
	"PHP": "₱",
	"NGN": "₦",
	"VND": "₫",
	"ILS": "₪",
	"PLN": "zł",
}

// SymbolFor returns the display symbol of a currency code, or the code itself
// when none is known.
func SymbolFor(code string) string {
	c := NormalizeCode(code)
	if s, ok := knownSymbols[c]; ok {
		return s
	}
	return c
}
