package scanner

// micMarkets maps ISO 10383 MIC codes to scanner market identifiers
var micMarkets = map[string]string{
	"XNYS": "america",
	"XNAS": "america",
	"XASE": "america",
	"ARCX": "america",
	"BATS": "america",
	"IEXG": "america",
	"XLON": "uk",
	"XETR": "germany",
	"XFRA": "germany",
	"XPAR": "france",
	"XAMS": "netherlands",
	"XBRU": "belgium",
	"XLIS": "portugal",
	"XMIL": "italy",
	"XMAD": "spain",
	"XSWX": "switzerland",
	"XSTO": "sweden",
	"XCSE": "denmark",
	"XOSL": "norway",
	"XHEL": "finland",
	"XWBO": "austria",
	"XTKS": "japan",
	"XHKG": "hongkong",
	"XSHG": "china",
	"XSHE": "china",
	"XKRX": "korea",
	"XTAI": "taiwan",
	"XASX": "australia",
	"XNZE": "newzealand",
	"XSES": "singapore",
	"XBOM": "india",
	"XNSE": "india",
	"XTSE": "canada",
	"BVMF": "brazil",
	"XMEX": "mexico",
	"XJSE": "rsa",
}

// marketsForMICs maps MIC codes to a deduplicated market list,
// preserving first-seen order. Unknown MICs are skipped; an empty
// result means the scan runs unrestricted.
func marketsForMICs(mics []string) []string {
	var markets []string
	seen := make(map[string]bool)
	for _, mic := range mics {
		market, ok := micMarkets[mic]
		if !ok || seen[market] {
			continue
		}
		seen[market] = true
		markets = append(markets, market)
	}
	return markets
}
