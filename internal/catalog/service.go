package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Service answers lookups over the static instrument table. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	instruments []Instrument
}

func NewService() *Service {
	return &Service{instruments: instruments}
}

// List returns every instrument in the table.
func (s *Service) List() []Instrument {
	out := make([]Instrument, len(s.instruments))
	copy(out, s.instruments)
	return out
}

// FindByTicker looks up an instrument by its ticker, case-insensitively.
func (s *Service) FindByTicker(ticker string) (Instrument, bool) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	for _, inst := range s.instruments {
		if strings.ToUpper(inst.Ticker) == ticker {
			return inst, true
		}
	}
	return Instrument{}, false
}

// FilterByType returns every instrument of the given type. Matching ignores
// case and accents, so "acao" matches "AÇÃO".
func (s *Service) FilterByType(typ string) []Instrument {
	want := s.normalize(typ)
	var out []Instrument
	for _, inst := range s.instruments {
		if s.normalize(inst.Type) == want {
			out = append(out, inst)
		}
	}
	return out
}

// FilterByCountry returns every instrument listed in the given country code,
// case-insensitively.
func (s *Service) FilterByCountry(country string) []Instrument {
	want := strings.ToUpper(strings.TrimSpace(country))
	var out []Instrument
	for _, inst := range s.instruments {
		if strings.ToUpper(inst.Country) == want {
			out = append(out, inst)
		}
	}
	return out
}

// SuggestType guesses the instrument type for a free-text name or ticker.
// It tries an exact ticker match, then an accent-insensitive substring match
// against instrument names, then falls back to keyword classification. The
// boolean reports whether a suggestion was found.
func (s *Service) SuggestType(query string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}
	if inst, ok := s.FindByTicker(query); ok {
		return inst.Type, true
	}
	needle := s.normalize(query)
	for _, inst := range s.instruments {
		if strings.Contains(s.normalize(inst.Name), needle) {
			return inst.Type, true
		}
	}
	return classifyByKeyword(needle)
}

var b3CodePattern = regexp.MustCompile(`\b[a-z]{4}\d{1,2}\b`)

// typeKeywords maps normalized name fragments to a suggested type. Order
// matters: "tesouro selic" has to win over the bare "tesouro" row.
var typeKeywords = []struct {
	fragment string
	label    string
}{
	{"cdb", "CDB"},
	{"lci", "LCI"},
	{"lca", "LCA"},
	{"tesouro selic", "Tesouro Selic"},
	{"tesouro ipca", "Tesouro IPCA+"},
	{"tesouro prefixado", "Tesouro Prefixado"},
	{"tesouro", "Tesouro Direto"},
	{"conta remunerada", "Conta Remunerada"},
	{"fundo multimercado", "Fundo Multimercado"},
	{"fundo renda fixa", "Fundo Renda Fixa"},
	{"fundo imobiliario", TypeFII},
	{"fundo", "Fundo DI"},
	{"bitcoin", TypeCrypto},
	{"btc", TypeCrypto},
	{"ethereum", TypeCrypto},
	{"eth", TypeCrypto},
	{"cripto", TypeCrypto},
	{"debenture", "Debêntures"},
	{"coe", "COE"},
	{"poupanca", "Poupança"},
	{"previdencia", "Previdência Privada"},
}

// classifyByKeyword guesses a type from name fragments when the catalog has
// no match. B3-style codes ending in 11 are real estate funds; other codes
// are stocks. The input must already be normalized.
func classifyByKeyword(name string) (string, bool) {
	if code := b3CodePattern.FindString(name); code != "" {
		if strings.HasSuffix(code, "11") || strings.Contains(name, "fii") {
			return TypeFII, true
		}
		return TypeStock, true
	}
	for _, row := range typeKeywords {
		if strings.Contains(name, row.fragment) {
			return row.label, true
		}
	}
	return "", false
}

// normalize lowercases and strips combining marks so that accented and
// unaccented spellings compare equal. Transformers are stateful, so a fresh
// chain is built per call.
func (s *Service) normalize(v string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, v)
	if err != nil {
		folded = v
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
