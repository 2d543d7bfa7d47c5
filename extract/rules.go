package extract

import (
	"regexp"

	"github.com/donestate/estated/core"
)

// enumRule pairs a field value with the pattern that recognizes it.
// Rules are evaluated in order; the first match wins.
type enumRule[T any] struct {
	label   T
	pattern *regexp.Regexp
}

// firstMatch returns the label of the first rule matching text, or none.
func firstMatch[T any](text string, rules []enumRule[T], none T) T {
	for _, rule := range rules {
		if rule.pattern.MatchString(text) {
			return rule.label
		}
	}
	return none
}

// transactionRules recognize the deal kind. Sell tokens are checked before
// rent tokens.
var transactionRules = []enumRule[core.TransactionType]{
	{core.TransactionSell, regexp.MustCompile(`(?i)(продам|продаю|продается|продаётся|продажа|sell|for sale)`)},
	{core.TransactionRent, regexp.MustCompile(`(?i)(сдам|сдаю|сдается|сдаётся|аренда|снять|rent)`)},
}

// propertyKindRules recognize the real-estate category.
var propertyKindRules = []enumRule[core.PropertyKind]{
	{core.PropertyKindApartment, regexp.MustCompile(`(?i)(квартир|кв\.|apartment)`)},
	{core.PropertyKindHouse, regexp.MustCompile(`(?i)(дом|коттедж|house)`)},
	{core.PropertyKindCommercial, regexp.MustCompile(`(?i)(коммерч|офис|магазин|торгов|commercial)`)},
}

// roomNumeralRules map textual room numerals to counts. They are checked
// before the digit patterns so that a "студия" listing is not mis-parsed by
// a stray digit elsewhere in the text.
var roomNumeralRules = []enumRule[int]{
	{0, regexp.MustCompile(`(?i)(студия|студию|studio)`)},
	{1, regexp.MustCompile(`(?i)(однокомнатн|одна комната|one[-\s]?room)`)},
	{2, regexp.MustCompile(`(?i)(двухкомнатн|двушк|two[-\s]?room)`)},
	{3, regexp.MustCompile(`(?i)(трехкомнатн|трёхкомнатн|трешк|трёшк|three[-\s]?room)`)},
	{4, regexp.MustCompile(`(?i)(четырехкомнатн|четырёхкомнатн|four[-\s]?room)`)},
	{5, regexp.MustCompile(`(?i)(пятикомнатн|five[-\s]?room)`)},
}

// roomDigitPatterns recognize a digit followed by a room-unit token.
var roomDigitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)[-\s]?комн`),
	regexp.MustCompile(`(?i)(\d+)[-\s]?к\.`),
	regexp.MustCompile(`(?i)(\d+)[-\s]?bedroom`),
}

var (
	areaPattern = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s*(?:м²|м2|кв\.\s?м|sq\.?\s?m)`)

	floorPattern = regexp.MustCompile(`(?i)(?:этаж|эт\.?)\s*:?\s*(\d+/\d+)`)

	priceUSDPattern = regexp.MustCompile(`(?i)(\d[\d\s\x{00A0}\x{202F},]*)\s*(?:\$|USD)`)
	priceRUBPattern = regexp.MustCompile(`(?i)(\d[\d\s\x{00A0}\x{202F},]*)\s*(?:₽|RUB|руб)`)

	// negotiablePattern marks listings priced "by agreement"; such texts
	// yield an unknown price (0) even when a stray number is present.
	negotiablePattern = regexp.MustCompile(`(?i)(договорн|по договоренности|по договорённости|negotiable)`)

	// The tail stops at a line break to keep the fragment to one line.
	addressPattern = regexp.MustCompile(`(?i)(ул\.|улица|район|р-н|пр-т|проспект)[ \t]*([\p{L}\d .,/-]+)`)
)
