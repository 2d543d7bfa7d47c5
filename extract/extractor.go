// Copyright 2025 Don Estate
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package extract

import (
	"math"
	"strconv"
	"strings"

	"github.com/donestate/estated/core"
)

// RubPerUSD is the fixed conversion divisor applied to RUB-tagged prices.
// Live exchange lookups are out of scope.
const RubPerUSD = 90.0

// Extractor recognizes structured listing fields in free-form text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses text into structured listing fields. It never fails: a
// field with no recognizable pattern carries its unknown value.
func (e *Extractor) Extract(text string) core.ExtractedFields {
	return core.ExtractedFields{
		Transaction: firstMatch(text, transactionRules, core.TransactionUnknown),
		Kind:        firstMatch(text, propertyKindRules, core.PropertyKindUnknown),
		Rooms:       extractRooms(text),
		AreaSqm:     extractArea(text),
		Floor:       extractFloor(text),
		PriceUSD:    extractPrice(text),
		Address:     extractAddress(text),
		Description: strings.TrimSpace(text),
	}
}

// extractRooms resolves the room count. Textual numerals take precedence
// over digit patterns; digit values outside [0, MaxRooms] are discarded as
// noise, not clamped.
func extractRooms(text string) int {
	if rooms := firstMatch(text, roomNumeralRules, core.RoomsUnknown); rooms != core.RoomsUnknown {
		return rooms
	}

	for _, pattern := range roomDigitPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		rooms, err := strconv.Atoi(match[1])
		if err != nil || rooms < 0 || rooms > core.MaxRooms {
			continue
		}
		return rooms
	}
	return core.RoomsUnknown
}

// extractArea resolves the area in square meters. A comma decimal separator
// is normalized to a dot before parsing.
func extractArea(text string) float64 {
	match := areaPattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	area, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64)
	if err != nil || area <= 0 {
		return 0
	}
	return area
}

// extractFloor resolves a "floor/total" descriptor adjacent to a floor keyword.
func extractFloor(text string) string {
	match := floorPattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return match[1]
}

// extractPrice resolves the price in USD. USD-tagged amounts are checked
// before RUB-tagged ones; RUB amounts are converted with the fixed divisor.
// A "by agreement" listing yields an unknown price (0) regardless of any
// numbers in the text.
func extractPrice(text string) float64 {
	if negotiablePattern.MatchString(text) {
		return 0
	}

	if match := priceUSDPattern.FindStringSubmatch(text); match != nil {
		if price := parseAmount(match[1]); price > 0 {
			return price
		}
	}

	if match := priceRUBPattern.FindStringSubmatch(text); match != nil {
		if rub := parseAmount(match[1]); rub > 0 {
			// Round to cents after the fixed-rate conversion
			return math.Round(rub/RubPerUSD*100) / 100
		}
	}

	return 0
}

// parseAmount parses a numeric token after stripping thousands separators
// (plain, non-breaking and narrow spaces, commas).
func parseAmount(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ', ',':
			return -1
		}
		return r
	}, raw)

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return amount
}

// extractAddress resolves a best-effort address fragment starting at a
// street or district keyword. Accuracy is not guaranteed.
func extractAddress(text string) string {
	match := addressPattern.FindString(text)
	if match == "" {
		return ""
	}
	// The open-ended tail swallows trailing whitespace and newlines
	return strings.TrimRight(strings.TrimSpace(match), ".,")
}
