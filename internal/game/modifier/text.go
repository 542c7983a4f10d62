package modifier

import (
	"regexp"
	"strconv"
	"strings"
)

// Operator is the arithmetic a parsed text modifier applies.
type Operator string

const (
	OperatorAdd      Operator = "add"
	OperatorSubtract Operator = "subtract"
)

// TextModifier is a stat adjustment extracted from free text.
type TextModifier struct {
	// Stat is the lower-cased stat name; "hit points" is normalized to "hp".
	Stat     string
	Operator Operator
	// Value is the magnitude; the sign is carried by Operator.
	Value int
}

const statNames = `Agility|Strength|Finesse|Instinct|Presence|Knowledge|Evasion|Armor|Hit\s+Points|Stress|Hope|Proficiency`

var (
	valueFirst  = regexp.MustCompile(`(?i)([+-]?\d+)\s+(?:bonus\s+)?(?:to\s+)?(` + statNames + `)\b`)
	statFirst   = regexp.MustCompile(`(?i)\b(` + statNames + `)\s*:?\s*([+-]\d+)`)
	segmentSep  = regexp.MustCompile(`[;\n]`)
	innerSpaces = regexp.MustCompile(`\s+`)
)

// ParseText extracts at most one stat modifier from each ";" or newline separated segment of
// text. Segments that name no known stat, or have no number, are skipped.
//
// Postcondition: every result has Value >= 0.
func ParseText(text string) []TextModifier {
	var out []TextModifier
	for _, seg := range segmentSep.Split(text, -1) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		var rawValue, rawStat string
		if m := valueFirst.FindStringSubmatch(seg); m != nil {
			rawValue, rawStat = m[1], m[2]
		} else if m := statFirst.FindStringSubmatch(seg); m != nil {
			rawStat, rawValue = m[1], m[2]
		} else {
			continue
		}
		n, err := strconv.Atoi(rawValue)
		if err != nil {
			continue
		}
		op := OperatorAdd
		if n < 0 {
			op = OperatorSubtract
			n = -n
		}
		out = append(out, TextModifier{Stat: normalizeStat(rawStat), Operator: op, Value: n})
	}
	return out
}

func normalizeStat(s string) string {
	s = strings.ToLower(innerSpaces.ReplaceAllString(s, " "))
	if s == "hit points" {
		return "hp"
	}
	return s
}
