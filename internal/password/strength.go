package password

import (
	"strings"
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

// StrengthReport is a snapshot of a password's composition with a heuristic
// 0-100 score and a qualitative label.
type StrengthReport struct {
	Score        int     `json:"score"`
	Strength     string  `json:"strength"`
	Length       int     `json:"length"`
	EntropyBits  float64 `json:"entropy_bits"`
	HasLowercase bool    `json:"has_lowercase"`
	HasUppercase bool    `json:"has_uppercase"`
	HasDigits    bool    `json:"has_digits"`
	HasSymbols   bool    `json:"has_symbols"`
}

// EstimateStrength scores an arbitrary password. It accepts any string,
// including the empty one; the same input always yields the same report.
func EstimateStrength(pw string) StrengthReport {
	report := StrengthReport{
		Length:       utf8.RuneCountInString(pw),
		EntropyBits:  passwordvalidator.GetEntropy(pw),
		HasLowercase: strings.ContainsAny(pw, Lowercase.Alphabet()),
		HasUppercase: strings.ContainsAny(pw, Uppercase.Alphabet()),
		HasDigits:    strings.ContainsAny(pw, Digit.Alphabet()),
		HasSymbols:   strings.ContainsAny(pw, Symbol.Alphabet()),
	}

	// Up to 40 points for length, 15 per class present.
	score := min(report.Length*4, 40)
	if report.HasLowercase {
		score += 15
	}
	if report.HasUppercase {
		score += 15
	}
	if report.HasDigits {
		score += 15
	}
	if report.HasSymbols {
		score += 15
	}

	report.Score = score
	report.Strength = strengthLabel(score)

	return report
}

// strengthLabel maps a score to its qualitative label. Thresholds are
// inclusive lower bounds, checked from highest to lowest.
func strengthLabel(score int) string {
	switch {
	case score >= 80:
		return "Very Strong"
	case score >= 60:
		return "Strong"
	case score >= 40:
		return "Moderate"
	case score >= 20:
		return "Weak"
	default:
		return "Very Weak"
	}
}
