package password

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	MinLength = 8
	MaxLength = 128

	// maxAttempts bounds the redraw loop in Generate. Only a pool stripped
	// of a whole class could realistically exhaust it.
	maxAttempts = 100
)

var (
	ErrLengthTooShort           = errors.New("password length must be at least 8")
	ErrLengthTooLong            = errors.New("password length must be at most 128")
	ErrNoClassesEnabled         = errors.New("at least one character class must be selected")
	ErrNegativeCount            = errors.New("password count must not be negative")
	ErrRequirementUnsatisfiable = errors.New("could not satisfy all character class requirements")
)

// Options configures the password generator.
type Options struct {
	Length         int
	Lowercase      bool
	Uppercase      bool
	Digits         bool
	Symbols        bool
	ExcludeSimilar bool
}

// DefaultOptions returns sensible defaults: 16 characters with all classes
// enabled and similar-looking characters excluded.
func DefaultOptions() Options {
	return Options{
		Length:         16,
		Lowercase:      true,
		Uppercase:      true,
		Digits:         true,
		Symbols:        true,
		ExcludeSimilar: true,
	}
}

// enabled returns the enabled character classes in pool order.
func (o Options) enabled() []CharacterClass {
	var classes []CharacterClass
	if o.Lowercase {
		classes = append(classes, Lowercase)
	}
	if o.Uppercase {
		classes = append(classes, Uppercase)
	}
	if o.Digits {
		classes = append(classes, Digit)
	}
	if o.Symbols {
		classes = append(classes, Symbol)
	}
	return classes
}

// IsInvalidParameter reports whether err is one of the input validation
// errors, so callers can map it to a recoverable bad-request outcome.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrLengthTooShort) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrNoClassesEnabled) ||
		errors.Is(err, ErrNegativeCount)
}

// Generate creates a cryptographically secure random password based on the
// given options. The result has exactly opts.Length characters and contains
// at least one character from every enabled class.
func Generate(opts Options) (string, error) {
	if err := validate(opts); err != nil {
		return "", err
	}

	classes := opts.enabled()

	// Concatenate the per-class character sets in fixed class order.
	var pool string
	for _, class := range classes {
		pool += class.poolChars(opts.ExcludeSimilar)
	}
	if pool == "" {
		// Unreachable with the fixed class table, which never filters a
		// class down to nothing.
		return "", ErrRequirementUnsatisfiable
	}

	// Rejection-sample: redraw the whole password until every enabled class
	// appears, rather than patching characters into fixed positions.
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate, err := draw(pool, opts.Length)
		if err != nil {
			return "", err
		}
		if containsAllClasses(candidate, classes) {
			return candidate, nil
		}
	}

	return "", ErrRequirementUnsatisfiable
}

// GenerateBatch creates count passwords with the same options. Every
// password comes from its own independent draws.
func GenerateBatch(count int, opts Options) ([]string, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	if err := validate(opts); err != nil {
		return nil, err
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := Generate(opts)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

// validate checks the request bounds before any randomness is consumed.
func validate(opts Options) error {
	if opts.Length < MinLength {
		return ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return ErrLengthTooLong
	}
	if len(opts.enabled()) == 0 {
		return ErrNoClassesEnabled
	}
	return nil
}

// draw samples length characters independently and uniformly from pool.
func draw(pool string, length int) (string, error) {
	result := make([]byte, length)
	for i := range result {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	return string(result), nil
}

// containsAllClasses reports whether candidate holds at least one character
// from each class. Membership is checked against the full canonical
// alphabet even when the pool was filtered.
func containsAllClasses(candidate string, classes []CharacterClass) bool {
	for _, class := range classes {
		if !strings.ContainsAny(candidate, class.Alphabet()) {
			return false
		}
	}
	return true
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
