package numlit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Number describes a decimal numeric lexeme after validation.
type Number struct {
	Normalized  string
	IsInteger   bool
	HasExponent bool
}

// Normalize validates lit and strips digit separators. Accepted forms are
// "12", "1_000", "0.5", ".5", "2e3" and "2.5E-3".
func Normalize(lit string) (Number, error) {
	mantissa := lit
	expPart := ""
	hasExp := false
	if idx := strings.IndexAny(lit, "eE"); idx >= 0 {
		hasExp = true
		mantissa = lit[:idx]
		expPart = lit[idx+1:]
	}

	mantissaNorm, isInt, err := normalizeMantissa(mantissa)
	if err != nil {
		return Number{}, err
	}

	expNorm := ""
	if hasExp {
		sign := ""
		if expPart != "" && (expPart[0] == '+' || expPart[0] == '-') {
			sign = expPart[:1]
			expPart = expPart[1:]
		}
		if expPart == "" {
			return Number{}, fmt.Errorf("exponent requires digits")
		}
		if err := validateDigits(expPart); err != nil {
			return Number{}, fmt.Errorf("invalid number literal: %w", err)
		}
		expNorm = "e" + sign + stripUnderscores(expPart)
	}

	return Number{
		Normalized:  mantissaNorm + expNorm,
		IsInteger:   isInt && !hasExp,
		HasExponent: hasExp,
	}, nil
}

// Parse converts a numeric lexeme to its float64 value.
func Parse(lit string) (float64, error) {
	info, err := Normalize(lit)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(info.Normalized, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return 0, fmt.Errorf("number literal out of range")
		}
		return 0, fmt.Errorf("invalid number literal")
	}
	return v, nil
}

// Format renders v in its shortest round-trip form ("1", "0.5", "1e+21").
func Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func normalizeMantissa(mantissa string) (string, bool, error) {
	if mantissa == "" {
		return "", false, fmt.Errorf("number literal requires digits")
	}
	if strings.Contains(mantissa, ".") {
		parts := strings.SplitN(mantissa, ".", 2)
		if parts[1] == "" {
			return "", false, fmt.Errorf("number literal requires digits after decimal point")
		}
		intPart := "0"
		if parts[0] != "" {
			if err := validateDigits(parts[0]); err != nil {
				return "", false, fmt.Errorf("invalid number literal: %w", err)
			}
			intPart = stripUnderscores(parts[0])
		}
		if err := validateDigits(parts[1]); err != nil {
			return "", false, fmt.Errorf("invalid number literal: %w", err)
		}
		return intPart + "." + stripUnderscores(parts[1]), false, nil
	}

	if err := validateDigits(mantissa); err != nil {
		return "", false, fmt.Errorf("invalid number literal: %w", err)
	}
	return stripUnderscores(mantissa), true, nil
}

func validateDigits(s string) error {
	if s == "" {
		return fmt.Errorf("digits required")
	}
	prevUnderscore := false
	seenDigit := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '_' {
			if !seenDigit || prevUnderscore {
				return fmt.Errorf("underscores must separate digits")
			}
			prevUnderscore = true
			continue
		}
		if ch < '0' || ch > '9' {
			return fmt.Errorf("invalid digit %q", ch)
		}
		seenDigit = true
		prevUnderscore = false
	}
	if prevUnderscore {
		return fmt.Errorf("underscores must separate digits")
	}
	return nil
}

func stripUnderscores(s string) string {
	if strings.IndexByte(s, '_') == -1 {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}
