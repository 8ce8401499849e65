package employee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	PermanentCodePrefix = "EMP"
	DraftCodePrefix     = "DRAFT_"
)

// FormatPermanentCode renders n as EMP followed by at least four digits.
func FormatPermanentCode(n int64) string {
	return fmt.Sprintf("%s%04d", PermanentCodePrefix, n)
}

// ParsePermanentCode extracts the numeric suffix of an EMP code.
func ParsePermanentCode(code string) (int64, bool) {
	if !strings.HasPrefix(code, PermanentCodePrefix) {
		return 0, false
	}
	n, err := strconv.ParseInt(code[len(PermanentCodePrefix):], 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// NextPermanentCode returns the code following the highest EMP code in codes.
// Codes without the EMP prefix or a numeric suffix are ignored.
func NextPermanentCode(codes []string) string {
	var max int64
	for _, code := range codes {
		if n, ok := ParsePermanentCode(code); ok && n > max {
			max = n
		}
	}
	return FormatPermanentCode(max + 1)
}

// NewDraftCode returns a placeholder code for a draft employee.
func NewDraftCode() string {
	return DraftCodePrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func IsDraftCode(code string) bool {
	return strings.HasPrefix(code, DraftCodePrefix)
}

// SplitName splits a candidate name on whitespace: the first token is the
// first name and the remaining tokens, single-space joined, the last name.
func SplitName(fullName string) (firstName, lastName string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
