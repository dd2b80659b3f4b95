package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const maxSlugLen = 255

var slugSuffix = regexp.MustCompile(`-(\d+)$`)

// generateSlug lowercases s and collapses every run of non-alphanumerics into
// a single dash.
func generateSlug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := []rune(strings.Trim(b.String(), "-"))
	if len(out) > maxSlugLen-8 {
		out = out[:maxSlugLen-8]
	}
	return strings.Trim(string(out), "-")
}

// uniqueSlug returns base, or base-N with the smallest free N above the
// highest suffix already taken. Soft-deleted rows still hold their slug.
func uniqueSlug(tx *gorm.DB, model interface{}, base string) (string, error) {
	var taken []string
	if err := tx.Unscoped().Model(model).
		Where("slug = ? OR slug LIKE ?", base, base+"-%").
		Pluck("slug", &taken).Error; err != nil {
		return "", fmt.Errorf("lookup slugs: %w", err)
	}

	baseTaken := false
	highest := 1
	for _, slug := range taken {
		if slug == base {
			baseTaken = true
			continue
		}
		rest := strings.TrimPrefix(slug, base)
		if m := slugSuffix.FindStringSubmatch(rest); m != nil && rest == m[0] {
			if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
				highest = n
			}
		}
	}
	if !baseTaken {
		return base, nil
	}
	return fmt.Sprintf("%s-%d", base, highest+1), nil
}
