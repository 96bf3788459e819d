// Package naming centralizes the string normalization rules shared by the
// profile repair and tenant isolation paths: role aliases, tenant slugs, and
// referral usernames. Both paths must use these helpers identically so the
// two never drift apart.
package naming

import (
	"fmt"
	"strings"
	"time"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// roleAliases maps legacy or alternate role spellings to canonical roles.
var roleAliases = map[string]entity.Role{
	"university": entity.RolePartner,
	"school":     entity.RolePartner,
	"uni":        entity.RolePartner,
	"consultant": entity.RoleCounselor,
}

// NormalizeRole maps a raw role hint to a canonical role. Unknown or empty
// hints default to student.
func NormalizeRole(raw string) entity.Role {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return entity.RoleStudent
	}

	if alias, ok := roleAliases[cleaned]; ok {
		return alias
	}

	role := entity.Role(cleaned)
	if role.IsValid() {
		return role
	}

	return entity.RoleStudent
}

// FormatUsername normalizes a requested username to the referral handle
// charset: lowercase, [a-z0-9_] only, separators collapsed to single
// underscores, no leading or trailing underscore. Returns "" when nothing
// usable remains.
func FormatUsername(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(lowered))

	lastUnderscore := false
	for _, r := range lowered {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		case r == '_' || r == '-' || r == ' ' || r == '.':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	return strings.TrimRight(b.String(), "_")
}

// SynthesizeUsername builds the fallback handle for an identity that supplied
// no username: "user_" followed by the first 12 hex characters of the id.
func SynthesizeUsername(identityID uuid.UUID) string {
	return "user_" + hexID(identityID, 12)
}

// UsernameSuffix returns the short collision suffix derived from the identity
// id, appended as "_<suffix>" when the preferred handle is taken.
func UsernameSuffix(identityID uuid.UUID) string {
	return hexID(identityID, 4)
}

// SanitizeSlug reduces a free-form name to a URL-safe slug seed: lowercase,
// [a-z0-9] runs joined by single hyphens. Returns "" when nothing usable
// remains.
func SanitizeSlug(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(lowered))

	lastHyphen := false
	for _, r := range lowered {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// NewIsolatedSlug generates a globally-unique tenant slug from a name seed:
// the sanitized seed suffixed with 8 random hex characters. An empty seed
// falls back to "org".
func NewIsolatedSlug(seed string) string {
	base := SanitizeSlug(seed)
	if base == "" {
		base = "org"
	}

	return base + "-" + randomHex(8)
}

// FallbackSlug generates the maximally-unique slug used when a first slug
// insert collides: a timestamp plus a random token, with no name-derived part
// left to collide on.
func FallbackSlug() string {
	return fmt.Sprintf("org-%d-%s", time.Now().Unix(), randomHex(8))
}

// PlaceholderUniversityName derives a University name for partner signups
// that supplied none.
func PlaceholderUniversityName(fullName string) string {
	trimmed := strings.TrimSpace(fullName)
	if trimmed == "" {
		return "New University"
	}

	return trimmed + "'s University"
}

// hexID renders the identity id as lowercase hex (no hyphens) truncated to n.
func hexID(id uuid.UUID, n int) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	if n > len(hex) {
		n = len(hex)
	}

	return hex[:n]
}

// randomHex returns n random hex characters backed by a fresh v4 uuid.
func randomHex(n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(hex) {
		n = len(hex)
	}

	return hex[:n]
}
