// Closed enumerations for visibility tiers, caller scopes and media
// languages. These were free-form strings upstream; here they are typed so
// the visibility predicate can match exhaustively.

package models

// Visibility is the access tier of a collection.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityUnlisted Visibility = "unlisted"
)

// Valid reports whether v is one of the known visibility tiers.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityUnlisted:
		return true
	}
	return false
}

// Scope is a role held by a caller.
type Scope string

const (
	ScopeWildcard   Scope = "*"
	ScopeUser       Scope = "user"
	ScopeAdmin      Scope = "admin"
	ScopeRestricted Scope = "restricted"
)

// HasScope reports whether scopes contains s.
func HasScope(scopes []Scope, s Scope) bool {
	for _, scope := range scopes {
		if scope == s {
			return true
		}
	}
	return false
}

// VisibleTo is the visibility predicate: public collections are visible to
// everyone, unlisted ones to restricted/admin/wildcard callers, private
// ones to admin/wildcard callers. It is pure and is re-evaluated per
// caller, never cached.
func (v Visibility) VisibleTo(scopes []Scope) bool {
	switch v {
	case VisibilityPublic:
		return true
	case VisibilityUnlisted:
		return HasScope(scopes, ScopeRestricted) || HasScope(scopes, ScopeAdmin) || HasScope(scopes, ScopeWildcard)
	case VisibilityPrivate:
		return HasScope(scopes, ScopeAdmin) || HasScope(scopes, ScopeWildcard)
	}
	return false
}

// Language identifies a media language. The set is closed; creates and
// patches reject values outside it.
type Language string

const (
	LanguageEnglish  Language = "en_EN"
	LanguageGerman   Language = "de_DE"
	LanguageJapanese Language = "ja_JP"
	LanguageChinese  Language = "zh_CN"
)

// Valid reports whether l is one of the known languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageGerman, LanguageJapanese, LanguageChinese:
		return true
	}
	return false
}
