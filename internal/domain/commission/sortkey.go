package commission

import (
	"cmp"
	"strings"
)

// SortKey is a logical field a commission list may be ordered by.
// Only the keys declared here are ever used for ordering.
type SortKey string

const (
	SortByID       SortKey = "id"
	SortByClient   SortKey = "client"
	SortByTitle    SortKey = "title"
	SortByType     SortKey = "type"
	SortByPrice    SortKey = "price"
	SortByDeadline SortKey = "deadline"
	SortByStatus   SortKey = "status"
)

// DefaultSortKey is used whenever a requested key is not recognised.
const DefaultSortKey = SortByDeadline

// SortKeys returns every recognised sort key.
func SortKeys() []SortKey {
	return []SortKey{SortByID, SortByClient, SortByTitle, SortByType, SortByPrice, SortByDeadline, SortByStatus}
}

// ParseSortKey maps caller text onto a recognised key, falling back to
// DefaultSortKey for anything else.
func ParseSortKey(raw string) SortKey {
	key := SortKey(strings.TrimSpace(raw))
	if key.Valid() {
		return key
	}
	return DefaultSortKey
}

// Valid reports whether k is a recognised key.
func (k SortKey) Valid() bool {
	switch k {
	case SortByID, SortByClient, SortByTitle, SortByType, SortByPrice, SortByDeadline, SortByStatus:
		return true
	}
	return false
}

// Compare orders a before b under k, returning a negative number, zero or a
// positive number. Text keys compare case-insensitively, folding ASCII only
// as SQLite's NOCASE collation does. Unrecognised keys compare by deadline.
func (k SortKey) Compare(a, b Commission) int {
	switch k {
	case SortByID:
		return cmp.Compare(a.ID, b.ID)
	case SortByClient:
		return compareNoCase(a.Client, b.Client)
	case SortByTitle:
		return compareNoCase(a.Title, b.Title)
	case SortByType:
		return compareNoCase(string(a.Type), string(b.Type))
	case SortByPrice:
		return cmp.Compare(a.Price, b.Price)
	case SortByStatus:
		return compareNoCase(string(a.Status), string(b.Status))
	default:
		return strings.Compare(a.Deadline, b.Deadline)
	}
}

func compareNoCase(a, b string) int {
	return strings.Compare(foldASCII(a), foldASCII(b))
}

func foldASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			buf := []byte(s)
			for j := i; j < len(buf); j++ {
				if 'A' <= buf[j] && buf[j] <= 'Z' {
					buf[j] += 'a' - 'A'
				}
			}
			return string(buf)
		}
	}
	return s
}
