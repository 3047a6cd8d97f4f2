// Package resolve maps free-text target strings to entity IDs using
// one fuzzy-matching rule shared by every command branch.
package resolve

import (
	"fmt"
	"strings"

	"github.com/nathoo/thornhold/types"
)

// AmbiguityError indicates multiple entities matched a name.
// Candidates holds display names.
type AmbiguityError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("Which one? %s", strings.Join(e.Candidates, ", "))
}

// NotFoundError indicates no entity matched a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("You don't see '%s' here.", e.Name)
}

// Match returns every candidate id matching the query: exact id first,
// then exact display name, then substring containment on either.
// Pure — nameOf supplies display names, nothing else is consulted.
func Match(query string, candidates []string, nameOf func(string) string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	// Exact id.
	for _, id := range candidates {
		if strings.ToLower(id) == q {
			return []string{id}
		}
	}

	// Exact display name.
	var exact []string
	for _, id := range candidates {
		if strings.ToLower(nameOf(id)) == q {
			exact = append(exact, id)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	// Substring on id or name.
	var partial []string
	for _, id := range candidates {
		idL := strings.ToLower(id)
		nameL := strings.ToLower(nameOf(id))
		if strings.Contains(idL, q) || strings.Contains(nameL, q) {
			partial = append(partial, id)
		}
	}
	return partial
}

// NameMatches reports whether a query matches a single id/name pair
// under the same rules as Match.
func NameMatches(query, id, name string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	idL := strings.ToLower(id)
	nameL := strings.ToLower(name)
	return idL == q || nameL == q || strings.Contains(idL, q) || strings.Contains(nameL, q)
}

// One narrows Match to a single id, converting zero and many matches to
// the standard errors.
func One(query string, candidates []string, nameOf func(string) string) (string, error) {
	matches := Match(query, candidates, nameOf)
	switch len(matches) {
	case 0:
		return "", &NotFoundError{Name: query}
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, id := range matches {
			names[i] = nameOf(id)
		}
		return "", &AmbiguityError{Name: query, Candidates: names}
	}
}

// Item resolves a query against item ids using world display names.
func Item(w *types.World, query string, candidates []string) (string, error) {
	return One(query, candidates, func(id string) string {
		if it, ok := w.Items[id]; ok {
			return it.Name
		}
		return id
	})
}

// Npc resolves a query against NPC ids using world display names.
func Npc(w *types.World, query string, candidates []string) (string, error) {
	return One(query, candidates, func(id string) string {
		if n, ok := w.Npcs[id]; ok {
			return n.Name
		}
		return id
	})
}
