package symbol

import (
	"strings"

	"github.com/trezcool/stockwise/core"
)

// DefaultSuggestLimit is the maximum number of suggestions returned for incremental search.
const DefaultSuggestLimit = 10

type Company struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameEn string `json:"name_en"`
	Pinyin string `json:"pinyin"`
}

// Collision records a repeated code dropped while building a Table.
type Collision struct {
	Code      string  `json:"code"`
	Kept      Company `json:"kept"`
	Dropped   Company `json:"dropped"`
	Identical bool    `json:"identical"`
}

// Table is an immutable listing table, iterated in declaration order.
type Table struct {
	entries []Company
	byCode  map[string]int // upper-cased code -> index into entries
}

// NewTable deduplicates entries by code (case-insensitive), keeping the first occurrence.
func NewTable(entries []Company) (*Table, []Collision) {
	t := &Table{
		entries: make([]Company, 0, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	var collisions []Collision
	for _, c := range entries {
		key := strings.ToUpper(strings.TrimSpace(c.Code))
		if idx, ok := t.byCode[key]; ok {
			kept := t.entries[idx]
			collisions = append(collisions, Collision{Code: kept.Code, Kept: kept, Dropped: c, Identical: kept == c})
			continue
		}
		t.byCode[key] = len(t.entries)
		t.entries = append(t.entries, c)
	}
	return t, collisions
}

var defaultTable, defaultCollisions = NewTable(companies)

// Default returns the built-in table and the collisions dropped while loading it.
func Default() (*Table, []Collision) {
	return defaultTable, defaultCollisions
}

func (t *Table) Len() int { return len(t.entries) }

// Companies returns a copy of the table entries.
func (t *Table) Companies() []Company {
	return append([]Company(nil), t.entries...)
}

// Lookup finds a company by code, case-insensitively.
func (t *Table) Lookup(code string) (Company, bool) {
	idx, ok := t.byCode[strings.ToUpper(core.CleanString(code))]
	if !ok {
		return Company{}, false
	}
	return t.entries[idx], true
}

// Resolution is the outcome of Resolve. An unresolved input passes through as Code.
type Resolution struct {
	Input    string   `json:"input"`
	Code     string   `json:"code"`
	Resolved bool     `json:"resolved"`
	Company  *Company `json:"company,omitempty"`
}

type matcher func(c Company, raw, lower string) bool

var (
	exactMatchers = []matcher{
		func(c Company, _, lower string) bool { return strings.ToLower(c.Code) == lower },
		func(c Company, raw, _ string) bool { return c.Name == raw },
		func(c Company, _, lower string) bool { return strings.ToLower(c.NameEn) == lower },
		func(c Company, _, lower string) bool { return strings.ToLower(c.Pinyin) == lower },
	}
	substringMatchers = []matcher{
		func(c Company, _, lower string) bool { return strings.Contains(strings.ToLower(c.Code), lower) },
		func(c Company, raw, _ string) bool { return strings.Contains(c.Name, raw) },
		func(c Company, _, lower string) bool { return strings.Contains(strings.ToLower(c.NameEn), lower) },
		func(c Company, _, lower string) bool { return strings.Contains(strings.ToLower(c.Pinyin), lower) },
	}
)

// Resolve maps free text to a canonical code. Exact matches on code, name, English name and
// pinyin are tried in that order, then substring matches in the same order; the first entry in
// table order wins. Unmatched input passes through trimmed and upper-cased.
func (t *Table) Resolve(input string) Resolution {
	raw := core.CleanString(input)
	res := Resolution{Input: input, Code: strings.ToUpper(raw)}
	if raw == "" {
		return res
	}
	lower := strings.ToLower(raw)

	for _, matchers := range [][]matcher{exactMatchers, substringMatchers} {
		for _, match := range matchers {
			for i := range t.entries {
				if match(t.entries[i], raw, lower) {
					c := t.entries[i]
					res.Code = c.Code
					res.Resolved = true
					res.Company = &c
					return res
				}
			}
		}
	}
	return res
}

// ResolveCode is Resolve reduced to the code to pass to the quote service.
func (t *Table) ResolveCode(input string) string {
	return t.Resolve(input).Code
}

// Suggest returns up to limit entries, in table order, whose code, name, English name or
// pinyin contains the input. Empty input yields no suggestions.
func (t *Table) Suggest(input string, limit int) []Company {
	raw := core.CleanString(input)
	if raw == "" {
		return []Company{}
	}
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	lower := strings.ToLower(raw)

	out := make([]Company, 0, limit)
	for _, c := range t.entries {
		if len(out) == limit {
			break
		}
		for _, match := range substringMatchers {
			if match(c, raw, lower) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
