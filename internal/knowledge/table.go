package knowledge

import "strings"

// Fallback is returned for queries that match no stored question.
const Fallback = "I'm sorry, I don't have info on that. Please ask something else."

type Entry struct {
	Question string
	Answer   string
}

// Table is an ordered, read-only set of question/answer pairs. Questions are
// normalized on construction. A nil *Table behaves as an empty table.
type Table struct {
	entries []Entry
}

func NormalizeQuestion(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func NewTable(entries []Entry) *Table {
	normalized := make([]Entry, len(entries))
	for i, entry := range entries {
		normalized[i] = Entry{
			Question: NormalizeQuestion(entry.Question),
			Answer:   entry.Answer,
		}
	}
	return &Table{entries: normalized}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

func (t *Table) Entries() []Entry {
	if t.Len() == 0 {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the first entry, in table order, whose question equals
// query exactly.
func (t *Table) Lookup(query string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	for _, entry := range t.entries {
		if entry.Question == query {
			return entry, true
		}
	}
	return Entry{}, false
}

func (t *Table) Answer(query string) (string, bool) {
	entry, ok := t.Lookup(query)
	if !ok {
		return Fallback, false
	}
	return entry.Answer, true
}
