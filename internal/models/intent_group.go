// internal/models/intent_group.go
package models

// IntentGroup is an insertion-ordered multimap from intent label to values.
// Labels keep the order of their first Append; values keep append order and
// are never deduplicated.
type IntentGroup struct {
	labels []string
	values map[string][]string
}

func NewIntentGroup() *IntentGroup {
	return &IntentGroup{values: make(map[string][]string)}
}

// Append adds value under label, creating the label on first use.
func (g *IntentGroup) Append(label, value string) {
	if _, ok := g.values[label]; !ok {
		g.labels = append(g.labels, label)
	}
	g.values[label] = append(g.values[label], value)
}

// Labels returns the labels in first-insertion order.
func (g *IntentGroup) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

// Values returns a copy of the values stored under label.
func (g *IntentGroup) Values(label string) []string {
	vals := g.values[label]
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

func (g *IntentGroup) Has(label string) bool {
	_, ok := g.values[label]
	return ok
}

func (g *IntentGroup) Count(label string) int {
	return len(g.values[label])
}

// Len is the number of labels.
func (g *IntentGroup) Len() int {
	return len(g.labels)
}

// Total is the number of values across all labels.
func (g *IntentGroup) Total() int {
	n := 0
	for _, vals := range g.values {
		n += len(vals)
	}
	return n
}
