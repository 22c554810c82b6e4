package cleankeys

import (
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// Word characters are Unicode letters, digits and underscore.
var nonWordChars = regexp.MustCompile(`[^\p{L}\p{N}_]`)

// SanitizeKey replaces every non-word character with an underscore, one for
// one. Already clean keys come back unchanged.
func SanitizeKey(key string) string {
	return nonWordChars.ReplaceAllString(key, "_")
}

// Sanitize returns a copy of a decoded document with every mapping key
// sanitized at every depth. Sequences are mapped element-wise and scalars
// are returned as is. Within one mapping, colliding keys are resolved by
// visiting the original keys in sorted order, so the greatest original key
// wins.
func Sanitize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]interface{}, len(t))
		for _, k := range keys {
			out[SanitizeKey(k)] = Sanitize(t[k])
		}
		return out
	case map[interface{}]interface{}:
		keys := make([]string, 0, len(t))
		byString := make(map[string]interface{}, len(t))
		for k, val := range t {
			s := fmt.Sprint(k)
			keys = append(keys, s)
			byString[s] = val
		}
		sort.Strings(keys)
		out := make(map[string]interface{}, len(t))
		for _, k := range keys {
			out[SanitizeKey(k)] = Sanitize(byString[k])
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = Sanitize(item)
		}
		return out
	default:
		return v
	}
}

type sanitizeStats struct {
	renamed    int
	collisions int
}

// SanitizeNode rewrites the keys of a parsed YAML tree in place, keeping
// key order and comments. A colliding pair stays at the position of the
// first key and takes the value of the last one. Merge keys and non-scalar
// keys are left alone.
func SanitizeNode(n *yaml.Node) (renamed, collisions int) {
	var st sanitizeStats
	sanitizeNode(n, &st)
	return st.renamed, st.collisions
}

func sanitizeNode(n *yaml.Node, st *sanitizeStats) {
	if n == nil {
		return
	}
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			sanitizeNode(c, st)
		}
	case yaml.MappingNode:
		sanitizeMapping(n, st)
	}
}

func sanitizeMapping(n *yaml.Node, st *sanitizeStats) {
	content := make([]*yaml.Node, 0, len(n.Content))
	seen := make(map[string]int, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		sanitizeNode(value, st)

		if key.Kind == yaml.ScalarNode && key.Value == "<<" && key.Tag == "!!merge" {
			// The encoder writes a tagged merge key as "!!merge <<". Untagged,
			// the key still resolves to a merge.
			key.Tag = ""
			content = append(content, key, value)
			continue
		}
		if key.Kind != yaml.ScalarNode {
			sanitizeNode(key, st)
			content = append(content, key, value)
			continue
		}

		clean := SanitizeKey(key.Value)
		if clean != key.Value {
			key.Value = clean
			key.Tag = "!!str"
			st.renamed++
		}

		if pos, dup := seen[clean]; dup {
			content[pos+1] = value
			st.collisions++
			continue
		}
		seen[clean] = len(content)
		content = append(content, key, value)
	}

	n.Content = content
}
