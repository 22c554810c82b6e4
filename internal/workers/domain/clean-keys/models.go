// internal/workers/domain/clean-keys/models.go
package cleankeys

type Input struct {
	Path string
}

// Output describes what was rewritten. Collisions counts keys that
// sanitized to a key already present in the same mapping; the later value
// replaced the earlier one.
type Output struct {
	Path        string
	KeysRenamed int
	Collisions  int
}
