package cleankeys

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"chatbot-trainprep/internal/common/errors"
	"chatbot-trainprep/internal/common/logger"
)

const TaskType = "clean-keys"

type Handler struct {
	logger logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	return &Handler{
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Execute sanitizes the keys of the YAML file at input.Path and overwrites
// it. The file is only written after it parsed and was sanitized, so a
// malformed document or a multi-document stream stays untouched. Failures come back as
// *errors.StandardError for the caller to report.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(input.Path)
	if err != nil {
		return nil, errors.NewFileIOError(input.Path, err)
	}

	raw, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, errors.NewFileIOError(input.Path, err)
	}

	root, err := decodeSingleDocument(raw)
	if err != nil {
		return nil, errors.NewYAMLParseError(input.Path, err)
	}

	out := &Output{Path: input.Path}
	if root.Kind == 0 {
		h.logger.Warn("document is empty, nothing to clean", map[string]interface{}{"path": input.Path})
		return out, nil
	}

	out.KeysRenamed, out.Collisions = SanitizeNode(&root)
	if out.Collisions > 0 {
		h.logger.Warn("sanitized keys collided, later values kept", map[string]interface{}{
			"path":       input.Path,
			"collisions": out.Collisions,
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return nil, errors.NewYAMLParseError(input.Path, err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.NewYAMLParseError(input.Path, err)
	}

	if err := os.WriteFile(input.Path, buf.Bytes(), info.Mode().Perm()); err != nil {
		return nil, errors.NewFileIOError(input.Path, err)
	}

	h.logger.Info("keys cleaned", map[string]interface{}{
		"path":        input.Path,
		"keysRenamed": out.KeysRenamed,
		"collisions":  out.Collisions,
	})
	return out, nil
}

// decodeSingleDocument parses raw as exactly one YAML document. An empty
// stream yields a zero node. A second document is an error, since writing
// back only the first one would drop the rest.
func decodeSingleDocument(raw []byte) (yaml.Node, error) {
	var root yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return yaml.Node{}, nil
		}
		return yaml.Node{}, err
	}

	var next yaml.Node
	switch err := dec.Decode(&next); {
	case err == io.EOF:
		return root, nil
	case err != nil:
		return yaml.Node{}, err
	default:
		return yaml.Node{}, fmt.Errorf("expected a single document, found more than one (line %d)", next.Line)
	}
}
