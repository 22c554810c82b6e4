package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"chatbot-trainprep/internal/common/errors"
	"chatbot-trainprep/internal/models"
)

func TestPipeline_CleanKeys(t *testing.T) {
	dir := t.TempDir()
	cfg := createTestConfig(dir)
	require.NoError(t, os.WriteFile(cfg.CleanKeys.Path, []byte("responses:\n  utter greet:\n    - text: Hi\n"), 0644))
	p, out := createTestPipeline(t, cfg)

	result, err := p.CleanKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.KeysRenamed)
	assert.Contains(t, out.String(), "✅ Cleaned and updated keys in "+cfg.CleanKeys.Path)
}

func TestPipeline_CleanKeys_ParseErrorReported(t *testing.T) {
	dir := t.TempDir()
	cfg := createTestConfig(dir)
	require.NoError(t, os.WriteFile(cfg.CleanKeys.Path, []byte("a: [b\n"), 0644))
	p, out := createTestPipeline(t, cfg)

	_, err := p.CleanKeys(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeYAMLParseFailed))
	assert.NotContains(t, out.String(), "✅")
}

func TestPipeline_SpellCheck(t *testing.T) {
	dir := t.TempDir()
	cfg := createTestConfig(dir)
	writeSpreadsheet(t, cfg, "Question,Answer\nWhat is a hart atack?,A blockage.\nHello,Hi!\n")

	dictionary := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(dictionary, []byte("what is a heart attack\nhello\n"), 0644))
	cfg.SpellCheck.DictionaryPath = dictionary
	cfg.SpellCheck.BatchSize = 1

	p, out := createTestPipeline(t, cfg)
	_, err := p.Run(context.Background())
	require.NoError(t, err)

	report, err := p.SpellCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Messages)
	assert.Equal(t, 2, report.Batches)
	assert.Equal(t, 1, report.Corrected)
	assert.Contains(t, out.String(), "✅ Spell-checked 2 examples")

	raw, err := os.ReadFile(cfg.Output.NLUPath)
	require.NoError(t, err)
	var nlu models.NLUDocument
	require.NoError(t, yaml.Unmarshal(raw, &nlu))
	require.Len(t, nlu.NLU, 2)
	assert.Equal(t, "ask_general", nlu.NLU[0].Intent)
	assert.Equal(t, "- What is a heart attack?", nlu.NLU[0].Examples)
	assert.Equal(t, "- Hello", nlu.NLU[1].Examples)
}

func TestPipeline_SpellCheck_TrainOnAnswers(t *testing.T) {
	dir := t.TempDir()
	cfg := createTestConfig(dir)
	writeSpreadsheet(t, cfg, "Question,Answer\nWhat is a strok?,What is a stroke? A stroke is a blocked artery.\n")
	cfg.SpellCheck.TrainOnAnswers = true

	p, _ := createTestPipeline(t, cfg)
	_, err := p.Run(context.Background())
	require.NoError(t, err)

	_, err = p.SpellCheck(context.Background())
	require.NoError(t, err)

	raw, err := os.ReadFile(cfg.Output.NLUPath)
	require.NoError(t, err)
	var nlu models.NLUDocument
	require.NoError(t, yaml.Unmarshal(raw, &nlu))
	assert.Equal(t, "- What is a stroke?", nlu.NLU[0].Examples)
}

func TestPipeline_SpellCheck_NeedsVocabulary(t *testing.T) {
	dir := t.TempDir()
	cfg := createTestConfig(dir)
	writeSpreadsheet(t, cfg, "Question,Answer\nHello,Hi!\n")

	p, _ := createTestPipeline(t, cfg)
	_, err := p.Run(context.Background())
	require.NoError(t, err)

	_, err = p.SpellCheck(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidConfig))
}

func TestPipeline_SpellCheck_MissingNLUFile(t *testing.T) {
	cfg := createTestConfig(t.TempDir())
	p, _ := createTestPipeline(t, cfg)

	_, err := p.SpellCheck(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeFileIOFailed))
}
