package spellcorrect

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDictionary() *DictionaryCorrector {
	return NewDictionaryCorrector([]string{
		"what", "is", "a", "heart", "attack", "stroke", "blood", "pressure",
	}, 2)
}

func TestDictionaryCorrector_Correct(t *testing.T) {
	corrector := createTestDictionary()

	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"known words unchanged", "what is a heart attack", "what is a heart attack"},
		{"single edit", "what is a hart atack", "what is a heart attack"},
		{"punctuation and spacing kept", "What is a  hart atack?!", "What is a  heart attack?!"},
		{"capitalized word", "Hart attack", "Heart attack"},
		{"upper case word", "HART ATTACK", "HEART ATTACK"},
		{"unknown word kept", "zzzqqqxx", "zzzqqqxx"},
		{"digits kept", "stroke 911", "stroke 911"},
		{"empty text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := corrector.Correct(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDictionaryCorrector_WorksWithComponent(t *testing.T) {
	component := createTestComponent(t, 50, createTestDictionary())
	examples := messages("What is a hart atack?", "blod presure")

	report, err := component.Train(context.Background(), &TrainingData{TrainingExamples: examples})
	require.NoError(t, err)

	assert.Equal(t, []string{"What is a heart attack?", "blood pressure"}, texts(examples))
	assert.Equal(t, 2, report.Corrected)
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"Chest", "pain", "cafés"}, Words("Chest pain, 2 cafés!"))
	assert.Empty(t, Words("123 ..."))
}

func TestLoadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# vocabulary\nheart attack\n\n  stroke   blood\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	words, err := LoadWordList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"heart", "attack", "stroke", "blood"}, words)

	_, err = LoadWordList(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
