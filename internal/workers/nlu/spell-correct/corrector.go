package spellcorrect

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sajari/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var wordPattern = regexp.MustCompile(`\p{L}+`)

// DictionaryCorrector corrects each word of a text against a trained
// vocabulary. Spacing, punctuation, digits and single letters are kept as
// they are, and the capitalization of a corrected word follows the original.
type DictionaryCorrector struct {
	model *fuzzy.Model
	known map[string]struct{}
	title cases.Caser
}

// NewDictionaryCorrector trains a model on words. depth is the maximum edit
// distance considered for a suggestion.
func NewDictionaryCorrector(words []string, depth int) *DictionaryCorrector {
	if depth <= 0 {
		depth = 2
	}
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(depth)

	lowered := make([]string, 0, len(words))
	known := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			lowered = append(lowered, w)
			known[w] = struct{}{}
		}
	}
	model.Train(lowered)

	return &DictionaryCorrector{
		model: model,
		known: known,
		title: cases.Title(language.Und),
	}
}

func (d *DictionaryCorrector) Correct(text string) (string, error) {
	return wordPattern.ReplaceAllStringFunc(text, d.correctWord), nil
}

func (d *DictionaryCorrector) correctWord(word string) string {
	if utf8.RuneCountInString(word) < 2 {
		return word
	}
	lower := strings.ToLower(word)
	if _, ok := d.known[lower]; ok {
		return word
	}
	suggestion := d.model.SpellCheck(lower)
	if suggestion == "" || suggestion == lower {
		return word
	}

	switch first, _ := utf8.DecodeRuneInString(word); {
	case word == strings.ToUpper(word):
		return strings.ToUpper(suggestion)
	case unicode.IsUpper(first):
		return d.title.String(suggestion)
	default:
		return suggestion
	}
}

// Words splits text into the tokens the corrector works on.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// LoadWordList reads a vocabulary file: words separated by whitespace, lines
// starting with # ignored.
func LoadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}
