// internal/workers/nlu/build-corpus/handler_test.go
package buildcorpus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatbot-trainprep/internal/common/logger"
	"chatbot-trainprep/internal/models"
	classifyintent "chatbot-trainprep/internal/workers/nlu/classify-intent"
)

// ==========================
// Test Helper Functions
// ==========================

type countingClassifier struct {
	inner IntentClassifier
	calls []string
}

func (c *countingClassifier) Classify(question string) string {
	c.calls = append(c.calls, question)
	return c.inner.Classify(question)
}

func createTestHandler(t *testing.T) (*Handler, *countingClassifier) {
	classifier := &countingClassifier{
		inner: classifyintent.NewClassifier(&classifyintent.Config{
			Rules:          classifyintent.DefaultRules(),
			FallbackIntent: classifyintent.DefaultFallbackIntent,
		}),
	}
	return NewHandler(classifier, logger.NewTestLogger(t)), classifier
}

func row(line int, question, answer string) models.TrainingRow {
	return models.TrainingRow{Line: line, Question: question, Answer: answer}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_GroupsByIntent(t *testing.T) {
	handler, _ := createTestHandler(t)

	out, err := handler.Execute(context.Background(), &Input{Rows: []models.TrainingRow{
		row(2, "What is a heart attack?", "A blockage of blood flow to the heart."),
		row(3, "Hello", "Hi! How can I help?"),
		row(4, "Signs of a heart attack", "Chest pain and shortness of breath."),
	}})
	require.NoError(t, err)

	assert.Equal(t, []string{"ask_heart_attack", "greet"}, out.Examples.Labels())
	assert.Equal(t, []string{"What is a heart attack?", "Signs of a heart attack"}, out.Examples.Values("ask_heart_attack"))
	assert.Equal(t, []string{"A blockage of blood flow to the heart.", "Chest pain and shortness of breath."}, out.Responses.Values("ask_heart_attack"))
	assert.Equal(t, []string{"Hello"}, out.Examples.Values("greet"))
	assert.Equal(t, 3, out.Processed)
	assert.Equal(t, 0, out.Skipped)
}

func TestHandler_Execute_ExamplesAndResponsesAligned(t *testing.T) {
	handler, _ := createTestHandler(t)

	rows := []models.TrainingRow{
		row(2, "heart attack?", "a1"),
		row(3, "", "orphan answer"),
		row(4, "bye", "a2"),
		row(5, "heart attack again", "a3"),
		row(6, "question without answer", ""),
		row(7, "what about stroke", "a4"),
	}
	out, err := handler.Execute(context.Background(), &Input{Rows: rows})
	require.NoError(t, err)

	assert.Equal(t, out.Examples.Labels(), out.Responses.Labels())
	for _, intent := range out.Examples.Labels() {
		assert.Equal(t, out.Examples.Count(intent), out.Responses.Count(intent), intent)
	}
	assert.Equal(t, []string{"a1", "a3"}, out.Responses.Values("ask_heart_attack"))
	assert.Equal(t, 4, out.Examples.Total())
}

func TestHandler_Execute_SkipsBlankRows(t *testing.T) {
	tests := []struct {
		name string
		row  models.TrainingRow
	}{
		{"missing question", row(2, "", "answer")},
		{"missing answer", row(2, "question", "")},
		{"whitespace question", row(2, "   \t", "answer")},
		{"whitespace answer", row(2, "question", "  \n ")},
		{"both missing", row(2, "", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, classifier := createTestHandler(t)

			out, err := handler.Execute(context.Background(), &Input{Rows: []models.TrainingRow{tt.row}})
			require.NoError(t, err)

			assert.Equal(t, 0, out.Examples.Len())
			assert.Equal(t, 0, out.Responses.Len())
			assert.Equal(t, 1, out.Skipped)
			assert.Empty(t, classifier.calls, "skipped rows are never classified")
		})
	}
}

func TestHandler_Execute_TrimsFields(t *testing.T) {
	handler, classifier := createTestHandler(t)

	out, err := handler.Execute(context.Background(), &Input{Rows: []models.TrainingRow{
		row(2, "  Hello  ", "\tHi there \n"),
	}})
	require.NoError(t, err)

	assert.Equal(t, []string{"Hello"}, out.Examples.Values("greet"))
	assert.Equal(t, []string{"Hi there"}, out.Responses.Values("greet"))
	assert.Equal(t, []string{"Hello"}, classifier.calls)
}

func TestHandler_Execute_KeepsDuplicates(t *testing.T) {
	handler, _ := createTestHandler(t)

	out, err := handler.Execute(context.Background(), &Input{Rows: []models.TrainingRow{
		row(2, "hello", "hi"),
		row(3, "hello", "hi"),
	}})
	require.NoError(t, err)

	assert.Equal(t, []string{"hello", "hello"}, out.Examples.Values("greet"))
	assert.Equal(t, []string{"hi", "hi"}, out.Responses.Values("greet"))
}

func TestHandler_Execute_EmptyInput(t *testing.T) {
	handler, _ := createTestHandler(t)

	out, err := handler.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Examples.Len())
	assert.Equal(t, 0, out.Processed)
}

func TestHandler_Execute_CancelledContext(t *testing.T) {
	handler, _ := createTestHandler(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := handler.Execute(ctx, &Input{Rows: []models.TrainingRow{row(2, "hello", "hi")}})
	assert.ErrorIs(t, err, context.Canceled)
}
