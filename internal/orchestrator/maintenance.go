package orchestrator

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chatbot-trainprep/internal/common/errors"
	"chatbot-trainprep/internal/common/metrics"
	"chatbot-trainprep/internal/common/observability"
	"chatbot-trainprep/internal/common/validation"
	"chatbot-trainprep/internal/models"

	cleankeys "chatbot-trainprep/internal/workers/domain/clean-keys"
	emitdocuments "chatbot-trainprep/internal/workers/nlu/emit-documents"
	spellcorrect "chatbot-trainprep/internal/workers/nlu/spell-correct"
)

// CleanKeys sanitizes the keys of the configured YAML file. A parse or I/O
// failure is logged and returned; the file is left as it was.
func (p *Pipeline) CleanKeys(ctx context.Context) (*cleankeys.Output, error) {
	path := p.cfg.CleanKeys.Path
	handler := errors.NewErrorHandler(p.logger)

	out, err := cleankeys.NewHandler(p.logger).Execute(ctx, &cleankeys.Input{Path: path})
	if err != nil {
		handler.Handle(errors.Failure(cleankeys.TaskType, err))
		fmt.Fprintf(p.out, "❌ Could not clean keys in %s: %s\n", path, errors.AsStandardError(err).Message)
		return nil, err
	}

	fmt.Fprintf(p.out, "✅ Cleaned and updated keys in %s\n", path)
	return out, nil
}

// SpellCheck runs the spell-correction training pass over the examples of
// the generated NLU file and rewrites it with the corrected questions.
func (p *Pipeline) SpellCheck(ctx context.Context) (*spellcorrect.Report, error) {
	log := p.logger.WithFields(map[string]interface{}{"taskType": spellcorrect.TaskType})
	handler := errors.NewErrorHandler(log)
	nluPath := p.cfg.Output.NLUPath

	recorder := metrics.NewRecorder()
	obs := observability.New(p.cfg.App.Name, recorder.Registry())
	defer func() {
		if err := recorder.WriteTextfile(p.cfg.Metrics.TextfilePath); err != nil {
			log.Warn("metrics textfile not written", map[string]interface{}{"error": err.Error()})
		}
		obs.Shutdown()
	}()

	fail := func(err error) (*spellcorrect.Report, error) {
		handler.Handle(errors.Failure(spellcorrect.TaskType, err))
		return nil, err
	}

	var doc models.NLUDocument
	if err := readYAML(nluPath, &doc); err != nil {
		return fail(err)
	}

	vocabulary, err := p.vocabulary()
	if err != nil {
		return fail(err)
	}

	// One message per example line, remembered by entry so the block can be
	// rebuilt in the same order.
	var messages []*spellcorrect.Message
	perEntry := make([][]*spellcorrect.Message, len(doc.NLU))
	for i, entry := range doc.NLU {
		for _, q := range emitdocuments.ParseExamples(entry.Examples) {
			msg := &spellcorrect.Message{Text: q, Intent: entry.Intent}
			perEntry[i] = append(perEntry[i], msg)
			messages = append(messages, msg)
		}
	}

	component := spellcorrect.NewComponent(
		spellcorrect.LoadConfig(p.cfg.SpellCheck),
		spellcorrect.NewDictionaryCorrector(vocabulary, p.cfg.SpellCheck.Depth),
		p.logger,
	)

	start := time.Now()
	report, err := component.Train(ctx, &spellcorrect.TrainingData{TrainingExamples: messages})
	status := statusOK
	if err != nil || len(report.Failures) > 0 {
		status = statusFail
	}
	obs.RecordStage(ctx, spellcorrect.TaskType, status, time.Since(start))
	recorder.CorrectionBatches.Add(float64(report.Batches))
	recorder.CorrectionsFailed.Add(float64(len(report.Failures)))
	if err != nil {
		return report, err
	}

	for i := range doc.NLU {
		questions := make([]string, len(perEntry[i]))
		for j, msg := range perEntry[i] {
			questions[j] = msg.Text
		}
		doc.NLU[i].Examples = emitdocuments.FormatExamples(questions)
	}

	emitter := emitdocuments.NewHandler(emitdocuments.LoadConfig(p.cfg.Output), log)
	outcome := emitter.WriteDocument(validation.DocumentNLU, nluPath, doc)
	if !outcome.OK() {
		handler.Handle(outcome)
		return report, outcome.Err
	}

	fmt.Fprintf(p.out, "✅ Spell-checked %d examples in '%s' (%d corrected)\n",
		report.Messages, nluPath, report.Corrected)
	return report, nil
}

// vocabulary gathers the corrector's word list from the dictionary file and,
// when enabled, from the answers recorded in the domain file.
func (p *Pipeline) vocabulary() ([]string, error) {
	sc := p.cfg.SpellCheck
	var words []string

	if sc.DictionaryPath != "" {
		list, err := spellcorrect.LoadWordList(sc.DictionaryPath)
		if err != nil {
			return nil, errors.NewFileIOError(sc.DictionaryPath, err)
		}
		words = append(words, list...)
	}

	if sc.TrainOnAnswers {
		var domain models.DomainDocument
		if err := readYAML(p.cfg.Output.DomainPath, &domain); err != nil {
			return nil, err
		}
		for _, tmpl := range domain.Responses {
			for _, v := range tmpl.Variants {
				words = append(words, spellcorrect.Words(v.Text)...)
			}
		}
	}

	if len(words) == 0 {
		return nil, errors.NewInvalidConfigError("spellcheck needs spellcheck.dictionary_path or spellcheck.train_on_answers")
	}
	return words, nil
}

func readYAML(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.NewFileIOError(path, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return errors.NewYAMLParseError(path, err)
	}
	return nil
}
