package professional

import (
	"context"
	"fmt"
	"time"
)

type FinalizeInput struct {
	RunID       string
	Records     []Record
	Planned     int
	Attempted   int
	Succeeded   int
	Interrupted bool
	At          time.Time
}

type FinalizeOutput struct {
	Records      []Record
	Stats        RunStats
	ArtifactPath string
	Delivered    bool
}

// FinalizeRunUseCase cleans the raw records of a run, writes the artifact and
// delivers it. Interrupted runs are written but never delivered.
type FinalizeRunUseCase struct {
	writer    Writer
	notifier  Notifier
	publisher Publisher
	required  []string
	logger    Logger
}

func NewFinalizeRunUseCase(writer Writer, notifier Notifier, required []string, logger Logger) *FinalizeRunUseCase {
	return &FinalizeRunUseCase{
		writer:   writer,
		notifier: notifier,
		required: RequiredFields(required),
		logger:   logger,
	}
}

// WithPublisher also streams every final record.
func (uc *FinalizeRunUseCase) WithPublisher(p Publisher) *FinalizeRunUseCase {
	uc.publisher = p
	return uc
}

func (uc *FinalizeRunUseCase) Execute(ctx context.Context, in FinalizeInput) (FinalizeOutput, error) {
	uc.logger.Info("raw records collected", "count", len(in.Records))

	records, duplicates := Dedup(in.Records)
	uc.logger.Info("after dedup", "count", len(records), "removed", duplicates)

	records, invalid := Validate(records, uc.required)
	uc.logger.Info("after validation", "count", len(records), "removed", invalid)

	out := FinalizeOutput{
		Records: records,
		Stats:   BuildStats(records, in.Attempted, in.Succeeded, DefaultTopStates),
	}

	if len(records) > 0 {
		path, err := uc.writer.Save(records, in.At)
		if err != nil {
			uc.logger.Error("failed to write artifact", "error", err)
		} else {
			out.ArtifactPath = path
			uc.logger.Info("artifact written", "path", path)
		}
	}

	uc.logStats(out.Stats, in.Planned)

	if in.Interrupted {
		uc.logger.Warn("run interrupted, results kept locally only", "path", out.ArtifactPath)
		return out, nil
	}

	if uc.publisher != nil && len(records) > 0 {
		if err := uc.publisher.Publish(ctx, in.RunID, records); err != nil {
			uc.logger.Warn("failed to publish records", "error", err)
		}
	}

	if len(records) == 0 {
		msg := fmt.Sprintf("Nenhum profissional coletado. Cidades: %d/%d", in.Succeeded, in.Planned)
		uc.notifyError(ctx, msg)
		return out, ErrNoRecords
	}

	if err := uc.notifier.SendRecords(ctx, records, Caption(out.Stats.Summary(in.At))); err != nil {
		uc.logger.Error("delivery failed", "error", err, "artifact", out.ArtifactPath)
		uc.notifyError(ctx, fmt.Sprintf("Falha ao enviar resultados (%d profissionais). Arquivo local: %s", len(records), out.ArtifactPath))
		return out, fmt.Errorf("deliver records: %w", err)
	}
	out.Delivered = true

	if err := uc.notifier.SendSummary(ctx, out.Stats.Summary(in.At)); err != nil {
		uc.logger.Warn("failed to send summary", "error", err)
	}

	uc.logger.Info("results delivered", "count", len(records))
	return out, nil
}

func (uc *FinalizeRunUseCase) notifyError(ctx context.Context, msg string) {
	uc.logger.Warn(msg)
	if err := uc.notifier.SendError(ctx, msg); err != nil {
		uc.logger.Error("failed to send error notification", "error", err)
	}
}

func (uc *FinalizeRunUseCase) logStats(s RunStats, planned int) {
	uc.logger.Info("run stats",
		"total", s.Total,
		"cities_ok", s.CitiesSucceeded,
		"cities_attempted", s.CitiesAttempted,
		"cities_planned", planned,
		"average_per_city", fmt.Sprintf("%.1f", s.AveragePerCity()),
	)
	for _, sc := range s.TopStates {
		uc.logger.Info("state distribution", "state", sc.State, "count", sc.Count)
	}
}

// Caption is the plain-text line set attached to the delivered document.
func Caption(s Summary) string {
	return fmt.Sprintf("Scraping Guincho\nData: %s\nTotal: %d profissionais\nCidades: %d\nColeta finalizada com sucesso!",
		s.Date.Format("02/01/2006"), s.Total, s.Cities)
}
