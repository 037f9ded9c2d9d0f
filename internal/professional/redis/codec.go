package redis

import (
	"encoding/json"
	"fmt"

	"github.com/JulianoL13/guincho-scraper/internal/common/events"
	"github.com/JulianoL13/guincho-scraper/internal/professional"
)

// EventCodec maps records to and from the stream payload.
type EventCodec struct {
	Source string
}

func (c EventCodec) Encode(runID string, r professional.Record) ([]byte, error) {
	return json.Marshal(events.ProfessionalCollectedEvent{
		RunID:       runID,
		Name:        r.Name,
		Phone:       r.Phone,
		City:        r.City,
		State:       r.State,
		Category:    r.Category,
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		Services:    r.Services,
		Tenure:      r.Tenure,
		ProfileURL:  r.ProfileURL,
		CollectedOn: r.CollectedOn,
		Source:      c.Source,
	})
}

func (c EventCodec) Decode(payload []byte) (professional.Record, error) {
	var ev events.ProfessionalCollectedEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return professional.Record{}, fmt.Errorf("decode event: %w", err)
	}
	if ev.Phone == "" {
		return professional.Record{}, fmt.Errorf("decode event: missing phone")
	}
	return professional.Record{
		Name:        ev.Name,
		Phone:       ev.Phone,
		City:        ev.City,
		State:       ev.State,
		Category:    ev.Category,
		Rating:      ev.Rating,
		Reviews:     ev.Reviews,
		Services:    ev.Services,
		Tenure:      ev.Tenure,
		ProfileURL:  ev.ProfileURL,
		CollectedOn: ev.CollectedOn,
	}, nil
}
