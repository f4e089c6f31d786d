package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// IncidentEvent is the payload published for each observed status
// change.
type IncidentEvent struct {
	IncidentID string    `json:"incident_id"`
	Name       string    `json:"name"`
	OldStatus  string    `json:"old_status,omitempty"`
	NewStatus  string    `json:"new_status"`
	Impact     string    `json:"impact,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
}

func runIncidentsWatch(ctx context.Context, client statuspage.Client, natsURL, subject string, interval time.Duration) error {
	conn, err := nats.Connect(natsURL,
		nats.Name("statuspage-watch"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return fmt.Errorf("connecting to NATS: %w", err)
	}
	defer func() { _ = conn.Drain() }()

	fmt.Printf("Watching incidents for page %s, publishing to %q every %s\n",
		client.PageID(), subject, interval)

	// Seed the baseline so restarts do not replay current state as
	// changes.
	known, err := snapshotIncidents(ctx, client)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		current, err := snapshotIncidents(ctx, client)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}

			fmt.Printf("poll failed: %v\n", err)

			continue
		}

		for id, incident := range current {
			previous, seen := known[id]
			if seen && previous.Status == incident.Status {
				continue
			}

			event := IncidentEvent{
				IncidentID: incident.ID,
				Name:       incident.Name,
				NewStatus:  incident.Status,
				Impact:     incident.Impact,
				ObservedAt: time.Now().UTC(),
			}
			if seen {
				event.OldStatus = previous.Status
			}

			if err := publishEvent(conn, subject, event); err != nil {
				fmt.Printf("publish failed: %v\n", err)

				continue
			}

			fmt.Printf("%s: %s -> %s\n", incident.Name, event.OldStatus, event.NewStatus)
		}

		known = current
	}
}

func snapshotIncidents(ctx context.Context, client statuspage.Client) (map[string]statuspage.Incident, error) {
	incidents, err := client.Incidents().ListUnresolved(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing unresolved incidents: %w", err)
	}

	snapshot := make(map[string]statuspage.Incident, len(incidents))
	for _, incident := range incidents {
		snapshot[incident.ID] = incident
	}

	return snapshot, nil
}

func publishEvent(conn *nats.Conn, subject string, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	err = conn.Publish(subject, payload)
	if err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}

	return nil
}
