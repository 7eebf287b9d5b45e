package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AnswerEventData captures one submitted answer for the stats view.
type AnswerEventData struct {
	SessionID string
	GameID    string
	Mode      string
	Correct   bool
}

// GameStats aggregates answer events per game.
type GameStats struct {
	GameID  string
	Total   int
	Correct int
}

// EventRepo appends and aggregates answer events. Unlike ProgressRepo,
// event writes report errors; callers decide whether logging an answer
// is worth surfacing.
type EventRepo interface {
	// AppendAnswer records a single submitted answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AnswerStats returns per-game totals over all recorded answers,
	// ordered by game id.
	AnswerStats(ctx context.Context) ([]GameStats, error)

	// Reset deletes all recorded answer events.
	Reset(ctx context.Context) error
}

type eventRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	correct := 0
	if data.Correct {
		correct = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answer_event (session_id, game_id, mode, correct, created_ts)
		VALUES (?, ?, ?, ?, ?)`,
		data.SessionID, data.GameID, data.Mode, correct, r.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStats(ctx context.Context) ([]GameStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT game_id, COUNT(*), SUM(correct)
		FROM answer_event
		GROUP BY game_id
		ORDER BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query answer stats: %w", err)
	}
	defer rows.Close()

	stats := []GameStats{}
	for rows.Next() {
		var gs GameStats
		if err := rows.Scan(&gs.GameID, &gs.Total, &gs.Correct); err != nil {
			return nil, fmt.Errorf("scan answer stats: %w", err)
		}
		stats = append(stats, gs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answer stats: %w", err)
	}
	return stats, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM answer_event`); err != nil {
		return fmt.Errorf("reset answer events: %w", err)
	}
	return nil
}
