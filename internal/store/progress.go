package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Storage key formats. Bump the version suffix when the stored shape
// changes; old keys are simply ignored.
const (
	dailyKeyFormat = "drillbox.%s.daily.v2"
	soundKey       = "drillbox.sound.v1"
)

// dateLayout is the local calendar date format used in daily records.
const dateLayout = "2006-01-02"

// DailyRecord is the persisted daily-mission progress for one game.
// A record whose Date is not the current local date is stale: its Done
// count reads as 0 and the record is superseded on the next save.
type DailyRecord struct {
	Date string `json:"date"`
	Done int    `json:"done"`
}

// ProgressRepo reads and writes the small per-machine preference and
// progress records.
//
// Storage is a best-effort convenience, never a requirement: reads that
// fail for any reason (missing row, malformed JSON, unusable database)
// return the documented default, and writes that fail are dropped.
// That contract is why no method returns an error.
type ProgressRepo interface {
	// LoadDaily returns the game's daily record for today. Stale or
	// missing records come back as {today, 0}.
	LoadDaily(ctx context.Context, gameID string) DailyRecord

	// SaveDaily persists the record under the game's daily key.
	SaveDaily(ctx context.Context, gameID string, rec DailyRecord)

	// LoadSound returns the sound preference; true when unset or
	// unreadable.
	LoadSound(ctx context.Context) bool

	// SaveSound persists the sound preference.
	SaveSound(ctx context.Context, enabled bool)
}

type progressRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *progressRepo) today() string {
	return r.now().Format(dateLayout)
}

func (r *progressRepo) LoadDaily(ctx context.Context, gameID string) DailyRecord {
	today := r.today()
	fresh := DailyRecord{Date: today, Done: 0}

	raw, ok := r.get(ctx, fmt.Sprintf(dailyKeyFormat, gameID))
	if !ok {
		return fresh
	}

	var rec DailyRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return fresh
	}
	if rec.Date != today || rec.Done < 0 {
		return fresh
	}
	return rec
}

func (r *progressRepo) SaveDaily(ctx context.Context, gameID string, rec DailyRecord) {
	b, err := json.Marshal(rec)
	if err != nil {
		return
	}
	r.set(ctx, fmt.Sprintf(dailyKeyFormat, gameID), string(b))
}

func (r *progressRepo) LoadSound(ctx context.Context) bool {
	raw, ok := r.get(ctx, soundKey)
	if !ok {
		return true
	}
	switch raw {
	case "0":
		return false
	case "1":
		return true
	default:
		return true
	}
}

func (r *progressRepo) SaveSound(ctx context.Context, enabled bool) {
	v := "1"
	if !enabled {
		v = "0"
	}
	r.set(ctx, soundKey, v)
}

func (r *progressRepo) get(ctx context.Context, key string) (string, bool) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key,
	).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (r *progressRepo) set(ctx context.Context, key, value string) {
	// Best effort: a failed write has no user-visible effect.
	_, _ = r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
}
