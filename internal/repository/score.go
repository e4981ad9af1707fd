package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// Score is one row of the append-only win history. Records are immutable
// once written; the board core never reads them back.
type Score struct {
	ScoreId        int64     `json:"score_id"`
	Username       *string   `json:"username"`
	Difficulty     string    `json:"difficulty"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateScoreParams struct {
	PlayerId       *int64
	Difficulty     string
	ElapsedSeconds float64
	RecordedAt     time.Time
}

func (q Queries) CreateScore(
	ctx context.Context, params CreateScoreParams,
) (int64, error) {
	var scoreId int64
	err := q.db.QueryRow(ctx, `
		INSERT INTO score (player_id, difficulty, elapsed_seconds, created_at)
		VALUES (@player_id, @difficulty, @elapsed_seconds, @created_at)
		RETURNING score_id;`,
		pgx.NamedArgs{
			"player_id":       params.PlayerId,
			"difficulty":      params.Difficulty,
			"elapsed_seconds": params.ElapsedSeconds,
			"created_at":      params.RecordedAt,
		}).Scan(&scoreId)
	return scoreId, err
}

type ScoreFilter struct {
	Username   *string
	Difficulty *string
}

func (f ScoreFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Difficulty != nil {
		clauses = append(clauses, "difficulty = @difficulty")
		args["difficulty"] = *f.Difficulty
	}
	if len(clauses) == 0 {
		return "", args
	}
	return strings.Join(clauses, " AND "), args
}

// ListScores returns the win history sorted fastest-first.
func (q Queries) ListScores(
	ctx context.Context, filter ScoreFilter,
) ([]Score, error) {
	query := `
	SELECT
		score_id,
		username,
		difficulty,
		elapsed_seconds,
		created_at
	FROM score
		LEFT OUTER JOIN player USING (player_id)
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " WHERE " + whereClause
	}

	query += " ORDER BY elapsed_seconds;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Score])
}
