package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/vibetheforce/talkvote/internal/core/domain"
	"github.com/vibetheforce/talkvote/internal/core/ports"
)

// sqlite stores DATETIME DEFAULT CURRENT_TIMESTAMP values in this layout, UTC.
const timestampLayout = "2006-01-02 15:04:05"

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// SaveVote writes the vote and its optional comment in one transaction, so
// a failed comment insert rolls the vote back too.
func (r *voteRepository) SaveVote(ctx context.Context, rating int, sessionID, comment string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	voteID, err := insertVote(ctx, tx, rating, sessionID)
	if err != nil {
		return 0, err
	}

	if comment != "" {
		if err := insertComment(ctx, tx, voteID, comment); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit vote: %w", err)
	}

	return voteID, nil
}

func insertVote(ctx context.Context, tx *sql.Tx, rating int, sessionID string) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO votes (rating, session_id) VALUES (?, ?)`,
		rating, sessionID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrAlreadyVoted
		}
		return 0, fmt.Errorf("insert vote: %w", err)
	}

	voteID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read vote id: %w", err)
	}
	return voteID, nil
}

func insertComment(ctx context.Context, tx *sql.Tx, voteID int64, comment string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO comments (vote_id, comment) VALUES (?, ?)`,
		voteID, comment,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferentialIntegrity
		}
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *voteRepository) Aggregate(ctx context.Context) (domain.Results, error) {
	results := domain.EmptyResults()

	rows, err := r.db.QueryContext(ctx,
		`SELECT rating, COUNT(*) FROM votes GROUP BY rating`,
	)
	if err != nil {
		return domain.Results{}, fmt.Errorf("count votes by rating: %w", err)
	}
	defer rows.Close()

	weightedSum := 0
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return domain.Results{}, fmt.Errorf("scan vote counts: %w", err)
		}
		results.Votes[rating] = count
		results.TotalVotes += count
		weightedSum += rating * count
	}
	if err := rows.Err(); err != nil {
		return domain.Results{}, fmt.Errorf("iterate vote counts: %w", err)
	}

	if results.TotalVotes > 0 {
		results.AverageRating = roundTo2(float64(weightedSum) / float64(results.TotalVotes))
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&results.TotalComments)
	if err != nil {
		return domain.Results{}, fmt.Errorf("count comments: %w", err)
	}

	return results, nil
}

func (r *voteRepository) ListComments(ctx context.Context) ([]domain.CommentWithRating, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.comment, v.rating, c.timestamp
		FROM comments c
		JOIN votes v ON c.vote_id = v.id
		ORDER BY c.timestamp DESC, c.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentWithRating
	for rows.Next() {
		var c domain.CommentWithRating
		var ts string
		if err := rows.Scan(&c.Comment, &c.Rating, &ts); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		createdAt, err := parseTimestamp(ts)
		if err != nil {
			return nil, err
		}
		c.CreatedAt = createdAt
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

func (r *voteRepository) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	var first, last sql.NullString

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MIN(timestamp), MAX(timestamp) FROM votes`,
	).Scan(&stats.TotalVotes, &first, &last)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("read vote stats: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&stats.TotalComments)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count comments: %w", err)
	}

	if first.Valid {
		t, err := parseTimestamp(first.String)
		if err != nil {
			return domain.Stats{}, err
		}
		stats.FirstVoteAt = &t
	}
	if last.Valid {
		t, err := parseTimestamp(last.String)
		if err != nil {
			return domain.Stats{}, err
		}
		stats.LastVoteAt = &t
	}

	return stats, nil
}

// ResetAll wipes comments before votes inside one transaction, so a failed
// reset leaves the store untouched.
func (r *voteRepository) ResetAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments`); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM votes`); err != nil {
		return fmt.Errorf("delete votes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se *sqlitedriver.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var se *sqlitedriver.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timestampLayout, s, time.UTC)
	if err != nil {
		// Some connections hand back RFC3339 when the value was bound as
		// a Go time instead of written by CURRENT_TIMESTAMP.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
		}
	}
	return t, nil
}

func roundTo2(f float64) float64 {
	return math.Round(f*100) / 100
}
