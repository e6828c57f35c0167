package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/domain"
)

// PostgresDirectory stores the roster in PostgreSQL for deployments that need
// the directory to survive restarts. Mutations lock the activity row so the
// duplicate check and the write are atomic per activity.
type PostgresDirectory struct {
	pool *pgxpool.Pool
}

// NewPostgresDirectory constructs a directory backed by the provided pool.
func NewPostgresDirectory(pool *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{pool: pool}
}

// EnsureSeed inserts the school catalog, skipping activities that already exist.
func (d *PostgresDirectory) EnsureSeed(ctx context.Context) error {
	tx, err := d.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for position, activity := range seedActivities() {
		if _, err := tx.Exec(ctx,
			`INSERT INTO activities (name, description, schedule, max_participants, position)
             VALUES ($1,$2,$3,$4,$5)
             ON CONFLICT (name) DO NOTHING`,
			activity.Name, activity.Description, activity.Schedule, activity.MaxParticipants, position,
		); err != nil {
			return fmt.Errorf("seed activity %q: %w", activity.Name, err)
		}
		for i, email := range activity.Participants {
			if _, err := tx.Exec(ctx,
				`INSERT INTO activity_participants (activity_name, email, position)
                 VALUES ($1,$2,$3)
                 ON CONFLICT (activity_name, email) DO NOTHING`,
				activity.Name, email, i,
			); err != nil {
				return fmt.Errorf("seed participant %q: %w", email, err)
			}
		}
	}

	return tx.Commit(ctx)
}

// List returns every activity in seed order with participants in signup order.
func (d *PostgresDirectory) List(ctx context.Context) ([]domain.Activity, error) {
	const query = `SELECT a.name, a.description, a.schedule, a.max_participants, p.email
        FROM activities a
        LEFT JOIN activity_participants p ON p.activity_name = a.name
        ORDER BY a.position, p.position`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]domain.Activity, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			activity domain.Activity
			email    *string
		)
		if err := rows.Scan(&activity.Name, &activity.Description, &activity.Schedule, &activity.MaxParticipants, &email); err != nil {
			return nil, err
		}

		i, seen := index[activity.Name]
		if !seen {
			activity.Participants = make([]string, 0, 4)
			activities = append(activities, activity)
			i = len(activities) - 1
			index[activity.Name] = i
		}
		if email != nil {
			activities[i].Participants = append(activities[i].Participants, *email)
		}
	}
	return activities, rows.Err()
}

// AddParticipant appends email to the activity roster unless it is already present.
func (d *PostgresDirectory) AddParticipant(ctx context.Context, activityName, email string) (domain.Activity, error) {
	tx, err := d.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Activity{}, err
	}
	defer tx.Rollback(ctx)

	if err := lockActivity(ctx, tx, activityName); err != nil {
		return domain.Activity{}, err
	}

	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM activity_participants WHERE activity_name = $1 AND email = $2)`,
		activityName, email,
	).Scan(&exists); err != nil {
		return domain.Activity{}, err
	}
	if exists {
		return domain.Activity{}, domain.ErrAlreadyRegistered
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO activity_participants (activity_name, email, position)
         SELECT $1, $2, COALESCE(MAX(position) + 1, 0)
         FROM activity_participants WHERE activity_name = $1`,
		activityName, email,
	); err != nil {
		return domain.Activity{}, err
	}

	activity, err := loadActivity(ctx, tx, activityName)
	if err != nil {
		return domain.Activity{}, err
	}
	return activity, tx.Commit(ctx)
}

// RemoveParticipant removes email from the activity roster.
func (d *PostgresDirectory) RemoveParticipant(ctx context.Context, activityName, email string) (domain.Activity, error) {
	tx, err := d.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Activity{}, err
	}
	defer tx.Rollback(ctx)

	if err := lockActivity(ctx, tx, activityName); err != nil {
		return domain.Activity{}, err
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM activity_participants WHERE activity_name = $1 AND email = $2`,
		activityName, email,
	)
	if err != nil {
		return domain.Activity{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.Activity{}, domain.ErrNotRegistered
	}

	activity, err := loadActivity(ctx, tx, activityName)
	if err != nil {
		return domain.Activity{}, err
	}
	return activity, tx.Commit(ctx)
}

func lockActivity(ctx context.Context, tx pgx.Tx, activityName string) error {
	var name string
	err := tx.QueryRow(ctx, `SELECT name FROM activities WHERE name = $1 FOR UPDATE`, activityName).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrActivityNotFound
	}
	return err
}

func loadActivity(ctx context.Context, tx pgx.Tx, activityName string) (domain.Activity, error) {
	var activity domain.Activity
	err := tx.QueryRow(ctx,
		`SELECT name, description, schedule, max_participants FROM activities WHERE name = $1`,
		activityName,
	).Scan(&activity.Name, &activity.Description, &activity.Schedule, &activity.MaxParticipants)
	if err != nil {
		return domain.Activity{}, err
	}

	rows, err := tx.Query(ctx,
		`SELECT email FROM activity_participants WHERE activity_name = $1 ORDER BY position`,
		activityName,
	)
	if err != nil {
		return domain.Activity{}, err
	}
	defer rows.Close()

	activity.Participants = make([]string, 0, 4)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return domain.Activity{}, err
		}
		activity.Participants = append(activity.Participants, email)
	}
	return activity, rows.Err()
}
