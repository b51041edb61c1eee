package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sethclem/Sleeper/model"
)

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	p, err := db.getPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

func (db *postgresDB) SavePlayer(ctx context.Context, p *model.Player) error {
	old, err := db.getPlayer(ctx, p.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// This is an insert
			if err := db.insertPlayer(ctx, p); err != nil {
				return fmt.Errorf("error inserting player: %w", err)
			}
			return nil
		}

		return fmt.Errorf("error reading player at start of SavePlayer(): %w", err)
	}

	if playerUnchanged(old, p) {
		return nil
	}
	return db.updatePlayer(ctx, p)
}

func (db *postgresDB) Search(ctx context.Context, q string, pos model.Position) ([]model.Player, error) {
	const query = `SELECT id, name_first, name_last, position, team, active, created, updated
					FROM players
					WHERE (name_first || ' ' || name_last) ILIKE @q
						AND position ILIKE @pos
					ORDER BY name_last, name_first`

	posQ := "%"
	if pos != model.POS_UNKNOWN {
		posQ = string(pos)
	}

	args := pgx.NamedArgs{
		"q":   "%" + q + "%",
		"pos": posQ,
	}

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error running search query: %w", err)
	}

	results := make([]model.Player, 0, 8)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) getPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT id, name_first, name_last, position, team, active, created, updated
					FROM players WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	return scanPlayer(row)
}

func (db *postgresDB) insertPlayer(ctx context.Context, p *model.Player) error {
	const query = `INSERT INTO players (
		id,
		name_first,
		name_last,
		position,
		team,
		active
	) VALUES (
		@id,
		@nameFirst,
		@nameLast,
		@position,
		@team,
		@active
	)`

	if _, err := db.pool.Exec(ctx, query, db.namedArgsForPlayer(p)); err != nil {
		return fmt.Errorf("error inserting player(%s): %w", p.ID, err)
	}
	return nil
}

func (db *postgresDB) updatePlayer(ctx context.Context, p *model.Player) error {
	const update = `UPDATE players
		SET name_first=@nameFirst,
			name_last=@nameLast,
			position=@position,
			team=@team,
			active=@active,
			updated=@updated
		WHERE id=@id`

	args := db.namedArgsForPlayer(p)
	args["updated"] = pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}

	if _, err := db.pool.Exec(ctx, update, args); err != nil {
		return fmt.Errorf("error updating player (%s): %w", p.ID, err)
	}
	return nil
}

func (db *postgresDB) namedArgsForPlayer(p *model.Player) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":        p.ID,
		"nameFirst": p.FirstName,
		"nameLast":  p.LastName,
		"position":  string(p.Position),
		"team":      p.Team,
		"active":    p.Active,
	}
}

func playerUnchanged(old, new *model.Player) bool {
	return old.FirstName == new.FirstName &&
		old.LastName == new.LastName &&
		old.Position == new.Position &&
		old.Team == new.Team &&
		old.Active == new.Active
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player

	var pos string
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.FirstName,
		&result.LastName,
		&pos,
		&result.Team,
		&result.Active,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.Position = model.Position(pos)
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}
