package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sethclem/Sleeper/model"
)

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.League, error) {
	const query = `SELECT id, external_id, name, year, archived FROM leagues
					WHERE archived=false ORDER BY year DESC, name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}

	results := make([]model.League, 0, 4)
	for rows.Next() {
		var l model.League
		if err := rows.Scan(&l.ID, &l.ExternalID, &l.Name, &l.Year, &l.Archived); err != nil {
			return nil, fmt.Errorf("error scanning league: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	const query = `SELECT id, external_id, name, year, archived FROM leagues WHERE id=@id`

	var l model.League
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	if err := row.Scan(&l.ID, &l.ExternalID, &l.Name, &l.Year, &l.Archived); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error getting league %d: %w", id, err)
	}

	return &l, nil
}

func (db *postgresDB) AddLeague(ctx context.Context, league *model.League) error {
	const insert = `INSERT INTO leagues(external_id, name, year)
					VALUES (@externalID, @name, @year)
					RETURNING id`

	args := pgx.NamedArgs{
		"externalID": league.ExternalID,
		"name":       league.Name,
		"year":       league.Year,
	}
	row := db.pool.QueryRow(ctx, insert, args)
	if err := row.Scan(&league.ID); err != nil {
		return fmt.Errorf("error inserting league %s: %w", league.Name, err)
	}

	return nil
}

func (db *postgresDB) ArchiveLeague(ctx context.Context, id int32) error {
	const update = `UPDATE leagues SET archived=true WHERE id=@id`

	tag, err := db.pool.Exec(ctx, update, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error archiving league %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}

	return nil
}
