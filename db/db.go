package db

import (
	"context"

	"github.com/sethclem/Sleeper/model"
)

type DB interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
	Search(ctx context.Context, query string, pos model.Position) ([]model.Player, error)

	ListLeagues(ctx context.Context) ([]model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	AddLeague(ctx context.Context, league *model.League) error
	ArchiveLeague(ctx context.Context, id int32) error
}
