package components

import (
	"equiplend/internal/infra/db"
	"equiplend/internal/infra/readstore"
	"equiplend/internal/infra/uow"
	"equiplend/internal/usecase/commands"
	"equiplend/internal/usecase/queries"
	"equiplend/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingQueries)),
		),
		fx.Annotate(
			readstore.NewEquipmentReadStore,
			fx.As(new(queries.EquipmentQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserQueries)),
			fx.As(new(commands.CredentialReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
