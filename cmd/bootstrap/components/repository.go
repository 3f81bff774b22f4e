package components

import (
	"campus-reassign/internal/infra/readstore"
	repo_impl "campus-reassign/internal/infra/repository"
	"campus-reassign/internal/usecase/commands"
	"campus-reassign/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewRequestRepository,
			fx.As(new(commands.RequestStore)),
		),
		fx.Annotate(
			repo_impl.NewPolicyRepository,
			fx.As(new(commands.PolicyStore)),
		),
		fx.Annotate(
			repo_impl.NewResourceRepository,
			fx.As(new(commands.ResourceDirectory)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationStore)),
		),
		fx.Annotate(
			repo_impl.NewHistoryRepository,
			fx.As(new(commands.HistorySink)),
		),
		fx.Annotate(
			repo_impl.NewPenaltyRepository,
			fx.As(new(commands.PenaltyLedger)),
		),
		fx.Annotate(
			repo_impl.NewProfileRepository,
			fx.As(new(commands.ProfileStore)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.Notifier)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewReassignmentReadStore,
			fx.As(new(queries.ReassignmentReadStore)),
		),
		fx.Annotate(
			readstore.NewPolicyReadStore,
			fx.As(new(queries.PolicyReadStore)),
		),
		fx.Annotate(
			readstore.NewHistoryReadStore,
			fx.As(new(queries.HistoryReadStore)),
		),
	),
)
