package components

import (
	"campus-reassign/internal/pkg/clock"
	"campus-reassign/internal/usecase/commands"
	"campus-reassign/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReassignmentCommands,
		commands.NewPolicyCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReassignmentQueries,
		queries.NewPolicyQueries,
		queries.NewHistoryQueries,
	),
)
