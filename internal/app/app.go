package app

import (
	"github.com/trebuchet-org/treb-interact/internal/adapters/httpapi"
	"github.com/trebuchet-org/treb-interact/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Accounts usecase.AccountResolver

	// Use cases
	OpenForm          *usecase.OpenForm
	ListModules       *usecase.ListModules
	DescribeCallables *usecase.DescribeCallables
	InvokeCallable    *usecase.InvokeCallable
	ListNetworks      *usecase.ListNetworks
	ShowConfig        *usecase.ShowConfig

	// Surfaces
	FormRunner *interactive.FormRunner
	Server     *httpapi.Server
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	accounts usecase.AccountResolver,
	openForm *usecase.OpenForm,
	listModules *usecase.ListModules,
	describeCallables *usecase.DescribeCallables,
	invokeCallable *usecase.InvokeCallable,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	formRunner *interactive.FormRunner,
	server *httpapi.Server,
) (*App, error) {
	return &App{
		Config:            cfg,
		Accounts:          accounts,
		OpenForm:          openForm,
		ListModules:       listModules,
		DescribeCallables: describeCallables,
		InvokeCallable:    invokeCallable,
		ListNetworks:      listNetworks,
		ShowConfig:        showConfig,
		FormRunner:        formRunner,
		Server:            server,
	}, nil
}
