//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-interact/internal/adapters"
	"github.com/trebuchet-org/treb-interact/internal/config"
	"github.com/trebuchet-org/treb-interact/internal/logging"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.StatusSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewOpenForm,
		usecase.NewListModules,
		usecase.NewDescribeCallables,
		usecase.NewInvokeCallable,
		usecase.NewListNetworks,
		usecase.NewShowConfig,

		// App
		NewApp,
	)
	return nil, nil
}
