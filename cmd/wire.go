//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Puiching-Memory/LMT4SwanLab/internal/config"
	"github.com/Puiching-Memory/LMT4SwanLab/internal/host"
	"github.com/Puiching-Memory/LMT4SwanLab/internal/openapi"
	"github.com/Puiching-Memory/LMT4SwanLab/internal/secret"
	"github.com/Puiching-Memory/LMT4SwanLab/internal/tools"
	"github.com/Puiching-Memory/LMT4SwanLab/pkg/app"
	"github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase"
	cbhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http"
	interceptors_inflight "github.com/Puiching-Memory/LMT4SwanLab/pkg/interceptors/in-flight"
)

// wire up the dependencies.
func InitializeDependencies() (*dependencies, error) {
	wire.Build(config.NewConfigFromEnv, app.NewInstance,
		cbhttp.NewConfigFromEnv, cbhttp.NewInstance,
		interceptors_inflight.NewConfigFromEnv, interceptors_inflight.NewInterceptor,
		clientbase.WireSet,
		secret.NewStoreFromConfig,
		openapi.NewClient, wire.Bind(new(openapi.Api), new(*openapi.Client)),
		tools.NewRegistry,
		host.NewServer,
		newDependencies)
	return &dependencies{}, nil
}
