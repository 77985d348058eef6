package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/Puiching-Memory/LMT4SwanLab/internal/config"
	"github.com/Puiching-Memory/LMT4SwanLab/internal/host"
	"github.com/Puiching-Memory/LMT4SwanLab/pkg/app"
	"github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase"
)

type dependencies struct {
	cfg         *config.Config
	app         *app.Instance
	connections *clientbase.Connections
	agent       *host.Server
}

func newDependencies(app *app.Instance, cfg *config.Config,
	connections *clientbase.Connections, agent *host.Server) *dependencies {
	return &dependencies{
		cfg:         cfg,
		app:         app,
		connections: connections,
		agent:       agent,
	}
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetReportCaller(true)
	// Stdout carries the JSON-RPC stream, so all logging goes to stderr.
	log.SetOutput(os.Stderr)

	deps, err := InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	deps.app.AddCloseFunc(func() error {
		deps.connections.Close()
		return nil
	})

	go func() {
		err := deps.agent.Serve()
		if err != nil {
			log.Errorf("agent host stopped: %v", err)
		}
		deps.app.Stop(err != nil)
	}()

	// Wait for stdin to close or a shutdown signal
	deps.app.WaitForFinish()
}
