package main

import (
	"facultydesk/common"
	"facultydesk/config"
	"facultydesk/domain/contribution"
	"facultydesk/domain/faculty"
	"facultydesk/domain/review"
	"facultydesk/infra/tracing"
	"facultydesk/servehttp"
	"facultydesk/session"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config failed: %v", err)
	}
	common.ConfigureLogging(cfg.LogLevel, cfg.LogFormat)
	logrus.Info("service start")

	if cfg.TracingEnabled {
		closer, err := tracing.InitTracer(common.ServiceName)
		if err != nil {
			logrus.Fatalf("init tracer failed: %v", err)
		}
		defer closer.Close()
	}

	seed := faculty.DefaultSeed
	if cfg.SeedFile != "" {
		if seed, err = faculty.LoadSeedFile(cfg.SeedFile); err != nil {
			logrus.Fatalf("load seed failed: %v", err)
		}
	}

	// faculty and contribution ids come from separate workers, so they need distinct machine ids
	directory := faculty.NewStore(common.NewIdWorker(cfg.MachineID), seed)
	queue := contribution.NewQueue(common.NewIdWorker(cfg.MachineID+1), nil)
	logrus.Infof("directory seeded with %d faculty", len(directory.List()))

	sessions := session.NewManager(session.Settings{
		AdminUsername:   cfg.AdminUsername,
		AdminPassword:   cfg.AdminPassword,
		TokenExpiration: cfg.SessionTTL,
		LoginRate:       cfg.LoginRate,
		LoginBurst:      cfg.LoginBurst,
	})

	engine := servehttp.BuildEngine(servehttp.Components{
		Coordinator: review.NewCoordinator(directory, queue),
		Sessions:    sessions,
	})
	if err := servehttp.StartHTTPServer(engine, cfg.Addr()); err != nil {
		logrus.Errorf("http server stopped: %v", err)
	}
	logrus.Info("service exiting")
}
