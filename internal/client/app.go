package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-group-sync/internal/adapter"
	"github.com/MKhiriev/go-group-sync/internal/config"
	"github.com/MKhiriev/go-group-sync/internal/errbus"
	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/internal/request"
	"github.com/MKhiriev/go-group-sync/internal/store"
	"github.com/MKhiriev/go-group-sync/internal/task"
	"github.com/MKhiriev/go-group-sync/internal/workers"
	"github.com/MKhiriev/go-group-sync/models"
)

type App struct {
	run config.Run

	api           adapter.GroupAPI
	bus           *errbus.Bus
	getGroupData  task.GetGroupDataTask
	refreshJoined task.RefreshJoinedGroupsTask
	workers       *workers.Workers

	logger *logger.Logger
}

// NewApp wires the sync tasks on top of api and gateway. In watch mode a
// periodic sync job is registered next to the error bus.
func NewApp(cfg *config.StructuredConfig, api adapter.GroupAPI, gateway store.GroupGateway, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if api == nil || gateway == nil {
		return nil, errors.New("nil group api or gateway")
	}

	bus := errbus.NewBus(cfg.Workers.ErrorBufferSize, log.GetChildLogger())
	executor := request.NewExecutor(bus, cfg.Adapter.RateLimit, log)

	app := &App{
		run:           cfg.Run,
		api:           api,
		bus:           bus,
		getGroupData:  task.NewGetGroupDataTask(api, gateway, executor, cfg.Workers.FetchConcurrency, log),
		refreshJoined: task.NewRefreshJoinedGroupsTask(api, gateway, executor, log),
		logger:        log,
	}

	background := []workers.Worker{bus}
	if cfg.Run.Watch {
		var opts []task.SyncJobOption
		if cfg.Run.RefreshJoined {
			opts = append(opts, task.WithJoinedGroupsRefresh(app.refreshJoined))
		}
		background = append(background, task.NewSyncJob(app.getGroupData, cfg.Workers.SyncInterval, log, opts...))
	}
	app.workers = workers.New(background...)

	return app, nil
}

// Run performs the initial sync and, in watch mode, keeps synchronizing until
// ctx is done. A session-invalidating error reported at any point stops the
// app with [ErrSessionInvalidated] or [ErrConsentNotGiven].
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	unsubscribe := a.bus.Subscribe(a.sessionInvalidationHandler(cancel))
	defer unsubscribe()

	a.workers.Start(ctx)
	err := a.sync(ctx)
	// delivers events still queued on the bus
	a.workers.Stop()

	cause := context.Cause(ctx)
	if errors.Is(cause, ErrSessionInvalidated) || errors.Is(cause, ErrConsentNotGiven) {
		if err != nil {
			return fmt.Errorf("%w: %w", cause, err)
		}
		return cause
	}

	return err
}

func (a *App) sync(ctx context.Context) error {
	if a.run.RefreshJoined {
		if err := a.refreshJoined.Execute(ctx, task.RefreshJoinedGroupsParams{}); err != nil {
			return err
		}
	}

	if err := task.Run(ctx, a.getGroupData, a.params()).Wait(); err != nil {
		if !a.run.Watch {
			return err
		}
		a.logger.Warn().Err(err).Str("func", "*App.sync").Msg("initial sync failed, waiting for the next run")
	}

	if a.run.Watch {
		<-ctx.Done()
	}

	return nil
}

func (a *App) params() task.GetGroupDataParams {
	if len(a.run.GroupIDs) == 0 {
		return task.FetchAllActive()
	}
	return task.FetchWithIDs(a.run.GroupIDs...)
}

// sessionInvalidationHandler stops the app on session-wide errors. An
// invalid token is also dropped from the adapter so that no further request
// carries it.
func (a *App) sessionInvalidationHandler(stop context.CancelCauseFunc) errbus.Handler {
	return func(_ context.Context, event models.GlobalError) {
		switch event.Kind {
		case models.GlobalErrorInvalidToken:
			a.logger.Error().
				Err(event.Err).
				Str("func", "*App.sessionInvalidationHandler").
				Str("call", event.Call).
				Bool("soft_logout", event.SoftLogout).
				Msg("access token rejected, stopping")
			a.api.SetToken("")
			stop(ErrSessionInvalidated)
		case models.GlobalErrorConsentNotGiven:
			a.logger.Error().
				Err(event.Err).
				Str("func", "*App.sessionInvalidationHandler").
				Str("consent_uri", event.ConsentURI).
				Msg("consent required, stopping")
			stop(fmt.Errorf("%w: %s", ErrConsentNotGiven, event.ConsentURI))
		}
	}
}
