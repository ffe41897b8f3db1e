package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leaguekit/leaguesettings/internal/config"
	"github.com/leaguekit/leaguesettings/internal/form"
	"github.com/leaguekit/leaguesettings/internal/logging"
	"github.com/leaguekit/leaguesettings/internal/messages"
	"github.com/leaguekit/leaguesettings/internal/worker"
)

var (
	newWorker = func() (worker.Worker, error) { return worker.NewLocal() }
	newUI     = func() form.UI { return form.NewHuhUI() }
)

// runtime is what every command needs once flags are parsed.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	worker worker.Worker
}

func newRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, messages.RootFlagConfig)
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)

	load := func() (*runtime, error) { return loadRuntime(configPath) }
	cmd.AddCommand(
		newEditCmd(load),
		newValidateCmd(load),
		newSchemaCmd(),
		newInjuriesCmd(load),
		newTragicDeathsCmd(load),
		newBioCmd(load),
		newMcpCmd(load),
	)
	return cmd
}

func loadRuntime(configPath string) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf(messages.CLILoadConfigFmt, err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf(messages.CLIInitLoggerFmt, err)
	}
	w, err := newWorker()
	if err != nil {
		return nil, fmt.Errorf(messages.CLIInitWorkerFmt, err)
	}
	return &runtime{cfg: cfg, logger: logger, worker: w}, nil
}

func (rt *runtime) gender() worker.Gender {
	return worker.Gender(rt.cfg.Form.Gender)
}
