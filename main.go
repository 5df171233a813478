package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/wavelet/internal/app"
	"github.com/llehouerou/wavelet/internal/config"
	"github.com/llehouerou/wavelet/internal/inbox"
	"github.com/llehouerou/wavelet/internal/logging"
	"github.com/llehouerou/wavelet/internal/mpris"
	"github.com/llehouerou/wavelet/internal/notify"
	"github.com/llehouerou/wavelet/internal/playback"
	"github.com/llehouerou/wavelet/internal/player"
	"github.com/llehouerou/wavelet/internal/playlist"
	"github.com/llehouerou/wavelet/internal/state"
	"github.com/llehouerou/wavelet/internal/stderr"
)

type options struct {
	configFile string
	logLevel   string
	noInbox    bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "wavelet [files...]",
		Short:        "A terminal music player built around a playlist",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "extra config file read after the defaults")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	cmd.Flags().BoolVar(&opts.noInbox, "no-inbox", false, "do not watch the drop folder")
	return cmd
}

func run(opts options, files []string) error {
	var extra []string
	if opts.configFile != "" {
		extra = append(extra, opts.configFile)
	}
	cfg, err := config.LoadFrom(extra...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	log, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Audio backends write to fd 2 and would corrupt the screen.
	if err := stderr.Start(log); err != nil {
		log.Warn("stderr capture unavailable", zap.Error(err))
	}
	defer stderr.Stop()

	st, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer st.Close()

	p := player.New(log)
	defer p.Close()

	svc := playback.New(p, playlist.NewQueue(), log)
	defer svc.Close()

	deps := app.Deps{
		Config:   cfg,
		State:    st,
		Playback: svc,
		Player:   p,
		Files:    files,
		Logger:   log,
	}

	if cfg.Notifications.Desktop {
		n, err := notify.New()
		if err != nil {
			log.Warn("desktop notifications unavailable", zap.Error(err))
		} else {
			timeout := int32(cfg.GetToastDuration().Milliseconds())
			deps.Forwarder = notify.NewForwarder(n, timeout, log)
		}
	}

	if cfg.MprisEnabled() {
		adapter, err := mpris.New(svc, log)
		if err != nil {
			log.Warn("media keys unavailable", zap.Error(err))
		} else {
			defer adapter.Close()
		}
	}

	if cfg.InboxEnabled() && !opts.noInbox {
		w, err := inbox.New(cfg.GetInboxDir(), log)
		if err != nil {
			log.Warn("drop folder unavailable", zap.Error(err))
		} else {
			defer w.Close()
			deps.Inbox = w
		}
	}

	log.Info("starting", zap.Int("files", len(files)))

	prog := tea.NewProgram(app.New(deps), tea.WithAltScreen())
	final, err := prog.Run()
	if m, ok := final.(app.Model); ok {
		m.Shutdown()
	}
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
