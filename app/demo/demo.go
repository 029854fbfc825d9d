package demo

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/IrineSistiana/dlist/app"
	"github.com/IrineSistiana/dlist/internal/list"
	"github.com/IrineSistiana/dlist/internal/mlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func init() {
	app.RootCmd().AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	var cfgPath string
	c := &cobra.Command{
		Use:   "demo",
		Short: "Build a list of sample records and print it",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			logger := mlog.L()
			cfg := defaultConfig()
			if len(cfgPath) > 0 {
				var err error
				cfg, err = loadConfigFile(cfgPath)
				if err != nil {
					logger.Fatal().Err(err).Str("file", cfgPath).Msg("failed to load config file")
				}
				logger.Info().Str("file", cfgPath).Msg("config file loaded")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if err := run(ctx, cfg, cmd.OutOrStdout(), logger); err != nil {
				logger.Fatal().Err(err).Msg("demo exited")
			}
		},
	}
	c.Flags().StringVarP(&cfgPath, "config", "c", "", "path of the config file, built-in records are used if empty")

	genConfigCmd := &cobra.Command{
		Use:   "gen-config",
		Short: "Generate a config template",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := genConfigTemplate(args[0]); err != nil {
				mlog.L().Fatal().Err(err).Msg("failed to generate config template")
			}
		},
	}
	c.AddCommand(genConfigCmd)
	return c
}

type AppData struct {
	ID          int
	Description string
}

type demo struct {
	logger  *zerolog.Logger // not nil
	out     io.Writer
	metrics *listMetrics
	l       *list.List[AppData]
}

func newDemo(out io.Writer, logger *zerolog.Logger) *demo {
	if logger == nil {
		logger = mlog.Nop()
	}
	return &demo{
		logger:  logger,
		out:     out,
		metrics: newListMetrics(),
		l:       list.New[AppData](),
	}
}

func run(ctx context.Context, cfg *Config, out io.Writer, logger *zerolog.Logger) error {
	d := newDemo(out, logger)
	reg := newMetricsReg()
	if err := regMetrics(reg, d.metrics.collectors()...); err != nil {
		return fmt.Errorf("failed to register metrics, %w", err)
	}

	d.load(cfg.Records)
	d.printForwards()
	d.printBackwards()
	if len(cfg.Remove) > 0 {
		d.remove(cfg.Remove)
		d.printForwards()
	}

	if addr := cfg.Metrics.Addr; len(addr) > 0 {
		return d.serveMetrics(ctx, addr, reg)
	}
	d.l.Clear()
	return nil
}

func (d *demo) load(records []RecordConfig) {
	for i, rc := range records {
		v := AppData{ID: rc.ID, Description: rc.Description}
		var err error
		switch rc.Mode {
		case modeEmplace:
			err = d.l.Emplace(&v, rc.Index)
		default:
			err = d.l.Insert(v, rc.Index)
		}
		d.metrics.observe(rc.Mode, err, d.l.Len())
		if err != nil {
			d.logger.Warn().
				Err(err).
				Int("record", i).
				Int("id", rc.ID).
				Msg("failed to add record")
		}
	}
	d.logger.Debug().Int("len", d.l.Len()).Msg("records loaded")
}

func (d *demo) remove(indexes []int) {
	for _, idx := range indexes {
		err := d.l.Remove(idx)
		d.metrics.observe("remove", err, d.l.Len())
		if err != nil {
			d.logger.Warn().Err(err).Int("index", idx).Msg("failed to remove record")
		}
	}
}

func (d *demo) printRecord(v *AppData) {
	fmt.Fprintf(d.out, "App data %d and description '%s'\n", v.ID, v.Description)
}

func (d *demo) printForwards() {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "Print the whole list forwards")
	for it := d.l.Begin(); !it.Equal(d.l.End()); it.Next() {
		v, err := it.Value()
		if err != nil {
			d.logger.Error().Err(err).Msg("broken forward iteration")
			return
		}
		d.printRecord(v)
	}
}

func (d *demo) printBackwards() {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "Print the whole list backwards")
	for it := d.l.RBegin(); !it.Equal(d.l.REnd()); it.Next() {
		v, err := it.Value()
		if err != nil {
			d.logger.Error().Err(err).Msg("broken backward iteration")
			return
		}
		d.printRecord(v)
	}
}

// serveMetrics blocks until ctx is done.
func (d *demo) serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start prometheus metrics endpoint server, %w", err)
	}
	d.logger.Info().Stringer("addr", l.Addr()).Msg("metrics endpoint server started")

	s := &http.Server{Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
	errC := make(chan error, 1)
	go func() {
		errC <- s.Serve(l)
	}()

	select {
	case <-ctx.Done():
		s.Close()
		d.logger.Info().Msg("metrics endpoint server stopped")
		return nil
	case err := <-errC:
		return fmt.Errorf("metrics endpoint exited, %w", err)
	}
}
