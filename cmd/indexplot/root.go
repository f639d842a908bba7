package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eth-easl/indexplot/pkg/common"
	"github.com/eth-easl/indexplot/pkg/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "indexplot",
	Short: "Plot benchmark index runtime and memory results",
	Long: `indexplot reads the runtime and memory TSV results of the benchmark index
harness and renders one chart: memory usage as bars stacked by jumps (left
axis) and runtime per benchmark as lines (right axis, log-log).`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initConfig() },
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		setupLogging(cfg.Verbosity)

		return run(cmd.Context(), &cfg)
	},
}

func init() {
	config.SetDefaults(viper.GetViper())

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "Path to a JSON or YAML configuration file")
	flags.String("runtime", common.DefaultRuntimeFile, "Runtime results (benchmark chunk_size runtime runtime_error)")
	flags.String("memory", common.DefaultMemoryFile, "Memory results (chunk_size jumps memory)")
	flags.StringP("output", "o", config.DefaultOutput, "Output image, format taken from the extension")
	flags.Float64("width", config.DefaultWidthInch, "Chart width in inches")
	flags.Float64("height", config.DefaultHeightInch, "Chart height in inches")
	flags.String("title", "", "Chart title")
	flags.Bool("show", true, "Open the chart in the default image viewer and wait for it to close")
	flags.Bool("error-bars", false, "Draw runtime error bars")
	flags.String("table", "", "Also write the plotted values to <table>_memory.csv and <table>_runtime.csv")
	flags.StringP("verbosity", "v", config.DefaultVerbosity, "Logging verbosity - choose from [info, debug, trace]")

	for key, flag := range map[string]string{
		"runtime_file": "runtime",
		"memory_file":  "memory",
		"output":       "output",
		"width_inch":   "width",
		"height_inch":  "height",
		"title":        "title",
		"show":         "show",
		"error_bars":   "error-bars",
		"table_prefix": "table",
		"verbosity":    "verbosity",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			log.Fatal(err)
		}
	}
}

func initConfig() error {
	if cfgFile == "" {
		return nil
	}

	if err := config.ReadInto(viper.GetViper(), cfgFile); err != nil {
		return err
	}
	log.Debugf("Using configuration file %s", viper.ConfigFileUsed())
	return nil
}

func setupLogging(verbosity string) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// Execute runs the root command. An interrupt cancels the wait for the
// image viewer.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}
