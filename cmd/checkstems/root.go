package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cours-de-grec/stems"
)

const envPrefix = "STEMS"

// app carries state shared by the subcommands.
type app struct {
	out    io.Writer
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out, v: viper.New(), logger: zap.NewNop()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	defaults := stems.DefaultConfig()
	a.v.SetDefault("lexicon_dir", defaults.LexiconDir)
	a.v.SetDefault("workers", defaults.Workers)
	a.v.SetDefault("log_level", "info")

	var configFile string
	var noColor bool
	cmd := &cobra.Command{
		Use:           "checkstems",
		Short:         "Derive Greek principal-part stems and check lexicon consistency",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.readConfig(configFile); err != nil {
				return err
			}
			if noColor {
				color.NoColor = true
			}
			logger, err := newLogger(a.v.GetString("log_level"))
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default ./checkstems.yaml if present)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.BoolVar(&noColor, "no-color", false, "disable coloured output")
	cobra.CheckErr(a.v.BindPFlag("log_level", pf.Lookup("log-level")))

	cmd.AddCommand(a.newCheckCommand(), a.newDeriveCommand(), a.newClassesCommand())
	return cmd
}

// readConfig loads path, or checkstems.yaml from the working directory
// when path is empty. A missing default file is not an error.
func (a *app) readConfig(path string) error {
	if path != "" {
		a.v.SetConfigFile(path)
	} else {
		a.v.SetConfigName("checkstems")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && path == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// config resolves the checker configuration from defaults, the config
// file, STEMS_* variables and flags.
func (a *app) config() (stems.Config, error) {
	var cfg stems.Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return stems.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Partitions) == 0 {
		cfg.Partitions = stems.DefaultPartitions()
	}
	return cfg, cfg.Validate()
}

func (a *app) newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check every lexicon partition against the derivation rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			sum, runErr := stems.NewEngine(a.logger, nil).Check(cmd.Context(), cfg)
			if sum == nil {
				return runErr
			}
			printSummary(a.out, sum)
			if runErr != nil {
				return fmt.Errorf("%d of %d partitions inconsistent", len(sum.Failed()), len(sum.Partitions))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.String("lexica", "", "directory holding the lexicon partitions")
	f.Int("workers", 0, "partitions checked concurrently")
	cobra.CheckErr(a.v.BindPFlag("lexicon_dir", f.Lookup("lexica")))
	cobra.CheckErr(a.v.BindPFlag("workers", f.Lookup("workers")))
	return cmd
}

func (a *app) newDeriveCommand() *cobra.Command {
	var class string
	cmd := &cobra.Command{
		Use:   "derive ROOT",
		Short: "Print the twelve principal-part stems of a root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := stems.ParseVerbClass(class)
			if err != nil {
				return err
			}
			r, err := c.Roots(args[0])
			if err != nil {
				return err
			}
			printRoots(a.out, c, r)
			printStems(a.out, r.Stems())
			return nil
		},
	}
	cmd.Flags().StringVarP(&class, "class", "c", "", "verb class (0a, 0b, 1a, 1b, 1c, 2a, 2b, 2c, 3a)")
	cobra.CheckErr(cmd.MarkFlagRequired("class"))
	return cmd
}

func (a *app) newClassesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the verb classes and the root ending each requires",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range stems.VerbClasses {
				fmt.Fprintf(a.out, "%s\t%s\n", c, c.Ending())
			}
		},
	}
}
