package commands

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	typedpath "github.com/chipsenkbeil/typed-path-sub000"
	"github.com/chipsenkbeil/typed-path-sub000/grammar"
	"github.com/chipsenkbeil/typed-path-sub000/internal/cliutil"
	"github.com/chipsenkbeil/typed-path-sub000/internal/options"
)

// app carries the state shared by every sub-command of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	output  string

	cfg     Config
	grammar grammar.Grammar
	logger  *slog.Logger
}

// NewRootCmd returns the typedpath root command with all sub-commands.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "typedpath",
		Short: "Parse and join paths under POSIX or Windows rules",
		Long: `typedpath takes paths apart and joins them the way a given platform would,
whatever platform it runs on. No filesystem is ever touched.

Settings are read from typedpath.yaml ($HOME/.config/typedpath, $HOME or the
working directory), then TYPEDPATH_* environment variables, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       typedpath.Version(),
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file (default: typedpath.yaml in $HOME/.config/typedpath)")
	flags.StringP("grammar", "g", grammar.NamePosix, "Path grammar (posix, unix, windows)")
	flags.StringP("format", "f", FormatText, "Output format (text, json, yaml)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Int("max-length", 0, "Reject paths longer than this many bytes (0 disables the check)")
	flags.StringVarP(&a.output, "output", "o", "", "Write output to this file instead of stdout")

	must(cmd.MarkPersistentFlagFilename("config", "yaml", "yml"))
	must(a.v.BindPFlag("grammar", flags.Lookup("grammar")))
	must(a.v.BindPFlag("format", flags.Lookup("format")))
	must(a.v.BindPFlag("log_level", flags.Lookup("log-level")))
	must(a.v.BindPFlag("max_length", flags.Lookup("max-length")))

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		return a.init(cc)
	}

	cmd.AddCommand(
		newComponentsCmd(a),
		newPushCmd(a),
		newInspectCmd(a),
		newValidateCmd(a),
		newMCPCmd(),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) init(cc *cobra.Command) error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if err := ValidateOutputFormat(cfg.Format); err != nil {
		return err
	}
	g, err := options.ResolveGrammar(cfg.Grammar, grammar.NamePosix)
	if err != nil {
		return err
	}
	h, err := newLogHandler(cc.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.grammar = g
	a.logger = slog.New(h)
	slog.SetDefault(a.logger)

	a.logger.Debug("configuration loaded",
		"config", a.v.ConfigFileUsed(),
		"grammar", g.Name(),
		"format", cfg.Format,
	)
	return nil
}

// checkLength applies the configured maximum path length.
func (a *app) checkLength(option, path string) error {
	return options.ValidateMaxLength(option, []byte(path), a.cfg.MaxLength)
}

// emit writes data in the configured format, to the output file when one is
// set and to the command's stdout otherwise. text renders the text format.
func (a *app) emit(cc *cobra.Command, data any, text func(w io.Writer, s *styles)) error {
	var buf bytes.Buffer
	w := cc.OutOrStdout()
	if a.output != "" {
		w = &buf
	}

	if a.cfg.Format == FormatText {
		text(w, newStyles(w))
	} else if err := OutputStructured(w, data, a.cfg.Format); err != nil {
		return err
	}

	if a.output == "" {
		return nil
	}
	if err := cliutil.WriteOutputFile(a.output, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", a.output, err)
	}
	a.logger.Info("output written", "file", a.output, "bytes", buf.Len())
	return nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
