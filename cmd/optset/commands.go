package optset

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/optset/internal/version"
	"github.com/arthur-debert/optset/pkg/config"
	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/filesystem"
	"github.com/arthur-debert/optset/pkg/logging"
	"github.com/arthur-debert/optset/pkg/schema"
	"github.com/arthur-debert/optset/pkg/settings"
	"github.com/arthur-debert/optset/pkg/types"
	"github.com/arthur-debert/optset/pkg/ui"
	"github.com/arthur-debert/optset/pkg/ui/confirmations"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every command
type globalFlags struct {
	verbosity  int
	schema     string
	file       string
	onConflict string
	format     string
}

// session is what a command works with once configuration, schema and
// settings file are loaded
type session struct {
	cfg      *config.Config
	store    *settings.Store
	renderer ui.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "optset",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(flags.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&flags.schema, "schema", "", MsgFlagSchema)
	pf.StringVar(&flags.file, "file", "", MsgFlagFile)
	pf.StringVar(&flags.onConflict, "on-conflict", "", MsgFlagOnConflict)
	pf.StringVar(&flags.format, "format", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newGetCmd(flags))
	rootCmd.AddCommand(newSetCmd(flags))
	rootCmd.AddCommand(newOptionsCmd(flags))
	rootCmd.AddCommand(newResetCmd(flags))
	rootCmd.AddCommand(newDescribeCmd(flags))
	rootCmd.AddCommand(newInitCmd(flags))
	rootCmd.AddCommand(newGenSchemaCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig loads the configuration and applies the flags the user set
func (f *globalFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadConfig)
	}

	pf := cmd.Flags()
	if pf.Changed("schema") {
		cfg.Schema = f.schema
	}
	if pf.Changed("file") {
		cfg.File = f.file
	}
	if pf.Changed("on-conflict") {
		cfg.OnConflict = f.onConflict
	}
	if pf.Changed("format") {
		cfg.Format = f.format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRenderer builds the renderer for the configured format
func newRenderer(cmd *cobra.Command, cfg *config.Config) (ui.Renderer, error) {
	format, err := ui.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// open loads the schema into a new store and binds the settings file. When
// create is set a missing settings file is created first; otherwise the
// store stays unbound and shows defaults.
func (f *globalFlags) open(cmd *cobra.Command, create bool) (*session, error) {
	logger := logging.WithFields(map[string]interface{}{
		"component": "cmd",
		"command":   cmd.Name(),
	})

	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	renderer, err := newRenderer(cmd, cfg)
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	sch, err := schema.Load(fsys, cfg.Schema)
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadSchema).
			WithDetails(errors.GetErrorDetails(err))
	}

	confirmer, err := confirmations.FromPolicy(cfg.OnConflict, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	store := settings.New(settings.StoreOptions{FS: fsys, Confirmer: confirmer})
	if err := store.Define(sch); err != nil {
		return nil, err
	}

	exists, err := fileExists(fsys, cfg.File)
	if err != nil {
		return nil, err
	}
	if !exists && create {
		if err := createEmpty(fsys, cfg.File); err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.File).Msg("Created settings file")
		exists = true
	}

	if exists {
		if err := store.BindFile(cfg.File); err != nil {
			return nil, err
		}
	} else {
		logger.Info().Str("path", cfg.File).Msg("Settings file missing, using defaults")
	}

	return &session{cfg: cfg, store: store, renderer: renderer}, nil
}

func fileExists(fsys types.FS, path string) (bool, error) {
	if _, err := fsys.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrPersistenceIO, "cannot access %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return true, nil
}

// createEmpty creates an empty file and its parent directories
func createEmpty(fsys types.FS, path string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrPersistenceIO, "failed to create directory for %s", path).
			WithDetail(errors.DetailPath, path)
	}
	if err := fsys.WriteFile(path, nil, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrPersistenceIO, "failed to create %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return nil
}

// settingNamesCompletion completes setting names from the configured schema
func settingNamesCompletion(flags *globalFlags) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		cfg, err := flags.loadConfig(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		sch, err := schema.LoadFile(cfg.Schema)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return sch.Names(), cobra.ShellCompDirectiveNoFileComp
	}
}
