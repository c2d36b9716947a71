package optset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/filesystem"
	"github.com/arthur-debert/optset/pkg/logging"
	"github.com/arthur-debert/optset/pkg/schema"
	"github.com/arthur-debert/optset/pkg/settings"
	"github.com/spf13/cobra"
)

// schemaFormatFor picks the generated format from a schema file extension
func schemaFormatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return schema.FormatTOML, nil
	case ".yaml", ".yml":
		return schema.FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"cannot generate a schema for %s, use a .toml or .yaml path", path).
			WithDetail(errors.DetailPath, path)
	}
}

func newInitCmd(flags *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.init")

			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, cfg)
			if err != nil {
				return err
			}
			if !strings.EqualFold(filepath.Ext(cfg.File), settings.FileExtension) {
				return errors.Newf(errors.ErrInvalidInput, "settings file must be a %s file", settings.FileExtension).
					WithDetail(errors.DetailPath, cfg.File)
			}

			fsys := filesystem.NewOS()

			format, err := schemaFormatFor(cfg.Schema)
			if err != nil {
				return err
			}
			exists, err := fileExists(fsys, cfg.Schema)
			if err != nil {
				return err
			}
			if exists && !force {
				if err := renderer.RenderMessage(fmt.Sprintf(MsgFileExists, cfg.Schema)); err != nil {
					return err
				}
			} else {
				content, err := schema.Generate(format)
				if err != nil {
					return err
				}
				if err := fsys.MkdirAll(filepath.Dir(cfg.Schema), 0755); err != nil {
					return errors.Wrapf(err, errors.ErrPersistenceIO, "failed to create directory for %s", cfg.Schema)
				}
				if err := fsys.WriteFile(cfg.Schema, content, 0644); err != nil {
					return errors.Wrapf(err, errors.ErrPersistenceIO, "failed to write %s", cfg.Schema).
						WithDetail(errors.DetailPath, cfg.Schema)
				}
				logger.Info().Str("path", cfg.Schema).Msg("Wrote example schema")
				if err := renderer.RenderMessage(fmt.Sprintf(MsgCreatedFile, cfg.Schema)); err != nil {
					return err
				}
			}

			exists, err = fileExists(fsys, cfg.File)
			if err != nil {
				return err
			}
			if exists && !force {
				return renderer.RenderMessage(fmt.Sprintf(MsgFileExists, cfg.File))
			}
			if err := createEmpty(fsys, cfg.File); err != nil {
				return err
			}
			logger.Info().Str("path", cfg.File).Msg("Created settings file")
			return renderer.RenderMessage(fmt.Sprintf(MsgCreatedFile, cfg.File))
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newGenSchemaCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:     "gen-schema",
		Short:   MsgGenSchemaShort,
		Long:    MsgGenSchemaLong,
		Example: MsgGenSchemaExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := schema.Generate(format)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(content)
				return err
			}

			if err := os.WriteFile(output, content, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrPersistenceIO, "failed to write %s", output).
					WithDetail(errors.DetailPath, output)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgSchemaWritten+"\n", output)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", schema.FormatTOML, MsgFlagGenFormat)
	cmd.Flags().StringVarP(&output, "write", "w", "", MsgFlagWrite)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
