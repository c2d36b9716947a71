package optset

import (
	"fmt"

	"github.com/arthur-debert/optset/pkg/display"
	"github.com/arthur-debert/optset/pkg/logging"
	"github.com/spf13/cobra"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var withOptions bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd, false)
			if err != nil {
				return err
			}

			listing, err := display.NewListing(s.store, withOptions)
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(listing)
		},
	}

	cmd.Flags().BoolVarP(&withOptions, "options", "o", false, MsgFlagOptions)
	return cmd
}

func newGetCmd(flags *globalFlags) *cobra.Command {
	var literal bool

	cmd := &cobra.Command{
		Use:               "get NAME",
		Short:             MsgGetShort,
		Long:              MsgGetLong,
		Example:           MsgGetExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: settingNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd, false)
			if err != nil {
				return err
			}

			get := s.store.Get
			if literal {
				get = s.store.GetLiteral
			}
			value, err := get(args[0])
			if err != nil {
				return err
			}

			return s.renderer.RenderResult(&display.Value{
				Name:    args[0],
				Value:   value,
				Literal: literal,
			})
		},
	}

	cmd.Flags().BoolVarP(&literal, "literal", "l", false, MsgFlagLiteral)
	return cmd
}

func newSetCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "set NAME VALUE",
		Short:             MsgSetShort,
		Long:              MsgSetLong,
		Example:           MsgSetExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: settingNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.set")

			s, err := flags.open(cmd, true)
			if err != nil {
				return err
			}

			name, raw := args[0], args[1]
			value, err := s.store.ParseValue(name, raw)
			if err != nil {
				return err
			}
			if err := s.store.Set(name, value); err != nil {
				return err
			}

			logger.Info().Str("setting", name).Str("value", raw).Msg("Setting changed")
			return s.renderer.RenderMessage(fmt.Sprintf(MsgSetDone, name, display.Format(value)))
		},
	}
}

func newOptionsCmd(flags *globalFlags) *cobra.Command {
	var literal bool

	cmd := &cobra.Command{
		Use:               "options NAME",
		Short:             MsgOptionsShort,
		Long:              MsgOptionsLong,
		Example:           MsgOptionsExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: settingNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd, false)
			if err != nil {
				return err
			}

			list, err := display.NewOptionList(s.store, args[0], literal)
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(list)
		},
	}

	cmd.Flags().BoolVarP(&literal, "literal", "l", false, MsgFlagLiteral)
	return cmd
}

func newResetCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "reset",
		Short:   MsgResetShort,
		Long:    MsgResetLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd, true)
			if err != nil {
				return err
			}

			if err := s.store.Reset(); err != nil {
				return err
			}
			return s.renderer.RenderMessage(fmt.Sprintf(MsgResetDone, s.cfg.File))
		},
	}
}

func newDescribeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "describe",
		Short:   MsgDescribeShort,
		Long:    MsgDescribeLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd, false)
			if err != nil {
				return err
			}

			listing, err := display.NewListing(s.store, true)
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(display.NewDescription(listing))
		},
	}
}
