package advent

import (
	"fmt"

	"github.com/husi/advent-of-tdd/pkg/config"
	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/paths"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(a *app) *cobra.Command {
	var effective, write bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := []byte(config.GenerateTemplate())
			if effective {
				data, err := config.Generate(a.cfg)
				if err != nil {
					return err
				}
				content = data
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(content)
				return err
			}

			target := paths.New().ProjectConfigPath("")
			exists, err := afero.Exists(a.fs, target)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to check %s", target)
			}
			if exists {
				return errors.Newf(errors.ErrAlreadyExists, "%s already exists", target).
					WithDetail("path", target)
			}
			if err := afero.WriteFile(a.fs, target, content, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", target)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&effective, "effective", "e", false, MsgFlagEffective)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
