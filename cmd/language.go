package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"codecnt/internal/registry"

	"github.com/spf13/cobra"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示内置语言集合以及对应文件后缀。
func newLanguageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示内置语言及后缀",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "LANGUAGE\tEXTENSIONS"); err != nil {
				return err
			}

			snapshot := registry.WithDefaults(".").Snapshot()
			for _, item := range snapshot.Languages {
				if _, err := fmt.Fprintf(writer, "%s\t%s\n", item.Language, strings.Join(item.Extensions, ", ")); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}
