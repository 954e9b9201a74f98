// Package cmd 提供 codecnt 的命令行入口与子命令编排。
package cmd

import (
	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	rootCmd := newRootCmd(version)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codecnt",
		Short: "注释感知的代码行数统计工具",
		Long: "codecnt 按语言统计目录树中的有效代码行数，\n" +
			"排除空行与纯注释行，支持内置语言集合与外部 TOML 配置。",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newWatchCmd())

	return rootCmd
}
