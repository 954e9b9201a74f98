package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"codecnt/internal/config"
	"codecnt/internal/registry"
	"codecnt/internal/report"

	"github.com/spf13/cobra"
)

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	configPath string
	format     string
	output     string
}

// buildRegistry 根据命令行参数构建注册中心。
// 提供 --config 时使用外部 TOML 配置；否则使用内置语言集合 + 目录参数。
func buildRegistry(args []string, configPath string) (*registry.Registry, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return registry.WithConfig(cfg)
	}

	if len(args) == 0 {
		return nil, errors.New("either a directory argument or --config is required")
	}

	dir := strings.TrimSpace(args[0])
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	return registry.WithDefaults(dir), nil
}

// reportConflicts 把后缀注册冲突打印到错误输出。
// 冲突不致命，但必须对用户可见，便于发现配置问题。
func reportConflicts(cmd *cobra.Command, reg *registry.Registry) {
	for _, conflict := range reg.Conflicts() {
		fmt.Fprintf(
			cmd.ErrOrStderr(),
			"extension %q already registered, skipping claim by %s\n",
			conflict.Extension,
			conflict.Language,
		)
	}
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	codecnt scan .
//	codecnt scan ./project --format json --output result.json
//	codecnt scan --config languages.toml
func newScanCmd() *cobra.Command {
	options := scanOptions{
		format: "table",
		output: "output.json",
	}

	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "扫描目录并输出各语言代码行统计",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" {
				return errors.New("unsupported format, allowed values: table, json")
			}

			reg, err := buildRegistry(args, strings.TrimSpace(options.configPath))
			if err != nil {
				return err
			}
			reportConflicts(cmd, reg)

			if err := reg.UpdateStats(); err != nil {
				return err
			}
			result := reg.Snapshot()

			switch format {
			case "table":
				return report.PrintTable(cmd.OutOrStdout(), result)
			case "json":
				if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}

				outputPath := strings.TrimSpace(options.output)
				if outputPath == "" {
					outputPath = "output.json"
				}
				if err := report.WriteJSONFile(outputPath, result); err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nJSON exported to %s\n", outputPath)
				return nil
			default:
				return errors.New("unsupported format")
			}
		},
	}

	scanCmd.Flags().StringVar(&options.configPath, "config", options.configPath, "外部 TOML 配置文件路径")
	scanCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")
	scanCmd.Flags().StringVar(&options.output, "output", options.output, "json 导出文件路径，默认 output.json")

	return scanCmd
}
