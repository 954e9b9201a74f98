package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"codecnt/internal/report"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchOptions 存放 watch 命令的可配置参数。
type watchOptions struct {
	configPath string
	debounce   time.Duration
}

// newWatchCmd 创建 watch 子命令。
// 命令持续监听根目录，文件变更后在去抖窗口结束时重新扫描并输出统计。
// 重扫描依赖 UpdateStats 的幂等语义：每次都从零重建统计值。
func newWatchCmd() *cobra.Command {
	options := watchOptions{
		debounce: 250 * time.Millisecond,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "监听目录变更并持续刷新统计",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(args, options.configPath)
			if err != nil {
				return err
			}
			reportConflicts(cmd, reg)

			rescan := func() error {
				if err := reg.UpdateStats(); err != nil {
					return err
				}
				return report.PrintTable(cmd.OutOrStdout(), reg.Snapshot())
			}

			if err := rescan(); err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			if err := addWatchRecursive(watcher, reg.Dir()); err != nil {
				return err
			}

			debounce := options.debounce
			if debounce <= 0 {
				debounce = 250 * time.Millisecond
			}

			timer := time.NewTimer(time.Hour)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			pending := false

			resetDebounce := func() {
				if pending {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
				}
				timer.Reset(debounce)
				pending = true
			}

			ctx := cmd.Context()
			for {
				select {
				case <-ctx.Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					// 新建目录需要补充加入监听，否则其内部变更不可见。
					if event.Op&fsnotify.Create != 0 {
						if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
							_ = addWatchRecursive(watcher, event.Name)
						}
					}
					resetDebounce()
				case watchErr, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", watchErr)
				case <-timer.C:
					pending = false
					if err := rescan(); err != nil {
						return err
					}
				}
			}
		},
	}

	watchCmd.Flags().StringVar(&options.configPath, "config", options.configPath, "外部 TOML 配置文件路径")
	watchCmd.Flags().DurationVar(&options.debounce, "debounce", options.debounce, "变更事件去抖窗口")

	return watchCmd
}

// addWatchRecursive 把 root 及其全部子目录加入监听。
// 单个子目录添加失败只跳过该目录，不终止整体监听。
func addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, item fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if !item.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return nil
		}
		return nil
	})
}
