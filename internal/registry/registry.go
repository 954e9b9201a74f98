// Package registry 管理语言条目、后缀索引与统计生命周期。
// 该层负责目录遍历与结果聚合，不负责单行语法判定细节。
package registry

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"codecnt/internal/analysis"
	"codecnt/internal/config"
	"codecnt/internal/model"
)

// stats 是单个语言条目的可变聚合状态。
// files 使用集合语义：同一路径重复扫描不会重复计数。
type stats struct {
	files map[string]struct{}
	loc   uint64
}

func newStats() stats {
	return stats{files: make(map[string]struct{})}
}

func (s *stats) reset() {
	s.files = make(map[string]struct{})
	s.loc = 0
}

// Entry 是注册中心中一个语言的完整记录。
type Entry struct {
	Name       string
	Extensions []string
	Comments   analysis.CommentSpec

	stats stats
}

// Registry 持有全部语言条目并提供统计编排能力。
// 一个 Registry 只被一个 goroutine 拥有和修改，不支持并发访问。
type Registry struct {
	dir       string
	entries   []*Entry
	extIndex  map[string]int
	conflicts []model.Conflict
}

// New 创建一个空的注册中心。
func New(dir string) *Registry {
	return &Registry{
		dir:      dir,
		extIndex: make(map[string]int),
	}
}

// AddEntry 注册一个语言条目。
// 后缀冲突遵循“先注册者生效”：冲突的后缀映射被丢弃并记录为事件，
// 条目本身仍然会被加入（其余后缀正常生效）。
func (r *Registry) AddEntry(entry *Entry) {
	id := len(r.entries)
	for _, ext := range entry.Extensions {
		if _, exists := r.extIndex[ext]; exists {
			r.conflicts = append(r.conflicts, model.Conflict{
				Language:  entry.Name,
				Extension: ext,
			})
			continue
		}
		r.extIndex[ext] = id
	}
	entry.stats = newStats()
	r.entries = append(r.entries, entry)
}

// Conflicts 返回构建期间收集的全部后缀冲突事件。
func (r *Registry) Conflicts() []model.Conflict {
	return r.conflicts
}

// Dir 返回被分析的根目录。
func (r *Registry) Dir() string {
	return r.dir
}

// newCommentSpec 把配置中的注释定义转换为合法的 CommentSpec。
func newCommentSpec(cfg *config.CommentsConfig) (analysis.CommentSpec, error) {
	if cfg == nil {
		return analysis.CommentSpec{}, config.ErrCommentsMissing
	}
	if len(cfg.Line) == 0 {
		return analysis.CommentSpec{}, config.ErrLineCommentMissing
	}

	spec := analysis.CommentSpec{
		Line: append([]string(nil), cfg.Line...),
	}

	if cfg.Block != nil {
		if cfg.Block.Open == "" || cfg.Block.Close == "" {
			return analysis.CommentSpec{}, config.ErrInvalidBlockComment
		}
		spec.Block = &analysis.Block{
			Open:  cfg.Block.Open,
			Close: cfg.Block.Close,
		}
	}

	return spec, nil
}

// newEntry 把一条语言配置转换为注册条目，任何校验失败都会中止构建。
func newEntry(cfg config.LanguageConfig) (*Entry, error) {
	if cfg.Name == "" {
		return nil, config.ErrLanguageNameMissing
	}
	if len(cfg.Extensions) == 0 {
		return nil, config.ErrExtensionMissing
	}

	spec, err := newCommentSpec(cfg.Comments)
	if err != nil {
		return nil, fmt.Errorf("language %s: %w", cfg.Name, err)
	}

	return &Entry{
		Name:       cfg.Name,
		Extensions: append([]string(nil), cfg.Extensions...),
		Comments:   spec,
	}, nil
}

// WithConfig 从已通过结构校验的配置构建注册中心。
// 任意一条语言定义非法都会返回错误，绝不返回部分构建的注册中心。
func WithConfig(cfg *config.Config) (*Registry, error) {
	registry := New(cfg.Dir)
	for _, language := range cfg.Languages {
		entry, err := newEntry(language)
		if err != nil {
			return nil, err
		}
		registry.AddEntry(entry)
	}
	return registry, nil
}

// WithDefaults 使用内置语言集合构建注册中心。
func WithDefaults(dir string) *Registry {
	registry := New(dir)
	for _, entry := range builtinEntries() {
		registry.AddEntry(entry)
	}
	return registry
}

// UpdateStats 重新扫描根目录并重建全部统计值。
//
// 语义要点：
// - 每次调用都先清空所有条目的统计，因此重复调用是幂等的；
// - 目录项级别的遍历错误会被跳过（整目录读取失败不影响其余部分）；
// - 没有被任何语言认领的后缀直接忽略；
// - 单文件计数失败是致命的，会中止整个扫描并上抛。
func (r *Registry) UpdateStats() error {
	for _, entry := range r.entries {
		entry.stats.reset()
	}

	return filepath.WalkDir(r.dir, func(path string, item fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// 个别目录项不可读不应终止整体扫描。
			return nil
		}
		if item.IsDir() || !item.Type().IsRegular() {
			return nil
		}

		// 后缀匹配是大小写敏感的精确匹配，去掉前导点号。
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		if ext == "" {
			return nil
		}
		id, ok := r.extIndex[ext]
		if !ok {
			return nil
		}

		entry := r.entries[id]
		loc, err := analysis.CountLines(path, entry.Comments)
		if err != nil {
			return fmt.Errorf("count %s: %w", path, err)
		}

		entry.stats.files[path] = struct{}{}
		entry.stats.loc += loc
		return nil
	})
}

// Snapshot 导出当前统计的只读快照，顺序与注册顺序一致。
func (r *Registry) Snapshot() model.ScanResult {
	result := model.ScanResult{
		ScannedPath: r.dir,
		Languages:   make([]model.LanguageStats, 0, len(r.entries)),
		Conflicts:   append([]model.Conflict(nil), r.conflicts...),
	}

	for _, entry := range r.entries {
		item := model.LanguageStats{
			Language:   entry.Name,
			Extensions: append([]string(nil), entry.Extensions...),
			Files:      int64(len(entry.stats.files)),
			LOC:        entry.stats.loc,
		}
		result.Languages = append(result.Languages, item)
		result.Total.Add(item)
	}

	return result
}
