// Package config 负责加载并校验外部 TOML 配置。
// 配置中的语言定义在这里只做“结构级”校验，
// 逐语言的语义校验（名称、后缀、注释定义）由注册中心在转换时完成。
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// 配置错误分类。
// 这些错误都是致命的：任何一个出现都不会产出可用的注册中心。
var (
	ErrDirectoryMissing    = errors.New("directory path missing")
	ErrNotADirectory       = errors.New("path is not a directory")
	ErrLanguagesMissing    = errors.New("languages list missing")
	ErrLanguageNameMissing = errors.New("language name missing")
	ErrExtensionMissing    = errors.New("file extension not defined")
	ErrCommentsMissing     = errors.New("comment not defined")
	ErrLineCommentMissing  = errors.New("line comment not defined")
	ErrInvalidBlockComment = errors.New("invalid block comment")
)

// BlockConfig 是块注释定义的原始形态。
// open/close 缺失或为空串都是非法的（空串会匹配任意位置）。
type BlockConfig struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// CommentsConfig 是语言注释定义的原始形态。
// Block 使用指针区分“没有该小节”与“有小节但内容非法”。
type CommentsConfig struct {
	Line  []string     `toml:"line"`
	Block *BlockConfig `toml:"block"`
}

// LanguageConfig 是单个语言定义的原始形态。
type LanguageConfig struct {
	Name       string          `toml:"name"`
	Extensions []string        `toml:"extensions"`
	Comments   *CommentsConfig `toml:"comments"`
}

// Config 是整个配置文件的根结构。
type Config struct {
	Dir       string           `toml:"dir"`
	Languages []LanguageConfig `toml:"languages"`
}

// Load 读取并解析配置文件，随后执行结构级校验。
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查根目录与语言列表。
// 根目录必须存在且是目录；语言列表必须非空。
func (c *Config) Validate() error {
	if c.Dir == "" {
		return ErrDirectoryMissing
	}

	info, err := os.Stat(c.Dir)
	if err != nil {
		return fmt.Errorf("stat config dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, c.Dir)
	}

	if len(c.Languages) == 0 {
		return ErrLanguagesMissing
	}
	return nil
}
