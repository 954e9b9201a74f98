package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfigFile 是测试辅助函数，把配置文本写入临时文件并返回路径。
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "languages.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file failed: %v", err)
	}
	return path
}

// TestLoadValidConfig 验证合法配置的完整解析。
func TestLoadValidConfig(t *testing.T) {
	scanDir := t.TempDir()

	content := strings.Join([]string{
		`dir = "` + scanDir + `"`,
		``,
		`[[languages]]`,
		`name = "Rust"`,
		`extensions = ["rs"]`,
		`[languages.comments]`,
		`line = ["//", "///", "//!"]`,
		`[languages.comments.block]`,
		`open = "/*"`,
		`close = "*/"`,
		``,
		`[[languages]]`,
		`name = "Python"`,
		`extensions = ["py"]`,
		`[languages.comments]`,
		`line = ["#"]`,
	}, "\n")

	cfg, err := Load(writeConfigFile(t, content))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Dir != scanDir {
		t.Fatalf("unexpected dir: %s", cfg.Dir)
	}
	if len(cfg.Languages) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(cfg.Languages))
	}

	rust := cfg.Languages[0]
	if rust.Name != "Rust" || len(rust.Extensions) != 1 || rust.Extensions[0] != "rs" {
		t.Fatalf("unexpected rust entry: %+v", rust)
	}
	if rust.Comments == nil || rust.Comments.Block == nil {
		t.Fatalf("rust comments not parsed: %+v", rust.Comments)
	}
	if rust.Comments.Block.Open != "/*" || rust.Comments.Block.Close != "*/" {
		t.Fatalf("unexpected block tokens: %+v", rust.Comments.Block)
	}

	python := cfg.Languages[1]
	if python.Comments == nil || python.Comments.Block != nil {
		t.Fatalf("python must have no block section: %+v", python.Comments)
	}
}

// TestLoadMissingFile 验证配置文件不存在时返回错误。
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}
}

// TestLoadMalformedTOML 验证语法错误的配置被拒绝。
func TestLoadMalformedTOML(t *testing.T) {
	path := writeConfigFile(t, "dir = [broken\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}

// TestLoadDirectoryMissing 验证缺失 dir 字段是致命错误。
func TestLoadDirectoryMissing(t *testing.T) {
	path := writeConfigFile(t, strings.Join([]string{
		`[[languages]]`,
		`name = "Rust"`,
	}, "\n"))

	_, err := Load(path)
	if !errors.Is(err, ErrDirectoryMissing) {
		t.Fatalf("expected ErrDirectoryMissing, got %v", err)
	}
}

// TestLoadDirectoryNotExist 验证 dir 指向不存在路径时返回错误。
func TestLoadDirectoryNotExist(t *testing.T) {
	path := writeConfigFile(t, strings.Join([]string{
		`dir = "` + filepath.Join(t.TempDir(), "nope") + `"`,
		`[[languages]]`,
		`name = "Rust"`,
	}, "\n"))

	if _, err := Load(path); err == nil {
		t.Fatalf("expected stat error, got nil")
	}
}

// TestLoadDirectoryIsFile 验证 dir 指向普通文件时被拒绝。
func TestLoadDirectoryIsFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(filePath, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file failed: %v", err)
	}

	path := writeConfigFile(t, strings.Join([]string{
		`dir = "` + filePath + `"`,
		`[[languages]]`,
		`name = "Rust"`,
	}, "\n"))

	_, err := Load(path)
	if !errors.Is(err, ErrNotADirectory) {
		t.Fatalf("expected ErrNotADirectory, got %v", err)
	}
}

// TestLoadLanguagesMissing 验证空语言列表是致命错误。
func TestLoadLanguagesMissing(t *testing.T) {
	path := writeConfigFile(t, `dir = "`+t.TempDir()+`"`)

	_, err := Load(path)
	if !errors.Is(err, ErrLanguagesMissing) {
		t.Fatalf("expected ErrLanguagesMissing, got %v", err)
	}
}
