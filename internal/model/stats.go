// Package model 定义 codecnt 的核心数据模型。
// 这些结构会被注册中心、输出层和命令层共同使用。
package model

// LanguageStats 表示某个语言的聚合结果。
//
// 注意：
// - Files 表示去重后的文件数量（同一路径只计一次）
// - LOC 表示累计的有效代码行数（排除空行和纯注释行）
type LanguageStats struct {
	Language   string   `json:"language"`
	Extensions []string `json:"extensions"`
	Files      int64    `json:"files"`
	LOC        uint64   `json:"loc"`
}

// TotalStats 表示项目级总计信息。
type TotalStats struct {
	Files int64  `json:"files"`
	LOC   uint64 `json:"loc"`
}

// Add 将一个语言的统计值叠加到总计中。
func (t *TotalStats) Add(other LanguageStats) {
	t.Files += other.Files
	t.LOC += other.LOC
}

// Conflict 记录一次后缀注册冲突。
// 设计为“冲突不阻断注册”，保留先注册者并把事件暴露给调用方。
type Conflict struct {
	Language  string `json:"language"`
	Extension string `json:"extension"`
}

// ScanResult 是一次统计扫描的完整输出模型。
// 包含语言级汇总、全局总计和注册冲突列表。
type ScanResult struct {
	ScannedPath string          `json:"scanned_path"`
	Languages   []LanguageStats `json:"languages"`
	Total       TotalStats      `json:"total"`
	Conflicts   []Conflict      `json:"conflicts,omitempty"`
}
