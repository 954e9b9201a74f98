package registry

import "codecnt/internal/analysis"

// cBlock 是 C 系语言共享的块注释分隔符。
func cBlock() *analysis.Block {
	return &analysis.Block{Open: "/*", Close: "*/"}
}

// builtinEntries 返回内置语言集合。
// 内置集合覆盖常见语言，外部配置可以完全替代它。
func builtinEntries() []*Entry {
	return []*Entry{
		{
			Name:       "Go",
			Extensions: []string{"go"},
			Comments:   analysis.CommentSpec{Line: []string{"//"}, Block: cBlock()},
		},
		{
			Name:       "Rust",
			Extensions: []string{"rs"},
			Comments:   analysis.CommentSpec{Line: []string{"//", "///", "//!"}, Block: cBlock()},
		},
		{
			Name:       "C",
			Extensions: []string{"c", "h"},
			Comments:   analysis.CommentSpec{Line: []string{"//"}, Block: cBlock()},
		},
		{
			Name:       "C++",
			Extensions: []string{"cpp", "cc", "hpp"},
			Comments:   analysis.CommentSpec{Line: []string{"//"}, Block: cBlock()},
		},
		{
			Name:       "Java",
			Extensions: []string{"java"},
			Comments:   analysis.CommentSpec{Line: []string{"//"}, Block: cBlock()},
		},
		{
			Name:       "JavaScript",
			Extensions: []string{"js", "mjs"},
			Comments:   analysis.CommentSpec{Line: []string{"//"}, Block: cBlock()},
		},
		{
			Name:       "TypeScript",
			Extensions: []string{"ts", "tsx"},
			Comments:   analysis.CommentSpec{Line: []string{"//"}, Block: cBlock()},
		},
		{
			Name:       "Python",
			Extensions: []string{"py"},
			Comments:   analysis.CommentSpec{Line: []string{"#"}},
		},
		{
			Name:       "Ruby",
			Extensions: []string{"rb"},
			Comments: analysis.CommentSpec{
				Line:  []string{"#"},
				Block: &analysis.Block{Open: "=begin", Close: "=end"},
			},
		},
		{
			Name:       "Shell",
			Extensions: []string{"sh", "bash"},
			Comments:   analysis.CommentSpec{Line: []string{"#"}},
		},
		{
			Name:       "SQL",
			Extensions: []string{"sql"},
			Comments:   analysis.CommentSpec{Line: []string{"--"}, Block: cBlock()},
		},
	}
}
