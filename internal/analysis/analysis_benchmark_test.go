package analysis

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// prepareBenchmarkFile 创建一个用于计数基准测试的 C 风格文件。
func prepareBenchmarkFile(b *testing.B) string {
	b.Helper()

	path := filepath.Join(b.TempDir(), "large.c")

	lines := make([]string, 0, 6000)
	for i := 0; i < 2000; i++ {
		lines = append(lines, "int value"+strconv.Itoa(i)+" = 1; // inline comment")
		lines = append(lines, "/* block comment */")
		lines = append(lines, "void f"+strconv.Itoa(i)+"(void) {}")
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		b.Fatalf("write benchmark fixture failed: %v", err)
	}
	return path
}

// BenchmarkCountLines 衡量单文件计数性能。
func BenchmarkCountLines(b *testing.B) {
	path := prepareBenchmarkFile(b)
	spec := CommentSpec{
		Line:  []string{"//"},
		Block: &Block{Open: "/*", Close: "*/"},
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := CountLines(path, spec); err != nil {
			b.Fatalf("count failed: %v", err)
		}
	}
}
