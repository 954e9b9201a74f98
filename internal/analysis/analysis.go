// Package analysis 提供注释感知的行级代码统计能力。
// 该层只关心“一行是不是代码”，不负责目录遍历与结果聚合。
package analysis

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Block 描述一种语言的块注释分隔符对。
type Block struct {
	Open  string
	Close string
}

// CommentSpec 描述一种语言如何书写注释。
// Line 为行注释前缀列表（至少一个），Block 为可选的块注释定义，
// nil 表示该语言没有块注释语法（例如 shell 系语言）。
type CommentSpec struct {
	Line  []string
	Block *Block
}

// Classifier 维护跨行的分类状态。
// 唯一需要跨行传递的信息是 insideBlock：上一行结束时是否仍处于块注释中。
// 每个文件必须使用独立的 Classifier，状态绝不跨文件共享。
type Classifier struct {
	spec        CommentSpec
	insideBlock bool
}

// NewClassifier 为一个文件的扫描创建分类器，初始状态在块注释之外。
func NewClassifier(spec CommentSpec) *Classifier {
	return &Classifier{spec: spec}
}

// InsideBlock 返回当前是否处于未闭合的块注释中。
func (c *Classifier) InsideBlock() bool {
	return c.insideBlock
}

// LineIsCode 判断一行是否计入代码行。
//
// 判定顺序：
// 1) 空白行永远不计数；
// 2) 不在块注释中时，首个非空白内容是行注释前缀的行整行视为注释；
// 3) 否则按字节从左到右扫描，维护块注释开/闭状态，
//    在块外遇到任意非注释字符即认为该行含代码，
//    在块外遇到行注释前缀则立即终止扫描。
//
// 已知启发式局限：字符串字面量中的注释符号会被当成真实注释符号处理。
func (c *Classifier) LineIsCode(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	if !c.insideBlock && hasLinePrefix(trimmed, c.spec.Line) {
		return false
	}

	if c.spec.Block == nil {
		// 没有块注释语法时，非空且非行注释的行必然是代码。
		return true
	}

	open := c.spec.Block.Open
	closeToken := c.spec.Block.Close

	start := 0
	codePresent := false

	if c.insideBlock {
		idx := strings.Index(trimmed, closeToken)
		if idx < 0 {
			// 整行都在块注释内部，状态保持不变。
			return false
		}
		start = idx + len(closeToken)
		c.insideBlock = false
	}

	for start < len(trimmed) {
		rest := trimmed[start:]
		switch {
		case !c.insideBlock && strings.HasPrefix(rest, open):
			start += len(open)
			c.insideBlock = true
		case strings.HasPrefix(rest, closeToken):
			// 块外出现孤立的闭合符也按闭合处理，扫描器不追踪嵌套深度。
			start += len(closeToken)
			c.insideBlock = false
		case !c.insideBlock:
			if hasLinePrefix(rest, c.spec.Line) {
				// 块外的行注释标记终止本行的代码判定。
				return codePresent
			}
			codePresent = true
			start++
		default:
			start++
		}
	}

	return codePresent
}

// hasLinePrefix 判断去掉左侧空白后的文本是否以任一行注释前缀开头。
func hasLinePrefix(text string, prefixes []string) bool {
	trimmed := strings.TrimLeft(text, " \t")
	for _, prefix := range prefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// CountLines 统计单个文件的有效代码行数。
//
// 约束说明：
// - path 必须指向常规文件，否则返回错误；
// - 采用流式按行读取，不会把整个文件一次性载入内存；
// - 非法 UTF-8 行直接跳过，不计数也不中断扫描（二进制/损坏文件容错）。
func CountLines(path string, spec CommentSpec) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("not a regular file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	classifier := NewClassifier(spec)
	var count uint64

	// 这里使用 ReadString('\n') 做“按行流式”读取，
	// 避免 bufio.Scanner 的单行长度上限影响超长行文件。
	reader := bufio.NewReader(file)
	for {
		line, readErr := reader.ReadString('\n')
		if errors.Is(readErr, io.EOF) && len(line) == 0 {
			break
		}
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return count, fmt.Errorf("read file: %w", readErr)
		}

		current := normalizeLine(line)
		if utf8.ValidString(current) && classifier.LineIsCode(current) {
			count++
		}

		// EOF 且 line 非空代表“最后一行没有换行符”，这行已经处理完。
		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	return count, nil
}

// normalizeLine 去除每行末尾的换行符。
// 该函数适配 Windows 的 \r\n 与 Unix 的 \n。
func normalizeLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}
