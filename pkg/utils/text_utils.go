package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行（卡片描述为英文）
//   - 如果单词太长超过最大宽度，按字符强制断行
//   - 文本中的换行符始终断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	measure := func(s string) float64 { return measureTextWidth(s, font) }

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, measure, maxWidth)...)
	}
	return lines
}

// wrapParagraph 对单个段落按单词断行
func wrapParagraph(paragraph string, measure func(string) float64, maxWidth float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	currentLine := ""
	for _, word := range words {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if measure(testLine) <= maxWidth {
			currentLine = testLine
			continue
		}

		// 当前行结束，开始新行
		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		// 单词本身超宽，按字符强制断行
		if measure(word) > maxWidth {
			pieces := breakWord(word, measure, maxWidth)
			lines = append(lines, pieces[:len(pieces)-1]...)
			currentLine = pieces[len(pieces)-1]
			continue
		}
		currentLine = word
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// breakWord 按字符拆分超宽单词（支持多字节字符）
func breakWord(word string, measure func(string) float64, maxWidth float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		char := string(r)
		word = word[size:]

		if current != "" && measure(current+char) > maxWidth {
			pieces = append(pieces, current)
			current = char
			continue
		}
		current += char
	}
	return append(pieces, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	// 使用 Measure 方法测量文本尺寸
	width, _ := text.Measure(textStr, font, 0)
	return width
}
