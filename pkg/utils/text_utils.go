package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle 字体样式
type FontStyle int

const (
	// FontRegular 常规字重
	FontRegular FontStyle = iota
	// FontBold 粗体
	FontBold
)

// FontLibrary 缓存字体源与各字号的字体
type FontLibrary struct {
	sources map[FontStyle]*text.GoTextFaceSource
	faces   map[fontKey]*text.GoTextFace
}

type fontKey struct {
	style FontStyle
	size  float64
}

// NewFontLibrary 加载内置 Go 字体
func NewFontLibrary() (*FontLibrary, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &FontLibrary{
		sources: map[FontStyle]*text.GoTextFaceSource{
			FontRegular: regular,
			FontBold:    bold,
		},
		faces: make(map[fontKey]*text.GoTextFace),
	}, nil
}

// Face 返回指定样式和字号的字体（同一组合只创建一次）
func (l *FontLibrary) Face(style FontStyle, size float64) *text.GoTextFace {
	key := fontKey{style: style, size: size}
	if face, ok := l.faces[key]; ok {
		return face
	}
	face := &text.GoTextFace{Source: l.sources[style], Size: size}
	l.faces[key] = face
	return face
}

// WrapText 将文本按指定宽度在空格处换行
//
// 换行规则:
//   - 在空格处断行
//   - 单个单词超过最大宽度时独占一行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		if currentLine == "" {
			currentLine = word
			continue
		}
		testLine := currentLine + " " + word
		if measureTextWidth(testLine, font) > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
			continue
		}
		currentLine = testLine
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
