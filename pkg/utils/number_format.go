package utils

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var groupingPrinter = message.NewPrinter(language.English)

// FormatCount 把计数值格式化为显示文本：数值 + 后缀
//
// grouping 为 true 时使用千位分隔符（125000 → "125,000"）。
func FormatCount(v float64, suffix string, grouping bool) string {
	if grouping {
		return groupingPrinter.Sprint(number.Decimal(v)) + suffix
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + suffix
}
