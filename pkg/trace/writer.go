package trace

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// Format 输出格式
type Format string

const (
	// FormatText 终端友好的纯文本
	FormatText Format = "text"
	// FormatMarkdown Markdown 表格
	FormatMarkdown Format = "markdown"
)

// ParseFormat 解析输出格式名称
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatMarkdown:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text or markdown)", s)
	}
}

// Write 按指定格式输出时间线
func Write(w io.Writer, t *Timeline, format Format) error {
	switch format {
	case FormatMarkdown:
		return WriteMarkdown(w, t)
	case FormatText:
		return WriteText(w, t)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// formatAt 以秒为单位格式化时间戳，如 "1.048s"
func formatAt(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64) + "s"
}

// WriteText 逐行输出事件
func WriteText(w io.Writer, t *Timeline) error {
	for _, e := range t.Events {
		if _, err := fmt.Fprintf(w, "%9s  %-16s %s\n", formatAt(e.At), e.Source, e.Change); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d events in %s, %d pending after teardown\n", len(t.Events), formatAt(t.Until), t.Pending)
	return err
}

// WriteMarkdown 输出概要、事件表格与按来源统计的饼图
func WriteMarkdown(w io.Writer, t *Timeline) error {
	md := markdown.NewMarkdown(w)

	md.H1("Tavola Timeline")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Duration", formatAt(t.Until)},
			{"Events", strconv.Itoa(len(t.Events))},
			{"Pending after teardown", strconv.Itoa(t.Pending)},
		},
	})
	md.PlainText("")

	md.H2("Events")
	md.PlainText("")
	rows := make([][]string, 0, len(t.Events))
	for _, e := range t.Events {
		rows = append(rows, []string{formatAt(e.At), "`" + e.Source + "`", e.Change})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Time", "Source", "Change"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(t.Events) > 0 {
		chart := piechart.NewPieChart(
			io.Discard,
			piechart.WithTitle("Events per source"),
			piechart.WithShowData(true),
		)
		for _, source := range t.Sources() {
			chart.LabelAndIntValue(source, uint64(t.Count(source)))
		}
		md.H2("Sources")
		md.PlainText("")
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	}

	return md.Build()
}
