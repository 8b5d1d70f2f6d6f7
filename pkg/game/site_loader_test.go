package game

import (
	"testing"

	"github.com/decker502/tavola/pkg/config"
)

func testSiteConfig() *config.SiteConfig {
	return &config.SiteConfig{
		Brand:  config.BrandConfig{Name: "TAVOLA"},
		Scroll: config.ScrollConfig{WheelSpeed: 60},
		Sections: []config.SectionConfig{
			{ID: "hero", Body: "Fire, flour and family", Height: 640},
			{ID: "visit", Body: "Open daily", Height: 400},
		},
	}
}

// TestSiteLoader_Steps 测试每次 Update 执行一个步骤，全部完成后触发加载信号
func TestSiteLoader_Steps(t *testing.T) {
	signal := NewLoadSignal()
	loader := NewSiteLoader(testSiteConfig(), signal)

	// 字体 + 两个分区 = 3 步
	expectedProgress := []float64{1.0 / 3, 2.0 / 3, 1}
	for i, expected := range expectedProgress {
		if signal.Loaded() {
			t.Fatalf("第 %d 步之前不应触发加载信号", i+1)
		}
		loader.Update()
		if loader.Progress() != expected {
			t.Errorf("第 %d 步后进度应为 %v，实际 %v", i+1, expected, loader.Progress())
		}
	}

	if !loader.Done() || !signal.Loaded() {
		t.Error("全部步骤完成后应触发加载信号")
	}
	if loader.Err() != nil {
		t.Errorf("不应有错误，实际 %v", loader.Err())
	}

	content := loader.Content()
	if content.Fonts == nil {
		t.Error("字体应已加载")
	}
	if lines := content.SectionLines["hero"]; len(lines) != 1 || lines[0] != "Fire, flour and family" {
		t.Errorf("hero 分区文本排版错误：%v", lines)
	}

	// 完成后继续 Update 无效果
	loader.Update()
	if loader.Progress() != 1 {
		t.Errorf("完成后进度应保持 1，实际 %v", loader.Progress())
	}
}
