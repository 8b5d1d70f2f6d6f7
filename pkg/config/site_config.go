package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// SiteConfigPath 站点配置在嵌入资源中的路径
const SiteConfigPath = "data/site.yaml"

// SiteConfig 着陆页配置
//
// 配置文件位置: data/site.yaml
type SiteConfig struct {
	// Brand 品牌名与标语（开场序列与加载遮罩显示）
	Brand BrandConfig `yaml:"brand"`

	// Scroll 滚动输入与浮动按钮阈值
	Scroll ScrollConfig `yaml:"scroll"`

	// Sections 页面分区，自上而下排列
	Sections []SectionConfig `yaml:"sections"`

	// Stats 数字滚动统计卡片
	Stats []StatConfig `yaml:"stats"`
}

// BrandConfig 品牌文案
type BrandConfig struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

// ScrollConfig 滚动配置
type ScrollConfig struct {
	// WheelSpeed 鼠标滚轮每格滚动的像素
	WheelSpeed float64 `yaml:"wheelSpeed"`

	// KeyStep 方向键每帧滚动的像素
	KeyStep float64 `yaml:"keyStep"`

	// BackToTop "回到顶部"按钮出现阈值
	BackToTop Threshold `yaml:"backToTop"`

	// Reserve "立即订座"浮动按钮出现阈值
	Reserve Threshold `yaml:"reserve"`
}

// SectionConfig 页面分区
type SectionConfig struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Body   string  `yaml:"body"`
	Height float64 `yaml:"height"`
}

// StatConfig 单个统计数字
type StatConfig struct {
	Label    string        `yaml:"label"`
	Section  string        `yaml:"section"`
	Start    float64       `yaml:"start"`
	End      float64       `yaml:"end"`
	Suffix   string        `yaml:"suffix"`
	Duration time.Duration `yaml:"duration"`
	Delay    time.Duration `yaml:"delay"`
	Grouping bool          `yaml:"grouping"`
}

// ParseSiteConfig 解析 YAML 格式的站点配置并校验
func ParseSiteConfig(data []byte) (*SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse site config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 至少有一个分区，分区 ID 唯一且高度为正
//   - 滚动速度为正，阈值合法
//   - 统计卡片所属分区存在，时长与延迟非负
func (c *SiteConfig) Validate() error {
	if c.Brand.Name == "" {
		return fmt.Errorf("brand.name is required")
	}

	if c.Scroll.WheelSpeed <= 0 {
		return fmt.Errorf("scroll.wheelSpeed must be > 0, got %v", c.Scroll.WheelSpeed)
	}
	if err := c.Scroll.BackToTop.Validate(); err != nil {
		return fmt.Errorf("scroll.backToTop: %w", err)
	}
	if err := c.Scroll.Reserve.Validate(); err != nil {
		return fmt.Errorf("scroll.reserve: %w", err)
	}

	if len(c.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}
	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("sections[%d]: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("sections[%d]: duplicate id %q", i, s.ID)
		}
		if s.Height <= 0 {
			return fmt.Errorf("sections[%d] (%s): height must be > 0", i, s.ID)
		}
		seen[s.ID] = true
	}

	for i, st := range c.Stats {
		if !seen[st.Section] {
			return fmt.Errorf("stats[%d] (%s): unknown section %q", i, st.Label, st.Section)
		}
		if st.Duration < 0 || st.Delay < 0 {
			return fmt.Errorf("stats[%d] (%s): duration and delay must be >= 0", i, st.Label)
		}
	}

	return nil
}

// ContentHeight 返回所有分区高度之和
func (c *SiteConfig) ContentHeight() float64 {
	total := 0.0
	for _, s := range c.Sections {
		total += s.Height
	}
	return total
}

// SectionTop 返回指定分区顶部在页面中的 Y 坐标
func (c *SiteConfig) SectionTop(id string) (float64, bool) {
	y := 0.0
	for _, s := range c.Sections {
		if s.ID == id {
			return y, true
		}
		y += s.Height
	}
	return 0, false
}

// Section 按 ID 查找分区
func (c *SiteConfig) Section(id string) (SectionConfig, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionConfig{}, false
}
