package game

import (
	"fmt"
	"log"

	"github.com/decker502/tavola/pkg/config"
	"github.com/decker502/tavola/pkg/utils"
)

// SectionBodyWidth is the wrap width of section body text on the landing page.
const SectionBodyWidth = 560.0

// SectionBodyFontSize is the font size used to lay out section body text.
const SectionBodyFontSize = 18.0

// SiteContent holds everything the landing page needs once loading is complete.
type SiteContent struct {
	Config *config.SiteConfig
	Fonts  *utils.FontLibrary
	// SectionLines maps section ID to its wrapped body lines.
	SectionLines map[string][]string
}

// loadStep is one unit of loading work, executed on its own tick.
type loadStep struct {
	name string
	run  func() error
}

// SiteLoader prepares SiteContent incrementally, one step per Update call,
// and fires the LoadSignal once every step has succeeded.
//
// Steps: load fonts, then lay out the body text of each section.
// A failing step stops the loader; the signal is never fired and Err reports the cause.
type SiteLoader struct {
	signal  *LoadSignal
	content *SiteContent
	steps   []loadStep
	next    int
	err     error
}

// NewSiteLoader creates a loader for the given (already validated) site configuration.
func NewSiteLoader(cfg *config.SiteConfig, signal *LoadSignal) *SiteLoader {
	l := &SiteLoader{
		signal: signal,
		content: &SiteContent{
			Config:       cfg,
			SectionLines: make(map[string][]string, len(cfg.Sections)),
		},
	}

	l.steps = append(l.steps, loadStep{name: "fonts", run: l.loadFonts})
	for _, section := range cfg.Sections {
		s := section
		l.steps = append(l.steps, loadStep{
			name: "section:" + s.ID,
			run:  func() error { return l.layoutSection(s) },
		})
	}

	return l
}

// Update runs the next pending step. It does nothing after completion or failure.
func (l *SiteLoader) Update() {
	if l.err != nil || l.next >= len(l.steps) {
		return
	}

	step := l.steps[l.next]
	if err := step.run(); err != nil {
		l.err = fmt.Errorf("load step %s failed: %w", step.name, err)
		log.Printf("[SiteLoader] %v", l.err)
		return
	}
	l.next++
	log.Printf("[SiteLoader] Step %d/%d done: %s", l.next, len(l.steps), step.name)

	if l.next == len(l.steps) {
		l.signal.Fire()
	}
}

// loadFonts loads the built-in font faces.
func (l *SiteLoader) loadFonts() error {
	fonts, err := utils.NewFontLibrary()
	if err != nil {
		return err
	}
	l.content.Fonts = fonts
	return nil
}

// layoutSection wraps one section's body text.
func (l *SiteLoader) layoutSection(s config.SectionConfig) error {
	if l.content.Fonts == nil {
		return fmt.Errorf("fonts not loaded")
	}
	face := l.content.Fonts.Face(utils.FontRegular, SectionBodyFontSize)
	l.content.SectionLines[s.ID] = utils.WrapText(s.Body, face, SectionBodyWidth)
	return nil
}

// Progress returns the fraction of completed steps in [0, 1].
func (l *SiteLoader) Progress() float64 {
	if len(l.steps) == 0 {
		return 1
	}
	return float64(l.next) / float64(len(l.steps))
}

// Done reports whether every step has completed.
func (l *SiteLoader) Done() bool {
	return l.next >= len(l.steps)
}

// Err returns the error of the failed step, if any.
func (l *SiteLoader) Err() error {
	return l.err
}

// Content returns the loaded content. It is only complete once Done reports true.
func (l *SiteLoader) Content() *SiteContent {
	return l.content
}
