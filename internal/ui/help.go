package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"texttv/internal/domain"
	inputtypes "texttv/internal/ui/input/types"
)

// Section titles of the help pager, in FullHelp column order
var helpSections = []string{"Sidor", "Övrigt"}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys inputtypes.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys inputtypes.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("1"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("11")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("15"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	var help strings.Builder

	help.WriteString(titleStyle.Render(" SVT Text - Hjälp "))
	help.WriteString("\n")

	for i, column := range r.keys.FullHelp() {
		title := "Tangenter"
		if i < len(helpSections) {
			title = helpSections[i]
		}
		help.WriteString(sectionStyle.Render(title))
		help.WriteString("\n")
		for _, b := range column {
			if !b.Enabled() {
				continue
			}
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(padKey(b)), descStyle.Render(b.Help().Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(descStyle.Render("  Sidnummer 100-999. Tomma sidor hoppas över med n och b."))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  Escape stänger felmeddelanden. q stänger den här vyn."))
	return help.String()
}

func padKey(b key.Binding) string {
	return fmt.Sprintf("%-5s", b.Help().Key)
}

// RenderPageContent generates the full text of a page for the pager
func RenderPageContent(page domain.Page) string {
	return fmt.Sprintf(" %d - %s\n\n%s\n", page.Number, page.Category(), page.Text)
}

// PagerOps hands the terminal to an ov pager and takes it back afterwards
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
	run     func(content string) error
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	p := &PagerOps{}
	p.run = p.runPager
	return p
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show returns a command that pages content and reports back with pagerDoneMsg
func (p *PagerOps) Show(what, content string) tea.Cmd {
	return func() tea.Msg {
		return pagerDoneMsg{what: what, err: p.run(content)}
	}
}

// runPager shows content using ov
func (p *PagerOps) runPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
