package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FrameGroup is one set of near-duplicate frame files under review
type FrameGroup struct {
	Files  []string
	Marked []bool // which files are marked for removal
}

// ReviewModel is the TUI for walking near-duplicate frame groups and
// removing the redundant ones
type ReviewModel struct {
	groups []FrameGroup
	group  int // cursor position across groups
	file   int // cursor position within the current group

	confirming bool
	pending    []string // files queued for removal while confirming
	showHelp   bool

	removed  int
	lastErr  error // first error of the most recent removal batch
	width    int
	height   int
	quitting bool
}

// NewReviewModel builds the review TUI over the detected duplicate groups
func NewReviewModel(duplicates [][]string) ReviewModel {
	groups := make([]FrameGroup, 0, len(duplicates))
	for _, files := range duplicates {
		groups = append(groups, FrameGroup{
			Files:  files,
			Marked: make([]bool, len(files)),
		})
	}

	return ReviewModel{
		groups:   groups,
		showHelp: true,
	}
}

// Init implements tea.Model
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirming(msg)
		}
		return m.updateBrowsing(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case RemovalDoneMsg:
		m = m.applyRemoval(msg)
	}

	return m, nil
}

func (m ReviewModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.groups) == 0 {
		if key := msg.String(); key == "q" || key == "ctrl+c" || key == "enter" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "h", "?":
		m.showHelp = !m.showHelp

	case "up", "k":
		if m.file > 0 {
			m.file--
		}

	case "down", "j":
		if m.file < len(m.groups[m.group].Files)-1 {
			m.file++
		}

	case "left", "p":
		if m.group > 0 {
			m.group--
			m.file = 0
		}

	case "right", "n":
		if m.group < len(m.groups)-1 {
			m.group++
			m.file = 0
		}

	case " ":
		group := &m.groups[m.group]
		group.Marked[m.file] = !group.Marked[m.file]

	case "a": // mark everything but the first frame of the group
		group := &m.groups[m.group]
		for i := range group.Marked {
			group.Marked[i] = i > 0
		}

	case "c":
		group := &m.groups[m.group]
		for i := range group.Marked {
			group.Marked[i] = false
		}

	case "enter":
		pending := m.markedFiles()
		if len(pending) == 0 {
			return m, nil
		}
		m.pending = pending
		m.confirming = true
	}

	return m, nil
}

func (m ReviewModel) updateConfirming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		return m, removeFiles(m.pending)

	case "n", "N", "esc", "ctrl+c":
		m.confirming = false
		m.pending = nil
	}

	return m, nil
}

// markedFiles collects marked files across all groups
func (m ReviewModel) markedFiles() []string {
	var files []string
	for _, group := range m.groups {
		for i, marked := range group.Marked {
			if marked {
				files = append(files, group.Files[i])
			}
		}
	}
	return files
}

// removeFiles deletes the queued files off the Update loop
func removeFiles(paths []string) tea.Cmd {
	return func() tea.Msg {
		msg := RemovalDoneMsg{}
		for _, path := range paths {
			if err := os.Remove(path); err != nil {
				msg.Failed++
				if msg.Err == nil {
					msg.Err = err
				}
				continue
			}
			msg.Removed = append(msg.Removed, path)
		}
		return msg
	}
}

// applyRemoval drops the files that actually got deleted from their groups
// and retires groups that no longer hold more than one frame. Files whose
// removal failed stay in place for another attempt.
func (m ReviewModel) applyRemoval(msg RemovalDoneMsg) ReviewModel {
	m.removed += len(msg.Removed)
	m.lastErr = msg.Err

	removed := make(map[string]bool, len(msg.Removed))
	for _, path := range msg.Removed {
		removed[path] = true
	}
	m.pending = nil

	var kept []FrameGroup
	for _, group := range m.groups {
		var files []string
		for _, file := range group.Files {
			if !removed[file] {
				files = append(files, file)
			}
		}
		if len(files) > 1 {
			kept = append(kept, FrameGroup{Files: files, Marked: make([]bool, len(files))})
		}
	}
	m.groups = kept

	if len(m.groups) == 0 {
		m.quitting = true
		return m
	}
	if m.group >= len(m.groups) {
		m.group = len(m.groups) - 1
	}
	if m.file >= len(m.groups[m.group].Files) {
		m.file = len(m.groups[m.group].Files) - 1
	}

	return m
}

// View implements tea.Model
func (m ReviewModel) View() string {
	if m.quitting {
		out := fmt.Sprintf("Removed %d duplicate frames.\n", m.removed)
		if m.lastErr != nil {
			out += ErrorStyle.Render(fmt.Sprintf("⚠️  Some removals failed: %v", m.lastErr)) + "\n"
		}
		return out
	}

	if len(m.groups) == 0 {
		return SuccessStyle.Render("✅ No duplicate groups left") + "\n\nPress q to quit.\n"
	}

	if m.confirming {
		return m.viewConfirmation()
	}

	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Duplicate Frame Review"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Group %d of %d (%d frames)",
		m.group+1, len(m.groups), len(m.groups[m.group].Files))))
	b.WriteString("\n")
	if m.lastErr != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("⚠️  Some removals failed: %v", m.lastErr)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	group := m.groups[m.group]
	for i, file := range group.Files {
		cursor := "  "
		if i == m.file {
			cursor = "> "
		}
		mark := "[ ]"
		if group.Marked[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, mark, filepath.Base(file))
		if i == m.file {
			line = ProcessingStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString("\n")
		help := "↑/↓ move  ←/→ group  space mark  a mark dupes  c clear  enter remove  q quit  h help"
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(help))
		b.WriteString("\n")
	}

	return b.String()
}

func (m ReviewModel) viewConfirmation() string {
	var b strings.Builder
	b.WriteString(ErrorStyle.Render(fmt.Sprintf("Remove %d marked frames?", len(m.pending))))
	b.WriteString("\n\n")
	for _, file := range m.pending {
		b.WriteString("  " + filepath.Base(file) + "\n")
	}
	b.WriteString("\n[y] remove  [n] cancel\n")
	return b.String()
}
