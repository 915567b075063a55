package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fileItem adapts a FileView to the bubbles list component.
type fileItem struct {
	view FileView
}

func (i fileItem) FilterValue() string { return i.view.Path }

func (i fileItem) percent() string {
	if i.view.Total == 0 {
		return "N/A"
	}

	return fmt.Sprintf("%.1f%%", float64(i.view.Covered)/float64(i.view.Total)*100)
}

// fileDelegate renders one file row: right-aligned percentage plus path.
type fileDelegate struct{}

func (d fileDelegate) Height() int  { return 1 }
func (d fileDelegate) Spacing() int { return 0 }
func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d fileDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var pathStyle, percentStyle lipgloss.Style

	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(7).
			Align(lipgloss.Right)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(7).
			Align(lipgloss.Right)
	}

	width := lm.Width() - 9 // Subtract percent width (7) + spacing (2)

	line := fmt.Sprintf("%s  %s",
		percentStyle.Render(file.percent()),
		pathStyle.Render(truncateToWidth(file.view.Path, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))

	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// viewModel is the Bubble Tea model for browsing per-file coverage reports:
// a file list, with a viewport showing the selected file's uncovered lines.
type viewModel struct {
	files      []FileView
	fileList   list.Model
	detail     viewport.Model
	showDetail bool
	width      int
	height     int
}

func newViewModel(files []FileView) viewModel {
	items := make([]list.Item, 0, len(files))
	for _, file := range files {
		items = append(items, fileItem{view: file})
	}

	fileList := list.New(items, fileDelegate{}, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return viewModel{
		files:    files,
		fileList: fileList,
		detail:   viewport.New(80, 20),
	}
}

func (vm viewModel) Init() tea.Cmd {
	return nil
}

func (vm viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		vm.width = msg.Width
		vm.height = msg.Height
		vm.fileList.SetWidth(vm.width - 6)
		vm.fileList.SetHeight(vm.listHeight())
		vm.detail.Width = vm.width - 4
		vm.detail.Height = vm.listHeight()

		return vm, nil

	case tea.KeyMsg:
		return vm.handleKeyPress(msg)
	}

	return vm, cmd
}

func (vm viewModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if vm.showDetail {
		switch msg.String() {
		case "q", "ctrl+c":
			return vm, tea.Quit

		case "esc", "backspace":
			vm.showDetail = false
			return vm, nil
		}

		var cmd tea.Cmd

		vm.detail, cmd = vm.detail.Update(msg)

		return vm, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return vm, tea.Quit

	case "enter":
		if item, ok := vm.fileList.SelectedItem().(fileItem); ok {
			vm.detail.SetContent(item.view.Detail)
			vm.detail.GotoTop()
			vm.showDetail = true
		}

		return vm, nil
	}

	var cmd tea.Cmd

	vm.fileList, cmd = vm.fileList.Update(msg)

	return vm, cmd
}

func (vm viewModel) listHeight() int {
	// Title (2) + footer (1) + border allowance (3).
	height := vm.height - 6
	if height < 5 {
		height = 5
	}

	return height
}

func (vm viewModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(vm.width)

	if vm.showDetail {
		title := titleStyle.Render("📄 Uncovered Lines")
		footer := footerStyle.Render("↑/k up • ↓/j down • esc back • q quit")

		return lipgloss.JoinVertical(lipgloss.Left, title, vm.detail.View(), footer)
	}

	title := titleStyle.Render("📊 Coverage Report")
	footer := footerStyle.Render("↑/k up • ↓/j down • enter details • / filter • q quit")

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return lipgloss.JoinVertical(lipgloss.Left, title, container.Render(vm.fileList.View()), footer)
}
