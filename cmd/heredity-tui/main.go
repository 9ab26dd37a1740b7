package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/probgen/heredity/pkg/inference"
	"github.com/probgen/heredity/pkg/pedigree"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF")).
			Padding(0, 1)

	personStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(1, 2).
			MarginLeft(2)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginLeft(2)
)

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "previous person"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "next person"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type model struct {
	ped    *pedigree.Pedigree
	result *inference.Result
	cursor int
	help   help.Model
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < m.ped.Len()-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Heredity — posterior distributions"))
	b.WriteString("\n\n")

	var names strings.Builder
	for i := 0; i < m.ped.Len(); i++ {
		name := m.ped.Person(i).Name
		if i == m.cursor {
			names.WriteString(selectedStyle.Render(name))
		} else {
			names.WriteString(personStyle.Render(name))
		}
		names.WriteString("\n")
	}

	panel := lipgloss.JoinHorizontal(
		lipgloss.Top,
		names.String(),
		panelStyle.Render(m.posteriorView(m.cursor)),
	)
	b.WriteString(panel)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(keys)))
	b.WriteString("\n")

	return b.String()
}

// posteriorView renders one person's gene and trait distributions as bars.
func (m model) posteriorView(i int) string {
	person := m.ped.Person(i)
	post := m.result.Posteriors[i]

	var b strings.Builder
	b.WriteString(labelStyle.Render(person.Name))
	if !m.ped.Founder(i) {
		b.WriteString(fmt.Sprintf("  (mother: %s, father: %s)", person.MotherName, person.FatherName))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Gene copies"))
	b.WriteString("\n")
	for gene := len(post.Gene) - 1; gene >= 0; gene-- {
		b.WriteString(bar(fmt.Sprintf("%d", gene), post.Gene[gene]))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Trait"))
	b.WriteString("\n")
	b.WriteString(bar("True", post.TraitPresent()))
	b.WriteString(bar("False", post.TraitAbsent()))

	return b.String()
}

// bar renders one labelled probability bar scaled to 30 cells.
func bar(label string, p float64) string {
	const width = 30
	filled := int(p*width + 0.5)
	return fmt.Sprintf("  %-5s %s%s %.4f\n",
		label,
		barStyle.Render(strings.Repeat("█", filled)),
		strings.Repeat("░", width-filled),
		p,
	)
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: heredity-tui data.csv")
		os.Exit(1)
	}

	ped, err := pedigree.LoadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load pedigree: %v\n", err)
		os.Exit(1)
	}

	result, err := inference.Run(ped, inference.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "inference failed: %v\n", err)
		os.Exit(1)
	}

	m := model{ped: ped, result: result, help: help.New()}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		os.Exit(1)
	}
}
