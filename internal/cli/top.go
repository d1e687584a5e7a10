package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lkirchner/graphlens/pkg/centrality"
	"github.com/lkirchner/graphlens/pkg/graph"
	"github.com/lkirchner/graphlens/pkg/graphio"
)

// topCommand creates the top command, an interactive node browser ranked by
// degree centrality.
func (c *CLI) topCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top [graph.graphml]",
		Short: "Browse nodes ranked by degree centrality",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			path := cfg.Paths.GraphML
			if len(args) > 0 {
				path = args[0]
			}

			g, err := graphio.ReadGraphMLFile(path)
			if err != nil {
				return err
			}
			scores := centrality.Sorted(centrality.Degree(g))
			if len(scores) == 0 {
				printWarning("Graph has no nodes")
				return nil
			}

			model := newNodeListModel(g, scores)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	return cmd
}

// =============================================================================
// NodeListModel - Interactive centrality browser
// =============================================================================

// nodeListModel is the bubbletea model for browsing ranked nodes.
type nodeListModel struct {
	graph  *graph.Graph
	scores []centrality.Score
	cursor int
	height int
	offset int
}

func newNodeListModel(g *graph.Graph, scores []centrality.Score) nodeListModel {
	return nodeListModel{
		graph:  g,
		scores: scores,
		height: 15,
	}
}

func (m nodeListModel) Init() tea.Cmd {
	return nil
}

func (m nodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.scores)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g", "home":
			m.cursor = 0
			m.offset = 0
		case "G", "end":
			m.cursor = len(m.scores) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m nodeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Degree Centrality"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.scores) {
		end = len(m.scores)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		s := m.scores[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		degree := 0
		if id, ok := m.graph.ID(s.Node); ok {
			degree = m.graph.Degree(id)
		}
		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", i+1),
			s.Node,
			fmt.Sprintf("%d", degree),
			fmt.Sprintf("%.4f", s.Value),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Rank", "Node", "Degree", "Centrality").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col == 1 || col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	sel := m.scores[m.cursor]
	neighbors := m.graph.Neighbors(sel.Node)
	shown := neighbors
	if len(shown) > 8 {
		shown = shown[:8]
	}
	detail := fmt.Sprintf("  %s connects to %d nodes", sel.Node, len(neighbors))
	if len(shown) > 0 {
		detail += ": " + strings.Join(shown, ", ")
		if len(neighbors) > len(shown) {
			detail += ", …"
		}
	}
	b.WriteString(StyleDim.Render(detail))
	b.WriteString("\n")
	if attrs := m.graph.Attrs(sel.Node); len(attrs) > 0 {
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + "=" + attrs[k]
		}
		b.WriteString(StyleDim.Render("  " + strings.Join(pairs, "  ")))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.scores))))

	return b.String()
}
