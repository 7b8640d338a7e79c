package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/model"
	"github.com/matzehuels/blockview/pkg/pipeline"
)

// moveStep is how far one arrow key press shifts the root block.
const moveStep = 10

// Inspector styles
var (
	inspectKeyStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	inspectDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	inspectErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// inspectCommand starts the interactive inspector.
func (c *CLI) inspectCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:               "inspect <sample>",
		Short:             "Interactively toggle direction, mode and highlight and watch anchors move",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := NewInspectModel(ctx, c.newRunner(), c.options(args[0], flags))
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// InspectModel - Interactive layout inspector
// =============================================================================

// InspectModel is the bubbletea model for the block inspector. Every key
// press rebuilds and lays out the sample, so the anchor table always shows
// freshly published positions.
type InspectModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	opts   pipeline.Options

	highlights []string
	hlIndex    int

	Result *pipeline.Result
	Err    error
}

// NewInspectModel validates opts, collects the highlight targets of the
// sample's root block and runs the first layout.
func NewInspectModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (InspectModel, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return InspectModel{}, err
	}
	root, err := pipeline.BuildTree(opts)
	if err != nil {
		return InspectModel{}, err
	}
	m := InspectModel{
		ctx:        ctx,
		runner:     runner,
		opts:       opts,
		highlights: highlightTargets(root),
	}
	for i, h := range m.highlights {
		if h == opts.Highlight {
			m.hlIndex = i
		}
	}
	m = m.relayout()
	return m, m.Err
}

// highlightTargets lists "" (no highlight), "block" and every connector of b
// in flag form.
func highlightTargets(b *model.Block) []string {
	targets := []string{"", pipeline.HighlightBlock}
	if b.PreviousConnection() != nil {
		targets = append(targets, pipeline.HighlightPrevious)
	}
	if b.NextConnection() != nil {
		targets = append(targets, pipeline.HighlightNext)
	}
	if b.OutputConnection() != nil {
		targets = append(targets, pipeline.HighlightOutput)
	}
	for _, in := range b.Inputs() {
		if in.Connection() != nil {
			targets = append(targets, pipeline.Highlight{Target: pipeline.HighlightInput, Input: in.Name}.String())
		}
	}
	return targets
}

// Options returns the current pipeline options.
func (m InspectModel) Options() pipeline.Options { return m.opts }

func (m InspectModel) relayout() InspectModel {
	m.opts.Highlight = m.highlights[m.hlIndex]
	res, err := m.runner.Layout(m.ctx, m.opts)
	m.Result, m.Err = res, err
	return m
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "r":
		m.opts.RTL = !m.opts.RTL
	case "m":
		m.opts.Mode = nextMode(m.opts.Mode)
	case "tab", "h":
		m.hlIndex = (m.hlIndex + 1) % len(m.highlights)
	case "shift+tab":
		m.hlIndex = (m.hlIndex + len(m.highlights) - 1) % len(m.highlights)
	case "left":
		m.opts.DX -= moveStep
	case "right":
		m.opts.DX += moveStep
	case "up":
		m.opts.DY -= moveStep
	case "down":
		m.opts.DY += moveStep
	case "0":
		m.opts.DX, m.opts.DY = 0, 0
	default:
		return m, nil
	}
	return m.relayout(), nil
}

// nextMode cycles auto → inline → external.
func nextMode(mode string) string {
	switch mode {
	case pipeline.ModeAuto:
		return pipeline.ModeInline
	case pipeline.ModeInline:
		return pipeline.ModeExternal
	default:
		return pipeline.ModeAuto
	}
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect " + m.opts.Sample))
	b.WriteString("\n")

	direction := "ltr"
	if m.opts.RTL {
		direction = "rtl"
	}
	highlight := m.opts.Highlight
	if highlight == "" {
		highlight = "none"
	}
	status := []string{
		"mode " + StyleValue.Render(m.opts.Mode),
		"direction " + StyleValue.Render(direction),
		"highlight " + StyleValue.Render(highlight),
		fmt.Sprintf("offset %s", StyleValue.Render(fmt.Sprintf("(%d,%d)", m.opts.DX, m.opts.DY))),
	}
	b.WriteString(inspectDimStyle.Render(strings.Join(status, "  ")))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(inspectErrorStyle.Render(iconError + " " + errors.UserMessage(m.Err)))
		b.WriteString("\n\n")
	} else if m.Result != nil {
		size := m.Result.Group.Size()
		b.WriteString(inspectDimStyle.Render(fmt.Sprintf("%d blocks · %dx%d · %d published",
			m.Result.Stats.BlockCount, size.W, size.H, m.Result.Tracker.Len())))
		b.WriteString("\n")
		rows, err := anchorRows(m.Result.Group, m.Result.Tracker)
		if err != nil {
			b.WriteString(inspectErrorStyle.Render(err.Error()))
		} else {
			b.WriteString(renderTable([]string{"Block", "Connector", "Local", "Workspace", "State"}, rows))
		}
		b.WriteString("\n\n")
	}

	help := []string{
		inspectKeyStyle.Render("r") + " rtl",
		inspectKeyStyle.Render("m") + " mode",
		inspectKeyStyle.Render("tab") + " highlight",
		inspectKeyStyle.Render("←↑↓→") + " move",
		inspectKeyStyle.Render("0") + " reset",
		inspectKeyStyle.Render("q") + " quit",
	}
	b.WriteString(inspectDimStyle.Render(strings.Join(help, "  ")))
	return b.String()
}
