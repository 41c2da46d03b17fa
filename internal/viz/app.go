package viz

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/brownian/internal/config"
	"github.com/san-kum/brownian/internal/logging"
	"github.com/san-kum/brownian/internal/walk"
)

const (
	panelWidth = 28
	title      = "Brownian Motion Simulated By Random Walk"
	rotateStep = 0.15
	minCanvasW = 20
	minCanvasH = 8
)

type field int

const (
	fieldSteps field = iota
	fieldParticles
	fieldMaxStep
	numFields
)

var fieldLabels = [numFields]string{"Number of Steps", "Number of Particles", "Maximum Step Size"}

var fieldLimits = [numFields]config.Limit{config.StepsLimit, config.ParticlesLimit, config.MaxStepLimit}

// App is the interactive plot window: three numeric inputs, plot and clear
// actions, and a Braille plot that overlays every plot request until cleared.
type App struct {
	ctx   context.Context
	log   *zap.Logger
	seed  uint64
	draws uint64

	values  [numFields]int
	focus   field
	editing bool
	editBuf string

	plot   *Plot
	canvas *Canvas
	theme  int

	status    string
	statusErr bool
}

func NewApp(ctx context.Context, cfg *config.Config, log *zap.Logger) App {
	if log == nil {
		log = logging.Nop()
	}
	a := App{
		ctx:    ctx,
		log:    log,
		seed:   cfg.Seed,
		plot:   NewPlot(),
		canvas: NewCanvas(max(cfg.Width-panelWidth-8, minCanvasW), max(cfg.Height-5, minCanvasH)),
		theme:  themeIndex(cfg.Theme),
		status: "ready",
	}
	a.values[fieldSteps] = config.StepsLimit.Clamp(cfg.Steps)
	a.values[fieldParticles] = config.ParticlesLimit.Clamp(cfg.Particles)
	a.values[fieldMaxStep] = config.MaxStepLimit.Clamp(cfg.MaxStep)
	return a
}

// Run starts the bubbletea program on the terminal.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	p := tea.NewProgram(NewApp(ctx, cfg, log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Params returns the walk parameters currently entered.
func (a App) Params() walk.Params {
	return walk.Params{
		Steps:     a.values[fieldSteps],
		Particles: a.values[fieldParticles],
		MaxStep:   a.values[fieldMaxStep],
	}
}

func (a App) Plot() *Plot { return a.plot }

func (a App) Status() string { return a.status }

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.editing {
			return a.editKey(msg), nil
		}
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		w := max(msg.Width-panelWidth-8, minCanvasW)
		h := max(msg.Height-5, minCanvasH)
		a.canvas = NewCanvas(w, h)
		a.plot.Draw(a.canvas)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k", "shift+tab":
		a.focus = (a.focus + numFields - 1) % numFields
	case "down", "j", "tab":
		a.focus = (a.focus + 1) % numFields
	case "left", "h":
		a.adjust(-1)
	case "right", "l":
		a.adjust(1)
	case "enter":
		a.editing, a.editBuf = true, ""
	case "2":
		a.draw(2)
	case "3":
		a.draw(3)
	case "c":
		a.plot.ClearPlot()
		a.setStatus("plot cleared", false)
	case "x":
		a.values = [numFields]int{}
		a.plot.ClearPlot()
		a.plot.Camera.Reset()
		a.setStatus("parameters and plot cleared", false)
	case "t":
		a.theme = (a.theme + 1) % len(Themes)
		a.setStatus("theme: "+Themes[a.theme].Name, false)
	case "w":
		a.plot.Camera.RotateX(-rotateStep)
	case "s":
		a.plot.Camera.RotateX(rotateStep)
	case "a":
		a.plot.Camera.RotateY(-rotateStep)
	case "d":
		a.plot.Camera.RotateY(rotateStep)
	case "+", "=":
		a.plot.Camera.ZoomIn()
	case "-":
		a.plot.Camera.ZoomOut()
	case "r":
		a.plot.Camera.Reset()
	default:
		return a, nil
	}
	a.plot.Draw(a.canvas)
	return a, nil
}

func (a App) editKey(msg tea.KeyMsg) App {
	switch msg.String() {
	case "enter":
		if a.editBuf != "" {
			v, err := strconv.Atoi(a.editBuf)
			if err != nil {
				a.setStatus(fmt.Sprintf("invalid number %q", a.editBuf), true)
			} else {
				a.values[a.focus] = fieldLimits[a.focus].Clamp(v)
			}
		}
		a.editing, a.editBuf = false, ""
	case "esc":
		a.editing, a.editBuf = false, ""
	case "backspace":
		if len(a.editBuf) > 0 {
			a.editBuf = a.editBuf[:len(a.editBuf)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' && len(a.editBuf) < 6 {
			a.editBuf += s
		}
	}
	return a
}

func (a *App) adjust(dir int) {
	lim := fieldLimits[a.focus]
	a.values[a.focus] = lim.Clamp(a.values[a.focus] + dir*lim.Step)
}

func (a *App) draw(dim int) {
	p := a.Params()
	seed := a.seed + a.draws
	a.draws++

	set, err := walk.New(walk.SeededStreams(seed), walk.WithLogger(a.log)).Generate(a.ctx, p)
	if err != nil {
		a.log.Warn("walk rejected", zap.Error(err))
		a.setStatus(err.Error(), true)
		return
	}

	a.plot.Add(set, dim)
	a.log.Debug("plotted",
		zap.Int("dim", dim),
		zap.Int("particles", p.Particles),
		zap.Int("steps", p.Steps),
		zap.Uint64("seed", seed),
	)
	a.setStatus(fmt.Sprintf("%dD: %d particles, seed %d", dim, len(set), seed), false)
}

func (a *App) setStatus(s string, isErr bool) {
	a.status, a.statusErr = s, isErr
}

func (a App) View() string {
	t := Themes[a.theme]
	return lipgloss.JoinHorizontal(lipgloss.Top, a.panelView(t), " ", a.plotView(t))
}

func (a App) panelView(t Theme) string {
	var b strings.Builder

	b.WriteString(sectionHeader(t, "Parameters", panelWidth) + "\n\n")
	for f := field(0); f < numFields; f++ {
		focused := f == a.focus
		marker := "  "
		if focused {
			marker = "▸ "
		}
		value := strconv.Itoa(a.values[f])
		if focused && a.editing {
			value = a.editBuf + "_"
		}
		b.WriteString(fieldStyle(t, focused).Render(marker+fieldLabels[f]+":") + "\n")
		b.WriteString("    " + MetricValue.Render(value) + "\n")
	}

	b.WriteString("\n" + sectionHeader(t, "Plot Options", panelWidth) + "\n")
	b.WriteString(MetricLabel.Render("  [2] Plot 2D") + "\n")
	b.WriteString(MetricLabel.Render("  [3] Plot 3D") + "\n")
	b.WriteString("\n" + sectionHeader(t, "Clear Options", panelWidth) + "\n")
	b.WriteString(MetricLabel.Render("  [c] Clear Plot") + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Error).Render("  [x] Clear All") + "\n\n")
	b.WriteString(MetricLabel.Render("  [q] Quit") + "\n\n")
	b.WriteString(Separator(panelWidth) + "\n")
	b.WriteString(KeyHint.Render("↑↓ field  ←→ adjust  ⏎ edit") + "\n")
	b.WriteString(KeyHint.Render("wasd rotate  +/- zoom  t theme") + "\n\n")

	statusStyle := lipgloss.NewStyle().Foreground(t.Success)
	if a.statusErr {
		statusStyle = lipgloss.NewStyle().Foreground(t.Error)
	}
	b.WriteString(statusStyle.Width(panelWidth).Render(a.status))

	return GlassPanel.Render(b.String())
}

func (a App) plotView(t Theme) string {
	head := lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Render(title)
	body := a.canvas.Render(t.Palette(), t.Text)
	if a.plot.Empty() {
		body = emptyPlotHint(a.canvas.Width, a.canvas.Height)
	}
	mode := "2D"
	if a.plot.Is3D() {
		mode = "3D"
	}
	foot := Subtle.Render(fmt.Sprintf("x axis [a.U.]  y axis [a.U.]  z axis [a.U.]   %s, %d layer(s)", mode, len(a.plot.Layers())))
	return PlotFrame.Render(lipgloss.JoinVertical(lipgloss.Left, head, strings.TrimSuffix(body, "\n"), foot))
}

// emptyPlotHint fills the plot area with a centred key hint so the frame keeps
// its size before anything is drawn.
func emptyPlotHint(width, height int) string {
	hint := "press 2 or 3 to plot"
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	if len(hint) <= width && height > 0 {
		pad := (width - len(hint)) / 2
		lines[height/2] = strings.Repeat(" ", pad) + KeyHint.Render(hint) + strings.Repeat(" ", width-pad-len(hint))
	}
	return strings.Join(lines, "\n") + "\n"
}
