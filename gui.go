package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"hanoi-search/internal/cli"
	"hanoi-search/internal/hanoi"
)

const (
	windowTitle        = "Tower of Hanoi (Go + Fyne)"
	windowWidth        = 720
	windowHeight       = 560
	labelTitle         = "Tower of Hanoi • BFS / A*"
	labelStrategy      = "Strategy:"
	labelDisks         = "Disks:"
	statusReadyMessage = "Ready."
	statusResetMessage = "Puzzle reset."
	statusAlreadyFinal = "Already at the final state."
	msgSolvedFmt       = "Solved in %d moves • expanded nodes: %d"
	msgStepFmt         = "Step %d / %d"

	buttonResetText = "Reset"
	buttonSolveText = "Solve"
	buttonStepText  = "Step"

	guiMinDisks     = 1
	guiMaxDisks     = 8
	defaultGUIDisks = 5

	diskHeight     = 26
	diskUnitWidth  = 22
	diskMinWidth   = 30
	pegWidth       = diskMinWidth + guiMaxDisks*diskUnitWidth
	diskFontSize   = 14
	diskCornerSize = 6

	defaultFrameMs = 140
)

const (
	colorBgDarkHex      = "#0f172a"
	colorBgLightHex     = "#f8fafc"
	colorFgDarkHex      = "#e5e7eb"
	colorFgLightHex     = "#0f172a"
	colorPrimaryHex     = "#22c55e"
	colorDiskHex        = "#334155"
	colorDiskGoalHex    = "#16858E"
	colorPlaceholderHex = "#9ca3af"
)

var errGUINoSolution = errors.New("solution not found")

type sleekTheme struct{}

func (sleekTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		if variant == theme.VariantLight {
			return mustHex(colorBgLightHex)
		}
		return mustHex(colorBgDarkHex)
	case theme.ColorNameForeground:
		if variant == theme.VariantLight {
			return mustHex(colorFgLightHex)
		}
		return mustHex(colorFgDarkHex)
	case theme.ColorNamePrimary:
		return mustHex(colorPrimaryHex)
	case theme.ColorNameButton:
		return mustHex(colorDiskHex)
	case theme.ColorNamePlaceHolder:
		return mustHex(colorPlaceholderHex)
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (sleekTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (sleekTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (sleekTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func mustHex(s string) color.Color {
	c, err := parseHexColor(s)
	if err != nil {
		return color.White
	}
	return c
}

func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid hex: %s", s)
	}
	var rr, gg, bb uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &rr, &gg, &bb); err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: rr, G: gg, B: bb, A: 255}, nil
}

// diskSlot is one row of a peg column; it shows a disk or nothing.
type diskSlot struct {
	disk    *canvas.Rectangle
	label   *canvas.Text
	wrapper *fyne.Container
}

func newDiskSlot() *diskSlot {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(pegWidth, diskHeight))

	disk := canvas.NewRectangle(color.Transparent)
	disk.CornerRadius = diskCornerSize
	lbl := canvas.NewText("", mustHex(colorFgDarkHex))
	lbl.TextStyle = fyne.TextStyle{Bold: true}
	lbl.TextSize = diskFontSize

	return &diskSlot{
		disk:    disk,
		label:   lbl,
		wrapper: container.NewStack(spacer, container.NewCenter(disk), container.NewCenter(lbl)),
	}
}

func (s *diskSlot) setDisk(size int, onGoal bool) {
	if size == 0 {
		s.disk.FillColor = color.Transparent
		s.disk.SetMinSize(fyne.NewSize(0, 0))
		s.label.Text = ""
	} else {
		fill := colorDiskHex
		if onGoal {
			fill = colorDiskGoalHex
		}
		s.disk.FillColor = mustHex(fill)
		s.disk.SetMinSize(fyne.NewSize(float32(diskMinWidth+size*diskUnitWidth), diskHeight-4))
		s.label.Text = strconv.Itoa(size)
	}
	s.wrapper.Refresh()
}

type hanoiUI struct {
	window       fyne.Window
	solver       *hanoi.Solver
	frame        time.Duration
	slots        [hanoi.PegCount][guiMaxDisks]*diskSlot
	currentState hanoi.State
	solutionPath []hanoi.State
	stepIndex    int

	strategySelect *widget.Select
	diskSlider     *widget.Slider
	diskValueLabel *widget.Label
	statusLabel    *widget.Label

	isAnimating bool
	animCancel  chan struct{}

	btnReset *widget.Button
	btnSolve *widget.Button
	btnStep  *widget.Button
}

// strategyOptions is listed in select order.
var strategyOptions = []struct {
	label    string
	strategy hanoi.Strategy
}{
	{"Breadth-First", hanoi.BreadthFirst},
	{"A*", hanoi.BestFirst},
}

func strategyLabels() []string {
	labels := make([]string, len(strategyOptions))
	for i, o := range strategyOptions {
		labels[i] = o.label
	}
	return labels
}

func strategyLabel(s hanoi.Strategy) string {
	for _, o := range strategyOptions {
		if o.strategy == s {
			return o.label
		}
	}
	return strategyOptions[0].label
}

func newGUICommand(a *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open a window that animates the solution",
		Args:  cobra.NoArgs,
		RunE: a.RunE(func(cmd *cobra.Command, args []string) error {
			cfg := a.Config()
			disks := cfg.Disks
			if disks > guiMaxDisks {
				disks = guiMaxDisks
			}
			frame := time.Duration(cfg.GUI.FrameMillis) * time.Millisecond
			if frame <= 0 {
				frame = defaultFrameMs * time.Millisecond
			}
			strategy, err := hanoi.ParseStrategy(cfg.Strategy)
			if err != nil {
				return err
			}
			a.Logger().Info("opening viewer", "disks", disks, "strategy", strategy.String())
			return runGUI(a.Solver(), disks, strategy, frame)
		}),
	}
}

func runGUI(solver *hanoi.Solver, disks int, strategy hanoi.Strategy, frame time.Duration) error {
	start, err := hanoi.Initial(disks)
	if err != nil {
		return err
	}

	a := app.New()
	a.Settings().SetTheme(sleekTheme{})

	w := a.NewWindow(windowTitle)
	w.Resize(fyne.NewSize(windowWidth, windowHeight))

	ui := &hanoiUI{
		window:       w,
		solver:       solver,
		frame:        frame,
		currentState: start,
		statusLabel:  widget.NewLabel(statusReadyMessage),
	}

	ui.strategySelect = widget.NewSelect(strategyLabels(), func(string) { ui.clearSolution() })
	ui.strategySelect.SetSelected(strategyLabel(strategy))

	ui.diskSlider = widget.NewSlider(guiMinDisks, guiMaxDisks)
	ui.diskSlider.Step = 1
	ui.diskSlider.Value = float64(disks)
	ui.diskValueLabel = widget.NewLabel(strconv.Itoa(disks))
	ui.diskSlider.OnChanged = func(v float64) {
		ui.diskValueLabel.SetText(strconv.Itoa(int(math.Round(v))))
		ui.reset()
	}

	board := ui.buildBoard()

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.HomeIcon(), func() { ui.reset() }),
		widget.NewToolbarAction(theme.ConfirmIcon(), func() { ui.solveAnimated() }),
		widget.NewToolbarAction(theme.NavigateNextIcon(), func() { ui.step() }),
	)

	ui.btnReset = widget.NewButton(buttonResetText, func() { ui.reset() })
	ui.btnSolve = widget.NewButton(buttonSolveText, func() { ui.solveAnimated() })
	ui.btnStep = widget.NewButton(buttonStepText, func() { ui.step() })

	controls := widget.NewCard("Controls", "",
		container.NewVBox(
			container.NewGridWithColumns(2,
				widget.NewLabel(labelStrategy),
				ui.strategySelect,
			),
			widget.NewSeparator(),
			widget.NewLabel(labelDisks),
			container.NewBorder(nil, nil, nil, ui.diskValueLabel, ui.diskSlider),
			container.NewHBox(ui.btnReset, ui.btnSolve, ui.btnStep),
		),
	)

	titleText := canvas.NewText(labelTitle, mustHex(colorFgDarkHex))
	titleText.TextStyle = fyne.TextStyle{Bold: true}
	titleText.Alignment = fyne.TextAlignCenter
	titleBar := container.NewPadded(container.NewCenter(titleText))

	root := container.NewBorder(
		container.NewVBox(titleBar, toolbar),
		ui.statusLabel,
		nil,
		nil,
		container.NewVBox(board, controls),
	)

	w.SetContent(container.NewPadded(root))
	ui.paint(ui.currentState)
	w.ShowAndRun()
	return nil
}

func (ui *hanoiUI) reset() {
	ui.stopAnimation()
	disks := int(math.Round(ui.diskSlider.Value))
	start, err := hanoi.Initial(disks)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	ui.currentState = start
	ui.clearSolution()
	ui.paint(ui.currentState)
	ui.statusLabel.SetText(statusResetMessage)
}

func (ui *hanoiUI) clearSolution() {
	ui.solutionPath = nil
	ui.stepIndex = 0
}

// solve fills solutionPath from the current state.
func (ui *hanoiUI) solve() (hanoi.Result, bool) {
	res, err := ui.solver.Solve(ui.selectedStrategy(), hanoi.NewRoot(ui.currentState))
	if err != nil {
		dialog.ShowError(err, ui.window)
		return res, false
	}
	if !res.Found || len(res.Path) == 0 {
		dialog.ShowError(errGUINoSolution, ui.window)
		return res, false
	}
	ui.solutionPath = res.States()
	ui.stepIndex = 0
	return res, true
}

func (ui *hanoiUI) solveAnimated() {
	ui.stopAnimation()
	res, ok := ui.solve()
	if !ok {
		return
	}

	ui.disableControls(true)
	ui.isAnimating = true
	ui.animCancel = make(chan struct{})

	go func(path []hanoi.State, expanded int, cancel chan struct{}) {
		ticker := time.NewTicker(ui.frame)
		defer ticker.Stop()

		total := len(path) - 1
		for ui.stepIndex < len(path) {
			select {
			case <-cancel:
				return
			case <-ticker.C:
				ui.paint(path[ui.stepIndex])
				ui.statusLabel.SetText(fmt.Sprintf(msgStepFmt, ui.stepIndex, total))
				ui.stepIndex++
			}
		}
		ui.currentState = path[total]
		ui.statusLabel.SetText(fmt.Sprintf(msgSolvedFmt, total, expanded))
		ui.disableControls(false)
		ui.isAnimating = false
	}(ui.solutionPath, res.Expanded, ui.animCancel)
}

func (ui *hanoiUI) step() {
	if ui.isAnimating {
		ui.stopAnimation()
	}
	if len(ui.solutionPath) == 0 {
		if _, ok := ui.solve(); !ok {
			return
		}
	}
	if ui.stepIndex >= len(ui.solutionPath) {
		ui.statusLabel.SetText(statusAlreadyFinal)
		return
	}
	ui.paint(ui.solutionPath[ui.stepIndex])
	ui.statusLabel.SetText(fmt.Sprintf(msgStepFmt, ui.stepIndex, len(ui.solutionPath)-1))
	ui.stepIndex++
}

func (ui *hanoiUI) stopAnimation() {
	if ui.isAnimating {
		if ui.animCancel != nil {
			close(ui.animCancel)
		}
		ui.animCancel = nil
		ui.isAnimating = false
		ui.disableControls(false)
	}
}

func (ui *hanoiUI) disableControls(disable bool) {
	if disable {
		ui.strategySelect.Disable()
		ui.diskSlider.Disable()
		ui.btnReset.Disable()
		ui.btnSolve.Disable()
		ui.btnStep.Disable()
	} else {
		ui.strategySelect.Enable()
		ui.diskSlider.Enable()
		ui.btnReset.Enable()
		ui.btnSolve.Enable()
		ui.btnStep.Enable()
	}
}

// buildBoard lays out three peg columns, top slot first.
func (ui *hanoiUI) buildBoard() *fyne.Container {
	columns := make([]fyne.CanvasObject, 0, hanoi.PegCount)
	for p := 0; p < hanoi.PegCount; p++ {
		rows := make([]fyne.CanvasObject, 0, guiMaxDisks+1)
		for row := guiMaxDisks - 1; row >= 0; row-- {
			slot := newDiskSlot()
			ui.slots[p][row] = slot
			rows = append(rows, slot.wrapper)
		}
		base := canvas.NewRectangle(mustHex(colorPlaceholderHex))
		base.SetMinSize(fyne.NewSize(pegWidth, 4))
		rows = append(rows, base, widget.NewLabelWithStyle(fmt.Sprintf("Peg %d", p+1),
			fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
		columns = append(columns, container.NewVBox(rows...))
	}
	return container.NewGridWithColumns(hanoi.PegCount, columns...)
}

// paint draws each peg bottom-up; slot 0 is the bottom row.
func (ui *hanoiUI) paint(state hanoi.State) {
	for p := 0; p < hanoi.PegCount; p++ {
		peg := state.Peg(p)
		for row := 0; row < guiMaxDisks; row++ {
			size := 0
			if row < len(peg) {
				size = peg[row]
			}
			ui.slots[p][row].setDisk(size, p == hanoi.GoalPeg)
		}
	}
}

func (ui *hanoiUI) selectedStrategy() hanoi.Strategy {
	for _, o := range strategyOptions {
		if o.label == ui.strategySelect.Selected {
			return o.strategy
		}
	}
	return hanoi.BreadthFirst
}
