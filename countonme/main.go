// Command countonme is the calculator app.
//
// Build for iOS with:
//
//	go run gioui.org/cmd/gogio -target ios -appid com.github.fjl.countonme ./countonme
package main

import (
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/rs/zerolog"

	"github.com/fjl/countonme/internal/calc"
	"github.com/fjl/countonme/internal/config"
)

var (
	digitColor       = color.NRGBA{90, 90, 90, 255}
	specialColor     = color.NRGBA{70, 70, 70, 255}
	opColor          = color.NRGBA{122, 90, 90, 255}
	equalsColor      = color.NRGBA{160, 90, 90, 255}
	backgroundColor  = color.NRGBA{50, 50, 50, 255}
	resultColor      = color.NRGBA{255, 255, 255, 255}
	errorColor       = color.NRGBA{255, 119, 119, 255}
	resultBackground = color.NRGBA{35, 35, 35, 255}

	designWidth  = unit.Dp(270)
	designHeight = unit.Dp(345)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(3.5)
)

// calcUI is the user interface of the calculator.
type calcUI struct {
	acc     *calc.Accumulator
	theme   *material.Theme
	buttons [5][4]*button

	cornerRadius int
	gridSpacing  int
}

func newUI(theme *material.Theme, acc *calc.Accumulator) *calcUI {
	ui := &calcUI{theme: theme, acc: acc}
	ui.buttons = [5][4]*button{
		{ui.keypad("AC", specialColor), nil, nil, ui.keypad(calc.Div.String(), opColor)},
		{ui.keypad("7", digitColor), ui.keypad("8", digitColor), ui.keypad("9", digitColor), ui.keypad(calc.Mul.String(), opColor)},
		{ui.keypad("4", digitColor), ui.keypad("5", digitColor), ui.keypad("6", digitColor), ui.keypad(calc.Sub.String(), opColor)},
		{ui.keypad("1", digitColor), ui.keypad("2", digitColor), ui.keypad("3", digitColor), ui.keypad(calc.Add.String(), opColor)},
		{ui.keypad("0", digitColor), nil, ui.keypad(".", specialColor), ui.keypad("=", equalsColor)},
	}
	return ui
}

// keypad creates a keypad button. Its label is what gets pressed.
func (ui *calcUI) keypad(label string, c color.NRGBA) *button {
	return &button{text: label, color: c}
}

// press sends a label to the accumulator. Rejected input shows up through
// acc.Err, so the error is dropped here.
func (ui *calcUI) press(label string) {
	ui.acc.Press(label)
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	ui.cornerRadius = gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(25, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutResult)
			}),
			layout.Flexed(70, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, resultBackground, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical}
		return flex.Layout(gtx,
			layout.Flexed(70, ui.layoutResultText),
			layout.Flexed(30, ui.layoutError),
		)
	})
}

func (ui *calcUI) layoutResultText(gtx layout.Context) layout.Dimensions {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, ui.acc.Text())
	l.Color = resultColor
	l.Alignment = text.End
	l.MaxLines = 1
	return shrinkToFit(gtx, l.Layout)
}

// layoutError shows the error of the last rejected input.
func (ui *calcUI) layoutError(gtx layout.Context) layout.Dimensions {
	err := ui.acc.Err()
	if err == nil {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	}
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.3
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, err.Error())
	l.Color = errorColor
	l.Alignment = text.End
	l.MaxLines = 1
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button) layout.Dimensions {
	for b.clicker.Clicked() {
		ui.press(b.text)
	}

	textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
	textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

	style := material.Button(ui.theme, &b.clicker, b.text)
	style.Background = b.color
	style.Inset = layout.Inset{}
	style.TextSize = textSizeSp
	style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
	return style.Layout(gtx)
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: "Short-[C]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,-,*,/,X,=,⌤,⏎,⎋]",
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Queue.Events(ui) {
		ev, ok := ev.(key.Event)
		if !ok {
			continue
		}
		if isCopy(ev) {
			clipboard.WriteOp{Text: ui.acc.Text()}.Add(gtx.Ops)
			continue
		}
		ui.handleKey(ev)
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

// handleKey handles a key event.
func (ui *calcUI) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}
	if label, ok := keyLabel(e.Name); ok {
		ui.press(label)
	}
}

// keyLabel maps a key name to the keypad label it stands for.
func keyLabel(name string) (string, bool) {
	switch name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", "=", "+", "-", "*", "/":
		return name, true
	case "X":
		return calc.Mul.String(), true
	case key.NameEnter, key.NameReturn:
		return "=", true
	case key.NameEscape:
		return "AC", true
	}
	return "", false
}

// button is a clickable keypad button.
type button struct {
	text  string
	color color.NRGBA

	clicker widget.Clickable
}

func main() {
	var (
		size     = app.Size(designWidth, designHeight)
		statusBg = app.StatusColor(backgroundColor)
		sysBg    = app.NavigationColor(backgroundColor)
		title    = app.Title("CountOnMe")
		portrait = app.PortraitOrientation.Option()
	)
	go func() {
		w := app.NewWindow(statusBg, sysBg, size, title, portrait)
		w.Option(app.MinSize(designWidth, designHeight))

		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		if err := loop(w, log); err != nil {
			log.Fatal().Err(err).Msg("app exited")
		}
		os.Exit(0)
	}()
	app.Main()
}

// loadConfig reads the settings from the app data directory.
func loadConfig(log zerolog.Logger) *config.Config {
	dir, err := app.DataDir()
	if err != nil {
		log.Warn().Err(err).Msg("no data directory, using default settings")
		return config.Default()
	}
	cfg, err := config.Load(config.DefaultPath(dir))
	if err != nil {
		log.Warn().Err(err).Msg("bad settings, using defaults")
		return config.Default()
	}
	return cfg
}

// loop is the main loop of the app.
func loop(w *app.Window, log zerolog.Logger) error {
	cfg := loadConfig(log)
	log = cfg.Logger(os.Stderr)

	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	var (
		acc = calc.New(cfg.AccumulatorOptions(log)...)
		ui  = newUI(th, acc)
		ops op.Ops
	)
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, backgroundColor)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}
