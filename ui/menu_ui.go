package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/blockrunner/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the title menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlayGenerated func()
	OnPlayLevel     func(name string)
	OnQuit          func()

	levels     []string
	levelIndex int

	// Widget references for updates
	levelButton     *widget.Button
	playLevelButton *widget.Button
	statusLabel     *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the title menu. levels may be empty, in which case only the
// generated world can be played.
func NewMenuUI(levels []string, onPlayGenerated func(), onPlayLevel func(string), onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnPlayGenerated: onPlayGenerated,
		OnPlayLevel:     onPlayLevel,
		OnQuit:          onQuit,
		levels:          levels,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

// SelectedLevel is the level the level button currently shows.
func (mui *MenuUI) SelectedLevel() (string, bool) {
	if len(mui.levels) == 0 {
		return "", false
	}
	return mui.levels[mui.levelIndex], true
}

// CycleLevel moves the level selection, wrapping around.
func (mui *MenuUI) CycleLevel() {
	if len(mui.levels) == 0 {
		return
	}
	mui.levelIndex = (mui.levelIndex + 1) % len(mui.levels)
}

// Update refreshes widget state and runs the UI for one frame.
func (mui *MenuUI) Update() {
	// Check for nil to handle widgets not yet validated
	if textWidget := mui.levelButton.Text(); textWidget != nil {
		textWidget.Label = mui.levelLabel()
	}
	if w := mui.playLevelButton.GetWidget(); w != nil {
		w.Disabled = len(mui.levels) == 0
	}
	mui.UI.Update()
}

// SetStatus shows a message under the buttons, e.g. a level that failed to load.
func (mui *MenuUI) SetStatus(msg string) {
	mui.statusLabel.Label = msg
}

func (mui *MenuUI) levelLabel() string {
	name, ok := mui.SelectedLevel()
	if !ok {
		return "Level: none"
	}
	return "Level: " + name
}

func (mui *MenuUI) loadFonts() {
	fontSource := fonts.UISource
	if fontSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(err)
		}
		fontSource = src
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MenuUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("BLOCKRUNNER", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	contentContainer.AddChild(mui.newButton("Play generated world", func() {
		if mui.OnPlayGenerated != nil {
			mui.OnPlayGenerated()
		}
	}))

	mui.levelButton = mui.newButton(mui.levelLabel(), mui.CycleLevel)
	contentContainer.AddChild(mui.levelButton)

	mui.playLevelButton = mui.newButton("Play level", func() {
		if name, ok := mui.SelectedLevel(); ok && mui.OnPlayLevel != nil {
			mui.OnPlayLevel(name)
		}
	})
	contentContainer.AddChild(mui.playLevelButton)

	contentContainer.AddChild(mui.newButton("Quit", func() {
		if mui.OnQuit != nil {
			mui.OnQuit()
		}
	}))

	mui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 100, 100, 255},
		}),
	)
	contentContainer.AddChild(mui.statusLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 26),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
