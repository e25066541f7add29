package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/bodysize/internal/config"
	"github.com/philipparndt/bodysize/internal/logging"
	"github.com/philipparndt/bodysize/pkg/analysis"
	"github.com/philipparndt/bodysize/pkg/geometry"
	"github.com/philipparndt/bodysize/pkg/scene"
	"github.com/philipparndt/bodysize/pkg/viewer"
	"github.com/philipparndt/bodysize/pkg/watcher"
	"github.com/rs/zerolog/log"
)

type App struct {
	window   fyne.Window
	cfg      *config.Config
	filename string
	report   *analysis.Report
	view     *viewer.SceneView
	info     *InfoPanel

	watcher *watcher.FileWatcher
	cancel  context.CancelFunc
}

type InfoPanel struct {
	sceneLabel  *widget.Label
	sizeTable   *widget.Table
	cursorLabel *widget.Label
	statusLabel *widget.Label
}

var sizeColumns = []string{"Body", "Width", "Height", "Scaled"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	closer := logging.Init(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	defer closer.Close()

	a := app.New()
	w := a.NewWindow("bodysize - Box2D Body Inspector")

	appInstance := &App{
		window: w,
		cfg:    cfg,
	}
	defer appInstance.stopWatching()

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to bodysize")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Scene' to load a scene file")

	openButton := widget.NewButton("Open Scene", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	report, err := a.measure(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load scene: %w", err), a.window)
		return
	}

	a.filename = filename
	a.report = report
	a.setupMainUI()
	a.startWatching()
}

func (a *App) measure(filename string) (*analysis.Report, error) {
	s, err := scene.Parse(filename)
	if err != nil {
		return nil, err
	}
	world, err := scene.Build(s)
	if err != nil {
		return nil, err
	}

	scale := 1.0
	switch {
	case a.cfg.Scale > 0:
		scale = a.cfg.Scale
	case s.Scale > 0:
		scale = s.Scale
	}
	return analysis.AnalyzeWorld(world, scale), nil
}

func (a *App) setupMainUI() {
	a.info = &InfoPanel{
		sceneLabel:  widget.NewLabel(""),
		sizeTable:   a.newSizeTable(),
		cursorLabel: widget.NewLabel("Cursor: -"),
		statusLabel: widget.NewLabel(""),
	}
	a.info.sceneLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.view = viewer.NewSceneView(a.report)
	a.view.SetOnHover(func(p geometry.Vector2) {
		a.info.cursorLabel.SetText(fmt.Sprintf("Cursor: (%.3f, %.3f)", p.X, p.Y))
	})

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	resetButton := widget.NewButton("Reset View", func() {
		a.view.ResetCamera()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to pan the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Orange boxes show each body's size\n" +
			"• The scene reloads when the file changes",
	)
	instructions.Wrapping = fyne.TextWrapWord

	header := container.NewVBox(
		a.info.sceneLabel,
		widget.NewSeparator(),
	)

	footer := container.NewVBox(
		widget.NewSeparator(),
		a.info.cursorLabel,
		a.info.statusLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		resetButton,
	)

	infoPanel := container.NewBorder(
		header,           // top
		footer,           // bottom
		nil,              // left
		nil,              // right
		a.info.sizeTable, // center
	)

	content := container.NewHSplit(a.view, infoPanel)
	content.Offset = 0.65

	a.window.SetContent(content)
	a.updateInfo()
}

func (a *App) updateInfo() {
	name := a.report.Name
	if name == "" {
		name = a.filename
	}
	a.info.sceneLabel.SetText(fmt.Sprintf("Scene: %s (scale %g)", name, a.report.Scale))
	a.info.sizeTable.Refresh()
}

// newSizeTable lists one body per row below a header row
func (a *App) newSizeTable() *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			if a.report == nil {
				return 1, len(sizeColumns)
			}
			return len(a.report.Bodies) + 1, len(sizeColumns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			label := cell.(*widget.Label)
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(sizeColumns[id.Col])
				return
			}

			label.TextStyle = fyne.TextStyle{Monospace: id.Col > 0}
			body := a.report.Bodies[id.Row-1]
			switch id.Col {
			case 0:
				label.SetText(body.Name)
			case 1:
				label.SetText(fmt.Sprintf("%.3f", body.Size.X))
			case 2:
				label.SetText(fmt.Sprintf("%.3f", body.Size.Y))
			default:
				label.SetText(fmt.Sprintf("%.1f x %.1f", body.ScaledSize.X, body.ScaledSize.Y))
			}
		},
	)

	table.SetColumnWidth(0, 120)
	table.SetColumnWidth(1, 70)
	table.SetColumnWidth(2, 70)
	table.SetColumnWidth(3, 110)
	return table
}

func (a *App) reload(filename string) {
	report, err := a.measure(filename)

	fyne.Do(func() {
		if err != nil {
			log.Warn().Err(err).Str("file", filename).Msg("Reload failed")
			a.info.statusLabel.SetText("Reload failed: " + err.Error())
			return
		}

		a.report = report
		a.view.SetReport(report)
		a.updateInfo()
		a.info.statusLabel.SetText("Reloaded at " + time.Now().Format("15:04:05"))
	})
}

func (a *App) startWatching() {
	a.stopWatching()

	fw, err := watcher.NewFileWatcher(time.Duration(a.cfg.WatchDebounceMS) * time.Millisecond)
	if err != nil {
		log.Warn().Err(err).Msg("File watching disabled")
		return
	}
	if err := fw.Watch([]string{a.filename}, a.reload); err != nil {
		log.Warn().Err(err).Msg("File watching disabled")
		fw.Close()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	fw.Start(ctx)

	a.watcher = fw
	a.cancel = cancel
}

func (a *App) stopWatching() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
}
