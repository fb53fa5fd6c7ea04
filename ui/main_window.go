package ui

import (
	"exitmenu/icons"
	"exitmenu/logging"
	"exitmenu/models"
	"exitmenu/session"
	"exitmenu/storage"
	"errors"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/ncruces/zenity"
)

// Options carries the command-line choices and the collaborators of the window
type Options struct {
	Horizontal bool
	Vertical   bool

	Storage    *storage.Manager
	Env        session.Environment
	Dispatcher *session.Dispatcher
}

// MainWindow represents the exit dialog
type MainWindow struct {
	app         fyne.App
	window      fyne.Window
	storage     *storage.Manager
	env         session.Environment
	dispatcher  *session.Dispatcher
	settings    *models.Settings
	orientation models.Orientation
	buttons     map[session.Action]*IconButton
	box         *fyne.Container
	tips        *tooltipLayer
}

// NewMainWindow creates the dialog window on app
func NewMainWindow(a fyne.App, opts Options) *MainWindow {
	window := a.NewWindow("Exit")
	window.SetPadded(false)

	mw := &MainWindow{
		app:        a,
		window:     window,
		storage:    opts.Storage,
		env:        opts.Env,
		dispatcher: opts.Dispatcher,
		buttons:    make(map[session.Action]*IconButton),
		tips:       newTooltipLayer(),
	}

	mw.loadData()
	mw.orientation = models.ResolveOrientation(mw.settings.Layout, opts.Horizontal, opts.Vertical)
	mw.setupUI()
	mw.restoreGeometry()

	a.Lifecycle().SetOnStopped(mw.saveSettings)
	window.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		if e.Name == fyne.KeyEscape {
			mw.app.Quit()
		}
	})

	return mw
}

// ShowAndRun shows the window and runs the application
func (mw *MainWindow) ShowAndRun() {
	mw.window.CenterOnScreen()
	mw.window.ShowAndRun()
}

// Orientation returns the effective layout direction
func (mw *MainWindow) Orientation() models.Orientation {
	return mw.orientation
}

// loadData loads settings from storage
func (mw *MainWindow) loadData() {
	settings, err := mw.storage.LoadSettings()
	if err != nil {
		log.Printf("Error loading settings, using defaults: %v", err)
		settings = models.DefaultSettings()
	}
	mw.settings = settings
}

// setupUI builds one button per visible action
func (mw *MainWindow) setupUI() {
	iconSize := float32(mw.settings.IconSize)
	layout := NewBoxLayout(mw.orientation, float32(mw.settings.Margin), float32(mw.settings.Spacing))
	mw.box = container.New(layout)

	for _, action := range session.VisibleActions(mw.env) {
		key := action.IconKey()
		btn := NewIconButton(icons.Load(key, mw.settings.IconOverride(key)), iconSize, action.Tooltip(), func() {
			mw.dispatcher.Dispatch(action)
		})
		btn.OnTappedSecondary = func(e *fyne.PointEvent) {
			mw.showIconMenu(action, e.AbsolutePosition)
		}
		btn.setTooltipLayer(mw.tips)
		mw.buttons[action] = btn
		mw.box.Add(btn)
	}

	logging.Debugf("built %s layout with %d buttons", mw.orientation, len(mw.buttons))
	mw.window.SetContent(container.NewStack(mw.box, mw.tips))
}

// restoreGeometry applies the saved window size unless it has the wrong shape for the layout
func (mw *MainWindow) restoreGeometry() {
	if len(mw.settings.Geometry) == 0 {
		return
	}

	size := mw.window.Canvas().Size()
	if size.IsZero() {
		size = mw.box.MinSize()
	}
	current := models.Geometry{Width: size.Width, Height: size.Height}

	restored, ok := models.RestoreGeometry(current, mw.settings.Geometry, mw.orientation)
	if !ok {
		logging.Debugf("saved geometry rejected for %s layout, keeping %.0fx%.0f", mw.orientation, current.Width, current.Height)
	}
	mw.window.Resize(fyne.NewSize(restored.Width, restored.Height))
}

// saveSettings writes geometry and layout back to storage
func (mw *MainWindow) saveSettings() {
	size := mw.window.Canvas().Size()
	geometry, err := models.Geometry{Width: size.Width, Height: size.Height}.MarshalBinary()
	if err == nil {
		mw.settings.Geometry = geometry
	}
	mw.settings.Layout = string(mw.orientation)

	if err := mw.storage.SaveSettings(mw.settings); err != nil {
		log.Printf("Error saving settings: %v", err)
	}
}

// showIconMenu offers to change or reset the icon of a button
func (mw *MainWindow) showIconMenu(action session.Action, pos fyne.Position) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Change icon…", func() {
			mw.chooseIcon(action)
		}),
		fyne.NewMenuItem("Reset icon", func() {
			mw.setIcon(action, "")
		}),
	)
	widget.ShowPopUpMenuAtPosition(menu, mw.window.Canvas(), pos)
}

// setIcon stores an icon override and updates the button
func (mw *MainWindow) setIcon(action session.Action, path string) {
	key := action.IconKey()
	mw.settings.SetIconOverride(key, path)
	if btn, ok := mw.buttons[action]; ok {
		btn.SetResource(icons.Load(key, path))
	}
}

// iconStartPath returns the folder to open the icon chooser in
func (mw *MainWindow) iconStartPath(action session.Action) string {
	if current := mw.settings.IconOverride(action.IconKey()); current != "" {
		return filepath.Dir(current)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return homeDir
}

// iconPatterns returns the glob patterns of the supported icon files
func iconPatterns() []string {
	patterns := make([]string, 0, len(icons.Extensions()))
	for _, ext := range icons.Extensions() {
		patterns = append(patterns, "*"+ext)
	}
	return patterns
}

// chooseIcon opens the system's native file dialog, falling back to the Fyne one
func (mw *MainWindow) chooseIcon(action session.Action) {
	startPath := mw.iconStartPath(action)

	// KDE dialog first, as it matches the Plasma look
	if mw.env.HasCommand("kdialog") {
		filename, err := openKDialog(startPath)
		if err == nil {
			if filename != "" {
				mw.setIcon(action, filename)
			}
			return
		}
		logging.Debugf("kdialog failed: %v", err)
	}

	if zenity.IsAvailable() {
		filename, err := zenity.SelectFile(
			zenity.Title("Select Icon"),
			zenity.Filename(startPath+string(filepath.Separator)),
			zenity.FileFilters{
				{Name: "Images", Patterns: iconPatterns(), CaseFold: true},
			},
		)
		if err == nil {
			if filename != "" {
				mw.setIcon(action, filename)
			}
			return
		}
		if err == zenity.ErrCanceled {
			return
		}
		logging.Debugf("zenity file dialog failed: %v", err)
	}

	mw.openFyneIconDialog(action, startPath)
}

// kdialogArgs builds the kdialog command line for picking an icon
func kdialogArgs(startPath string) []string {
	return []string{
		"--getopenfilename",
		startPath,
		strings.Join(iconPatterns(), " ") + "|Images",
		"--title", "Select Icon",
	}
}

// openKDialog runs kdialog and returns the chosen file, or "" when cancelled
func openKDialog(startPath string) (string, error) {
	output, err := exec.Command("kdialog", kdialogArgs(startPath)...).Output()
	return kdialogResult(output, err)
}

// kdialogResult interprets the output of kdialog; exit code 1 means the user cancelled
func kdialogResult(output []byte, err error) (string, error) {
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// openFyneIconDialog is a fallback that uses the Fyne file dialog
func (mw *MainWindow) openFyneIconDialog(action session.Action, startPath string) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("Error choosing icon: %v", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		mw.setIcon(action, reader.URI().Path())
	}, mw.window)
	fileDialog.SetFilter(fynestorage.NewExtensionFileFilter(icons.Extensions()))

	if listable, err := fynestorage.ListerForURI(fynestorage.NewFileURI(startPath)); err == nil {
		fileDialog.SetLocation(listable)
	}
	fileDialog.Show()
}
