package ui

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytgrab/ytgrab/internal/config"
	"github.com/ytgrab/ytgrab/internal/download"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/platform"
	"github.com/ytgrab/ytgrab/internal/progress"
)

// RootUI represents the main UI structure
type RootUI struct {
	window      fyne.Window
	settings    *config.Settings
	downloadSvc download.Downloader

	urlEntry         *widget.Entry
	dirEntry         *widget.Entry
	nameEntry        *widget.Entry
	modeRadio        *widget.RadioGroup
	resolutionSelect *widget.Select
	cookiesEntry     *widget.Entry

	downloadBtn *widget.Button
	pauseBtn    *widget.Button
	cancelBtn   *widget.Button

	progressBar *widget.ProgressBar
	busyBar     *widget.ProgressBarInfinite
	statusLabel *widget.Label

	// UI update throttling
	throttle     *progress.Throttler
	throttleLock sync.Mutex

	currentMutex  sync.Mutex
	currentTaskID string
	paused        bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader) *RootUI {
	settings := config.NewSettings(app)

	downloadsDir := settings.GetDownloadDirectory()
	platform.CreateDirectoryIfNotExists(downloadsDir)

	ui := &RootUI{
		window:      window,
		settings:    settings,
		downloadSvc: downloadSvc,
		throttle:    progress.NewThrottler(),
	}

	ui.setupUI()
	downloadSvc.SetUpdateCallback(ui.onTaskUpdate)
	return ui
}

func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("Enter video URL")
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())

	ui.nameEntry = widget.NewEntry()
	ui.nameEntry.SetPlaceHolder("Optional, extension optional")

	ui.modeRadio = widget.NewRadioGroup([]string{"Video", "Audio"}, func(selected string) {
		audio := selected == "Audio"
		ui.settings.SetAudioOnly(audio)
		if audio {
			ui.resolutionSelect.Disable()
		} else {
			ui.resolutionSelect.Enable()
		}
	})
	ui.modeRadio.Horizontal = true

	labels := make([]string, len(resolutionChoices))
	for i, choice := range resolutionChoices {
		labels[i] = choice.label
	}
	ui.resolutionSelect = widget.NewSelect(labels, func(selected string) {
		ui.settings.SetPreferredResolution(ui.selectedResolution())
	})
	ui.resolutionSelect.SetSelectedIndex(0)

	// Selecting the mode touches the quality selector, so it is set only
	// after both widgets exist.
	ui.modeRadio.SetSelected("Video")

	ui.cookiesEntry = widget.NewMultiLineEntry()
	ui.cookiesEntry.SetPlaceHolder("Optional: cookie header or cookies.txt content")
	ui.cookiesEntry.SetMinRowsVisible(2)

	ui.downloadBtn = widget.NewButton("Download", ui.onDownloadClick)
	ui.pauseBtn = widget.NewButton("Pause", ui.onPauseClick)
	ui.pauseBtn.Disable()
	ui.cancelBtn = widget.NewButton("Cancel", ui.onCancelClick)
	ui.cancelBtn.Disable()

	ui.progressBar = widget.NewProgressBar()
	ui.busyBar = widget.NewProgressBarInfinite()
	ui.busyBar.Stop()
	ui.busyBar.Hide()
	ui.statusLabel = widget.NewLabel("Ready")

	form := widget.NewForm(
		widget.NewFormItem("URL", ui.urlEntry),
		widget.NewFormItem("Save to", ui.dirEntry),
		widget.NewFormItem("Filename", ui.nameEntry),
		widget.NewFormItem("Mode", ui.modeRadio),
		widget.NewFormItem("Quality", ui.resolutionSelect),
		widget.NewFormItem("Cookies", ui.cookiesEntry),
	)

	buttons := container.NewHBox(ui.downloadBtn, ui.pauseBtn, ui.cancelBtn)

	content := container.NewVBox(
		form,
		buttons,
		ui.progressBar,
		ui.busyBar,
		ui.statusLabel,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// validateURL validates the URL input
func (ui *RootUI) validateURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("URL cannot be empty")
	}
	parsed, err := url.Parse(input)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL format")
	}
	return nil
}

// selectedResolution maps the quality selector label back to its value.
func (ui *RootUI) selectedResolution() string {
	idx := ui.resolutionSelect.SelectedIndex()
	if idx < 0 || idx >= len(resolutionChoices) {
		return ""
	}
	return resolutionChoices[idx].value
}

func (ui *RootUI) onDownloadClick() {
	if err := ui.validateURL(ui.urlEntry.Text); err != nil {
		ui.statusLabel.SetText(err.Error())
		return
	}

	mode := model.ModeVideo
	if ui.modeRadio.Selected == "Audio" {
		mode = model.ModeAudioOnly
	}

	outputDir := strings.TrimSpace(ui.dirEntry.Text)
	if outputDir == "" {
		outputDir = ui.settings.GetDownloadDirectory()
	}

	req := model.DownloadRequest{
		URL:        strings.TrimSpace(ui.urlEntry.Text),
		OutputDir:  outputDir,
		Filename:   strings.TrimSpace(ui.nameEntry.Text),
		Mode:       mode,
		Resolution: ui.selectedResolution(),
		Cookies:    ui.cookiesEntry.Text,
	}

	task, err := ui.downloadSvc.AddTask(req)
	if err != nil {
		ui.statusLabel.SetText(err.Error())
		return
	}

	ui.currentMutex.Lock()
	ui.currentTaskID = task.ID
	ui.paused = false
	ui.currentMutex.Unlock()

	ui.throttleLock.Lock()
	ui.throttle.Reset()
	ui.throttleLock.Unlock()

	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText("Starting...")
	ui.downloadBtn.Disable()
	ui.pauseBtn.SetText("Pause")
	ui.pauseBtn.Enable()
	ui.cancelBtn.Enable()
}

func (ui *RootUI) onPauseClick() {
	ui.currentMutex.Lock()
	id := ui.currentTaskID
	paused := ui.paused
	ui.currentMutex.Unlock()
	if id == "" {
		return
	}

	if paused {
		if err := ui.downloadSvc.ResumeTask(id); err != nil {
			ui.statusLabel.SetText(err.Error())
			return
		}
		ui.setPaused(false)
	} else {
		if err := ui.downloadSvc.PauseTask(id); err != nil {
			ui.statusLabel.SetText(err.Error())
			return
		}
		ui.setPaused(true)
	}
}

func (ui *RootUI) setPaused(paused bool) {
	ui.currentMutex.Lock()
	ui.paused = paused
	ui.currentMutex.Unlock()
	if paused {
		ui.pauseBtn.SetText("Resume")
		ui.statusLabel.SetText("Paused")
	} else {
		ui.pauseBtn.SetText("Pause")
		ui.statusLabel.SetText("Downloading...")
	}
}

func (ui *RootUI) onCancelClick() {
	ui.currentMutex.Lock()
	id := ui.currentTaskID
	ui.currentMutex.Unlock()
	if id == "" {
		return
	}
	if err := ui.downloadSvc.StopTask(id); err != nil {
		ui.statusLabel.SetText(err.Error())
		return
	}
	ui.statusLabel.SetText("Cancelling...")
}

// onTaskUpdate handles task updates from the download service. It runs on
// the download goroutine, so all widget access goes through fyne.Do.
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	ui.currentMutex.Lock()
	current := ui.currentTaskID == task.ID
	ui.currentMutex.Unlock()
	if !current {
		return
	}

	status := task.Status
	percent := task.Percent
	indeterminate := task.Indeterminate
	message := task.Message
	lastError := task.LastError
	outputPath := task.OutputPath

	if status == model.TaskStatusDownloading && !indeterminate {
		ui.throttleLock.Lock()
		render := ui.throttle.ShouldRender(percent, time.Now())
		ui.throttleLock.Unlock()
		if !render {
			return
		}
	}

	fyne.Do(func() {
		switch status {
		case model.TaskStatusDownloading:
			if indeterminate {
				ui.showBusy(message)
			} else {
				ui.showPercent(percent)
			}
		case model.TaskStatusProcessing:
			ui.showBusy(message)
		case model.TaskStatusPaused:
			ui.statusLabel.SetText("Paused")
		case model.TaskStatusCompleted:
			ui.showPercent(100)
			ui.statusLabel.SetText("Saved to " + outputPath)
			ui.finishTask()
		case model.TaskStatusCancelled:
			// Cancellation is a user action, not a failure
			ui.statusLabel.SetText("Download cancelled")
			ui.progressBar.SetValue(0)
			ui.finishTask()
		case model.TaskStatusError:
			ui.statusLabel.SetText("Error: " + lastError)
			ui.finishTask()
		}
	})
}

// showBusy switches to the indeterminate bar during merge or extraction.
func (ui *RootUI) showBusy(message string) {
	ui.progressBar.Hide()
	ui.busyBar.Show()
	ui.busyBar.Start()
	if message == "" {
		message = "Working..."
	}
	ui.statusLabel.SetText(message)
}

func (ui *RootUI) showPercent(percent float64) {
	ui.busyBar.Stop()
	ui.busyBar.Hide()
	ui.progressBar.Show()
	ui.progressBar.SetValue(percent / 100)
	ui.statusLabel.SetText(fmt.Sprintf("Downloading "+ProgressLabelFormat, percent))
}

// finishTask restores the controls to their idle state.
func (ui *RootUI) finishTask() {
	ui.busyBar.Stop()
	ui.busyBar.Hide()
	ui.progressBar.Show()
	ui.downloadBtn.Enable()
	ui.pauseBtn.SetText("Pause")
	ui.pauseBtn.Disable()
	ui.cancelBtn.Disable()

	ui.currentMutex.Lock()
	ui.currentTaskID = ""
	ui.paused = false
	ui.currentMutex.Unlock()
}
