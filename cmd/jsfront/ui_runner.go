package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jsfront/internal/driver"
	"jsfront/internal/ui"
)

type checkOutcome struct {
	result *driver.CheckResult
	err    error
}

// runCheckWithUI runs the check in the background while a Bubble Tea
// progress view consumes its events.
func runCheckWithUI(ctx context.Context, title, baseDir string, files []string, opts driver.CheckOptions) (*driver.CheckResult, error) {
	// каждый файл даёт ровно три события, буфер не даёт воркерам блокироваться
	events := make(chan driver.ProgressEvent, 3*len(files)+1)
	outcomeCh := make(chan checkOutcome, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		optsCopy := opts
		optsCopy.Progress = func(ev driver.ProgressEvent) { events <- ev }
		res, err := driver.CheckFiles(ctx, baseDir, files, optsCopy)
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	if uiErr != nil {
		cancel()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
