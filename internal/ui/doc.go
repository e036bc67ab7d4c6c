package ui

// Package ui contains the Fyne desktop interface: a single-download form
// with mode and resolution selection, live progress, and pause/resume/cancel
// controls backed by the download task service.
