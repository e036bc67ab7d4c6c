package download

// Package download manages background download tasks on top of the fetch
// orchestrator. It tracks task lifecycle, enforces a parallel download limit,
// owns one control object per task for pause/resume/cancel, and propagates
// progress to the UI through an update callback.
