package strategy

// Package strategy implements the two extraction strategies behind the
// orchestrator: a native pure-Go client (primary) and a yt-dlp subprocess
// (fallback). Both report through progress.Sink and honor control.Control at
// their checkpoints; all internal failures are normalized to
// fetch.StrategyError before they reach the orchestrator.
