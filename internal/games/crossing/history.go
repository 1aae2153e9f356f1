package crossing

// RunRecord is one finished run, appended to the in-process log when
// the player confirms "play again". The log is append-only and lives
// only for the process's display lifetime.
type RunRecord struct {
	Replay int
	Gems   int
	Score  int
}

// History returns a copy of the run log, oldest first.
func (g *Game) History() []RunRecord {
	out := make([]RunRecord, len(g.history))
	copy(out, g.history)
	return out
}
