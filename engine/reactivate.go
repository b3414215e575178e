package engine

// Reactivate returns b with every frozen piece that has regained a legal
// action restored to its movable variant, and whether any piece changed.
// Calling Reactivate on its own result is a no-op.
func Reactivate(b Board) (Board, bool) {
	changed := false
	for _, p := range b.FrozenPieces() {
		if len(b.PieceActions(p)) > 0 {
			b.Set(p, b.At(p).Active())
			changed = true
		}
	}
	return b, changed
}
