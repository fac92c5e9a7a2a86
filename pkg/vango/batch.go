package vango

// Batch groups signal writes so that every affected listener is notified
// once, after fn returns. Batches nest; notifications fire when the
// outermost batch completes, even if fn panics.
func Batch(fn func()) {
	ctx := getTrackingContext()
	ctx.batchDepth++

	defer func() {
		ctx.batchDepth--
		if ctx.batchDepth == 0 {
			flushPending(ctx)
		}
	}()

	fn()
}

func flushPending(ctx *trackingContext) {
	for len(ctx.pendingUpdates) > 0 {
		updates := ctx.pendingUpdates
		ctx.pendingUpdates = nil

		seen := make(map[uint64]bool, len(updates))
		for _, l := range updates {
			if seen[l.ID()] {
				continue
			}
			seen[l.ID()] = true
			l.MarkDirty()
		}
	}
}
