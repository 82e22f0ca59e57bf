package viewer

import "sync/atomic"

// liveResources counts graphics-side allocations (mesh buffers, label
// textures, render surfaces). Scenes and renderers register what they own
// and release it on Dispose, so lifecycle tests can assert that a torn-down
// viewer leaves nothing behind.
var liveResources atomic.Int64

func acquireResources(n int) {
	liveResources.Add(int64(n))
}

func releaseResources(n int) {
	liveResources.Add(int64(-n))
}

func liveResourceCount() int64 {
	return liveResources.Load()
}
