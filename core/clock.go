package core

import "time"

// Clock supplies timestamps for session lifecycle fields. Wall-clock time is
// acceptable; monotonic ordering is not required. Injecting a Clock keeps
// timestamp-sensitive behavior deterministic in tests.
type Clock func() time.Time

// WallClock is the default Clock backed by time.Now.
var WallClock Clock = time.Now
