package app

import "time"

// wallClock 基于真实时间的帧时钟
// 帧率由 ebiten 的 TPS 控制，这里只负责测量
type wallClock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
}

func newWallClock(now func() time.Time) *wallClock {
	t := now()
	return &wallClock{now: now, start: t, last: t}
}

// DeltaMillis 返回距上一次调用经过的毫秒数
func (c *wallClock) DeltaMillis() int64 {
	t := c.now()
	delta := t.Sub(c.last).Milliseconds()
	c.last = t
	return delta
}

// NowMillis 返回最近一次 DeltaMillis 的时间点（相对启动时刻）
func (c *wallClock) NowMillis() int64 {
	return c.last.Sub(c.start).Milliseconds()
}
