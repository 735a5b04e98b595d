// Package utils 提供游戏开发中常用的工具函数
//
// geometry.go 提供圆形碰撞和方向计算所需的平面几何函数。
// 所有坐标均为屏幕坐标（像素）。
package utils

import "math"

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// CirclesOverlap reports whether two circles intersect.
// Touching circles (distance equal to the radius sum) do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// AimDirection returns the unit vector pointing from (fromX, fromY) to (toX, toY).
//
// The vector is derived from the aim angle, so a zero-length aim yields (1, 0).
func AimDirection(fromX, fromY, toX, toY float64) (dx, dy float64) {
	angle := math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle), math.Sin(angle)
}

// StepToward moves (x, y) by step along the straight line toward (targetX, targetY).
// When the point already sits on the target it is returned unchanged.
//
// 返回:
//   - nx, ny: 移动后的坐标
//   - distance: 移动前到目标的距离
func StepToward(x, y, targetX, targetY, step float64) (nx, ny, distance float64) {
	dx := targetX - x
	dy := targetY - y
	distance = math.Sqrt(dx*dx + dy*dy)
	if distance == 0 {
		return x, y, 0
	}
	return x + step*dx/distance, y + step*dy/distance, distance
}
