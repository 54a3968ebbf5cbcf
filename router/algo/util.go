package algo

import (
	"fmt"
	"math"
)

// 将小时数格式化为整小时和整分钟（均向下取整）
func FormatTravelTime(hours float64) string {
	hh := int(hours)
	mm := int((hours - float64(hh)) * 60)
	return fmt.Sprintf("%d hour(s) and %d minute(s)", hh, mm)
}

// 经过弧所需的小时数，车速取弧限速与speedCap的较小者
func ArcTravelHours(a *Arc, speedCap float64) float64 {
	speed := math.Min(float64(a.MaxSpeed), speedCap)
	return float64(a.Distance) / 1000 / speed
}
