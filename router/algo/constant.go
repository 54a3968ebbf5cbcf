package algo

import (
	"errors"
	"math"
)

const (
	// 未到达节点的距离
	Unreached int64 = -1
	// 没有回溯弧
	NoArc = -1

	// km/h -> m/s
	KMH_PER_MPS = 3.6
)

var (
	// 距离模式下不限制车速
	UnlimitedSpeed = math.Inf(1)
)

var (
	// 错误：输入格式错误（列数不对、数字无法解析、重复读入图）
	ErrMalformedInput = errors.New("malformed input")
	// 错误：节点id超出[0, num_nodes)
	ErrOutOfRange = errors.New("node id out of range")
	// 错误：非法参数（如车速上限<=0）
	ErrInvalidParameter = errors.New("invalid parameter")
)
