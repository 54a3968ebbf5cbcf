package algo

import "git.fiblab.net/general/common/v2/geometry"

// 路网节点，X为经度，Y为纬度，坐标仅随图保存，算法中不使用
type Node struct {
	ID int
	P  geometry.Point
}

func (n Node) Latitude() float64 {
	return n.P.Y
}

func (n Node) Longitude() float64 {
	return n.P.X
}

// 有向弧，除Cost外读入后不再修改
type Arc struct {
	Tail     int
	Head     int
	Distance int64 // 长度（米）
	MaxSpeed int64 // 限速（km/h）
	Cost     int64 // 由当前代价模型计算
}

