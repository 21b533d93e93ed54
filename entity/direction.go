package entity

import (
	"fmt"
	"strings"
)

// Direction 四向罗盘方向
// 说明：零值DIRECTION_UNSPECIFIED为非法方向，仅用于表示"未指定"
type Direction int32

const (
	DIRECTION_UNSPECIFIED Direction = iota
	NORTH
	SOUTH
	EAST
	WEST
)

// AllDirections 全部合法方向，顺序固定，RandomDirection以此为抽样空间
var AllDirections = [4]Direction{NORTH, SOUTH, EAST, WEST}

var directionNames = map[Direction]string{
	DIRECTION_UNSPECIFIED: "UNSPECIFIED",
	NORTH:                 "NORTH",
	SOUTH:                 "SOUTH",
	EAST:                  "EAST",
	WEST:                  "WEST",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int32(d))
}

// Valid 检查是否为四个合法方向之一
func (d Direction) Valid() bool {
	return d >= NORTH && d <= WEST
}

// Reverse 反方向
// 说明：Reverse(Reverse(d)) == d，非法方向原样返回
func (d Direction) Reverse() Direction {
	switch d {
	case NORTH:
		return SOUTH
	case SOUTH:
		return NORTH
	case EAST:
		return WEST
	case WEST:
		return EAST
	default:
		return d
	}
}

// Left 左转后的方向（以当前朝向为参照）
func (d Direction) Left() Direction {
	switch d {
	case NORTH:
		return WEST
	case WEST:
		return SOUTH
	case SOUTH:
		return EAST
	case EAST:
		return NORTH
	default:
		return d
	}
}

// Right 右转后的方向（以当前朝向为参照）
func (d Direction) Right() Direction {
	switch d {
	case NORTH:
		return EAST
	case EAST:
		return SOUTH
	case SOUTH:
		return WEST
	case WEST:
		return NORTH
	default:
		return d
	}
}

// Dx 沿该方向前进一格时x坐标的变化量
func (d Direction) Dx() int {
	switch d {
	case EAST:
		return 1
	case WEST:
		return -1
	default:
		return 0
	}
}

// Dy 沿该方向前进一格时y坐标的变化量（y轴向南增长，与地图行号一致）
func (d Direction) Dy() int {
	switch d {
	case SOUTH:
		return 1
	case NORTH:
		return -1
	default:
		return 0
	}
}

// ParseDirection 将名称（如"NORTH"）解析为方向
// 功能：用于配置文件中车辆初始朝向的解析，不区分大小写
// 返回：方向与错误信息，名称未知时返回错误
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if d.Valid() && strings.EqualFold(n, name) {
			return d, nil
		}
	}
	return DIRECTION_UNSPECIFIED, fmt.Errorf("unknown direction %q", name)
}

// RandomDirection 从四个合法方向中均匀随机抽取一个
// 参数：r-随机数源，由调用方注入以便测试时复现
func RandomDirection(r IRand) Direction {
	return AllDirections[r.Intn(len(AllDirections))]
}
