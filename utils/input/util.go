package input

import (
	"fmt"

	"github.com/tsinghua-fib-lab/citygrid-sim/entity"
)

// checkPositionValid 检查车辆初始位置有效性
// 功能：验证车辆初始位置位于地图范围内且不在墙上
// 参数：spec-车辆初始状态，rows-地图字符行
// 返回：位置无效时返回错误
// 说明：地图字符的合法性由entity/grid在构建网格时检查
func checkPositionValid(spec VehicleSpec, rows []string) error {
	if spec.Y < 0 || spec.Y >= len(rows) {
		return fmt.Errorf("vehicle %d: y=%d out of map (height %d)", spec.ID, spec.Y, len(rows))
	}
	row := []rune(rows[spec.Y])
	if spec.X < 0 || spec.X >= len(row) {
		return fmt.Errorf("vehicle %d: x=%d out of map (width %d)", spec.ID, spec.X, len(row))
	}
	if t, ok := entity.TerrainFromChar(row[spec.X]); ok && t == entity.WALL {
		return fmt.Errorf("vehicle %d: starts inside a wall at (%d,%d)", spec.ID, spec.X, spec.Y)
	}
	return nil
}
