package vehicle

import "github.com/tsinghua-fib-lab/citygrid-sim/entity"

// 出租车在红灯人行横道前连续查询该次数后放行
const taxiWaitAtRed = 3

// CanPass 判断当前能否进入给定地形
// 功能：按车辆类型分派通行规则，未记录的地形对所有类型都不可通行
// 说明：除出租车的红灯人行横道外都是纯函数；出租车的该情形会修改等待计数，
// 每个周期对同一个决策只能调用一次
func (v *Vehicle) CanPass(terrain entity.Terrain, light entity.Light) bool {
	switch v.kind {
	case ATV:
		return atvCanPass(terrain)
	case BICYCLE:
		return bicycleCanPass(terrain, light)
	case CAR:
		return carCanPass(terrain, light)
	case HUMAN:
		return humanCanPass(terrain, light)
	case TAXI:
		return v.taxiCanPass(terrain, light)
	case TRUCK:
		return truckCanPass(terrain, light)
	default:
		return false
	}
}

// 全地形车无视信号灯，除墙外均可通行
func atvCanPass(terrain entity.Terrain) bool {
	switch terrain {
	case entity.STREET, entity.LIGHT, entity.CROSSWALK, entity.TRAIL, entity.GRASS:
		return true
	default:
		return false
	}
}

func bicycleCanPass(terrain entity.Terrain, light entity.Light) bool {
	switch terrain {
	case entity.STREET, entity.TRAIL:
		return true
	case entity.LIGHT, entity.CROSSWALK:
		return light == entity.GREEN
	default:
		return false
	}
}

func carCanPass(terrain entity.Terrain, light entity.Light) bool {
	switch terrain {
	case entity.STREET:
		return true
	case entity.LIGHT:
		return light != entity.RED
	case entity.CROSSWALK:
		return light == entity.GREEN
	default:
		return false
	}
}

// 行人只在草地与非绿灯的人行横道上行走
func humanCanPass(terrain entity.Terrain, light entity.Light) bool {
	switch terrain {
	case entity.GRASS:
		return true
	case entity.CROSSWALK:
		return light != entity.GREEN
	default:
		return false
	}
}

func (v *Vehicle) taxiCanPass(terrain entity.Terrain, light entity.Light) bool {
	switch terrain {
	case entity.STREET:
		return true
	case entity.LIGHT:
		return light != entity.RED
	case entity.CROSSWALK:
		if light == entity.RED {
			return v.evaluateCrosswalk()
		}
		return true
	default:
		return false
	}
}

// evaluateCrosswalk 出租车在红灯人行横道前等待一次
// 功能：等待计数加一，达到taxiWaitAtRed时清零并放行，否则继续等待
// 说明：这是一次有副作用的查询
func (v *Vehicle) evaluateCrosswalk() bool {
	v.waitCounter++
	if v.waitCounter >= taxiWaitAtRed {
		v.waitCounter = 0
		return true
	}
	return false
}

func truckCanPass(terrain entity.Terrain, light entity.Light) bool {
	switch terrain {
	case entity.STREET, entity.LIGHT:
		return true
	case entity.CROSSWALK:
		return light != entity.RED
	default:
		return false
	}
}
