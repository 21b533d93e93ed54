package vehicle

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity"
)

// 全地形车随机选向的最大抽样次数，超过后掉头
const maxRandomAttempts = 64

// ChooseDirection 前方受阻时选择新的方向
// 功能：按车辆类型分派选向策略，所有策略在无路可走时都选择掉头
// 参数：neighbors-四周地形，缺失的方向视为不可通行
// 返回：选定的方向；本函数不修改车辆朝向
func (v *Vehicle) ChooseDirection(neighbors entity.Neighbors) entity.Direction {
	switch v.kind {
	case ATV:
		return v.atvDirection(neighbors)
	case BICYCLE:
		return v.bicycleDirection(neighbors)
	case CAR, TAXI:
		return v.roadDirection(neighbors)
	case HUMAN:
		return v.humanDirection(neighbors)
	case TRUCK:
		return v.truckDirection(neighbors)
	default:
		return v.direction.Reverse()
	}
}

// forward 依次为直行、左转、右转
func (v *Vehicle) forward() []entity.Direction {
	return []entity.Direction{v.direction, v.direction.Left(), v.direction.Right()}
}

// shuffledForward 随机打乱后的直行、左转、右转
func (v *Vehicle) shuffledForward() []entity.Direction {
	dirs := v.forward()
	v.rand.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	return dirs
}

// firstOf 按顺序返回第一个地形满足accept的方向，都不满足时返回掉头
func (v *Vehicle) firstOf(
	neighbors entity.Neighbors, dirs []entity.Direction, accept func(entity.Terrain) bool,
) (entity.Direction, bool) {
	d, ok := lo.Find(dirs, func(d entity.Direction) bool {
		terrain, recorded := neighbors[d]
		return recorded && accept(terrain)
	})
	if !ok {
		return v.direction.Reverse(), false
	}
	return d, true
}

func isTrail(t entity.Terrain) bool {
	return t == entity.TRAIL
}

func isCrosswalk(t entity.Terrain) bool {
	return t == entity.CROSSWALK
}

func isWalkable(t entity.Terrain) bool {
	return t == entity.GRASS || t == entity.CROSSWALK
}

// atvDirection 全地形车：反复随机抽样，直到方向既不是掉头也不是墙
// 说明：抽样maxRandomAttempts次仍未找到时掉头，避免四周无路时死循环
func (v *Vehicle) atvDirection(neighbors entity.Neighbors) entity.Direction {
	reverse := v.direction.Reverse()
	for i := 0; i < maxRandomAttempts; i++ {
		d := entity.RandomDirection(v.rand)
		if d == reverse {
			continue
		}
		if terrain, ok := neighbors[d]; ok && terrain != entity.WALL {
			return d
		}
	}
	log.Debugf("%v found no open direction after %d attempts, reversing", v.id, maxRandomAttempts)
	return reverse
}

// bicycleDirection 自行车：优先直行上小径，其次左/右侧小径，再按直行、左、右选择道路
func (v *Vehicle) bicycleDirection(neighbors entity.Neighbors) entity.Direction {
	if d, ok := v.firstOf(neighbors, v.forward(), isTrail); ok {
		return d
	}
	d, _ := v.firstOf(neighbors, v.forward(), entity.Terrain.IsRoad)
	return d
}

// roadDirection 小汽车与出租车：按直行、左、右选择道路，确定性
func (v *Vehicle) roadDirection(neighbors entity.Neighbors) entity.Direction {
	d, _ := v.firstOf(neighbors, v.forward(), entity.Terrain.IsRoad)
	return d
}

// humanDirection 行人：相邻人行横道优先（直行、左、右），否则随机选择草地或人行横道
func (v *Vehicle) humanDirection(neighbors entity.Neighbors) entity.Direction {
	if d, ok := v.firstOf(neighbors, v.forward(), isCrosswalk); ok {
		return d
	}
	d, _ := v.firstOf(neighbors, v.shuffledForward(), isWalkable)
	return d
}

// truckDirection 卡车：随机打乱直行、左、右后选择第一个道路方向
func (v *Vehicle) truckDirection(neighbors entity.Neighbors) entity.Direction {
	d, _ := v.firstOf(neighbors, v.shuffledForward(), entity.Terrain.IsRoad)
	return d
}
