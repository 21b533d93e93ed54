package vehicle

import (
	"fmt"
	"strings"

	"github.com/tsinghua-fib-lab/citygrid-sim/entity"
)

// Vehicle 网格上移动的车辆（含行人）
// 功能：保存所有类型共有的可变状态，实现存活/死亡状态机，通行与选向规则按kind分派
// 说明：死亡只是暂时状态，车辆在整个模拟过程中不会被销毁
type Vehicle struct {
	id   int32
	kind Kind
	rand entity.IRand // 选向与复活朝向使用的随机数源

	x         int
	y         int
	direction entity.Direction

	alive        bool
	deathTime    int // 按类型固定
	deathCounter int // 死亡后经过的周期数，仅在死亡时非零

	// 构造时的快照，只用于Reset
	initialX         int
	initialY         int
	initialDirection entity.Direction

	// 出租车在红灯人行横道前已等待的次数
	waitCounter int
}

// New 创建车辆
// 功能：以给定位置与朝向创建一辆存活的车辆，并记录初始快照
// 参数：id-车辆ID，kind-车辆类型，x/y-初始坐标，dir-初始朝向，r-随机数源
// 返回：车辆实例与错误信息，类型或朝向非法、随机数源为空时返回错误
func New(id int32, kind Kind, x, y int, dir entity.Direction, r entity.IRand) (*Vehicle, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("vehicle %d: invalid kind %v", id, kind)
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("vehicle %d: invalid direction %v", id, dir)
	}
	if r == nil {
		return nil, fmt.Errorf("vehicle %d: nil random source", id)
	}
	return &Vehicle{
		id:               id,
		kind:             kind,
		rand:             r,
		x:                x,
		y:                y,
		direction:        dir,
		alive:            true,
		deathTime:        kind.DeathTime(),
		initialX:         x,
		initialY:         y,
		initialDirection: dir,
	}, nil
}

func (v *Vehicle) ID() int32 {
	return v.id
}

func (v *Vehicle) Kind() Kind {
	return v.kind
}

func (v *Vehicle) X() int {
	return v.x
}

func (v *Vehicle) Y() int {
	return v.y
}

func (v *Vehicle) Direction() entity.Direction {
	return v.direction
}

func (v *Vehicle) IsAlive() bool {
	return v.alive
}

func (v *Vehicle) DeathTime() int {
	return v.deathTime
}

// DeathCounter 死亡后已经过的周期数
func (v *Vehicle) DeathCounter() int {
	return v.deathCounter
}

// 坐标与朝向不做检查，由地图模块保证合法

func (v *Vehicle) SetX(x int) {
	v.x = x
}

func (v *Vehicle) SetY(y int) {
	v.y = y
}

func (v *Vehicle) SetDirection(d entity.Direction) {
	v.direction = d
}

// Poke 推进一个周期的死亡计数
// 功能：死亡状态下计数加一，计数达到deathTime时复活；存活时无任何效果
// 说明：deathTime为0的车辆在死亡后的第一次Poke即复活
func (v *Vehicle) Poke() {
	if v.alive {
		return
	}
	v.deathCounter++
	if v.deathCounter >= v.deathTime {
		v.revive()
	}
}

// revive 复活，朝向重新随机选取
func (v *Vehicle) revive() {
	v.alive = true
	v.deathCounter = 0
	v.direction = entity.RandomDirection(v.rand)
	log.Debugf("%v revived facing %v", v.id, v.direction)
}

// Collide 处理与另一辆车的碰撞
// 功能：双方均存活且自身deathTime严格大于对方时，自身死亡
// 说明：只修改自身状态，双方都需要各自调用一次才能完成双向判定
func (v *Vehicle) Collide(other entity.IVehicle) {
	if v.alive && other.IsAlive() && v.deathTime > other.DeathTime() {
		v.alive = false
		log.Debugf("%v died colliding with %v", v.id, other.ID())
	}
}

// Reset 恢复到构造时的状态
// 功能：恢复初始位置与朝向，重新存活并清空死亡计数与出租车等待计数
func (v *Vehicle) Reset() {
	v.x = v.initialX
	v.y = v.initialY
	v.direction = v.initialDirection
	v.alive = true
	v.deathCounter = 0
	v.waitCounter = 0
}

// ImageFileName 渲染模块使用的图片名
// 返回：类型名小写加".gif"，死亡时为"_dead.gif"
func (v *Vehicle) ImageFileName() string {
	base := strings.ToLower(v.kind.String())
	if v.alive {
		return base + ".gif"
	}
	return base + "_dead.gif"
}

func (v *Vehicle) String() string {
	status := "alive"
	if !v.alive {
		status = "dead"
	}
	return fmt.Sprintf("%v at (%d,%d), facing %v, %s", v.kind, v.x, v.y, v.direction, status)
}
