package vehicle

import (
	"fmt"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity"
	"github.com/tsinghua-fib-lab/citygrid-sim/utils/input"
	"github.com/tsinghua-fib-lab/citygrid-sim/utils/randengine"
)

// Runtime 车辆的对外输出，供渲染模块使用
type Runtime struct {
	ID        int32
	Kind      Kind
	X         int
	Y         int
	Direction entity.Direction
	Alive     bool
	Image     string // 图片名
}

// Stats 车辆统计
type Stats struct {
	Alive      int // 存活车辆数
	Dead       int // 死亡车辆数
	Collisions int // 累计导致死亡的碰撞次数
}

// cell 网格单元坐标，用于碰撞分组
type cell struct {
	x, y int
}

// Manager 车辆管理器
// 功能：按名单顺序逐车推进一个周期（复活计数、通行判定、选向、移动），并处理同格碰撞
// 说明：单线程调用，车辆之间的状态只通过各自的Collide修改
type Manager struct {
	ctx entity.ITaskContext

	data     map[int32]*Vehicle
	vehicles []*Vehicle // 名单顺序

	collisions int
}

// NewManager 创建车辆管理器实例
// 参数：ctx-任务上下文，提供地图与信号灯
// 返回：新创建的车辆管理器实例
func NewManager(ctx entity.ITaskContext) *Manager {
	return &Manager{
		ctx:      ctx,
		data:     make(map[int32]*Vehicle),
		vehicles: make([]*Vehicle, 0),
	}
}

// Init 初始化所有车辆
// 功能：解析车辆类型并创建车辆，每辆车按名单顺序从rnd派生独立的随机数流
// 参数：specs-车辆初始状态，rnd-主随机数引擎
// 返回：类型未知、朝向非法或ID重复时返回错误
func (m *Manager) Init(specs []input.VehicleSpec, rnd *randengine.Engine) error {
	vehicles := make([]*Vehicle, 0, len(specs))
	for _, spec := range specs {
		kind, err := ParseKind(spec.Kind)
		if err != nil {
			return fmt.Errorf("vehicle %d: %w", spec.ID, err)
		}
		v, err := New(spec.ID, kind, spec.X, spec.Y, spec.Direction, rnd.Child())
		if err != nil {
			return err
		}
		vehicles = append(vehicles, v)
	}
	data := lo.SliceToMap(vehicles, func(v *Vehicle) (int32, *Vehicle) {
		return v.id, v
	})
	if len(data) != len(vehicles) {
		return fmt.Errorf("duplicated vehicle id in %d vehicles", len(vehicles))
	}
	m.vehicles = vehicles
	m.data = data
	m.collisions = 0
	log.Infof("vehicles: %v", lo.CountValuesBy(vehicles, func(v *Vehicle) Kind { return v.kind }))
	return nil
}

// Add 加入一辆已创建的车辆，ID重复时返回错误
func (m *Manager) Add(v *Vehicle) error {
	if _, ok := m.data[v.id]; ok {
		return fmt.Errorf("vehicle id %d already exists", v.id)
	}
	m.data[v.id] = v
	m.vehicles = append(m.vehicles, v)
	return nil
}

// Get 根据ID获取车辆实例，如果不存在则panic
func (m *Manager) Get(id int32) entity.IVehicle {
	if v, ok := m.data[id]; !ok {
		log.Panicf("no id %d in vehicle data", id)
		return nil
	} else {
		return v
	}
}

// GetOrError 根据ID获取车辆实例，如果不存在则返回错误
func (m *Manager) GetOrError(id int32) (entity.IVehicle, error) {
	if v, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in vehicle data", id)
	} else {
		return v, nil
	}
}

// Vehicles 按名单顺序返回所有车辆
func (m *Manager) Vehicles() []*Vehicle {
	return m.vehicles
}

// Update 更新阶段
// 功能：按名单顺序推进每辆车一个周期，之后处理同格碰撞
func (m *Manager) Update() {
	grid := m.ctx.Grid()
	signal := m.ctx.SignalManager()
	for _, v := range m.vehicles {
		m.step(v, grid, signal)
	}
	m.resolveCollisions()
}

// step 推进单辆车一个周期
// 算法说明：
// 1. 死亡车辆只推进死亡计数
// 2. 直行可通行则前进一格
// 3. 否则选向并转向，新方向与原方向不同且可通行时前进一格
// 说明：同一目标单元每周期最多调用一次CanPass，避免出租车等待计数被重复累加
func (m *Manager) step(v *Vehicle, grid entity.IGrid, signal entity.ISignal) {
	if !v.IsAlive() {
		v.Poke()
		return
	}
	neighbors := grid.Neighbors(v.X(), v.Y())
	heading := v.Direction()
	if m.tryMove(v, heading, neighbors, signal) {
		return
	}
	chosen := v.ChooseDirection(neighbors)
	v.SetDirection(chosen)
	if chosen != heading {
		m.tryMove(v, chosen, neighbors, signal)
	}
}

// tryMove 判断d方向的相邻单元能否进入，能则前进一格
func (m *Manager) tryMove(v *Vehicle, d entity.Direction, neighbors entity.Neighbors, signal entity.ISignal) bool {
	terrain, ok := neighbors[d]
	if !ok {
		return false
	}
	if !v.CanPass(terrain, signal.LightAt(terrain)) {
		return false
	}
	v.SetX(v.X() + d.Dx())
	v.SetY(v.Y() + d.Dy())
	return true
}

// resolveCollisions 同格车辆两两碰撞
// 说明：每对车辆先a.Collide(b)再b.Collide(a)，组内保持名单顺序
func (m *Manager) resolveCollisions() {
	groups := lo.GroupBy(m.vehicles, func(v *Vehicle) cell { return cell{v.x, v.y} })
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		for i, a := range group {
			for _, b := range group[i+1:] {
				aAlive, bAlive := a.IsAlive(), b.IsAlive()
				a.Collide(b)
				b.Collide(a)
				if aAlive && !a.IsAlive() || bAlive && !b.IsAlive() {
					m.collisions++
				}
			}
		}
	}
}

// Reset 所有车辆恢复初始状态，清空碰撞统计
func (m *Manager) Reset() {
	for _, v := range m.vehicles {
		v.Reset()
	}
	m.collisions = 0
}

// Snapshot 产生所有车辆的输出，顺序与名单一致
func (m *Manager) Snapshot() []Runtime {
	return parallel.GoMap(m.vehicles, func(v *Vehicle) Runtime {
		return Runtime{
			ID:        v.id,
			Kind:      v.kind,
			X:         v.x,
			Y:         v.y,
			Direction: v.direction,
			Alive:     v.alive,
			Image:     v.ImageFileName(),
		}
	})
}

// Stats 统计存活、死亡车辆数与累计碰撞次数
func (m *Manager) Stats() Stats {
	alive := lo.CountBy(m.vehicles, func(v *Vehicle) bool { return v.alive })
	return Stats{
		Alive:      alive,
		Dead:       len(m.vehicles) - alive,
		Collisions: m.collisions,
	}
}
