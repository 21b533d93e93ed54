package signal

import (
	"fmt"

	"github.com/tsinghua-fib-lab/citygrid-sim/entity"
)

// Phase 信号灯相位
type Phase struct {
	Street    entity.Light // LIGHT地形（路口）的灯色
	Crosswalk entity.Light // CROSSWALK地形（人行横道）的灯色
	Duration  float64      // 持续时间（秒）
}

// DefaultPhases 默认相位表：路口与人行横道交替放行
var DefaultPhases = []Phase{
	{Street: entity.GREEN, Crosswalk: entity.RED, Duration: 8},
	{Street: entity.YELLOW, Crosswalk: entity.RED, Duration: 2},
	{Street: entity.RED, Crosswalk: entity.GREEN, Duration: 8},
	{Street: entity.RED, Crosswalk: entity.YELLOW, Duration: 2},
}

// runtime 信号灯运行时数据
type runtime struct {
	phases     []Phase
	step       int     // 当前相位下标
	remainingT float64 // 当前相位剩余时间
}

// Controller 固定相位信号灯控制器
// 功能：按相位表循环切换灯色，为LIGHT与CROSSWALK地形提供灯色查询
// 说明：Update推进runtime，Prepare将runtime写入snapshot，LightAt只读snapshot；
// 未设置相位表或关闭时全部为绿灯
type Controller struct {
	snapshot runtime  // 对外可见的数据
	runtime  runtime  // 运行时数据
	buffer   *runtime // 数据buffer，Set/Unset写入，下一次Update生效
	ok       bool     // 信号灯状态，true为开启，false为关闭
	okBuffer bool
}

// New 创建信号灯控制器
// 参数：phases-相位表，为空时信号灯保持全绿
// 返回：控制器实例与错误信息
func New(phases []Phase) (*Controller, error) {
	c := &Controller{ok: true, okBuffer: true}
	if len(phases) == 0 {
		return c, nil
	}
	if err := c.Set(phases); err != nil {
		return nil, err
	}
	// 立即生效，构造完成后即可查询
	c.Update(0)
	c.Prepare()
	return c, nil
}

// Prepare 准备阶段，将运行时数据写入snapshot
func (c *Controller) Prepare() {
	c.ok = c.okBuffer
	c.snapshot = c.runtime
}

// Update 更新阶段，推进相位
// 功能：处理buffer中的新相位表，扣减剩余时间并在到期时切换到下一个相位
// 参数：dt-时间步长
// 说明：持续时间为0的相位会被直接跳过
func (c *Controller) Update(dt float64) {
	if c.buffer != nil {
		c.runtime = *c.buffer
		c.buffer = nil
	}
	if len(c.runtime.phases) == 0 || !c.ok {
		return
	}
	c.runtime.remainingT -= dt
	for c.runtime.remainingT <= 0 {
		c.runtime.step = (c.runtime.step + 1) % len(c.runtime.phases)
		c.runtime.remainingT += c.runtime.phases[c.runtime.step].Duration
	}
}

// LightAt 查询地形当前的灯色
// 返回：LIGHT返回路口灯色，CROSSWALK返回人行横道灯色，其他地形不受控视为绿灯
func (c *Controller) LightAt(terrain entity.Terrain) entity.Light {
	if len(c.snapshot.phases) == 0 || !c.ok {
		return entity.GREEN
	}
	p := c.snapshot.phases[c.snapshot.step]
	switch terrain {
	case entity.LIGHT:
		return p.Street
	case entity.CROSSWALK:
		return p.Crosswalk
	default:
		return entity.GREEN
	}
}

// Current 当前可见的相位下标与剩余时间，未设置相位表时返回-1
func (c *Controller) Current() (step int, remainingT float64) {
	if len(c.snapshot.phases) == 0 {
		return -1, 0
	}
	return c.snapshot.step, c.snapshot.remainingT
}

// Set 设置相位表
// 功能：校验相位表并写入buffer，下一次Update生效，从第0个相位开始
// 返回：相位表为空、灯色非法或总时长不为正时返回错误
func (c *Controller) Set(phases []Phase) error {
	if len(phases) == 0 {
		return fmt.Errorf("set with empty signal phases")
	}
	total := 0.
	for i, p := range phases {
		if p.Duration < 0 {
			return fmt.Errorf("phase %d has negative duration %v", i, p.Duration)
		}
		if p.Street == entity.LIGHT_UNSPECIFIED || p.Crosswalk == entity.LIGHT_UNSPECIFIED {
			return fmt.Errorf("phase %d has unspecified light", i)
		}
		total += p.Duration
	}
	if total <= 0 {
		return fmt.Errorf("signal phases total duration must be positive")
	}
	c.buffer = &runtime{phases: append([]Phase(nil), phases...), step: 0, remainingT: phases[0].Duration}
	return nil
}

// Unset 取消相位表，下一次Update后信号灯变为全绿
func (c *Controller) Unset() {
	c.buffer = &runtime{}
}

// SetOK 开启或关闭信号灯，下一次Prepare生效
func (c *Controller) SetOK(ok bool) {
	c.okBuffer = ok
}
