package task

import (
	"fmt"
	"sync/atomic"

	"github.com/tsinghua-fib-lab/citygrid-sim/clock"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity/grid"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity/signal"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity/vehicle"
	"github.com/tsinghua-fib-lab/citygrid-sim/utils/config"
	"github.com/tsinghua-fib-lab/citygrid-sim/utils/input"
	"github.com/tsinghua-fib-lab/citygrid-sim/utils/randengine"
)

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态
// 说明：管理时钟、地图、信号灯、车辆管理器与配置
type Context struct {
	// 任务名
	job string
	// 关闭指令
	closed atomic.Bool

	// 时钟
	clock *clock.Clock

	// 地形网格
	grid *grid.Grid
	// 信号灯
	signal *signal.Controller
	// 车辆管理器
	vehicleManager *vehicle.Manager

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig
	// 主随机数引擎
	rand *randengine.Engine

	// 用于初始化的输入
	initRes *input.Input
}

// NewContext 创建新的仿真任务上下文
// 功能：加载输入数据并创建所有模拟对象
// 参数：
//   - job: 任务名称
//   - c: 已通过Validate的配置对象
//
// 返回：初始化完成的Context实例与错误信息
// 算法说明：
// 1. 补全运行时配置并创建时钟
// 2. 加载地图、车辆与信号灯相位
// 3. 构建网格与信号灯控制器
// 4. 创建车辆管理器并按名单创建车辆
func NewContext(job string, c config.Config) (*Context, error) {
	ctx := &Context{job: job}
	ctx.runtimeConfig = config.NewRuntimeConfig(c)
	ctx.clock = clock.New(ctx.runtimeConfig.C.Step)
	ctx.rand = randengine.New(ctx.runtimeConfig.C.Seed)

	initRes, err := input.Init(ctx.runtimeConfig.All)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", job, err)
	}
	ctx.initRes = initRes

	if ctx.grid, err = grid.New(initRes.Rows); err != nil {
		return nil, fmt.Errorf("job %s: %w", job, err)
	}
	if ctx.signal, err = signal.New(initRes.Phases); err != nil {
		return nil, fmt.Errorf("job %s: %w", job, err)
	}
	ctx.vehicleManager = vehicle.NewManager(ctx)
	if err := ctx.vehicleManager.Init(initRes.Vehicles, ctx.rand); err != nil {
		return nil, fmt.Errorf("job %s: %w", job, err)
	}
	return ctx, nil
}

func (ctx *Context) GetInput() *input.Input {
	return ctx.initRes
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) Grid() entity.IGrid {
	return ctx.grid
}

func (ctx *Context) SignalManager() entity.ISignalManager {
	return ctx.signal
}

func (ctx *Context) VehicleManager() entity.IVehicleManager {
	return ctx.vehicleManager
}

// Vehicles 车辆管理器的具体类型，供输出使用
func (ctx *Context) Vehicles() *vehicle.Manager {
	return ctx.vehicleManager
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// Reset 时钟与所有车辆回到初始状态
func (ctx *Context) Reset() {
	ctx.clock.Init()
	ctx.vehicleManager.Reset()
}

func (ctx *Context) Close() {
	ctx.closed.Store(true)
}
