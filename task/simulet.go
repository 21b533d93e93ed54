package task

import (
	"flag"

	"github.com/sirupsen/logrus"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")

	log = logrus.WithField("module", "task")
)

// prepare 准备阶段，每步执行一次
// 功能：推进时钟，输出心跳日志，发布信号灯snapshot
func (ctx *Context) prepare() {
	ctx.clock.Tick()

	if *heartBeatInterval > 0 && ctx.clock.InternalStep%int32(*heartBeatInterval) == 0 {
		hour, minute, second := ctx.clock.GetHourMinuteSecond()
		stats := ctx.vehicleManager.Stats()
		log.Infof(
			"STEP: %d(%d:%d:%.2f) alive=%d dead=%d collisions=%d",
			ctx.clock.InternalStep,
			hour, minute, second,
			stats.Alive, stats.Dead, stats.Collisions,
		)
	}

	ctx.signal.Prepare()
}

// update 更新阶段，每步执行一次
// 功能：车辆按照上一阶段发布的灯色行动，随后信号灯推进相位
func (ctx *Context) update() {
	ctx.vehicleManager.Update()
	ctx.signal.Update(ctx.clock.DT)

	if log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		for _, r := range ctx.vehicleManager.Snapshot() {
			log.Tracef("step %d: %d %s (%d,%d) %v", ctx.clock.InternalStep, r.ID, r.Image, r.X, r.Y, r.Direction)
		}
	}
}

// Step 执行一个完整的模拟步
func (ctx *Context) Step() {
	ctx.prepare()
	ctx.update()
}

// Run 运行至结束步或收到关闭指令
func (ctx *Context) Run() {
	log.Infof("job %s start at step %d, end at step %d", ctx.job, ctx.clock.InternalStep, ctx.clock.END_STEP)
	for !ctx.clock.Done() && !ctx.closed.Load() {
		ctx.Step()
	}
	stats := ctx.vehicleManager.Stats()
	log.Infof("engine complete: alive=%d dead=%d collisions=%d", stats.Alive, stats.Dead, stats.Collisions)
}
