package entity

// Manager依赖倒置

// entity/signal/manager.go的依赖倒置
type ISignalManager interface {
	ISignal

	Prepare()          // 准备阶段：发布snapshot
	Update(dt float64) // 更新阶段：推进相位
}

// entity/vehicle/manager.go的依赖倒置
type IVehicleManager interface {
	// 输入车辆ID，查找车辆，如果不存在则panic
	Get(id int32) IVehicle
	// 输入车辆ID，查找车辆，如果不存在则返回error
	GetOrError(id int32) (IVehicle, error)

	Update() // 更新阶段：逐车推进一个周期
	Reset()  // 所有车辆恢复初始状态
}
