package entity

// IRand 随机数源的依赖倒置
// 说明：utils/randengine.Engine满足该接口；测试中可注入可控的实现
type IRand interface {
	Intn(n int) int                     // [0, n)范围内的随机整数
	Shuffle(n int, swap func(i, j int)) // 随机打乱n个元素
}

// Neighbors 车辆所在单元四周的地形，按方向索引
// 缺失的方向表示没有记录的地形，视为不可通行
type Neighbors = map[Direction]Terrain

// entity/vehicle/vehicle.go的依赖倒置
type IVehicle interface {
	// 自身属性

	ID() int32            // 获取车辆ID
	X() int               // 获取x坐标
	Y() int               // 获取y坐标
	Direction() Direction // 获取当前朝向
	IsAlive() bool        // 是否存活
	DeathTime() int       // 死亡后需等待的周期数

	// setter

	SetX(x int)
	SetY(y int)
	SetDirection(d Direction)

	// 生命周期

	Poke()                  // 推进死亡计数，满足条件时复活；存活时无操作
	Collide(other IVehicle) // 与另一辆车碰撞，只修改自身状态
	Reset()                 // 恢复到构造时的位置、朝向与存活状态

	// 决策

	CanPass(terrain Terrain, light Light) bool     // 当前能否进入该地形
	ChooseDirection(neighbors Neighbors) Direction // 前方受阻时选择新的方向

	// print

	ImageFileName() string // 渲染用图片名，形如"car.gif"/"car_dead.gif"
	String() string
}

// entity/grid/grid.go的依赖倒置
type IGrid interface {
	Width() int
	Height() int
	TerrainAt(x, y int) (Terrain, bool) // 越界时返回false
	Neighbors(x, y int) Neighbors       // 越界的相邻单元不出现在结果中
}

// entity/signal/signal.go的依赖倒置
type ISignal interface {
	LightAt(terrain Terrain) Light // 获取受控地形当前的信号灯状态
}
