package config

// InputPath 指定地图来源的配置（MongoDB、文件、内联）
// 功能：定义地图数据的输入路径，优先级为Rows > File > MongoDB
type InputPath struct {
	DB   string   `yaml:"db,omitempty"`   // 数据库名
	Col  string   `yaml:"col,omitempty"`  // 集合名
	File string   `yaml:"file,omitempty"` // YAML地图文件路径
	Rows []string `yaml:"rows,omitempty"` // 内联地图字符行
}

// GetDb 获取数据库名
func (p InputPath) GetDb() string {
	return p.DB
}

// GetColl 获取集合名
func (p InputPath) GetColl() string {
	return p.Col
}

// Input 指定模拟器所有输入数据的配置项
type Input struct {
	URI string    `yaml:"uri,omitempty"` // MongoDB连接字符串
	Map InputPath `yaml:"map"`           // 地图
}

// Vehicle 单个车辆的初始配置
type Vehicle struct {
	ID        int32  `yaml:"id,omitempty"` // 车辆ID，为0时按顺序自动分配
	Kind      string `yaml:"kind"`         // 类型名：atv bicycle car human taxi truck
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"` // 初始朝向：NORTH SOUTH EAST WEST
}

// Phase 信号灯相位配置
type Phase struct {
	Street    string  `yaml:"street"`    // 路口灯色：RED YELLOW GREEN
	Crosswalk string  `yaml:"crosswalk"` // 人行横道灯色
	Duration  float64 `yaml:"duration"`  // 持续时间（秒）
}

// Signal 信号灯配置
type Signal struct {
	Phases   []Phase `yaml:"phases,omitempty"`   // 相位表，为空时使用默认相位表
	Disabled bool    `yaml:"disabled,omitempty"` // 关闭信号灯（全绿）
}

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步的时间间隔（秒）
}

// Control 模拟器控制配置
type Control struct {
	Step   ControlStep `yaml:"step"`
	Seed   uint64      `yaml:"seed,omitempty"` // 随机数种子
	Signal Signal      `yaml:"signal,omitempty"`
}

// Config YAML配置文件的根结构
type Config struct {
	Input    Input     `yaml:"input"`    // 输入
	Vehicles []Vehicle `yaml:"vehicles"` // 车辆初始状态
	Control  Control   `yaml:"control"`  // 模拟过程控制
}
