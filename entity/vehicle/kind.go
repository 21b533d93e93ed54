package vehicle

import (
	"fmt"
	"strings"
)

// Kind 车辆类型标签
// 功能：所有车辆共用同一个Vehicle结构体，通行规则与选向策略按Kind分派
type Kind int32

const (
	KIND_UNSPECIFIED Kind = iota
	ATV                   // 全地形车
	BICYCLE               // 自行车
	CAR                   // 小汽车
	HUMAN                 // 行人
	TAXI                  // 出租车
	TRUCK                 // 卡车
)

// AllKinds 全部合法车辆类型
var AllKinds = []Kind{ATV, BICYCLE, CAR, HUMAN, TAXI, TRUCK}

// kindAttribute 车辆类型的固有属性
type kindAttribute struct {
	name      string // 类型名，用于String与图片名
	deathTime int    // 碰撞死亡后需等待的周期数
}

var kindAttributes = map[Kind]kindAttribute{
	ATV:     {name: "Atv", deathTime: 25},
	BICYCLE: {name: "Bicycle", deathTime: 35},
	CAR:     {name: "Car", deathTime: 15},
	HUMAN:   {name: "Human", deathTime: 45},
	TAXI:    {name: "Taxi", deathTime: 15},
	TRUCK:   {name: "Truck", deathTime: 0},
}

func (k Kind) String() string {
	if attr, ok := kindAttributes[k]; ok {
		return attr.name
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// Valid 检查是否为合法车辆类型
func (k Kind) Valid() bool {
	_, ok := kindAttributes[k]
	return ok
}

// DeathTime 该类型车辆的死亡等待周期数，0表示下一次Poke即复活
func (k Kind) DeathTime() int {
	return kindAttributes[k].deathTime
}

// ParseKind 将类型名（不区分大小写，如"taxi"）解析为车辆类型
func ParseKind(name string) (Kind, error) {
	for _, k := range AllKinds {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return KIND_UNSPECIFIED, fmt.Errorf("unknown vehicle kind %q", name)
}
