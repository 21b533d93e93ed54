package input

import (
	"context"
	"fmt"
	"os"
	"time"

	"git.fiblab.net/general/common/v2/mongoutil"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity/signal"
	"github.com/tsinghua-fib-lab/citygrid-sim/utils/config"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v2"
)

// MongoDB查询超时
const mongoTimeout = 30 * time.Second

// VehicleSpec 解析后的车辆初始状态
type VehicleSpec struct {
	ID        int32
	Kind      string // 车辆类型名，由entity/vehicle解析
	X         int
	Y         int
	Direction entity.Direction
}

// Input 输入数据
// 功能：存储仿真所需的所有输入数据
type Input struct {
	Rows     []string       // 地图字符行
	Vehicles []VehicleSpec  // 车辆初始状态
	Phases   []signal.Phase // 信号灯相位表，为空表示不启用信号灯
}

// mapDocument 地图文件与MongoDB文档的共同结构
type mapDocument struct {
	Rows []string `yaml:"rows" bson:"rows"`
}

// Init 加载数据
// 功能：根据配置加载地图、车辆与信号灯相位
// 参数：c-已通过Validate的配置对象
// 返回：加载完成的输入数据与错误信息
// 算法说明：
// 1. 地图：内联rows优先，其次YAML文件，最后MongoDB
// 2. 车辆：解析朝向，为未指定ID的车辆按最大ID递增分配，检查初始位置
// 3. 信号灯：解析灯色，未配置时使用默认相位表，关闭时为空
func Init(c config.Config) (*Input, error) {
	rows, err := loadMap(c.Input)
	if err != nil {
		return nil, err
	}
	vehicles, err := parseVehicles(c.Vehicles)
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		if err := checkPositionValid(v, rows); err != nil {
			return nil, err
		}
	}
	phases, err := parsePhases(c.Control.Signal)
	if err != nil {
		return nil, err
	}
	log.Infof("input: %d map rows, %d vehicles, %d signal phases", len(rows), len(vehicles), len(phases))
	return &Input{Rows: rows, Vehicles: vehicles, Phases: phases}, nil
}

func loadMap(in config.Input) ([]string, error) {
	switch {
	case len(in.Map.Rows) > 0:
		return in.Map.Rows, nil
	case in.Map.File != "":
		return loadMapFromFile(in.Map.File)
	case in.URI != "":
		return loadMapFromMongo(in.URI, in.Map)
	default:
		return nil, fmt.Errorf("no map source configured")
	}
}

func loadMapFromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load map from file: %w", err)
	}
	var doc mapDocument
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}
	return doc.Rows, nil
}

// loadMapFromMongo 从MongoDB集合中读取第一份地图文档
func loadMapFromMongo(uri string, path config.InputPath) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	client := mongoutil.NewClient(uri)
	defer client.Disconnect(context.Background())

	log.Infof("start fetching map from %s.%s", path.GetDb(), path.GetColl())
	var doc mapDocument
	coll := mongoutil.GetMongoColl(client, path)
	if err := coll.FindOne(ctx, bson.M{}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to load map from %s.%s: %w", path.GetDb(), path.GetColl(), err)
	}
	return doc.Rows, nil
}

func parseVehicles(cs []config.Vehicle) ([]VehicleSpec, error) {
	nextID := int32(1)
	if len(cs) > 0 {
		nextID = lo.Max(lo.Map(cs, func(c config.Vehicle, _ int) int32 { return c.ID })) + 1
	}
	specs := make([]VehicleSpec, 0, len(cs))
	for i, c := range cs {
		d, err := entity.ParseDirection(c.Direction)
		if err != nil {
			return nil, fmt.Errorf("vehicles[%d]: %w", i, err)
		}
		id := c.ID
		if id == 0 {
			id = nextID
			nextID++
		}
		specs = append(specs, VehicleSpec{ID: id, Kind: c.Kind, X: c.X, Y: c.Y, Direction: d})
	}
	return specs, nil
}

func parsePhases(s config.Signal) ([]signal.Phase, error) {
	if s.Disabled {
		return nil, nil
	}
	if len(s.Phases) == 0 {
		return signal.DefaultPhases, nil
	}
	phases := make([]signal.Phase, 0, len(s.Phases))
	for i, p := range s.Phases {
		street, err := entity.ParseLight(p.Street)
		if err != nil {
			return nil, fmt.Errorf("control.signal.phases[%d].street: %w", i, err)
		}
		crosswalk, err := entity.ParseLight(p.Crosswalk)
		if err != nil {
			return nil, fmt.Errorf("control.signal.phases[%d].crosswalk: %w", i, err)
		}
		phases = append(phases, signal.Phase{Street: street, Crosswalk: crosswalk, Duration: p.Duration})
	}
	return phases, nil
}
