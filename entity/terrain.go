package entity

import "fmt"

// Terrain 网格单元的地形类型
// 说明：零值TERRAIN_UNSPECIFIED表示"没有记录地形"（例如地图边界之外），
// 任何车辆都不能通行
type Terrain int32

const (
	TERRAIN_UNSPECIFIED Terrain = iota
	STREET
	LIGHT
	CROSSWALK
	TRAIL
	GRASS
	WALL
)

// AllTerrains 全部合法地形
var AllTerrains = []Terrain{STREET, LIGHT, CROSSWALK, TRAIL, GRASS, WALL}

var terrainNames = map[Terrain]string{
	TERRAIN_UNSPECIFIED: "UNSPECIFIED",
	STREET:              "STREET",
	LIGHT:               "LIGHT",
	CROSSWALK:           "CROSSWALK",
	TRAIL:               "TRAIL",
	GRASS:               "GRASS",
	WALL:                "WALL",
}

// 地图文件中的单字符编码
var terrainChars = map[rune]Terrain{
	'S': STREET,
	'L': LIGHT,
	'C': CROSSWALK,
	'T': TRAIL,
	'G': GRASS,
	'W': WALL,
}

func (t Terrain) String() string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Terrain(%d)", int32(t))
}

// IsRoad 是否为机动车道路（STREET/LIGHT/CROSSWALK）
func (t Terrain) IsRoad() bool {
	return t == STREET || t == LIGHT || t == CROSSWALK
}

// HasSignal 该地形是否受信号灯控制
func (t Terrain) HasSignal() bool {
	return t == LIGHT || t == CROSSWALK
}

// Char 地形在地图文件中的字符，未知地形返回'?'
func (t Terrain) Char() rune {
	for c, v := range terrainChars {
		if v == t {
			return c
		}
	}
	return '?'
}

// TerrainFromChar 将地图字符解析为地形
func TerrainFromChar(c rune) (Terrain, bool) {
	t, ok := terrainChars[c]
	return t, ok
}

// Light 信号灯状态，由信号灯模块在查询时给出
type Light int32

const (
	LIGHT_UNSPECIFIED Light = iota
	RED
	YELLOW
	GREEN
)

// AllLights 全部合法信号灯状态
var AllLights = []Light{RED, YELLOW, GREEN}

var lightNames = map[Light]string{
	LIGHT_UNSPECIFIED: "UNSPECIFIED",
	RED:               "RED",
	YELLOW:            "YELLOW",
	GREEN:             "GREEN",
}

func (l Light) String() string {
	if name, ok := lightNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Light(%d)", int32(l))
}

// ParseLight 将名称解析为信号灯状态（大小写敏感，与配置文件保持一致）
func ParseLight(name string) (Light, error) {
	for l, n := range lightNames {
		if l != LIGHT_UNSPECIFIED && n == name {
			return l, nil
		}
	}
	return LIGHT_UNSPECIFIED, fmt.Errorf("unknown light %q", name)
}
