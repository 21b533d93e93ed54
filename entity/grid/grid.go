package grid

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/citygrid-sim/entity"
)

// Grid 地形网格
// 功能：保存每个单元的地形，为车辆提供四周地形查询
// 说明：行号为y（向南增长），列号为x（向东增长）
type Grid struct {
	width   int
	height  int
	terrain [][]entity.Terrain // [y][x]
}

// New 根据字符行创建网格
// 功能：逐字符解析地形（S/L/C/T/G/W），要求所有行等长
// 参数：rows-地图字符行，第0行为最北侧
// 返回：网格实例与错误信息，存在空地图、行长度不一致或未知字符时返回错误
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty map")
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("empty map row 0")
	}
	g := &Grid{
		width:   width,
		height:  len(rows),
		terrain: make([][]entity.Terrain, len(rows)),
	}
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, fmt.Errorf("map row %d has %d cells, want %d", y, len(cells), width)
		}
		g.terrain[y] = make([]entity.Terrain, width)
		for x, c := range cells {
			t, ok := entity.TerrainFromChar(c)
			if !ok {
				return nil, fmt.Errorf("unknown terrain %q at (%d,%d)", c, x, y)
			}
			g.terrain[y][x] = t
		}
	}
	log.Infof("map loaded: %dx%d", g.width, g.height)
	return g, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// InBounds 坐标是否在网格内
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// TerrainAt 查询单元地形，越界时返回TERRAIN_UNSPECIFIED与false
func (g *Grid) TerrainAt(x, y int) (entity.Terrain, bool) {
	if !g.InBounds(x, y) {
		return entity.TERRAIN_UNSPECIFIED, false
	}
	return g.terrain[y][x], true
}

// Neighbors 查询四周地形，越界的方向不出现在结果中
func (g *Grid) Neighbors(x, y int) entity.Neighbors {
	neighbors := make(entity.Neighbors, len(entity.AllDirections))
	for _, d := range entity.AllDirections {
		if t, ok := g.TerrainAt(x+d.Dx(), y+d.Dy()); ok {
			neighbors[d] = t
		}
	}
	return neighbors
}

// Count 统计各地形的单元数量
func (g *Grid) Count() map[entity.Terrain]int {
	return lo.CountValues(lo.Flatten(g.terrain))
}

// String 以地图字符形式输出网格
func (g *Grid) String() string {
	s := ""
	for y, row := range g.terrain {
		if y > 0 {
			s += "\n"
		}
		s += string(lo.Map(row, func(t entity.Terrain, _ int) rune { return t.Char() }))
	}
	return s
}
