// 随机数引擎，包装了golang.org/x/exp/rand，为每辆车提供独立且可复现的随机数流
package randengine

import (
	"flag"
	"sync"

	"golang.org/x/exp/rand"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于调整随机数生成
)

// Engine 随机数引擎
// 功能：提供可复现的随机数生成，满足entity.IRand（Intn、Shuffle）
// 说明：嵌入的rand.Rand方法非线程安全，Child为线程安全
type Engine struct {
	*rand.Rand            // 底层随机数生成器
	mtx        sync.Mutex // 保护Child的互斥锁
}

// New 创建随机数引擎
// 功能：以seed加上命令行种子偏移量初始化引擎
// 参数：seed-随机数种子
// 返回：随机数引擎指针
// 说明：种子偏移量允许在不修改配置的情况下调整随机数序列
func New(seed uint64) *Engine {
	return newEngine(seed + *seedOffset)
}

func newEngine(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed))}
}

// Child 派生子引擎（线程安全）
// 功能：从当前引擎抽取一个种子创建新的独立引擎
// 说明：按相同顺序派生的子引擎序列完全相同，用于给每辆车分配独立的随机数流
func (e *Engine) Child() *Engine {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return newEngine(e.Uint64())
}
