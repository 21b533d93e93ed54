package config

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// RuntimeConfig 运行时配置
// 功能：保存校验并补全默认值后的配置
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：补全默认值（时间间隔默认1秒）后保存配置
// 参数：config-已通过Validate的配置对象
// 返回：运行时配置指针
func NewRuntimeConfig(config Config) *RuntimeConfig {
	if config.Control.Step.Interval == 0 {
		config.Control.Step.Interval = 1
	}
	return &RuntimeConfig{
		All: config,
		C:   config.Control,
	}
}

// Parse 解析YAML配置
// 功能：严格模式解析（未知字段报错）并执行Validate
// 参数：data-YAML文本
// 返回：配置对象与错误信息
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return c, fmt.Errorf("config yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate 检查配置的结构合法性
// 说明：车辆类型、朝向与灯色名称由utils/input在加载时解析校验
func (c Config) Validate() error {
	m := c.Input.Map
	if len(m.Rows) == 0 && m.File == "" {
		if c.Input.URI == "" || m.DB == "" || m.Col == "" {
			return fmt.Errorf("input.map: one of rows, file or uri+db+col must be set")
		}
	}
	if c.Control.Step.Total <= 0 {
		return fmt.Errorf("control.step.total must be positive, got %d", c.Control.Step.Total)
	}
	if c.Control.Step.Start < 0 {
		return fmt.Errorf("control.step.start must not be negative, got %d", c.Control.Step.Start)
	}
	if c.Control.Step.Interval < 0 {
		return fmt.Errorf("control.step.interval must not be negative, got %v", c.Control.Step.Interval)
	}
	ids := make(map[int32]struct{}, len(c.Vehicles))
	for i, v := range c.Vehicles {
		if v.Kind == "" {
			return fmt.Errorf("vehicles[%d]: kind is required", i)
		}
		if v.Direction == "" {
			return fmt.Errorf("vehicles[%d]: direction is required", i)
		}
		if v.ID == 0 {
			continue
		}
		if _, ok := ids[v.ID]; ok {
			return fmt.Errorf("vehicles[%d]: duplicated id %d", i, v.ID)
		}
		ids[v.ID] = struct{}{}
	}
	for i, p := range c.Control.Signal.Phases {
		if p.Duration < 0 {
			return fmt.Errorf("control.signal.phases[%d]: negative duration %v", i, p.Duration)
		}
	}
	return nil
}
