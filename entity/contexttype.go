package entity

import (
	"github.com/tsinghua-fib-lab/citygrid-sim/clock"
	"github.com/tsinghua-fib-lab/citygrid-sim/utils/config"
)

type ITaskContext interface {
	Clock() *clock.Clock
	Grid() IGrid
	SignalManager() ISignalManager
	VehicleManager() IVehicleManager
	RuntimeConfig() *config.RuntimeConfig
}
