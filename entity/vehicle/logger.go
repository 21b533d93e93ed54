package vehicle

import "github.com/sirupsen/logrus"

// log 车辆模块的日志记录器
var log = logrus.WithField("module", "vehicle")
