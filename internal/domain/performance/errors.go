package performance

import "errors"

var ErrPerformanceNotFound = errors.New("performance data not found")
