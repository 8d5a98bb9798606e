package metrics

// Prometheus metric namespaces
const (
	namespaceXCM = "xcm"
)

// XCM subsystems
const (
	subsystemWeightMeter = "weight_meter"
)
