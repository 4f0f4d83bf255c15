package constants

const (
	ExternalName = "disaster-map"
	Version      = "1.0.0"
)
