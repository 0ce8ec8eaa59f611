package constants

import "os"

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetTuning() string {
	return getenv("GUITARNOTES_TUNING", "eadgbe")
}

func GetAddr() string {
	return getenv("GUITARNOTES_ADDR", ":8080")
}

func GetLogLevel() string {
	return getenv("GUITARNOTES_LOG_LEVEL", "info")
}

// GetIndexDir is where analysis reports are written.
func GetIndexDir() string {
	return getenv("INDEX_PATH", "./out")
}

// GetMetadataEndpoint is empty when metadata lookups are disabled.
func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

func GetMetadataRegion() string {
	return getenv("METADATA_REGION", "localhost")
}

func GetMetadataTable() string {
	return getenv("METADATA_TABLE", "guitarnotes-metadata")
}

// BatchGetItem accepts at most 100 keys per request.
const MaxMetadataBatch = 100

// sonorities outside this range are not worth naming
const (
	MinSonoritySize = 2
	MaxSonoritySize = 16
)
