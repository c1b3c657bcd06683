package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo is the /ping payload: build identity plus enough runtime detail
// to tell which instance answered.
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler builds the /ping handler. Build identity is resolved once
// at startup from the VERSION, GIT_COMMIT and BUILD_TIME environment
// variables the deploy pipeline stamps; only the server time varies per
// request.
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     envOr("VERSION", "development"),
		GitCommit:   envOr("GIT_COMMIT", "unknown"),
		BuildTime:   envOr("BUILD_TIME", "unknown"),
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}

	return func(c echo.Context) error {
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// RegisterHealthEndpoints mounts /ping plus the plain-text liveness probes
// load balancers and orchestrators expect.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	e.GET("/ping", NewPingHandler(serviceName))

	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", ok)
	e.GET("/healthz", ok)
	e.GET("/ready", ok)
}
