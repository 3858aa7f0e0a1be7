package wacloud

import (
	"fmt"
	"runtime"
	"sync"
)

// Version is the SDK release version, sent in the User-Agent header.
const Version = "0.3.0"

// The user-agent string is process-wide, computed lazily on first read
// and cached. It carries no correctness dependency; invalidateUserAgent
// exists so tests can force recomputation.
var (
	userAgentMu     sync.Mutex
	userAgentCached string
)

// UserAgent returns the SDK user-agent string, e.g.
// "wacloud-go/0.3.0 (go1.25.5; linux/amd64)".
func UserAgent() string {
	userAgentMu.Lock()
	defer userAgentMu.Unlock()
	if userAgentCached == "" {
		userAgentCached = fmt.Sprintf("wacloud-go/%s (%s; %s/%s)",
			Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return userAgentCached
}

// invalidateUserAgent clears the cached user-agent string. Test hook.
func invalidateUserAgent() {
	userAgentMu.Lock()
	defer userAgentMu.Unlock()
	userAgentCached = ""
}
