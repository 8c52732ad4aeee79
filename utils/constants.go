// File: utils/constants.go
package utils

import "time"

// PrefsBalanceHiddenKey stores the wallet balance visibility toggle.
const PrefsBalanceHiddenKey = "prefs:balanceHidden"

// PrefsRecentLocationsKey stores the capped recent-locations JSON array.
const PrefsRecentLocationsKey = "prefs:recentLocations"

// FlowCachePrefix is the prefix for matching-flow snapshot keys.
const FlowCachePrefix = "flow:"

// FlowCacheTTL is the time-to-live for matching-flow snapshots.
const FlowCacheTTL = 30 * time.Minute
