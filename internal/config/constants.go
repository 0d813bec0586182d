package config

// Lua schema field names and globals
const (
	luaGlobalQuilter  = "quilter"
	luaFieldFetch     = "fetch"
	luaFieldFFBinary  = "ffbinaries"
	luaFieldDest      = "destination"
	luaFieldHostOnly  = "host_only"
	luaFieldAPI       = "api"
	luaFieldVersion   = "version"
	luaFieldCache     = "cache"
	luaFieldRetries   = "retries"
	luaFieldTimeout   = "timeout"
	defaultConfigFile = "quilter.lua"
)
