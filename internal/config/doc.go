// Package config loads quilter.lua, evaluated in a sandboxed gopher-lua VM
// with a read-only platform table injected.
//
// # Schema
//
//	quilter = {
//	  fetch = {
//	    destination = "src-tauri/binaries",
//	    host_only   = false,
//	  },
//	  ffbinaries = {
//	    api     = "https://ffbinaries.com/api/v1",
//	    version = "latest",
//	    cache   = "~/.cache/quilter/ffbinaries", -- "" disables caching
//	    retries = 2,
//	    timeout = 300, -- seconds per request
//	  },
//	}
//
// Every field is optional. The platform table makes host-dependent values
// possible, e.g. host_only = platform.is_apple_silicon.
//
// Environment variables (see Env) override the file where both apply.
package config
