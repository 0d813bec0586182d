// Package ffbinaries downloads prebuilt ffmpeg binaries published through
// the ffbinaries API.
//
// # Flow
//
//  1. Resolve the release index (GET {api}/version/{version}) once per client
//  2. Look up the archive URL for the requested platform and tool
//  3. Download the archive, reusing the cache when a copy is present
//  4. Extract the archive into the caller's directory
//
// The extracted layout is not normalized. Callers locate the executable
// themselves (see BinaryName for the expected name).
//
// # Usage
//
//	client := ffbinaries.NewClient(ffbinaries.Config{CacheDir: cacheDir})
//	err := client.Download(ctx, []string{ffbinaries.ToolFFmpeg}, tmpDir, ffbinaries.PlatformLinux64)
//
// # Architecture
//
//   - Client: release resolution, cache lookup, per-tool orchestration
//   - downloader: HTTP GET with retry, backoff and atomic writes
//   - Extract: .zip and .tar.gz unpacking with path traversal checks
package ffbinaries
