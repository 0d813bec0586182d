// Package fetch places prebuilt ffmpeg binaries into a Tauri sidecar
// directory under their target-triple names.
//
// For each target the Fetcher downloads into <dest>/_temp_<platform>,
// searches that tree for the executable, moves it to <dest>/<filename>
// and removes the scratch directory. Targets run concurrently; once all
// succeed, the Apple Silicon slot is filled from the Intel binary unless a
// native one is already present (see DeriveResult).
//
// Resulting layout:
//
//	src-tauri/binaries/
//	  ffmpeg-x86_64-pc-windows-msvc.exe
//	  ffmpeg-x86_64-apple-darwin
//	  ffmpeg-aarch64-apple-darwin   (derived)
//	  ffmpeg-x86_64-unknown-linux-gnu
//	  ffmpeg-aarch64-unknown-linux-gnu
package fetch
