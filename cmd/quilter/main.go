package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version":
			fmt.Printf("quilter %s\n", Version)
			return
		case "fetch":
			if err := runFetch(os.Args[2:], os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "displays":
			if err := runDisplays(os.Args[2:], os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "--help", "-h", "help":
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}

	printUsage()
}

func printUsage() {
	fmt.Println("quilter - ffmpeg sidecars and display layouts for the quilt builder")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  quilter --version            Show version information")
	fmt.Println("  quilter fetch [options]      Download ffmpeg for every bundled platform")
	fmt.Println("  quilter displays [--json]    List supported Looking Glass displays")
	fmt.Println()
	fmt.Println("Run 'quilter <command> --help' for command options.")
}
