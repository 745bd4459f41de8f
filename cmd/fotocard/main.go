package main

import (
	"fmt"
	"os"

	"github.com/eringen/fotocard/logging"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logging.Setup()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe()
	case "render":
		err = runRender(os.Args[2:])
	case "version":
		fmt.Printf("fotocard %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fotocard - compose photocards from a photo, caption, date and credit

Usage:
  fotocard <command> [arguments]

Commands:
  serve         Run the web composer (configured from FOTOCARD_* env vars)
  render        Render one card to a PNG file
  version       Print the fotocard version
  help          Show this help message

Environment (serve):
  FOTOCARD_SESSION_SECRET   required
  FOTOCARD_ADDR             listen address (default :3000)
  FOTOCARD_NAME             page title
  FOTOCARD_TEMPLATE         overlay PNG (default: built-in)
  FOTOCARD_FONT             TrueType/OpenType font with Bangla glyphs (required)
  FOTOCARD_STATIC_DIR       extra files served under /public
  FOTOCARD_COOKIE_SECURE    true behind HTTPS
  FOTOCARD_DRAFT_TTL        idle draft lifetime, e.g. 2h
  LOG_LEVEL                 debug, info, warn, error

Examples:
  FOTOCARD_SESSION_SECRET=change-me FOTOCARD_FONT=NotoSansBengali-Bold.ttf fotocard serve
  fotocard render -font NotoSansBengali-Bold.ttf -photo photo.jpg -caption "আজকের খবর" -date 2025-07-15 -out fotocard.png`)
}
