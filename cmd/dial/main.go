// Command dial renders clock faces from a preset style or a JSON
// description.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/dial"
)

func main() {
	var (
		timeStr     = flag.String("time", "12:00:00", "time to show, H:MM:SS")
		style       = flag.String("style", "classic", "preset style")
		width       = flag.Int("width", 400, "image width")
		height      = flag.Int("height", 400, "image height")
		scale       = flag.Int("scale", 2, "supersampling factor")
		noAntialias = flag.Bool("no-antialias", false, "render without supersampling")
		configPath  = flag.String("config", "", "JSON clock description (overrides style flags)")
		output      = flag.String("o", "clock.png", "output file")
		listStyles  = flag.Bool("list-styles", false, "print the preset styles and exit")
		verbose     = flag.Bool("v", false, "log render progress")
	)
	flag.Parse()

	if *listStyles {
		for _, name := range dial.Styles() {
			fmt.Println(name)
		}
		return
	}

	if *verbose {
		dial.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	clock, err := buildClock(*configPath, *timeStr, *style, *width, *height, *scale, !*noAntialias)
	if err != nil {
		log.Fatalf("Failed to build clock: %v", err)
	}

	if err := clock.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Clock saved to %s (%dx%d)\n", *output, clock.Width(), clock.Height())
}

func buildClock(configPath, timeStr, style string, width, height, scale int, antialias bool) (*dial.Clock, error) {
	if configPath != "" {
		return dial.FromConfigFile(configPath)
	}
	return dial.Create(timeStr, style,
		dial.WithSize(width, height),
		dial.WithScaleFactor(scale),
		dial.WithAntialias(antialias),
	)
}
