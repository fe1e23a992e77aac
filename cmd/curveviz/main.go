// Command curveviz draws the curves of an animation clip the way the
// overlay draws them inside an editor.
//
// Usage:
//
//	curveviz render -clip walk.hjson -out walk.png
//	curveviz view -clip walk.hjson
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/curveviz"
	"github.com/gogpu/curveviz/timeline"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(os.Args[2:])
	case "view":
		err = runView(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "curveviz: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: curveviz <command> [flags]

commands:
  render   draw a clip to a PNG file
  view     browse a clip in the terminal

Run "curveviz <command> -h" for the flags of a command.
`)
}

// common holds the flags shared by every command.
type common struct {
	clip    string
	prefs   string
	expand  bool
	verbose bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.clip, "clip", "", "clip file (HJSON, required)")
	fs.StringVar(&c.prefs, "prefs", "", "preferences file (HJSON)")
	fs.BoolVar(&c.expand, "expand", false, "show one line per track under grouped lines")
	fs.BoolVar(&c.verbose, "v", false, "log debug output to stderr")
}

// load reads the clip and the preferences and configures logging.
func (c *common) load() (*timeline.Clip, curveviz.Preferences, error) {
	if c.verbose {
		curveviz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if c.clip == "" {
		return nil, curveviz.Preferences{}, errors.New("-clip is required")
	}

	clip, err := timeline.LoadClip(c.clip)
	if err != nil {
		return nil, curveviz.Preferences{}, err
	}
	prefs := curveviz.DefaultPreferences()
	if c.prefs != "" {
		prefs, err = curveviz.LoadPreferences(c.prefs)
		if err != nil {
			return nil, curveviz.Preferences{}, err
		}
	}
	return clip, prefs, nil
}
