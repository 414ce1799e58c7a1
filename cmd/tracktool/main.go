// tracktool is a CLI utility for building and inspecting monorail tracks.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/monorail/internal/config"
	"github.com/Faultbox/monorail/internal/logger"
	"github.com/Faultbox/monorail/internal/track"
	"github.com/Faultbox/monorail/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "tessellate", "points":
		cmdTessellate(args)
	case "tube", "obj":
		cmdTube(args)
	case "follow":
		cmdFollow(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tracktool - monorail track utility

Usage:
  tracktool <command> [options] <points.csv> [args]

Commands:
  info <points.csv>              Show curve, polyline and mesh statistics
  tessellate <points.csv>        Print polyline samples as x,y,z
  tube <points.csv> <out.obj>    Write the tube mesh and centre line as OBJ
  follow <points.csv>            Print vehicle poses per tick

Common options:
  -config <file>   YAML config (defaults < file < options)
  -r <n>           Samples per segment
  -debug           Debug logging

Examples:
  tracktool info controlPoints.csv
  tracktool tessellate -r 10 controlPoints.csv
  tracktool tube -radius 0.4 -segments 16 controlPoints.csv rail.obj
  tracktool follow -n 20 -speed 5 controlPoints.csv`)
}

// options are the flags shared by every command.
type options struct {
	fs         *flag.FlagSet
	configPath *string
	debug      *bool
	resolution *int
	radius     *float64
	segments   *int
	speed      *int
}

func newOptions(name string) *options {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &options{
		fs:         fs,
		configPath: fs.String("config", "", "Path to config file"),
		debug:      fs.Bool("debug", false, "Enable debug logging"),
		resolution: fs.Int("r", 0, "Samples per curve segment"),
		radius:     fs.Float64("radius", 0, "Tube radius"),
		segments:   fs.Int("segments", 0, "Tube segments per ring"),
		speed:      fs.Int("speed", 0, "Vehicle speed in points per tick"),
	}
}

// load parses args, builds the config and loads the track named by the
// first positional argument.
func (o *options) load(args []string, usage string) *track.Track {
	o.fs.Parse(args)
	if o.fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracktool "+usage)
		os.Exit(1)
	}

	cfg := config.Default()
	if *o.configPath != "" {
		loaded, err := config.LoadFile(*o.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Track.ControlPoints = o.fs.Arg(0)
	if *o.debug {
		cfg.Logging.Level = "debug"
	}
	if *o.resolution > 0 {
		cfg.Curve.Resolution = *o.resolution
	}
	if *o.radius > 0 {
		cfg.Tube.Radius = float32(*o.radius)
	}
	if *o.segments > 0 {
		cfg.Tube.Segments = *o.segments
	}
	if *o.speed > 0 {
		cfg.Follower.Speed = *o.speed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	t, err := track.Load(cfg)
	if err != nil {
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return t
}

func cmdInfo(args []string) {
	o := newOptions("info")
	asYAML := o.fs.Bool("yaml", false, "Print the summary as YAML")
	t := o.load(args, "info [-yaml] <points.csv>")
	defer logger.Sync()

	s := t.Summary()
	if *asYAML {
		out, err := yaml.Marshal(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	fmt.Printf("Track:     %s\n", o.fs.Arg(0))
	fmt.Printf("Points:    %d\n", s.Points)
	fmt.Printf("Segments:  %d\n", s.Segments)
	fmt.Printf("Closed:    %v\n", s.Closed)
	fmt.Printf("Samples:   %d\n", s.Samples)
	fmt.Printf("Length:    %.3f\n", s.Length)
	fmt.Printf("Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		s.Bounds[0][0], s.Bounds[0][1], s.Bounds[0][2],
		s.Bounds[1][0], s.Bounds[1][1], s.Bounds[1][2])
	fmt.Printf("Vertices:  %d\n", s.Vertices)
	fmt.Printf("Triangles: %d\n", s.Triangles)
}

func cmdTessellate(args []string) {
	o := newOptions("tessellate")
	t := o.load(args, "tessellate [-r N] <points.csv>")
	defer logger.Sync()

	for _, p := range t.Line.Points() {
		fmt.Printf("%g,%g,%g\n", p.X, p.Y, p.Z)
	}
}

func cmdTube(args []string) {
	o := newOptions("tube")
	t := o.load(args, "tube [-radius R] [-segments S] <points.csv> <out.obj>")
	defer logger.Sync()

	if o.fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: tracktool tube <points.csv> <out.obj>")
		os.Exit(1)
	}
	outPath := o.fs.Arg(1)

	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outPath, err)
		os.Exit(1)
	}
	defer f.Close()

	meshes, lines := t.OBJ()
	if err := formats.WriteOBJ(f, meshes, lines); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d vertices, %d triangles)\n", outPath, len(t.Mesh.Vertices), t.Mesh.Triangles())
}

func cmdFollow(args []string) {
	o := newOptions("follow")
	ticks := o.fs.Int("n", 0, "Number of ticks (0 = one lap)")
	reverse := o.fs.Bool("reverse", false, "Drive backwards")
	t := o.load(args, "follow [-n ticks] [-speed s] [-reverse] <points.csv>")
	defer logger.Sync()

	v := t.NewVehicle()
	n := *ticks
	if n <= 0 {
		n = (t.Line.Len() + v.Speed - 1) / v.Speed
	}

	fmt.Println("tick,index,x,y,z,heading,spin")
	for i := 0; i < n; i++ {
		p := v.Forward
		if *reverse {
			p = v.Backward
		}
		pose := p()
		fmt.Printf("%d,%d,%g,%g,%g,%g,%g\n", i, pose.Index,
			pose.Position.X, pose.Position.Y, pose.Position.Z, pose.Heading, v.Spin())
	}
}
