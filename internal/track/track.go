// Package track assembles the curve pipeline: control points, polyline,
// tube mesh and a vehicle driving along the polyline.
package track

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/monorail/internal/config"
	"github.com/Faultbox/monorail/internal/curve"
	"github.com/Faultbox/monorail/internal/logger"
	"github.com/Faultbox/monorail/internal/path"
	"github.com/Faultbox/monorail/internal/tube"
	"github.com/Faultbox/monorail/pkg/formats"
	"github.com/Faultbox/monorail/pkg/math"
)

// Track is a built monorail. Curve, Line and Mesh are read-only after Build.
type Track struct {
	Curve *curve.CurveSet
	Line  *curve.Polyline
	Mesh  *tube.Mesh

	yawOffset float32
	speed     int
}

// Load reads the control point file named in cfg and builds the track.
func Load(cfg *config.Config) (*Track, error) {
	cs, err := curve.LoadCurveSet(cfg.Track.ControlPoints)
	if err != nil {
		return nil, err
	}
	return Build(cs, cfg)
}

// Build tessellates cs and sweeps the tube mesh using cfg.
func Build(cs *curve.CurveSet, cfg *config.Config) (*Track, error) {
	log := logger.Named("track")
	start := time.Now()

	line, err := curve.Tessellate(cs, cfg.Curve.Resolution)
	if err != nil {
		return nil, fmt.Errorf("tessellating curve: %w", err)
	}

	mesh, err := tube.Generate(line, TubeOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("generating tube: %w", err)
	}

	log.Info("track built",
		zap.Int("segments", cs.Segments()),
		zap.Int("samples", line.Len()),
		zap.Float32("length", line.ArcLength()),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.Triangles()),
		zap.Duration("elapsed", time.Since(start)))

	return &Track{
		Curve:     cs,
		Line:      line,
		Mesh:      mesh,
		yawOffset: cfg.Follower.YawOffset,
		speed:     cfg.Follower.Speed,
	}, nil
}

// TubeOptions converts the tube section of cfg.
func TubeOptions(cfg *config.Config) tube.Options {
	up := cfg.Tube.Up
	return tube.Options{
		Radius:   cfg.Tube.Radius,
		Segments: cfg.Tube.Segments,
		Up:       math.Vec3{X: up[0], Y: up[1], Z: up[2]},
	}
}

// Follower returns a follower over the track polyline.
func (t *Track) Follower() *path.Follower {
	// Build guarantees a polyline of at least two points.
	f, _ := path.NewFollower(t.Line, t.yawOffset)
	return f
}

// NewVehicle places a vehicle at the start of the track.
func (t *Track) NewVehicle() *path.Vehicle {
	v, _ := path.NewVehicle(t.Line, t.yawOffset, t.speed)
	return v
}

// Summary describes a built track.
type Summary struct {
	Points    int           `yaml:"points"`
	Segments  int           `yaml:"segments"`
	Closed    bool          `yaml:"closed"`
	Samples   int           `yaml:"samples"`
	Length    float32       `yaml:"length"`
	Bounds    [2][3]float32 `yaml:"bounds,flow"`
	Vertices  int           `yaml:"vertices"`
	Triangles int           `yaml:"triangles"`
}

// Summary returns counts and measures of the track.
func (t *Track) Summary() Summary {
	b := t.Line.Bounds()
	return Summary{
		Points:    t.Curve.Len(),
		Segments:  t.Curve.Segments(),
		Closed:    t.Curve.Closed(),
		Samples:   t.Line.Len(),
		Length:    t.Line.ArcLength(),
		Bounds:    [2][3]float32{{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Max.Z}},
		Vertices:  len(t.Mesh.Vertices),
		Triangles: t.Mesh.Triangles(),
	}
}

// OBJ returns the tube mesh and centre line as OBJ objects.
func (t *Track) OBJ() ([]formats.OBJMesh, []formats.OBJLine) {
	n := len(t.Mesh.Vertices)
	m := formats.OBJMesh{
		Name:      "monorail",
		Positions: make([]math.Vec3, n),
		Normals:   make([]math.Vec3, n),
		TexCoords: make([][2]float32, n),
		Triangles: t.Mesh.Indices,
	}
	for i, v := range t.Mesh.Vertices {
		m.Positions[i] = v.Position
		m.Normals[i] = v.Normal
		m.TexCoords[i] = v.TexCoord
	}

	return []formats.OBJMesh{m}, []formats.OBJLine{{Name: "path", Points: t.Line.Points()}}
}

// Drive advances v once every rate until it has covered laps full laps of the
// polyline or ctx is done. laps == 0 drives until ctx is done. onTick, if not
// nil, receives every pose.
func (t *Track) Drive(ctx context.Context, v *path.Vehicle, rate time.Duration, laps int, onTick func(tick int, p path.Pose)) error {
	log := logger.Named("track")

	total := 0
	if laps > 0 {
		speed := max(v.Speed, 1)
		perLap := (t.Line.Len() + speed - 1) / speed
		total = laps * perLap
	}

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for tick := 0; total == 0 || tick < total; tick++ {
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
		// select picks randomly when both are ready.
		if err := ctx.Err(); err != nil {
			log.Debug("drive stopped", zap.Int("ticks", tick), zap.Error(err))
			return err
		}

		p := v.Forward()
		if onTick != nil {
			onTick(tick, p)
		}
	}

	log.Debug("drive finished", zap.Int("laps", laps), zap.Int("ticks", total))
	return nil
}
