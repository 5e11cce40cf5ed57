package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/stepgeom/stepgeom"
	"github.com/stepgeom/stepgeom/dbg"
	"github.com/stepgeom/stepgeom/draw"
	"github.com/stepgeom/stepgeom/geom"
	"github.com/stepgeom/stepgeom/step"
)

// Runs one algorithm over input read from stdin and prints its trace, one
// line per step. Input is newline separated numbers, one object per line:
//
//	points (hulls, delaunay, voronoi, fortune):  "x y"
//	segments:                                    "x1 y1 x2 y2"
//	rectangles:                                  "x1 y1 x2 y2"
//	intervals:                                   "start end"
//	polygons (earclip, gallery):                 "x y" per vertex, in order
//	duality:                                     "p x y" or "l slope intercept"
var (
	algoFlag  = kingpin.Flag("algorithm", "Algorithm to trace (graham, giftwrap, quickhull, intersect, union, intersection, earclip, delaunay, voronoi, fortune, intervaltree, segmenttree, duality, gallery).").Short('a').Required().String()
	stepFlag  = kingpin.Flag("step", "Render only this step index (default: print the whole trace).").Default("-1").Int()
	pngFlag   = kingpin.Flag("png", "Write the selected step as a PNG to this path.").String()
	scaleFlag = kingpin.Flag("scale", "PNG pixels per world unit.").Default("40").Float64()
	catFlag   = kingpin.Flag("imgcat", "Print rendered PNGs inline (iTerm only).").Bool()
	dumpFlag  = kingpin.Flag("dump", "Spew the raw payload of each printed step.").Bool()
	debugFlag = kingpin.Flag("debug", "Enable debug logging.").Bool()
)

func main() {
	kingpin.Parse()

	logger := newLogger(*debugFlag)
	defer logger.Sync()

	algo, err := stepgeom.AlgorithmByName(*algoFlag)
	if err != nil {
		logger.Fatal("bad algorithm", zap.Error(err))
	}
	session, err := stepgeom.NewSession(algo)
	if err != nil {
		logger.Fatal("session", zap.Error(err))
	}

	if err := feedStdin(session); err != nil {
		logger.Fatal("reading input", zap.Error(err))
	}

	steps := session.Engine().ComputeSteps()
	logger.Debug("trace computed",
		zap.String("algorithm", algo.String()),
		zap.String("engine", dbg.Name(session.Engine())),
		zap.Int("steps", len(steps)))

	if *stepFlag >= 0 {
		if !session.Engine().SetStep(*stepFlag) {
			logger.Fatal("step out of range", zap.Int("step", *stepFlag), zap.Int("count", len(steps)))
		}
		printStep(*stepFlag, *session.Engine().CurrentStep())
	} else {
		for i, st := range steps {
			printStep(i, st)
		}
	}

	if *pngFlag != "" {
		idx := *stepFlag
		if idx < 0 {
			idx = len(steps) - 1
		}
		if err := draw.RenderPNG(steps[idx], *pngFlag, *scaleFlag); err != nil {
			logger.Fatal("rendering", zap.Error(err))
		}
		if *catFlag {
			draw.Cat(*pngFlag)
		}
	}
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func printStep(i int, st step.Step) {
	marker := " "
	if st.Backtrack {
		marker = "↩"
	}
	fmt.Printf("%3d %s %s\n", i, marker, st.Description)
	ev := st.Events
	printItems("queue", ev.Queue)
	printItems("active", ev.Active)
	printItems("output", ev.Output)
	if *dumpFlag {
		spew.Dump(st.Payload)
	}
}

func printItems(name string, items []step.Item) {
	if len(items) == 0 {
		return
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = fmt.Sprintf("%s [%s]", item.Label, dbg.ColorStatus(string(item.Status)))
	}
	fmt.Printf("      %s: %s\n", name, strings.Join(labels, ", "))
}

// feedStdin parses stdin into whichever input family the session exposes.
func feedStdin(session *stepgeom.Session) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := feedLine(session, line); err != nil {
			return err
		}
	}
	if poly := session.PolygonEngine(); poly != nil {
		if err := poly.CompletePolygon(); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func feedLine(session *stepgeom.Session, line string) error {
	if d := session.DualityEngine(); d != nil {
		return feedDuality(d, line)
	}

	nums, err := parseFloats(strings.Fields(line))
	if err != nil {
		return err
	}
	switch {
	case session.PointEngine() != nil:
		if len(nums) != 2 {
			return fmt.Errorf("want \"x y\", got %q", line)
		}
		session.PointEngine().AddPoint(geom.Pt(nums[0], nums[1]))
	case session.PolygonEngine() != nil:
		if len(nums) != 2 {
			return fmt.Errorf("want \"x y\", got %q", line)
		}
		session.PolygonEngine().AddVertex(geom.Pt(nums[0], nums[1]))
	case session.SegmentEngine() != nil:
		if len(nums) != 4 {
			return fmt.Errorf("want \"x1 y1 x2 y2\", got %q", line)
		}
		session.SegmentEngine().AddSegment(geom.Seg(geom.Pt(nums[0], nums[1]), geom.Pt(nums[2], nums[3])))
	case session.RectEngine() != nil:
		if len(nums) != 4 {
			return fmt.Errorf("want \"x1 y1 x2 y2\", got %q", line)
		}
		session.RectEngine().AddRect(geom.NewRect(nums[0], nums[1], nums[2], nums[3]))
	case session.IntervalEngine() != nil:
		if len(nums) != 2 {
			return fmt.Errorf("want \"start end\", got %q", line)
		}
		session.IntervalEngine().AddInterval(geom.NewInterval(nums[0], nums[1]))
	default:
		return fmt.Errorf("no input family for algorithm %s", session.Algorithm())
	}
	return nil
}

func feedDuality(d interface {
	AddPoint(geom.Point)
	AddLine(geom.DualLine)
}, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return fmt.Errorf("want \"p x y\" or \"l slope intercept\", got %q", line)
	}
	nums, err := parseFloats(fields[1:])
	if err != nil {
		return err
	}
	switch fields[0] {
	case "p":
		d.AddPoint(geom.Pt(nums[0], nums[1]))
	case "l":
		d.AddLine(geom.DualLine{Slope: nums[0], Intercept: nums[1]})
	default:
		return fmt.Errorf("duality lines start with \"p\" or \"l\", got %q", line)
	}
	return nil
}

func parseFloats(fields []string) ([]float64, error) {
	nums := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %v", f, err)
		}
		nums[i] = v
	}
	return nums, nil
}
