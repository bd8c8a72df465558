package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/history"
	"github.com/gogpu/easel/session"
)

// seedCursor deals out per-stroke seeds. The script's seed command
// repositions it so a drawing stays reproducible run to run.
type seedCursor struct {
	next uint32
}

func (c *seedCursor) Next() uint32 {
	s := c.next
	c.next++
	return s
}

type opKind int

const (
	opBrush opKind = iota
	opSeed
	opStroke
	opUndo
	opRedo
	opBranch
)

type scriptOp struct {
	line   int
	kind   opKind
	brush  easel.BrushSettings
	points []easel.StrokePoint
	count  int
	seed   uint32
}

type script struct {
	ops []scriptOp
}

// parseScript reads a line-based sketch script. Blank lines and lines
// starting with # are ignored.
func parseScript(r io.Reader) (*script, error) {
	s := &script{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		op := scriptOp{line: lineNo, count: 1}

		var err error
		switch fields[0] {
		case "brush":
			op.kind = opBrush
			op.brush, err = parseBrush(fields[1:])
		case "seed":
			op.kind = opSeed
			if len(fields) != 2 {
				err = fmt.Errorf("want: seed N")
				break
			}
			var n uint64
			n, err = strconv.ParseUint(fields[1], 10, 32)
			op.seed = uint32(n)
		case "stroke":
			op.kind = opStroke
			op.points, err = parsePoints(fields[1:])
		case "undo", "redo":
			if fields[0] == "undo" {
				op.kind = opUndo
			} else {
				op.kind = opRedo
			}
			if len(fields) == 2 {
				op.count, err = strconv.Atoi(fields[1])
			} else if len(fields) > 2 {
				err = fmt.Errorf("want: %s [count]", fields[0])
			}
		case "branch":
			op.kind = opBranch
			if len(fields) != 2 {
				err = fmt.Errorf("want: branch INDEX")
				break
			}
			op.count, err = strconv.Atoi(fields[1])
		default:
			err = fmt.Errorf("unknown command %q", fields[0])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		s.ops = append(s.ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseBrush(args []string) (easel.BrushSettings, error) {
	b := easel.DefaultBrush()
	if len(args) == 0 {
		return b, fmt.Errorf("want: brush TYPE [key=value ...]")
	}
	switch args[0] {
	case "round":
		b.Type = easel.BrushRound
	case "crayon":
		b.Type = easel.BrushCrayon
	case "watercolor":
		b.Type = easel.BrushWatercolor
	case "marker":
		b.Type = easel.BrushMarker
	default:
		return b, fmt.Errorf("unknown brush type %q", args[0])
	}
	for _, arg := range args[1:] {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			return b, fmt.Errorf("malformed brush setting %q", arg)
		}
		if key == "color" {
			c, err := parseColor(val)
			if err != nil {
				return b, err
			}
			b.Color = c
			continue
		}
		f, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return b, fmt.Errorf("brush %s: %w", key, err)
		}
		v := float32(f)
		switch key {
		case "size":
			b.Size = v
		case "opacity":
			b.Opacity = v
		case "hardness":
			b.Hardness = v
		case "spacing":
			b.Spacing = v
		case "flow":
			b.Flow = v
		case "scatter":
			b.Scatter = v
		case "rotationjitter":
			b.RotationJitter = v
		case "sizejitter":
			b.SizeJitter = v
		case "opacityjitter":
			b.OpacityJitter = v
		default:
			return b, fmt.Errorf("unknown brush setting %q", key)
		}
	}
	return b, nil
}

func parseColor(val string) (easel.RGBA, error) {
	parts := strings.Split(val, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return easel.RGBA{}, fmt.Errorf("color wants r,g,b or r,g,b,a, got %q", val)
	}
	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return easel.RGBA{}, fmt.Errorf("color: %w", err)
		}
		ch[i] = f
	}
	return easel.RGBA{
		R: float32(ch[0]), G: float32(ch[1]), B: float32(ch[2]), A: float32(ch[3]),
	}, nil
}

func parsePoints(args []string) ([]easel.StrokePoint, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("want: stroke x,y[,pressure] ...")
	}
	points := make([]easel.StrokePoint, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ",")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, fmt.Errorf("point wants x,y or x,y,pressure, got %q", arg)
		}
		var v [3]float64
		v[2] = 1
		for i, p := range parts {
			f, err := strconv.ParseFloat(p, 32)
			if err != nil {
				return nil, fmt.Errorf("point %q: %w", arg, err)
			}
			v[i] = f
		}
		points = append(points, easel.Pt(float32(v[0]), float32(v[1]), float32(v[2])))
	}
	return points, nil
}

// run drives the project through the script's pointer and navigation
// commands, exactly as an interactive tool would.
func (s *script) run(proj *session.Project, seeds *seedCursor) error {
	for _, op := range s.ops {
		switch op.kind {
		case opBrush:
			proj.SetBrush(op.brush)
		case opSeed:
			seeds.next = op.seed
		case opStroke:
			first := op.points[0]
			proj.PointerDown(first.X, first.Y, first.Pressure)
			if n := len(op.points); n > 1 {
				for _, pt := range op.points[1 : n-1] {
					proj.PointerMove(pt.X, pt.Y, pt.Pressure)
				}
			}
			last := op.points[len(op.points)-1]
			if proj.PointerUp(last.X, last.Y, last.Pressure) == history.InvalidNode {
				return fmt.Errorf("line %d: stroke was not recorded", op.line)
			}
		case opUndo:
			for i := 0; i < op.count; i++ {
				if !proj.Undo() {
					return fmt.Errorf("line %d: nothing to undo", op.line)
				}
			}
		case opRedo:
			for i := 0; i < op.count; i++ {
				if !proj.Redo() {
					return fmt.Errorf("line %d: nothing to redo", op.line)
				}
			}
		case opBranch:
			if !proj.SwitchBranch(op.count) {
				return fmt.Errorf("line %d: no branch %d here (%d available)",
					op.line, op.count, proj.History().BranchCount())
			}
		}
	}
	return nil
}
