package main

import (
	"degtrig/trig"
	u "degtrig/utils"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("wrong number of arguments")
	ErrBadNumber      = errors.New("not a number")
)

// errExit is returned by eval for exit and quit.
var errExit = errors.New("exit")

const helpText = `sin <a>                      sine of a degrees
cos <a>                      cosine of a degrees
atan2 <y> <x>                angle of (x, y) in degrees
rad <a>                      degrees to radians
deg <r>                      radians to degrees
dist <x1> <y1> <x2> <y2>     heading and distance from 1 to 2
step <x> <y> <angle> <dist>  position after moving dist along angle
exit`

type calc struct {
	single bool
}

func (c calc) bits() int {
	if c.single {
		return 32
	}
	return 64
}

func (c calc) format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, c.bits())
}

// unary applies f in the configured width.
func (c calc) unary(arg float64, f32 func(float32) float32, f64 func(float64) float64) string {
	if c.single {
		return c.format(float64(f32(float32(arg))))
	}
	return c.format(f64(arg))
}

func parseFloats(args []string, want int, bits int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrArgCount, want, len(args))
	}
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, bits)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, a)
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrArgCount, want, len(args))
	}
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, a)
		}
		out[i] = v
	}
	return out, nil
}

// eval runs one input line. Blank lines give an empty result.
func (c calc) eval(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "exit", "quit":
		return "", errExit

	case "help", "?":
		return helpText, nil

	case "sin", "cos", "rad", "deg":
		v, err := parseFloats(args, 1, c.bits())
		if err != nil {
			return "", fmt.Errorf("%s: %w", cmd, err)
		}
		switch cmd {
		case "sin":
			return c.unary(v[0], trig.SinDegree[float32], trig.SinDegree[float64]), nil
		case "cos":
			return c.unary(v[0], trig.CosDegree[float32], trig.CosDegree[float64]), nil
		case "rad":
			return c.unary(v[0], trig.ToRadians[float32], trig.ToRadians[float64]), nil
		default:
			return c.unary(v[0], trig.ToDegrees[float32], trig.ToDegrees[float64]), nil
		}

	case "atan2":
		v, err := parseFloats(args, 2, c.bits())
		if err != nil {
			return "", fmt.Errorf("%s: %w", cmd, err)
		}
		if c.single {
			return c.format(float64(trig.Atan2Degree(float32(v[0]), float32(v[1])))), nil
		}
		return c.format(trig.Atan2Degree(v[0], v[1])), nil

	case "dist":
		v, err := parseInts(args, 4)
		if err != nil {
			return "", fmt.Errorf("%s: %w", cmd, err)
		}
		p1 := u.PointType{X: v[0], Y: v[1]}
		p2 := u.PointType{X: v[2], Y: v[3]}
		angle, dist := p1.AngleAndDist(p2)
		return fmt.Sprintf("angle=%d dist=%d", angle, dist), nil

	case "step":
		v, err := parseInts(args, 4)
		if err != nil {
			return "", fmt.Errorf("%s: %w", cmd, err)
		}
		p := u.PointType{X: v[0], Y: v[1], Angle: v[2]}.CalcNextPos(v[3])
		return fmt.Sprintf("x=%d y=%d angle=%d", p.X, p.Y, p.Angle), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
}
