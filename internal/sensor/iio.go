package sensor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pscheid92/autorotate/internal/domain"
)

// DefaultGlob matches the raw accelerometer channels of every IIO device.
const DefaultGlob = "/sys/bus/iio/devices/iio:device*/in_accel_*_raw"

// IIOSource reads the x and y raw channels of an IIO accelerometer.
type IIOSource struct {
	xPath string
	yPath string
}

func NewIIOSource(xPath, yPath string) *IIOSource {
	return &IIOSource{xPath: xPath, yPath: yPath}
}

// Paths returns the x and y channel files.
func (s *IIOSource) Paths() (string, string) {
	return s.xPath, s.yPath
}

// Read returns the current sample. An axis that cannot be read or parsed is 0.
func (s *IIOSource) Read() (domain.AxisReading, error) {
	x, xErr := readValue(s.xPath)
	y, yErr := readValue(s.yPath)

	var err error
	if xErr != nil || yErr != nil {
		err = errors.Join(xErr, yErr)
	}
	return domain.AxisReading{X: x, Y: y}, err
}

func readValue(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

// Discover globs for the raw channel files and returns a source for the first
// x and y channels found. The z channel and any other match are ignored.
func Discover(pattern string) (*IIOSource, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	var xPath, yPath string
	for _, m := range matches {
		switch {
		case strings.HasSuffix(m, "x_raw") && xPath == "":
			xPath = m
		case strings.HasSuffix(m, "y_raw") && yPath == "":
			yPath = m
		}
	}

	if xPath == "" || yPath == "" {
		return nil, fmt.Errorf("%w: no x/y raw channels match %q", domain.ErrNoAccelerometer, pattern)
	}
	return NewIIOSource(xPath, yPath), nil
}
