package directory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hackgods/clinic-scheduling/internal/clinic"
)

var ErrMalformedLine = errors.New("malformed provider line")

// Skipped records a line that was dropped without aborting the load.
type Skipped struct {
	Line int
	Err  error
}

// LoadFile reads a providers file. See Load.
func LoadFile(path string, logger *zap.Logger) (*Directory, []Skipped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open providers file: %w", err)
	}
	defer f.Close()

	return Load(f, logger)
}

// Load parses one provider per line:
//
//	D <first> <last> <dob> <location> <specialty> <npi>
//	T <first> <last> <dob> <location> <rate>
//
// Duplicate NPIs are skipped and reported; any other bad line aborts the load.
func Load(r io.Reader, logger *zap.Logger) (*Directory, []Skipped, error) {
	dir := New()
	var skipped []Skipped

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		p, err := parseProvider(fields)
		if err != nil {
			return nil, skipped, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if err := dir.Add(p); err != nil {
			if errors.Is(err, ErrDuplicateNPI) {
				logger.Warn("skipping provider", zap.Int("line", lineNo), zap.Error(err))
				skipped = append(skipped, Skipped{Line: lineNo, Err: err})
				continue
			}
			return nil, skipped, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, skipped, fmt.Errorf("read providers: %w", err)
	}

	logger.Info("providers loaded", zap.Int("count", dir.Len()), zap.Int("skipped", len(skipped)))
	return dir, skipped, nil
}

func parseProvider(f []string) (clinic.Provider, error) {
	switch strings.ToUpper(f[0]) {
	case "D":
		if len(f) != 7 {
			return nil, fmt.Errorf("%w: doctor needs 7 fields, got %d", ErrMalformedLine, len(f))
		}
		profile, loc, err := parseCommon(f)
		if err != nil {
			return nil, err
		}
		sp, err := clinic.ParseSpecialty(f[5])
		if err != nil {
			return nil, err
		}
		return clinic.NewDoctor(profile, loc, sp, f[6]), nil
	case "T":
		if len(f) != 6 {
			return nil, fmt.Errorf("%w: technician needs 6 fields, got %d", ErrMalformedLine, len(f))
		}
		profile, loc, err := parseCommon(f)
		if err != nil {
			return nil, err
		}
		rate, err := strconv.Atoi(f[5])
		if err != nil {
			return nil, fmt.Errorf("%w: technician rate %q is not a number", ErrMalformedLine, f[5])
		}
		return clinic.NewTechnician(profile, loc, rate), nil
	}
	return nil, fmt.Errorf("%w: unknown provider type %q", ErrMalformedLine, f[0])
}

func parseCommon(f []string) (clinic.Profile, clinic.Location, error) {
	dob, err := clinic.ParseDate(f[3])
	if err != nil {
		return clinic.Profile{}, 0, err
	}
	if !dob.IsValid() {
		return clinic.Profile{}, 0, fmt.Errorf("%w: date of birth %s is not a valid date", ErrMalformedLine, dob)
	}
	loc, err := clinic.ParseLocation(f[4])
	if err != nil {
		return clinic.Profile{}, 0, err
	}
	return clinic.NewProfile(f[1], f[2], dob), loc, nil
}
