package lockfile

import (
	"fmt"
	"os"
	"strings"
)

// Pin is one locked requirement.
type Pin struct {
	Name    string
	Version string
	Extras  []string
	Marker  string
	Hashes  []string
}

// String renders the pin without its hashes.
func (p Pin) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if len(p.Extras) > 0 {
		b.WriteString("[" + strings.Join(p.Extras, ",") + "]")
	}
	if p.Version != "" {
		b.WriteString("==" + p.Version)
	}
	if p.Marker != "" {
		b.WriteString(" ; " + p.Marker)
	}
	return b.String()
}

// Load reads the lock file at path.
func Load(path string) ([]Pin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lock file: %w", err)
	}
	pins, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return pins, nil
}

// Parse reads pip requirements text. Comments, blank lines and option
// lines (--index-url, -e, ...) are skipped; backslash continuations are
// joined before parsing.
func Parse(data []byte) ([]Pin, error) {
	var pins []Pin
	for i, line := range logicalLines(string(data)) {
		line = stripComment(line)
		if line == "" || strings.HasPrefix(line, "-") {
			continue
		}
		pin, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		pins = append(pins, pin)
	}
	return pins, nil
}

func logicalLines(text string) []string {
	var (
		lines []string
		cur   strings.Builder
	)
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimRight(raw, "\r")
		if strings.HasSuffix(raw, `\`) {
			cur.WriteString(strings.TrimSuffix(raw, `\`))
			cur.WriteByte(' ')
			continue
		}
		cur.WriteString(raw)
		lines = append(lines, cur.String())
		cur.Reset()
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// stripComment drops a leading "#" line or a whitespace-prefixed " #" tail.
func stripComment(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "#") {
		return ""
	}
	if i := strings.Index(line, " #"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "\t#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func parseLine(line string) (Pin, error) {
	fields := strings.Fields(line)
	var req []string
	var pin Pin
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		switch {
		case strings.HasPrefix(f, "--hash="):
			pin.Hashes = append(pin.Hashes, strings.TrimPrefix(f, "--hash="))
		case f == "--hash" && i+1 < len(fields):
			i++
			pin.Hashes = append(pin.Hashes, fields[i])
		case strings.HasPrefix(f, "--"):
		default:
			req = append(req, f)
		}
	}

	spec := strings.Join(req, " ")
	if before, after, ok := strings.Cut(spec, ";"); ok {
		spec = strings.TrimSpace(before)
		pin.Marker = strings.TrimSpace(after)
	}
	if before, after, ok := strings.Cut(spec, "=="); ok {
		spec = strings.TrimSpace(before)
		pin.Version = strings.TrimSpace(after)
	}
	if before, after, ok := strings.Cut(spec, "["); ok {
		spec = strings.TrimSpace(before)
		for _, e := range strings.Split(strings.TrimSuffix(after, "]"), ",") {
			if e = strings.TrimSpace(e); e != "" {
				pin.Extras = append(pin.Extras, e)
			}
		}
	}
	pin.Name = strings.TrimSpace(spec)
	if pin.Name == "" {
		return Pin{}, fmt.Errorf("missing package name in %q", line)
	}
	return pin, nil
}
