package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"procwatch/internal/core/model"
	"procwatch/internal/core/registry"
)

// TimersFileName is the default name of the saved timers file.
const TimersFileName = "timers.txt"

// FormatHeader opens every file written by EncodeTimers. A file without it
// predates escaping and its fields are read raw.
const FormatHeader = "# procwatch timers v2"

const timerFieldCount = 4

// TimersFile persists timers as one comma-separated line per timer:
//
//	process_name,interval_minutes,message,is_active
//
// Backslashes, commas, carriage returns and newlines inside the text fields
// are escaped with a backslash. Legacy files keep backslashes literally and
// may carry raw commas in the message; those are folded back into the
// message on read.
type TimersFile struct {
	path string
}

// NewTimersFile returns a store backed by the file at path.
func NewTimersFile(path string) *TimersFile {
	return &TimersFile{path: path}
}

// Path returns the backing file path.
func (file *TimersFile) Path() string {
	return file.path
}

// Load reads all well-formed timers and reports how many lines were skipped.
// A missing file yields no timers and no error.
func (file *TimersFile) Load() ([]model.Timer, int, error) {
	handle, err := os.Open(file.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open timers file: %w", err)
	}
	defer handle.Close()

	timers, skipped, err := DecodeTimers(handle)
	if err != nil {
		return nil, 0, fmt.Errorf("read timers file: %w", err)
	}
	return timers, skipped, nil
}

// Save replaces the file with the given timers. The previous file is left
// untouched if any step fails.
func (file *TimersFile) Save(timers []model.Timer) error {
	dir := filepath.Dir(file.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create timers directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".timers-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp timers file: %w", err)
	}
	tempPath := temp.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if err := EncodeTimers(temp, timers); err != nil {
		_ = temp.Close()
		return fmt.Errorf("write timers file: %w", err)
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("close timers file: %w", err)
	}
	if err := os.Rename(tempPath, file.path); err != nil {
		return fmt.Errorf("replace timers file: %w", err)
	}
	return nil
}

// EncodeTimers writes the format header followed by one line per timer.
func EncodeTimers(writer io.Writer, timers []model.Timer) error {
	buffered := bufio.NewWriter(writer)
	if _, err := buffered.WriteString(FormatHeader + "\n"); err != nil {
		return err
	}
	for _, timer := range timers {
		if _, err := buffered.WriteString(EncodeTimer(timer) + "\n"); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// EncodeTimer formats a single timer line without the trailing newline.
func EncodeTimer(timer model.Timer) string {
	active := "False"
	if timer.Active {
		active = "True"
	}
	return strings.Join([]string{
		escapeField(timer.ProcessName),
		strconv.Itoa(timer.IntervalMinutes),
		escapeField(timer.Message),
		active,
	}, ",")
}

// DecodeTimers parses every line from reader, skipping malformed ones.
// Lines are unescaped only when the file starts with FormatHeader.
func DecodeTimers(reader io.Reader) ([]model.Timer, int, error) {
	var (
		timers  []model.Timer
		skipped int
		seen    bool
		decode  = DecodeLegacyTimer
	)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !seen {
			seen = true
			if line == FormatHeader {
				decode = DecodeTimer
				continue
			}
		}
		timer, ok := decode(line)
		if !ok {
			skipped++
			continue
		}
		timers = append(timers, timer)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return timers, skipped, nil
}

// DecodeTimer parses a single escaped line. LastNotified is left zero; the
// registry restarts every countdown on load.
func DecodeTimer(line string) (model.Timer, bool) {
	return decodeFields(splitFields(line))
}

// DecodeLegacyTimer parses a line written before escaping existed.
// Backslashes are kept as they are.
func DecodeLegacyTimer(line string) (model.Timer, bool) {
	return decodeFields(strings.Split(line, ","))
}

func decodeFields(fields []string) (model.Timer, bool) {
	if len(fields) < timerFieldCount {
		return model.Timer{}, false
	}

	last := len(fields) - 1
	processName := fields[0]
	message := strings.Join(fields[2:last], ",")
	if strings.TrimSpace(processName) == "" || strings.TrimSpace(message) == "" {
		return model.Timer{}, false
	}

	interval, err := registry.ParseInterval(fields[1])
	if err != nil {
		return model.Timer{}, false
	}

	return model.Timer{
		ProcessName:     processName,
		IntervalMinutes: interval,
		Message:         message,
		Active:          strings.EqualFold(strings.TrimSpace(fields[last]), "true"),
	}, true
}

func escapeField(value string) string {
	var builder strings.Builder
	for _, r := range value {
		switch r {
		case '\\':
			builder.WriteString(`\\`)
		case ',':
			builder.WriteString(`\,`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// splitFields splits on unescaped commas. Unknown escape pairs are kept
// verbatim.
func splitFields(line string) []string {
	var (
		fields  []string
		current strings.Builder
		escaped bool
	)
	for _, r := range line {
		if escaped {
			switch r {
			case 'n':
				current.WriteRune('\n')
			case 'r':
				current.WriteRune('\r')
			case '\\', ',':
				current.WriteRune(r)
			default:
				current.WriteRune('\\')
				current.WriteRune(r)
			}
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case ',':
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if escaped {
		current.WriteRune('\\')
	}
	return append(fields, current.String())
}
