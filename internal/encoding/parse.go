package encoding

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a whole table. path is used for positions in errors and on
// the returned encodings, and to derive their extension with the default
// prefix; it may be empty.
func Parse(r io.Reader, path string) ([]Encoding, error) {
	return parse(r, path, DefaultPrefix)
}

func parse(r io.Reader, path, prefix string) ([]Encoding, error) {
	ext := ExtensionFromPath(path, prefix)

	var ret []Encoding

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(trimComments(sc.Text()))
		if line == "" || strings.HasPrefix(line, "$") {
			continue
		}

		pos := Position{Path: path, Line: lineNum}
		enc, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pos, err)
		}
		enc.Extension = ext
		enc.Source = pos

		ret = append(ret, enc)
	}

	return ret, sc.Err()
}

// ParseLine parses one instruction line. The line must not be blank.
func ParseLine(line string) (Encoding, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Encoding{}, errors.New("no instruction name")
	}

	enc := Encoding{
		Name: fields[0],
	}
	for _, token := range fields[1:] {
		if !strings.Contains(token, "=") {
			enc.Args = append(enc.Args, token)
			continue
		}

		mask, pattern, err := ParseField(token)
		if err != nil {
			return Encoding{}, err
		}
		enc.Mask |= mask
		enc.Pattern |= pattern
	}

	return enc, nil
}

// ParseField parses a fixed bit field assignment such as "14..12=0" or
// "6..2=0x0D" or "20=1", returning the bits it constrains and the value
// it requires of them.
func ParseField(token string) (mask, pattern Bits32, err error) {
	rawRng, rawWant := partition(token, "=")

	top, bottom, err := parseBitRange(rawRng)
	if err != nil {
		return 0, 0, &FormatError{Token: token, Reason: err.Error()}
	}
	want, err := parseValue(rawWant)
	if err != nil {
		return 0, 0, &FormatError{Token: token, Reason: err.Error()}
	}

	width := top - bottom + 1
	localMask := uint64(1)<<width - 1
	if want&localMask != want {
		return 0, 0, &EncodingError{Token: token, Value: want, Width: width}
	}

	return rangeMask(top, bottom), Bits32(want << bottom), nil
}

// parseBitRange accepts "N" for a single bit or "M..N" with M >= N.
func parseBitRange(raw string) (top, bottom uint, err error) {
	if !strings.Contains(raw, "..") {
		bit, err := parseBitNum(raw)
		return bit, bit, err
	}

	rawTop, rawBottom := partition(raw, "..")
	top, err = parseBitNum(rawTop)
	if err != nil {
		return 0, 0, err
	}
	bottom, err = parseBitNum(rawBottom)
	if err != nil {
		return 0, 0, err
	}
	if top < bottom {
		return 0, 0, fmt.Errorf("bit range %s runs from low to high", raw)
	}
	return top, bottom, nil
}

func parseBitNum(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid bit number %q", raw)
	}
	if n >= WordBits {
		return 0, fmt.Errorf("bit %d is outside the %d-bit word", n, WordBits)
	}
	return uint(n), nil
}

// parseValue accepts decimal, 0x-prefixed hex and 0b-prefixed binary.
// Leading zeros don't make a decimal number octal.
func parseValue(raw string) (uint64, error) {
	base := 10
	digits := raw
	switch {
	case strings.HasPrefix(raw, "0x"):
		base, digits = 16, raw[2:]
	case strings.HasPrefix(raw, "0b"):
		base, digits = 2, raw[2:]
	}

	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q", raw)
	}
	return v, nil
}

func trimComments(line string) string {
	hash := strings.IndexByte(line, '#')
	if hash == -1 {
		return line
	}
	return line[:hash]
}

func partition(s string, sep string) (l, r string) {
	idx := strings.Index(s, sep)
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}
