// SPDX-License-Identifier: MIT

// Package report renders EMD results as text, JSON or CBOR.
//
// Every report carries a semantic schema version. Readers accept any report
// whose major version matches SchemaVersion and reject the rest with
// ErrIncompatibleVersion.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Cuauhtlidp/emd-optimizer/emd"
	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
)

// SchemaVersion is the version written into every report.
const SchemaVersion = "1.0.0"

var (
	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrIncompatibleVersion indicates a report with a different major schema version.
	ErrIncompatibleVersion = errors.New("report: incompatible schema version")
)

// Format selects the report encoding.
type Format string

const (
	// FormatText is a human-readable summary followed by the matched pairs.
	FormatText Format = "text"
	// FormatJSON is the Report encoded as a single JSON object.
	FormatJSON Format = "json"
	// FormatCBOR is the Report encoded as CBOR with integer keys.
	FormatCBOR Format = "cbor"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatCBOR:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Report is the serialized form of an emd.Result.
type Report struct {
	Version    string  `json:"version" cbor:"1,keyasint"`
	Points     int     `json:"points" cbor:"2,keyasint"`
	Dimension  int     `json:"dimension,omitempty" cbor:"3,keyasint,omitempty"`
	Cost       float64 `json:"cost" cbor:"4,keyasint"`
	Distance   float64 `json:"emd" cbor:"5,keyasint"`
	Assignment []int   `json:"assignment" cbor:"6,keyasint"`
	Iterations int     `json:"iterations" cbor:"7,keyasint"`
}

// New builds a Report stamped with SchemaVersion.
func New(res emd.Result) Report {
	return Report{
		Version:    SchemaVersion,
		Points:     res.N,
		Dimension:  res.Dimension,
		Cost:       res.Cost,
		Distance:   res.Distance,
		Assignment: res.Assignment,
		Iterations: res.Iterations,
	}
}

// Write encodes r to w in format f.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatCBOR:
		return cbor.NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

func writeText(w io.Writer, r Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "points:     %d\n", r.Points)
	if r.Dimension > 0 {
		fmt.Fprintf(&sb, "dimension:  %d\n", r.Dimension)
	}
	fmt.Fprintf(&sb, "cost:       %g\n", r.Cost)
	fmt.Fprintf(&sb, "emd:        %g\n", r.Distance)
	fmt.Fprintf(&sb, "iterations: %d\n", r.Iterations)
	sb.WriteString("pairs:\n")
	for i, j := range r.Assignment {
		fmt.Fprintf(&sb, "  %d -> %d\n", i, j)
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// ReadCBOR decodes a CBOR report and checks its schema version.
func ReadCBOR(rd io.Reader) (Report, error) {
	var r Report
	if err := cbor.NewDecoder(rd).Decode(&r); err != nil {
		return Report{}, fmt.Errorf("report: decode cbor: %w", err)
	}
	if err := checkVersion(r.Version); err != nil {
		return Report{}, err
	}

	return r, nil
}

// checkVersion accepts versions whose major component matches SchemaVersion.
func checkVersion(v string) error {
	got, err := semver.Parse(v)
	if err != nil {
		return fmt.Errorf("version %q: %v: %w", v, err, ErrIncompatibleVersion)
	}
	want := semver.MustParse(SchemaVersion)
	if got.Major != want.Major {
		return fmt.Errorf("version %s, want %d.x.x: %w", got, want.Major, ErrIncompatibleVersion)
	}

	return nil
}
