package event

import (
	"fmt"
	"strconv"
	"strings"

	"tracestat/internal/rules"
	"tracestat/internal/trace"
)

// Event is one recorded database trace occurrence. Fields missing from the
// source element keep their zero values.
type Event struct {
	ApplicationName string
	TextData        string
	Duration        int
	CPU             int
	Reads           int
	Writes          int
}

// columns picks the direct Column children of an event element.
func columns(doc *trace.Document, n *trace.Node) []*trace.Node {
	out := make([]*trace.Node, 0, len(n.Children))
	for _, c := range n.Children {
		if doc.Named(c, "Column") {
			out = append(out, c)
		}
	}
	return out
}

// IsRelevant reports whether the candidate carries exactly one
// ApplicationName column whose text equals appName (exact, case-sensitive).
// Columns without a name attribute never match here; malformed
// non-relevant records must not reach Decode.
func IsRelevant(doc *trace.Document, n *trace.Node, appName string) bool {
	matches := 0
	value := ""
	for _, c := range columns(doc, n) {
		if name, ok := c.Attr("name"); ok && name == "ApplicationName" {
			matches++
			value = c.Text
		}
	}
	return matches == 1 && value == appName
}

// Decode builds an Event from a relevant candidate element. Every Column
// must carry a name attribute; numeric columns must parse as integers.
// Columns with unknown names are ignored.
func Decode(doc *trace.Document, n *trace.Node) (Event, error) {
	var e Event
	for _, c := range columns(doc, n) {
		name, ok := c.Attr("name")
		if !ok {
			return Event{}, fmt.Errorf("event %s: Column without name attribute", n.XMLName.Local)
		}
		var dst *int
		switch name {
		case "ApplicationName":
			e.ApplicationName = c.Text
			continue
		case "TextData":
			e.TextData = c.Text
			continue
		case "Duration":
			dst = &e.Duration
		case "CPU":
			dst = &e.CPU
		case "Reads":
			dst = &e.Reads
		case "Writes":
			dst = &e.Writes
		default:
			continue
		}
		v, err := strconv.Atoi(c.Text)
		if err != nil {
			return Event{}, fmt.Errorf("event %s: column %s: %w", n.XMLName.Local, name, err)
		}
		*dst = v
	}
	return e, nil
}

// ExtractRelevant walks the Events container and decodes every relevant
// candidate, preserving document order.
func ExtractRelevant(doc *trace.Document, r *rules.Rules) ([]Event, error) {
	candidates, err := doc.Events()
	if err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(candidates))
	for _, c := range candidates {
		if !IsRelevant(doc, c, r.ApplicationName) {
			continue
		}
		e, err := Decode(doc, c)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// Select applies the usage filter: TextData contains the configured
// substring (case-sensitive) and CPU is positive.
func Select(events []Event, r *rules.Rules) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.CPU > 0 && strings.Contains(e.TextData, r.TextContains) {
			out = append(out, e)
		}
	}
	return out
}
