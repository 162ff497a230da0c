package workspace

import (
	"strconv"
	"strings"
)

// SectionDelimiter separates the fields of a structured workspace name.
const SectionDelimiter = "\u200b"

// MissingNumber marks a numeric section that is absent or unparsable.
const MissingNumber = -1

// DisplayNameSeparator joins the parts of a synthesized display name.
const DisplayNameSeparator = ":"

// NameSections are the fields of a structured workspace name:
//
//	global_number: ZWSP group: ZWSP :static_name ZWSP :dynamic_name ZWSP :local_number
//
// Names that do not split into exactly five fields keep the whole name
// in StaticName.
type NameSections struct {
	GlobalNumber int
	Group        string
	StaticName   string
	DynamicName  string
	LocalNumber  int
}

// ParseName splits a workspace name into its sections. It never fails:
// malformed names degrade to a StaticName-only result and unparsable
// numbers stay at MissingNumber.
func ParseName(name string) NameSections {
	result := NameSections{
		GlobalNumber: MissingNumber,
		LocalNumber:  MissingNumber,
	}

	sections := strings.Split(name, SectionDelimiter)
	if len(sections) != 5 {
		result.StaticName = name
		return result
	}

	if n, err := strconv.Atoi(strings.TrimSuffix(sections[0], ":")); err == nil {
		result.GlobalNumber = n
	}
	result.Group = strings.TrimSuffix(sections[1], ":")
	result.StaticName = strings.TrimPrefix(sections[2], ":")
	result.DynamicName = strings.TrimPrefix(sections[3], ":")
	if n, err := strconv.Atoi(strings.TrimPrefix(sections[4], ":")); err == nil {
		result.LocalNumber = n
	}
	return result
}

// DisplayName joins the present parts of s (group, static name, dynamic
// name, local number) with DisplayNameSeparator.
func DisplayName(s NameSections) string {
	var components []string
	if s.Group != "" {
		components = append(components, s.Group)
	}
	if s.StaticName != "" {
		components = append(components, s.StaticName)
	}
	if s.DynamicName != "" {
		components = append(components, s.DynamicName)
	}
	if s.LocalNumber != MissingNumber {
		components = append(components, strconv.Itoa(s.LocalNumber))
	}
	return strings.Join(components, DisplayNameSeparator)
}

// FormatName builds a structured workspace name from its sections, the
// inverse of ParseName for well-formed input.
func FormatName(s NameSections) string {
	global := ""
	if s.GlobalNumber != MissingNumber {
		global = strconv.Itoa(s.GlobalNumber)
	}
	local := ""
	if s.LocalNumber != MissingNumber {
		local = strconv.Itoa(s.LocalNumber)
	}
	return strings.Join([]string{
		global + ":",
		s.Group + ":",
		":" + s.StaticName,
		":" + s.DynamicName,
		":" + local,
	}, SectionDelimiter)
}
