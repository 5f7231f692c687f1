package profile

import "strings"

// SplitTags splits a comma-separated tag string into individual tags,
// trimming whitespace and dropping empty segments.
func SplitTags(raw string) []string {
	tags := []string{}
	for _, segment := range strings.Split(raw, ",") {
		segment = strings.TrimSpace(segment)
		if len(segment) > 0 {
			tags = append(tags, segment)
		}
	}
	return tags
}

// tagArgs renders one <flag>=<tag> token per tag in raw.
func tagArgs(flag, raw string) []string {
	args := []string{}
	for _, tag := range SplitTags(raw) {
		args = append(args, flag+"="+tag)
	}
	return args
}
